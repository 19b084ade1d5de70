package seed

import "github.com/mrlokans/wayfarer/internal/entities"

// Destinations is the catalogue inserted by the seeder. Prices are display
// text and are never parsed.
var Destinations = []entities.Destination{
	{
		Name:         "Santorini, Greece",
		Image:        "https://images.unsplash.com/photo-1570077188670-e3a8d69ac5ff",
		Description:  "Whitewashed villages clinging to volcanic cliffs above a deep blue caldera.",
		TravelReason: "Sunsets over Oia, volcanic beaches and wine tasting in clifftop vineyards.",
		Price:        "From $1,499",
	},
	{
		Name:         "Kyoto, Japan",
		Image:        "https://images.unsplash.com/photo-1493976040374-85c8e12f0c0e",
		Description:  "Japan's former imperial capital with more than a thousand temples and shrines.",
		TravelReason: "Cherry blossoms in spring, maple leaves in autumn and traditional tea houses all year.",
		Price:        "From $1,899",
	},
	{
		Name:         "Machu Picchu, Peru",
		Image:        "https://images.unsplash.com/photo-1587595431973-160d0d94add1",
		Description:  "The fifteenth-century Inca citadel set high in the Andes above the Urubamba valley.",
		TravelReason: "Hike the Inca Trail and watch the sunrise over the ruins.",
		Price:        "From $2,199",
	},
	{
		Name:         "Bali, Indonesia",
		Image:        "https://images.unsplash.com/photo-1537996194471-e657df975ab4",
		Description:  "Terraced rice fields, surf beaches and a rich Hindu temple culture.",
		TravelReason: "Yoga retreats in Ubud, diving off Nusa Penida and beach clubs in Seminyak.",
		Price:        "From $1,299",
	},
	{
		Name:         "Reykjavik, Iceland",
		Image:        "https://images.unsplash.com/photo-1504829857797-ddff29c27927",
		Description:  "The world's northernmost capital, gateway to glaciers, geysers and waterfalls.",
		TravelReason: "Northern lights in winter, midnight sun in summer and geothermal lagoons.",
		Price:        "From $1,799",
	},
	{
		Name:         "Marrakech, Morocco",
		Image:        "https://images.unsplash.com/photo-1597212618440-806262de4f6b",
		Description:  "A walled medina of souks, riads and gardens at the foot of the Atlas Mountains.",
		TravelReason: "Spice markets, desert excursions to the Sahara and rooftop dinners on Jemaa el-Fnaa.",
		Price:        "From $999",
	},
}
