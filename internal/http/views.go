package http

import (
	"time"

	"github.com/mrlokans/wayfarer/internal/entities"
)

// dateLayout is the wire format of departure dates.
const dateLayout = "2006-01-02"

type DestinationView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Image        string `json:"image"`
	Description  string `json:"description"`
	TravelReason string `json:"travelReason"`
	Price        string `json:"price"`
}

func NewDestinationView(d *entities.Destination) DestinationView {
	return DestinationView{
		ID:           d.ID,
		Name:         d.Name,
		Image:        d.Image,
		Description:  d.Description,
		TravelReason: d.TravelReason,
		Price:        d.Price,
	}
}

// BookingView is the client-facing projection of a booking with its
// destination embedded.
type BookingView struct {
	ID            string           `json:"id"`
	UserID        *string          `json:"userId"`
	DestinationID *string          `json:"destinationId"`
	Destination   *DestinationView `json:"destination"`
	Name          string           `json:"name"`
	Email         string           `json:"email"`
	Phone         string           `json:"phone"`
	DepartureDate string           `json:"departureDate"`
	Travelers     int              `json:"travelers"`
	Comments      string           `json:"comments"`
	Status        string           `json:"status"`
	CreatedAt     time.Time        `json:"createdAt"`
}

func NewBookingView(b *entities.Booking) BookingView {
	view := BookingView{
		ID:            b.ID,
		UserID:        b.UserID,
		DestinationID: b.DestinationID,
		Name:          b.Name,
		Email:         b.Email,
		Phone:         b.Phone,
		DepartureDate: b.DepartureDate.Format(dateLayout),
		Travelers:     b.Travelers,
		Comments:      b.Comments,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
	}
	if b.Destination != nil {
		destination := NewDestinationView(b.Destination)
		view.Destination = &destination
	}
	return view
}
