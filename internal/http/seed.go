package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type seedResponse struct {
	Message             string `json:"message"`
	DestinationsCreated int    `json:"destinationsCreated"`
	DemoUserCreated     bool   `json:"demoUserCreated"`
}

type SeedController struct {
	seeder Seeder
	cache  CacheInvalidator
}

func NewSeedController(seeder Seeder, cache CacheInvalidator) *SeedController {
	return &SeedController{seeder: seeder, cache: cache}
}

// Seed inserts the missing catalogue entries and demo user. Repeated calls
// report zero new records.
func (sc *SeedController) Seed(c *gin.Context) {
	ctx := c.Request.Context()
	result, err := sc.seeder.Run(ctx)
	if err != nil {
		respondInternalError(c, err, "seed")
		return
	}

	if sc.cache != nil && result.DestinationsCreated > 0 {
		sc.cache.Invalidate(ctx)
	}

	c.JSON(http.StatusOK, seedResponse{
		Message:             "database seeded",
		DestinationsCreated: result.DestinationsCreated,
		DemoUserCreated:     result.DemoUserCreated,
	})
}
