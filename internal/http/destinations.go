package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/wayfarer/internal/database"
)

type DestinationsController struct {
	destinations DestinationReader
}

func NewDestinationsController(destinations DestinationReader) *DestinationsController {
	return &DestinationsController{destinations: destinations}
}

// List returns the whole catalogue ordered by name.
func (dc *DestinationsController) List(c *gin.Context) {
	destinations, err := dc.destinations.ListDestinations(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list destinations")
		return
	}

	views := make([]DestinationView, 0, len(destinations))
	for i := range destinations {
		views = append(views, NewDestinationView(&destinations[i]))
	}
	c.JSON(http.StatusOK, views)
}

func (dc *DestinationsController) Get(c *gin.Context) {
	destination, err := dc.destinations.GetDestinationByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondNotFound(c, "destination")
			return
		}
		respondInternalError(c, err, "get destination")
		return
	}
	c.JSON(http.StatusOK, NewDestinationView(destination))
}
