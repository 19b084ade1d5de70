package http

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/wayfarer/internal/auth"
	"github.com/mrlokans/wayfarer/internal/database"
	"github.com/mrlokans/wayfarer/internal/entities"
)

var (
	ErrBookingFieldsRequired = errors.New("name, email, phone, destination, departureDate and travelers are required")
	ErrInvalidTravelers      = errors.New("travelers must be a positive integer")
	ErrInvalidDepartureDate  = errors.New("departureDate must be YYYY-MM-DD or RFC3339")
)

type createBookingRequest struct {
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Destination   string          `json:"destination"`
	DepartureDate string          `json:"departureDate"`
	Travelers     json.RawMessage `json:"travelers"` // number or numeric string
	Comments      string          `json:"comments"`
}

// bookingInput is a validated booking request.
type bookingInput struct {
	name          string
	email         string
	phone         string
	destinationID string
	departureDate time.Time
	travelers     int
	comments      string
}

func (r createBookingRequest) validate() (bookingInput, error) {
	input := bookingInput{
		name:          strings.TrimSpace(r.Name),
		email:         strings.TrimSpace(r.Email),
		phone:         strings.TrimSpace(r.Phone),
		destinationID: strings.TrimSpace(r.Destination),
		comments:      strings.TrimSpace(r.Comments),
	}
	date := strings.TrimSpace(r.DepartureDate)
	if input.name == "" || input.email == "" || input.phone == "" ||
		input.destinationID == "" || date == "" || isEmptyJSON(r.Travelers) {
		return input, ErrBookingFieldsRequired
	}

	travelers, err := parseTravelers(r.Travelers)
	if err != nil {
		return input, err
	}
	input.travelers = travelers

	departure, err := parseDepartureDate(date)
	if err != nil {
		return input, err
	}
	input.departureDate = departure

	return input, nil
}

func isEmptyJSON(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null" || trimmed == `""`
}

// parseTravelers accepts a JSON number or a string holding one.
func parseTravelers(raw json.RawMessage) (int, error) {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		n, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil || n <= 0 {
			return 0, ErrInvalidTravelers
		}
		return n, nil
	}

	var number float64
	if err := json.Unmarshal(raw, &number); err != nil {
		return 0, ErrInvalidTravelers
	}
	if number <= 0 || number != math.Trunc(number) || number > math.MaxInt32 {
		return 0, ErrInvalidTravelers
	}
	return int(number), nil
}

func parseDepartureDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidDepartureDate
}

type BookingsController struct {
	bookings     BookingStore
	destinations DestinationReader
	notifier     Notifier
}

func NewBookingsController(bookings BookingStore, destinations DestinationReader, notifier Notifier) *BookingsController {
	return &BookingsController{
		bookings:     bookings,
		destinations: destinations,
		notifier:     notifier,
	}
}

// Create stores a booking. Guests may book; a valid session tags the
// booking with the user's id.
func (bc *BookingsController) Create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	input, err := req.validate()
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	destination, err := bc.destinations.GetDestinationByID(ctx, input.destinationID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondNotFound(c, "destination")
			return
		}
		respondInternalError(c, err, "lookup booking destination")
		return
	}

	booking := &entities.Booking{
		DestinationID: &destination.ID,
		Name:          input.name,
		Email:         input.email,
		Phone:         input.phone,
		DepartureDate: input.departureDate,
		Travelers:     input.travelers,
		Comments:      input.comments,
		Status:        entities.BookingStatusPending,
	}
	if session := auth.SessionFrom(c); session.Authenticated() {
		userID := session.UserID
		booking.UserID = &userID
	}

	if err := bc.bookings.CreateBooking(ctx, booking); err != nil {
		respondInternalError(c, err, "create booking")
		return
	}
	booking.Destination = destination

	bc.notifier.BookingCreated(ctx, booking)
	respondCreated(c, NewBookingView(booking))
}

// List returns the session user's bookings, newest first. Mounted behind
// auth.RequireSession.
func (bc *BookingsController) List(c *gin.Context) {
	session := auth.SessionFrom(c)
	if !session.Authenticated() {
		respondUnauthorized(c)
		return
	}

	bookings, err := bc.bookings.ListBookingsForUser(c.Request.Context(), session.UserID)
	if err != nil {
		respondInternalError(c, err, "list bookings")
		return
	}

	views := make([]BookingView, 0, len(bookings))
	for i := range bookings {
		views = append(views, NewBookingView(&bookings[i]))
	}
	c.JSON(http.StatusOK, views)
}
