package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/wayfarer/internal/entities"
)

var ErrContactFieldsRequired = errors.New("name, email, subject and message are required")

type createContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type contactResponse struct {
	ContactID string `json:"contactId"`
}

type ContactController struct {
	contacts ContactStore
	notifier Notifier
}

func NewContactController(contacts ContactStore, notifier Notifier) *ContactController {
	return &ContactController{contacts: contacts, notifier: notifier}
}

// Create stores a contact form submission. No session is needed.
func (cc *ContactController) Create(c *gin.Context) {
	var req createContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	message := &entities.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}
	if message.Name == "" || message.Email == "" || message.Subject == "" || message.Message == "" {
		respondBadRequest(c, ErrContactFieldsRequired.Error())
		return
	}

	ctx := c.Request.Context()
	if err := cc.contacts.CreateContactMessage(ctx, message); err != nil {
		respondInternalError(c, err, "create contact message")
		return
	}

	cc.notifier.ContactReceived(ctx, message)
	c.JSON(http.StatusOK, contactResponse{ContactID: message.ID})
}
