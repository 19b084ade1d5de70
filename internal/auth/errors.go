package auth

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Machine-readable error codes returned in the "code" field of error bodies.
const (
	CodeValidation      = "validation_error"
	CodeUnauthenticated = "unauthenticated"
	CodeConflict        = "conflict"
	CodeNotFound        = "not_found"
	CodeInternal        = "internal_error"
	CodeCSRF            = "csrf_invalid"
)

// errorBody mirrors the error envelope used by every JSON endpoint.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, errorBody{Error: message, Code: code})
}

// abortInternal logs the cause and responds with a generic 500.
func abortInternal(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	abortWithError(c, http.StatusInternalServerError, CodeInternal, "internal server error")
}
