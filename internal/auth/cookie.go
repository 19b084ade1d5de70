package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CookieName is the name of the session cookie carrying the signed token.
const CookieName = "auth_token"

// CookieAdapter stores the session token in an HTTP-only cookie.
type CookieAdapter struct {
	secure bool
	maxAge int
}

// NewCookieAdapter creates an adapter whose cookies live as long as ttl.
// secure adds the Secure attribute and must be set in production.
func NewCookieAdapter(secure bool, ttl time.Duration) *CookieAdapter {
	return &CookieAdapter{
		secure: secure,
		maxAge: int(ttl / time.Second),
	}
}

// Set writes the session cookie.
func (a *CookieAdapter) Set(c *gin.Context, token string) {
	a.write(c, token, a.maxAge)
}

// Get returns the session token, or false when the cookie is absent or empty.
func (a *CookieAdapter) Get(c *gin.Context) (string, bool) {
	token, err := c.Cookie(CookieName)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

// Clear expires the session cookie with the same attributes it was set with.
func (a *CookieAdapter) Clear(c *gin.Context) {
	a.write(c, "", -1)
}

func (a *CookieAdapter) write(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   a.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
