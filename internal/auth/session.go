package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContextKeySession is the gin context key holding the request's Session.
const ContextKeySession = "auth_session"

// SessionState describes what the session middleware found on the request.
type SessionState int

const (
	// SessionAbsent means no session cookie was sent.
	SessionAbsent SessionState = iota
	// SessionInvalid means a cookie was sent but its token failed verification.
	SessionInvalid
	// SessionValid means the token verified and UserID is set.
	SessionValid
)

func (s SessionState) String() string {
	switch s {
	case SessionInvalid:
		return "invalid"
	case SessionValid:
		return "valid"
	default:
		return "absent"
	}
}

// Session is the per-request authentication context. It is extracted once by
// SessionMiddleware and handed to handlers by value.
type Session struct {
	State  SessionState
	UserID string
}

// Authenticated reports whether the request carries a verified token.
func (s Session) Authenticated() bool {
	return s.State == SessionValid && s.UserID != ""
}

// TokenVerifier verifies a session token and returns its user ID.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// SessionMiddleware reads and verifies the session cookie once per request
// and stores the resulting Session in the gin context. It never aborts;
// handlers decide whether a session is required.
func SessionMiddleware(tokens TokenVerifier, cookies *CookieAdapter) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKeySession, extractSession(c, tokens, cookies))
		c.Next()
	}
}

func extractSession(c *gin.Context, tokens TokenVerifier, cookies *CookieAdapter) Session {
	token, ok := cookies.Get(c)
	if !ok {
		return Session{State: SessionAbsent}
	}

	userID, err := tokens.Verify(token)
	if err != nil {
		return Session{State: SessionInvalid}
	}
	return Session{State: SessionValid, UserID: userID}
}

// SessionFrom returns the Session stored by SessionMiddleware. Requests that
// did not pass through the middleware report an absent session.
func SessionFrom(c *gin.Context) Session {
	if value, exists := c.Get(ContextKeySession); exists {
		if session, ok := value.(Session); ok {
			return session
		}
	}
	return Session{State: SessionAbsent}
}

// RequireSession aborts with 401 unless the request carries a valid session.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !SessionFrom(c).Authenticated() {
			abortWithError(c, http.StatusUnauthorized, CodeUnauthenticated, "authentication required")
			return
		}
		c.Next()
	}
}
