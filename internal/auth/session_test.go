package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newSessionRouter(t *testing.T, tokens *TokenService) *gin.Engine {
	t.Helper()

	router := gin.New()
	router.Use(SessionMiddleware(tokens, NewCookieAdapter(false, tokens.TTL())))
	router.GET("/session", func(c *gin.Context) {
		session := SessionFrom(c)
		c.JSON(http.StatusOK, gin.H{"state": session.State.String(), "user_id": session.UserID})
	})
	router.GET("/private", RequireSession(), func(c *gin.Context) {
		c.String(http.StatusOK, SessionFrom(c).UserID)
	})
	return router
}

func TestSessionMiddleware_States(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	tokens := newTestTokenService(t, clock)
	router := newSessionRouter(t, tokens)

	valid, err := tokens.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	tests := []struct {
		name      string
		cookie    string
		wantState string
		wantUser  string
	}{
		{"no cookie", "", "absent", ""},
		{"garbage cookie", "garbage", "invalid", ""},
		{"valid cookie", valid, "valid", "user-42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/session", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: CookieName, Value: tt.cookie})
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			want := `{"state":"` + tt.wantState + `","user_id":"` + tt.wantUser + `"}`
			if rr.Body.String() != want {
				t.Errorf("body = %s, want %s", rr.Body.String(), want)
			}
		})
	}
}

func TestSessionMiddleware_ExpiredTokenIsInvalid(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	tokens := newTestTokenService(t, clock)
	router := newSessionRouter(t, tokens)

	token, err := tokens.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	clock.now = clock.now.Add(8 * 24 * time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for expired session, got %d", rr.Code)
	}
}

func TestRequireSession(t *testing.T) {
	tokens := newTestTokenService(t, &fakeClock{now: time.Now()})
	router := newSessionRouter(t, tokens)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/private", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without session, got %d", rr.Code)
	}

	token, _ := tokens.Issue("user-42")
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK || rr.Body.String() != "user-42" {
		t.Errorf("Expected 200 user-42, got %d %s", rr.Code, rr.Body.String())
	}
}

func TestSessionFrom_WithoutMiddleware(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	session := SessionFrom(c)
	if session.State != SessionAbsent || session.Authenticated() {
		t.Errorf("Expected absent session, got %+v", session)
	}
}
