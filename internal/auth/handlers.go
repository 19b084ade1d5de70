package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthController handles authentication-related HTTP endpoints.
type AuthController struct {
	service *Service
	cookies *CookieAdapter
}

// NewAuthController creates a new authentication controller.
func NewAuthController(service *Service, cookies *CookieAdapter) *AuthController {
	return &AuthController{
		service: service,
		cookies: cookies,
	}
}

// RegisterRoutes registers authentication routes under /auth.
func (ac *AuthController) RegisterRoutes(router gin.IRouter) {
	group := router.Group("/auth")
	group.POST("/signup", ac.Signup)
	group.POST("/login", ac.Login)
	group.POST("/logout", ac.Logout)
	group.GET("/me", ac.Me)
}

// Signup creates an account and starts a session.
func (ac *AuthController) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, CodeValidation, "invalid request body")
		return
	}

	user, token, err := ac.service.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrSignupFieldsRequired),
			errors.Is(err, ErrEmailInvalid),
			errors.Is(err, ErrPasswordTooLong):
			abortWithError(c, http.StatusBadRequest, CodeValidation, err.Error())
		case errors.Is(err, ErrEmailTaken):
			abortWithError(c, http.StatusConflict, CodeConflict, err.Error())
		default:
			abortInternal(c, err, "signup")
		}
		return
	}

	ac.cookies.Set(c, token)
	c.JSON(http.StatusOK, NewUserView(user))
}

// Login verifies credentials and starts a session.
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, CodeValidation, "invalid request body")
		return
	}

	user, token, err := ac.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrLoginFieldsRequired):
			abortWithError(c, http.StatusBadRequest, CodeValidation, err.Error())
		case errors.Is(err, ErrInvalidCredentials):
			abortWithError(c, http.StatusUnauthorized, CodeUnauthenticated, err.Error())
		default:
			abortInternal(c, err, "login")
		}
		return
	}

	ac.cookies.Set(c, token)
	c.JSON(http.StatusOK, NewUserView(user))
}

// Logout clears the session cookie. It succeeds with or without a session.
func (ac *AuthController) Logout(c *gin.Context) {
	ac.cookies.Clear(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me returns the user behind the current session.
func (ac *AuthController) Me(c *gin.Context) {
	session := SessionFrom(c)
	switch session.State {
	case SessionAbsent:
		abortWithError(c, http.StatusUnauthorized, CodeUnauthenticated, "not authenticated")
		return
	case SessionInvalid:
		ac.cookies.Clear(c)
		abortWithError(c, http.StatusUnauthorized, CodeUnauthenticated, "invalid or expired session")
		return
	}

	user, err := ac.service.Me(c.Request.Context(), session.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			ac.cookies.Clear(c)
			abortWithError(c, http.StatusNotFound, CodeNotFound, err.Error())
			return
		}
		abortInternal(c, err, "me")
		return
	}

	c.JSON(http.StatusOK, NewUserView(user))
}
