// Package auth provides stateless cookie sessions for the API.
//
// A session is an HS256-signed token holding the user ID, issued at signup or
// login and stored in the HTTP-only auth_token cookie for seven days. Nothing
// is persisted server-side: logout deletes the cookie and a token stays valid
// until it expires.
//
// # Configuration
//
//	AUTH_JWT_SECRET=<at least 32 bytes>  # Required in production
//	AUTH_BCRYPT_COST=12                  # bcrypt cost factor
//	AUTH_SECURE_COOKIES=true             # Secure cookies outside production
//
// # Usage
//
// Initialize authentication in entrypoint:
//
//	tokens, err := auth.NewTokenService(cfg.Auth.JWTSecret)
//	cookies := auth.NewCookieAdapter(cfg.CookiesSecure(), tokens.TTL())
//	router.Use(auth.SessionMiddleware(tokens, cookies))
//
// Read the session in handlers:
//
//	session := auth.SessionFrom(c)
//	if session.Authenticated() { ... session.UserID ... }
package auth
