package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/Nenad034/isplate-backend/internal/core/domain"
	"github.com/Nenad034/isplate-backend/internal/core/service"
)

// CookieName is the session cookie the token travels in. The token is never
// accepted from a header or query parameter.
const CookieName = "isplate_token"

const principalKey = "principal"

// Auth verifies the session cookie and injects the rebuilt principal into the
// request context. It checks signature and expiry only — the user record is
// not re-read, so a role change takes effect when the token is reissued.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			claims := service.SessionClaims{}
			tkn, err := jwt.ParseWithClaims(cookie.Value, &claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(principalKey, &domain.Principal{
				ID:    claims.Subject,
				Name:  claims.Name,
				Email: claims.Email,
				Role:  claims.Role,
			})

			return next(c)
		}
	}
}

// PrincipalFrom returns the principal injected by Auth, or nil when the
// middleware did not run.
func PrincipalFrom(c echo.Context) *domain.Principal {
	p, _ := c.Get(principalKey).(*domain.Principal)
	return p
}

// SetPrincipal injects a principal directly. Test helper.
func SetPrincipal(c echo.Context, p *domain.Principal) {
	c.Set(principalKey, p)
}
