package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/katyregal/salon-api/internal/core/domain"
	"github.com/katyregal/salon-api/internal/core/ports"
)

const principalKey = "principal"

// Authenticate validates the bearer token and resolves its subject to an
// existing principal, which is attached to the request context. A token whose
// subject no longer resolves is rejected even if its signature is valid.
func Authenticate(jwtSecret string, repo ports.AuthRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			subject, _ := claims["sub"].(string)
			if subject == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := repo.FindByID(c.Request().Context(), subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "user not found for this token")
			}

			c.Set(principalKey, user)
			return next(c)
		}
	}
}

// Principal returns the authenticated user attached by Authenticate.
func Principal(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(principalKey).(*domain.User)
	return user, ok
}
