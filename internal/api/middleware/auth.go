package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/pgedit/studio-api/internal/core/ports"
)

// Auth validates the JWT, confirms the session is still live (logout revokes
// the jti from the session store), and injects claims into context.
func Auth(jwtSecret string, sessions ports.SessionStore) echo.MiddlewareFunc {
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

			tokenID, _ := claims["jti"].(string)
			live, err := sessions.Exists(c.Request().Context(), tokenID)
			if err != nil {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "session store unavailable")
			}
			if !live {
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
			}

			c.Set("token_id", tokenID)
			c.Set("user_id", claims["uid"])
			c.Set("user_name", claims["name"])
			c.Set("role", claims["role"])

			return next(c)
		}
	}
}
