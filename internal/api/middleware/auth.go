package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/maintenox/maintenance-system/internal/core/domain"
)

// gateResponse is the envelope returned on every gate denial. Redirect names
// the view the client should navigate to.
type gateResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect"`
}

// SessionChecker verifies that the session referenced by a token still exists.
type SessionChecker interface {
	Session(ctx context.Context, sessionID string) (*domain.Session, error)
}

// Auth validates the JWT, confirms the session is still live, and injects
// claims into the request context. Any failure answers 401 with a redirect to
// the login view.
func Auth(jwtSecret string, sessions SessionChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return loginRedirect(c, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return loginRedirect(c, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return loginRedirect(c, "invalid token")
			}

			sid, _ := claims["sid"].(string)
			if sessions != nil && sid != "" {
				if _, err := sessions.Session(c.Request().Context(), sid); err != nil {
					if errors.Is(err, domain.ErrSessionExpired) {
						return loginRedirect(c, "session expired")
					}
					return err
				}
			}

			c.Set("session_id", sid)
			c.Set("user_id", claims["sub"])
			c.Set("name", claims["name"])
			c.Set("email", claims["email"])
			c.Set("role", claims["role"])
			c.Set("avatar", claims["avatar"])

			return next(c)
		}
	}
}

func loginRedirect(c echo.Context, msg string) error {
	return c.JSON(http.StatusUnauthorized, gateResponse{Error: msg, Redirect: "/login"})
}
