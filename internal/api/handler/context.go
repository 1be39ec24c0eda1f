package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/maintenox/maintenance-system/internal/core/ports"
)

// ctxActor builds the service-layer Actor from the claims injected by the
// Auth middleware, with a fast-fail check before any service call: role and
// user id must both be present (presence proves the middleware ran).
func ctxActor(c echo.Context) (ports.Actor, error) {
	role, _ := c.Get("role").(string)
	userID, _ := c.Get("user_id").(string)
	if role == "" || userID == "" {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	name, _ := c.Get("name").(string)
	return ports.Actor{UserID: userID, Name: name, Role: role}, nil
}

// ctxSessionID returns the session id carried by the token.
func ctxSessionID(c echo.Context) (string, error) {
	sid, _ := c.Get("session_id").(string)
	if sid == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return sid, nil
}
