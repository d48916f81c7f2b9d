// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	"machone/internal/delivery/http/middleware"
	"machone/internal/delivery/http/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// currentUserID reads the authenticated caller's ID placed on the context by
// the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)

	return userID, ok
}

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// parseRequiredUUID parses a UUID carried in a request body field.
func parseRequiredUUID(raw string) (uuid.UUID, error) {
	return uuid.Parse(raw)
}

// queryInt parses an optional integer query parameter. Zero means "absent"
// so the usecase layer can apply its defaults.
func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	return strconv.Atoi(raw)
}

// queryFloat parses an optional float query parameter, zero when absent.
func queryFloat(c echo.Context, name string) (float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	return strconv.ParseFloat(raw, 64)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
