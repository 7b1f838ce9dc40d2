// Package handler contains the HTTP handlers for the application.
package handler

import (
	"vinyl/internal/delivery/http/middleware"
	domainerrors "vinyl/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// currentUserID extracts the authenticated user's ID placed on the context
// by one of the authentication middlewares.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get(middleware.KeyUserID).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, domainerrors.ErrSessionInvalid
	}

	return id, nil
}

// currentUserIsAdmin reports the admin flag set by the authentication middlewares.
func currentUserIsAdmin(c echo.Context) bool {
	admin, _ := c.Get(middleware.KeyAdmin).(bool)

	return admin
}

// pathUUID parses a UUID path parameter into a 400 on failure.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WrapMessage("invalid " + name)
	}

	return id, nil
}
