package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/contactbook/contact-api/internal/api/middleware"
	"github.com/contactbook/contact-api/internal/core/domain"
)

// currentUser extracts the user injected by the Auth middleware. Its absence
// means the route was wired without the middleware; fail closed with 401
// rather than dereferencing nil downstream.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authenticated user")
	}
	return user, nil
}
