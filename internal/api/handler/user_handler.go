package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/contactbook/contact-api/internal/api/metrics"
	"github.com/contactbook/contact-api/internal/core/domain"
	"github.com/contactbook/contact-api/internal/core/ports"
)

// UserHandler handles HTTP requests for the account lifecycle.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerUserRequest  true  "Registration details"
// @Success      200   {object}  webResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.service.Register(c.Request().Context(), ports.RegisterUserInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.Inc()

	return c.JSON(http.StatusOK, webResponse{Data: userResponse{
		ID:       profile.ID,
		Username: profile.Username,
		Name:     profile.Name,
	}})
}

// Login verifies credentials and returns the profile with a fresh token.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginUserRequest  true  "Login credentials"
// @Success      200   {object}  webResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.service.Login(c.Request().Context(), ports.LoginUserInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			metrics.UserLoginsTotal.WithLabelValues("rejected").Inc()
		}
		return err
	}

	metrics.UserLoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, webResponse{Data: userResponse{
		ID:       profile.ID,
		Username: profile.Username,
		Name:     profile.Name,
		Token:    profile.Token,
	}})
}

// Current returns the authenticated user's profile.
//
// @Summary      Get the current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  webResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/users/current [get]
func (h *UserHandler) Current(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	profile := h.service.Current(user)

	return c.JSON(http.StatusOK, webResponse{Data: userResponse{
		ID:       profile.ID,
		Username: profile.Username,
		Name:     profile.Name,
	}})
}

// Update applies a partial profile update (name and/or password).
//
// @Summary      Update the current user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  webResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/users/current [patch]
func (h *UserHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.service.Update(c.Request().Context(), user, ports.UpdateUserInput{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, webResponse{Data: userResponse{
		ID:       profile.ID,
		Username: profile.Username,
		Name:     profile.Name,
	}})
}

// Logout revokes the authenticated user's token.
//
// @Summary      Logout
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  webResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/users/current [delete]
func (h *UserHandler) Logout(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Logout(c.Request().Context(), user); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, webResponse{Data: true})
}
