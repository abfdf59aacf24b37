package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/contactbook/contact-api/internal/api/metrics"
	"github.com/contactbook/contact-api/internal/core/ports"
)

// ContactHandler handles HTTP requests for contact records.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Create stores a new contact owned by the authenticated user.
//
// @Summary      Create a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createContactRequest  true  "Contact details"
// @Success      201   {object}  webResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/contacts [post]
func (h *ContactHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	contact, err := h.service.Create(c.Request().Context(), user, ports.CreateContactInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return err
	}

	metrics.ContactsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, webResponse{Data: contactResponse{
		ID:     contact.ID,
		Name:   contact.Name,
		Email:  contact.Email,
		Phone:  contact.Phone,
		UserID: contact.UserID,
	}})
}
