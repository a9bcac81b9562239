package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pixelworks/agency-api/internal/core/ports"
)

// ContactHandler handles the public, unauthenticated contact form.
type ContactHandler struct {
	service ports.SubmissionService
}

func NewContactHandler(service ports.SubmissionService) *ContactHandler {
	return &ContactHandler{service: service}
}

type contactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

type contactResponse struct {
	Reference string `json:"reference"`
	Message   string `json:"message"`
	Note      string `json:"note,omitempty"`
}

// Submit handles POST /api/contact.
//
// @Summary      Submit the contact form
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact details"
// @Success      201   {object}  contactResponse
// @Failure      400   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Intake(c.Request().Context(), ports.IntakeInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Service:  req.Service,
		Subject:  req.Subject,
		Message:  req.Message,
		ClientIP: c.RealIP(),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, contactResponse{
		Reference: result.Reference,
		Message:   "thanks for getting in touch, we will get back to you shortly",
		Note:      result.Note,
	})
}
