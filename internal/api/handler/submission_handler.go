package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pixelworks/agency-api/internal/core/domain"
	"github.com/pixelworks/agency-api/internal/core/ports"
)

// SubmissionHandler handles back-office triage of contact submissions.
type SubmissionHandler struct {
	service ports.SubmissionService
}

func NewSubmissionHandler(service ports.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// List handles GET /api/admin/submissions with an optional status filter.
//
// @Summary      List contact submissions
// @Tags         submissions
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status (new|read|replied|archived)"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Page size (default 10)"
// @Success      200     {object}  listSubmissionsResponse
// @Router       /api/admin/submissions [get]
func (h *SubmissionHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), ports.SubmissionFilter{
		Status: domain.SubmissionStatus(c.QueryParam("status")),
		Page:   queryInt(c, "page", 0),
		Limit:  queryInt(c, "limit", 0),
	})
	if err != nil {
		return err
	}

	items := make([]submissionResponse, 0, len(page.Items))
	for _, s := range page.Items {
		items = append(items, toSubmissionResponse(s))
	}

	return c.JSON(http.StatusOK, listSubmissionsResponse{
		Data:       items,
		Pagination: toPagination(page.Total, page.Page, page.Limit, page.TotalPages),
	})
}

// Get handles GET /api/admin/submissions/:id.
func (h *SubmissionHandler) Get(c echo.Context) error {
	sub, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSubmissionResponse(sub))
}

// Update handles PATCH /api/admin/submissions/:id. Only status and notes are
// accepted; anything else in the payload is ignored.
func (h *SubmissionHandler) Update(c echo.Context) error {
	var req updateSubmissionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	input := ports.UpdateSubmissionInput{Notes: req.Notes}
	if req.Status != nil {
		status := domain.SubmissionStatus(*req.Status)
		input.Status = &status
	}

	sub, err := h.service.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSubmissionResponse(sub))
}

// Delete handles DELETE /api/admin/submissions/:id.
func (h *SubmissionHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "submission deleted"})
}

// Reply handles POST /api/admin/submissions/:id/reply. A failed send leaves
// the submission status untouched and surfaces an error.
//
// @Summary      Reply to a submission
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Submission id"
// @Param        body  body      replyRequest  true  "Reply message"
// @Success      200   {object}  submissionResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/admin/submissions/{id}/reply [post]
func (h *SubmissionHandler) Reply(c echo.Context) error {
	var req replyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sub, err := h.service.Reply(c.Request().Context(), c.Param("id"), req.Message)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSubmissionResponse(sub))
}

func toSubmissionResponse(s *domain.Submission) submissionResponse {
	return submissionResponse{
		ID:        s.ID,
		Reference: s.Reference,
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		Service:   s.Service,
		Subject:   s.Subject,
		Message:   s.Message,
		Status:    string(s.Status),
		Notes:     s.Notes,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
