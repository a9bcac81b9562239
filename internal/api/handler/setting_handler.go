package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pixelworks/agency-api/internal/core/domain"
	"github.com/pixelworks/agency-api/internal/core/ports"
)

// SettingHandler handles admin-only site configuration.
type SettingHandler struct {
	service ports.SettingService
}

func NewSettingHandler(service ports.SettingService) *SettingHandler {
	return &SettingHandler{service: service}
}

type putSettingRequest struct {
	Category string `json:"category" validate:"required,oneof=general seo contact social appearance"`
	Key      string `json:"key"      validate:"required"`
	Value    string `json:"value"`
}

type settingResponse struct {
	Category  string    `json:"category"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

type listSettingsResponse struct {
	Data       []settingResponse  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// Put handles PUT /api/admin/settings: create or overwrite a (category, key)
// value in place.
//
// @Summary      Write a setting
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      putSettingRequest  true  "Setting"
// @Success      200   {object}  settingResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/admin/settings [put]
func (h *SettingHandler) Put(c echo.Context) error {
	var req putSettingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	setting, err := h.service.Put(c.Request().Context(), ports.PutSettingInput{
		Category: domain.SettingCategory(req.Category),
		Key:      req.Key,
		Value:    req.Value,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSettingResponse(setting))
}

// List handles GET /api/admin/settings with an optional category filter.
func (h *SettingHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), ports.SettingFilter{
		Category: domain.SettingCategory(c.QueryParam("category")),
		Page:     queryInt(c, "page", 0),
		Limit:    queryInt(c, "limit", 0),
	})
	if err != nil {
		return err
	}

	items := make([]settingResponse, 0, len(page.Items))
	for _, s := range page.Items {
		items = append(items, toSettingResponse(s))
	}

	return c.JSON(http.StatusOK, listSettingsResponse{
		Data:       items,
		Pagination: toPagination(page.Total, page.Page, page.Limit, page.TotalPages),
	})
}

// Get handles GET /api/admin/settings/:category/:key.
func (h *SettingHandler) Get(c echo.Context) error {
	setting, err := h.service.Get(c.Request().Context(),
		domain.SettingCategory(c.Param("category")), c.Param("key"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSettingResponse(setting))
}

// Delete handles DELETE /api/admin/settings/:category/:key.
func (h *SettingHandler) Delete(c echo.Context) error {
	err := h.service.Delete(c.Request().Context(),
		domain.SettingCategory(c.Param("category")), c.Param("key"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "setting deleted"})
}

func toSettingResponse(s *domain.Setting) settingResponse {
	return settingResponse{
		Category:  string(s.Category),
		Key:       s.Key,
		Value:     s.Value,
		UpdatedAt: s.UpdatedAt,
	}
}
