package handler

import (
	"vocab-master/internal/dto"
	"vocab-master/internal/service"
	"vocab-master/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// SettingsHandler handles settings HTTP requests
type SettingsHandler struct {
	service   service.SettingsService
	validator *validation.Validator
}

func NewSettingsHandler(service service.SettingsService, validator *validation.Validator) *SettingsHandler {
	return &SettingsHandler{service: service, validator: validator}
}

// GetSettings godoc
// @Summary Read settings
// @Description The API key is masked
// @Tags settings
// @Produce json
// @Success 200 {object} dto.SettingsResponse
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.service.Get(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSettingsResponse(settings))
}

// UpdateSettings godoc
// @Summary Update settings
// @Tags settings
// @Accept json
// @Produce json
// @Param request body dto.UpdateSettingsRequest true "Settings"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /settings [post]
func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var req dto.UpdateSettingsRequest
	if err := bindJSON(c, h.validator, &req); err != nil {
		return err
	}
	if err := h.service.Update(c.UserContext(), req.ToDomain()); err != nil {
		return err
	}
	return c.JSON(dto.Success())
}
