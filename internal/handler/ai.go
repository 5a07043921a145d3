package handler

import (
	"vocab-master/internal/dto"
	"vocab-master/internal/service"
	"vocab-master/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AIHandler handles the AI assisted endpoints
type AIHandler struct {
	service   service.AIService
	validator *validation.Validator
}

func NewAIHandler(service service.AIService, validator *validation.Validator) *AIHandler {
	return &AIHandler{service: service, validator: validator}
}

// GenerateWords godoc
// @Summary Generate definitions for terms and store them
// @Tags ai
// @Accept json
// @Produce json
// @Param request body dto.GenerateWordsRequest true "Terms"
// @Success 200 {object} dto.GenerateWordsResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /ai/generate [post]
func (h *AIHandler) GenerateWords(c *fiber.Ctx) error {
	var req dto.GenerateWordsRequest
	if err := bindJSON(c, h.validator, &req); err != nil {
		return err
	}
	result, err := h.service.GenerateBulk(c.UserContext(), req.SetID, req.Words)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewGenerateWordsResponse(result))
}

// AnalyzeMistakes godoc
// @Summary Explain quiz mistakes
// @Tags ai
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeMistakesRequest true "Mistakes"
// @Success 200 {object} dto.AnalyzeMistakesResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /ai/analyze [post]
func (h *AIHandler) AnalyzeMistakes(c *fiber.Ctx) error {
	var req dto.AnalyzeMistakesRequest
	if err := bindJSON(c, h.validator, &req); err != nil {
		return err
	}
	analysis, err := h.service.AnalyzeMistakes(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}
	return c.JSON(dto.AnalyzeMistakesResponse{Status: "success", Analysis: analysis})
}
