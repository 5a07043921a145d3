package handler

import (
	"vocab-master/internal/dto"
	"vocab-master/internal/middleware"
	"vocab-master/internal/service"
	"vocab-master/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// WordHandler handles word set and word HTTP requests
type WordHandler struct {
	service   service.WordService
	validator *validation.Validator
}

// NewWordHandler creates a new WordHandler instance
func NewWordHandler(service service.WordService, validator *validation.Validator) *WordHandler {
	return &WordHandler{service: service, validator: validator}
}

// ListSets godoc
// @Summary List word sets
// @Tags sets
// @Produce json
// @Success 200 {array} dto.WordSetResponse
// @Router /sets [get]
func (h *WordHandler) ListSets(c *fiber.Ctx) error {
	sets, err := h.service.ListSets(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewWordSetResponses(sets))
}

// CreateSet godoc
// @Summary Create a word set
// @Tags sets
// @Accept json
// @Produce json
// @Param request body dto.CreateSetRequest true "Set name"
// @Success 201 {object} dto.WordSetResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /sets [post]
func (h *WordHandler) CreateSet(c *fiber.Ctx) error {
	var req dto.CreateSetRequest
	if err := bindJSON(c, h.validator, &req); err != nil {
		return err
	}
	set, err := h.service.CreateSet(c.UserContext(), req.Name)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.WordSetResponse{ID: set.ID, Name: set.Name})
}

// DeleteSet godoc
// @Summary Delete a word set with its words and mistakes
// @Tags sets
// @Produce json
// @Param id path int true "Set id"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sets/{id} [delete]
func (h *WordHandler) DeleteSet(c *fiber.Ctx) error {
	id, err := middleware.IDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteSet(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.Success())
}

// ListWords godoc
// @Summary List words
// @Tags words
// @Produce json
// @Param set_id query string false "Set id, 'all' or 'mistakes'"
// @Success 200 {array} dto.WordResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /words [get]
func (h *WordHandler) ListWords(c *fiber.Ctx) error {
	words, err := h.service.ListWords(c.UserContext(), middleware.Scope(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewWordResponses(words))
}

// AddWord godoc
// @Summary Add a word
// @Tags words
// @Accept json
// @Produce json
// @Param request body dto.AddWordRequest true "Word"
// @Success 201 {object} dto.WordResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /words [post]
func (h *WordHandler) AddWord(c *fiber.Ctx) error {
	var req dto.AddWordRequest
	if err := bindJSON(c, h.validator, &req); err != nil {
		return err
	}
	word := req.ToDomain()
	if err := h.service.AddWord(c.UserContext(), word); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.WordResponse{
		ID:         word.ID,
		Term:       word.Term,
		Definition: word.Definition,
		Example:    word.Example,
		SetID:      word.SetID,
	})
}

// AddWordsBulk godoc
// @Summary Add many words at once
// @Description Entries without term or definition are skipped
// @Tags words
// @Accept json
// @Produce json
// @Param request body dto.BulkAddWordsRequest true "Words"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /words/bulk [post]
func (h *WordHandler) AddWordsBulk(c *fiber.Ctx) error {
	var req dto.BulkAddWordsRequest
	if err := bindJSON(c, h.validator, &req); err != nil {
		return err
	}
	count, err := h.service.AddWordsBulk(c.UserContext(), req.SetID, req.ToDomain())
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessWithCount(count))
}
