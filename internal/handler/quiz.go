package handler

import (
	"vocab-master/internal/dto"
	"vocab-master/internal/middleware"
	"vocab-master/internal/service"
	"vocab-master/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz and mistake HTTP requests
type QuizHandler struct {
	quizService    service.QuizService
	mistakeService service.MistakeService
	validator      *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(quizService service.QuizService, mistakeService service.MistakeService, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{
		quizService:    quizService,
		mistakeService: mistakeService,
		validator:      validator,
	}
}

// GetQuiz godoc
// @Summary Generate a quiz question
// @Description Picks a word from the scope and three distractors from all words
// @Tags quiz
// @Produce json
// @Param set_id query string false "Set id, 'all' or 'mistakes'"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	question, err := h.quizService.GenerateQuiz(c.UserContext(), middleware.Scope(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewQuizResponse(question))
}

// RecordMistake godoc
// @Summary Record a wrong answer
// @Description Creates the mistake counter for a word or increments it
// @Tags mistakes
// @Accept json
// @Produce json
// @Param request body dto.RecordMistakeRequest true "Word id"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /mistakes [post]
func (h *QuizHandler) RecordMistake(c *fiber.Ctx) error {
	var req dto.RecordMistakeRequest
	if err := bindJSON(c, h.validator, &req); err != nil {
		return err
	}
	if err := h.mistakeService.RecordMistake(c.UserContext(), *req.WordID); err != nil {
		return err
	}
	return c.JSON(dto.Success())
}

// ListMistakes godoc
// @Summary List the mistakes review pool
// @Tags mistakes
// @Produce json
// @Success 200 {array} dto.MistakeResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /mistakes [get]
func (h *QuizHandler) ListMistakes(c *fiber.Ctx) error {
	entries, err := h.mistakeService.ListMistakes(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewMistakeResponses(entries))
}

// ClearMistake godoc
// @Summary Remove a word from the mistakes pool
// @Tags mistakes
// @Produce json
// @Param word_id path int true "Word id"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /mistakes/{word_id} [delete]
func (h *QuizHandler) ClearMistake(c *fiber.Ctx) error {
	wordID, err := middleware.IDParam(c, "word_id")
	if err != nil {
		return err
	}
	if err := h.mistakeService.ClearMistake(c.UserContext(), wordID); err != nil {
		return err
	}
	return c.JSON(dto.Success())
}
