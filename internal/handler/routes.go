package handler

import (
	"vocab-master/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups every HTTP handler the API serves.
type Handlers struct {
	Quiz     *QuizHandler
	Word     *WordHandler
	Settings *SettingsHandler
	AI       *AIHandler
	Health   *HealthHandler
}

// RegisterRoutes mounts the API on app.
func RegisterRoutes(app *fiber.App, h Handlers) {
	if h.Health != nil {
		app.Get("/health", h.Health.Health)
	}

	api := app.Group("/api")

	api.Get("/quiz", middleware.ScopeFromQuery(), h.Quiz.GetQuiz)
	api.Post("/mistakes", h.Quiz.RecordMistake)
	api.Get("/mistakes", h.Quiz.ListMistakes)
	api.Delete("/mistakes/:word_id", h.Quiz.ClearMistake)

	api.Get("/sets", h.Word.ListSets)
	api.Post("/sets", h.Word.CreateSet)
	api.Delete("/sets/:id", h.Word.DeleteSet)

	api.Get("/words", middleware.ScopeFromQuery(), h.Word.ListWords)
	api.Post("/words", h.Word.AddWord)
	api.Post("/words/bulk", h.Word.AddWordsBulk)

	api.Get("/settings", h.Settings.GetSettings)
	api.Post("/settings", h.Settings.UpdateSettings)

	ai := api.Group("/ai")
	ai.Post("/generate", h.AI.GenerateWords)
	ai.Post("/analyze", h.AI.AnalyzeMistakes)
}
