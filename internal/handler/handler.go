package handler

import (
	"vocab-master/internal/domain"
	"vocab-master/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// bindJSON parses the request body into req and validates its struct tags.
func bindJSON(c *fiber.Ctx, v *validation.Validator, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return domain.NewValidationError("Invalid request body").WithContext("body", err.Error())
	}
	return v.ValidateStruct(req)
}
