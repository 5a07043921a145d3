package middleware

import (
	"fmt"
	"strconv"

	"vocab-master/internal/domain"

	"github.com/gofiber/fiber/v2"
)

const scopeKey = "validated_scope"

// ScopeFromQuery parses the set_id query parameter into a domain.Scope for the handler.
func ScopeFromQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		scope, err := domain.ParseScope(c.Query("set_id"))
		if err != nil {
			return err
		}
		c.Locals(scopeKey, scope)
		return c.Next()
	}
}

// Scope returns the scope stored by ScopeFromQuery. It defaults to every word.
func Scope(c *fiber.Ctx) domain.Scope {
	if scope, ok := c.Locals(scopeKey).(domain.Scope); ok {
		return scope
	}
	return domain.AllScope()
}

// IDParam parses a positive integer route parameter.
func IDParam(c *fiber.Ctx, name string) (int64, error) {
	raw := c.Params(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(fmt.Sprintf("invalid %s: %q", name, raw))
	}
	return id, nil
}
