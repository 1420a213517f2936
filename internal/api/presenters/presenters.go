package presenters

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// ErrorResponse writes the uniform error body: a single "error" string, plus a
// machine-checkable "details" list when the cause is a validation failure.
// Internal detail is logged server-side and never returned to the caller.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	body := fiber.Map{"error": message}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]fiber.Map, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, fiber.Map{
				"field": fe.Field(),
				"rule":  fe.Tag(),
			})
		}
		body["details"] = details
	}

	if status >= fiber.StatusInternalServerError && err != nil {
		log.Errorf("%s %s: %s: %v", c.Method(), c.Path(), message, err)
	}

	return c.Status(status).JSON(body)
}

// SuccessResponse writes the payload verbatim with the given status.
func SuccessResponse(c *fiber.Ctx, data interface{}, status int) error {
	if data == nil {
		return c.SendStatus(status)
	}
	return c.Status(status).JSON(data)
}
