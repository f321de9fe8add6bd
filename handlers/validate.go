// handlers/validate.go - request validation with aggregated field errors
package handlers

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// validateRequest checks struct tags and, on failure, writes one 400
// response carrying every offending field rather than only the first.
func validateRequest(c *fiber.Ctx, req any) (bool, error) {
	err := validate.Struct(req)
	if err == nil {
		return true, nil
	}

	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	fields := make(map[string]string, len(vErrs))
	for _, fe := range vErrs {
		fields[strings.ToLower(fe.Field())] = fieldMessage(fe)
	}

	return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   "Validation failed",
		"fields":  fields,
	})
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
