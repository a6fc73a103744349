package handlers

import (
	"errors"
	"fmt"

	"comercial/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// statusForError maps domain error kinds to HTTP status codes.
func statusForError(err error) int {
	var notFound *models.NotFoundError
	var validation *models.ValidationError
	var stock *models.InsufficientStockError
	var constraint *models.ConstraintError
	switch {
	case errors.As(err, &notFound):
		return fiber.StatusNotFound
	case errors.As(err, &validation), errors.As(err, &stock):
		return fiber.StatusBadRequest
	case errors.As(err, &constraint):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// errorJSON writes the standard error response body.
func errorJSON(c *fiber.Ctx, err error) error {
	return c.Status(statusForError(err)).JSON(fiber.Map{
		"erro": err.Error(),
	})
}

// validationJSON writes a 400 with one message per failing field.
func validationJSON(c *fiber.Ctx, err error) error {
	fields := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			fields[e.Field()] = fmt.Sprintf("campo '%s' falhou na regra '%s'", e.Field(), e.Tag())
		}
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"erro":   "dados inválidos",
		"campos": fields,
	})
}

// parseID reads the :id route parameter as a positive integer.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, &models.ValidationError{Message: "id inválido"}
	}
	return uint(id), nil
}
