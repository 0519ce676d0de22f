package handlers

import (
	"errors"
	"log"

	"shareit/internal/services"
	"shareit/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler translates service and validation errors into HTTP responses
// with a uniform {"error": message} body.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := StatusFor(err)
	if status >= fiber.StatusInternalServerError {
		log.Printf("Error handling %s %s: %v", c.Method(), c.OriginalURL(), err)
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// StatusFor maps an error onto its HTTP status code.
func StatusFor(err error) int {
	var (
		notFoundErr   *services.NotFoundError
		badRequestErr *services.BadRequestError
		conflictErr   *services.ConflictError
		validationErr *validation.Error
		fiberErr      *fiber.Error
	)
	switch {
	case errors.As(err, &notFoundErr):
		return fiber.StatusNotFound
	case errors.As(err, &badRequestErr), errors.As(err, &validationErr):
		return fiber.StatusBadRequest
	case errors.As(err, &conflictErr):
		return fiber.StatusConflict
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	default:
		return fiber.StatusInternalServerError
	}
}
