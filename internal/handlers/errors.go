package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/bikeverse/api/internal/services"
	"github.com/bikeverse/api/internal/store"
)

// respondErr is the single error boundary for store and service failures.
// Known conditions map to structured responses; anything else is logged and
// sanitized to a generic 500 so store internals never leak to clients.
func respondErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid identifier"})
	case errors.Is(err, store.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	case errors.Is(err, store.ErrCascadeIncomplete):
		log.Printf("cascade delete failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "user removed but order cleanup failed"})
	default:
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
