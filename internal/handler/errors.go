package handler

import (
	"errors"
	"log"

	"go-inventory-catalog/internal/repository"
	"go-inventory-catalog/internal/service"

	"github.com/gofiber/fiber/v2"
)

// respondError maps store and service errors onto status codes and the {error} body.
func respondError(c *fiber.Ctx, err error) error {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": verr.Message, "fields": verr.Fields})
	case errors.Is(err, repository.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid quantity"})
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	case errors.Is(err, repository.ErrDuplicateSKU):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "SKU already exists"})
	default:
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
}
