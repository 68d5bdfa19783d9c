package handler

import (
	"strconv"

	"go-inventory-catalog/internal/model"
	"go-inventory-catalog/internal/repository"
	"go-inventory-catalog/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// parseID reads the :id route param as a positive integer. Anything else
// cannot name a stored product and is answered like a missing one.
func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func filterFromQuery(c *fiber.Ctx) model.ProductFilter {
	return model.ProductFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}
}

// GetProducts lists products sorted by name.
// Query params: search (name or sku substring), category ("All" or empty for every category)
func (h *InventoryHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts(c.UserContext(), filterFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

func (h *InventoryHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetCategories(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categories)
}

func (h *InventoryHandler) GetProduct(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, repository.ErrNotFound)
	}

	product, err := h.service.GetProduct(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

func (h *InventoryHandler) CreateProduct(c *fiber.Ctx) error {
	var in model.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.service.CreateProduct(c.UserContext(), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

func (h *InventoryHandler) UpdateProduct(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, repository.ErrNotFound)
	}

	var in model.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.service.UpdateProduct(c.UserContext(), id, &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// UpdateQuantity sets the stock level only. Body: {"quantity": n} with n >= 0.
func (h *InventoryHandler) UpdateQuantity(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, repository.ErrNotFound)
	}

	var in model.QuantityInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid quantity"})
	}

	product, err := h.service.UpdateQuantity(c.UserContext(), id, &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

func (h *InventoryHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, repository.ErrNotFound)
	}

	if err := h.service.DeleteProduct(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
