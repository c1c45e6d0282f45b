package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/gilanggnw/Cosmetics-Recommendation/internal/catalog"
)

type CatalogHandler struct {
	store *catalog.Store
}

func NewCatalogHandler(store *catalog.Store) *CatalogHandler {
	return &CatalogHandler{store: store}
}

func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	if h.store == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Data not available"})
	}

	return c.Status(fiber.StatusOK).JSON(h.store.All())
}

func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	// a missing dataset reads the same as a missing product
	if h.store == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	product, ok := h.store.Get(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}

	return c.Status(fiber.StatusOK).JSON(product)
}
