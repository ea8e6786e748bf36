package handlers

import (
	"github.com/gofiber/fiber/v2"

	"mercadito/internal/domain"
	applog "mercadito/internal/log"
	"mercadito/internal/services"
	"mercadito/internal/validate"
)

type ProductHandler struct {
	Products *services.ProductService
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.Products.List(c.Context())
	if err != nil {
		return respondError(c, "products.list", err)
	}
	return c.JSON(out)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in services.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, "products.create", domain.Invalid("body", "must be a JSON object"))
	}
	p, err := h.Products.Create(c.Context(), in)
	if err != nil {
		return respondError(c, "products.create", err)
	}
	applog.Audit(c, "products.create", map[string]any{"id": p.ID})
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return respondError(c, "products.update", domain.Invalid("id", "must be a positive integer"))
	}
	var in services.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, "products.update", domain.Invalid("body", "must be a JSON object"))
	}
	p, err := h.Products.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, "products.update", err)
	}
	applog.Audit(c, "products.update", map[string]any{"id": p.ID})
	return c.JSON(p)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return respondError(c, "products.delete", domain.Invalid("id", "must be a positive integer"))
	}
	if err := h.Products.Delete(c.Context(), id); err != nil {
		return respondError(c, "products.delete", err)
	}
	applog.Audit(c, "products.delete", map[string]any{"id": id})
	return c.JSON(fiber.Map{"message": "product deleted"})
}
