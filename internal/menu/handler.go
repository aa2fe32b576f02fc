package menu

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/v1/menu", h.listMenu)
	app.Get("/api/v1/menu/:id", h.getItem)
	app.Post("/api/v1/menu", h.createItem)
	app.Put("/api/v1/menu/:id", h.updateItem)
	app.Delete("/api/v1/menu/:id", h.hideItem)
}

// listMenu serves the ordering view: ?q= runs the folded-substring search,
// ?category= restricts to one tab. Suggestions ride along when searching
// across all categories.
func (h *Handler) listMenu(c *fiber.Ctx) error {
	query := c.Query("q")
	category := c.Query("category", CategoryAll)
	if category != CategoryAll && !KnownCategory(category) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unknown category"})
	}

	results, suggestions, err := h.service.Search(c.Context(), query, category)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"items": results, "suggestions": suggestions})
}

func (h *Handler) getItem(c *fiber.Ctx) error {
	it, err := h.service.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "menu item not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(it)
}

func validateItemPayload(it *Item) map[string]string {
	errs := map[string]string{}
	if it.Name == "" {
		errs["name"] = "name is required"
	}
	if it.Price < 0 {
		errs["price"] = "price must be >= 0"
	}
	if !KnownCategory(it.CategoryID) {
		errs["categoryId"] = "invalid category"
	}
	return errs
}

func (h *Handler) createItem(c *fiber.Ctx) error {
	it := new(Item)
	if err := c.BodyParser(it); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := validateItemPayload(it); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	created, err := h.service.Create(c.Context(), *it)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateItem(c *fiber.Ctx) error {
	it := new(Item)
	if err := c.BodyParser(it); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := validateItemPayload(it); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	updated, err := h.service.Update(c.Context(), c.Params("id"), *it)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "menu item not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(updated)
}

func (h *Handler) hideItem(c *fiber.Ctx) error {
	if err := h.service.Hide(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "menu item not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
