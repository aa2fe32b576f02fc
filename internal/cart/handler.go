package cart

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/seafood-house/pos-backend/internal/menu"
)

// Handler exposes the per-table ordering session: the menu view built from
// the session's catalog snapshot, and the cart itself.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/v1/session/:table/menu", h.sessionMenu)
	app.Post("/api/v1/session/:table/refresh", h.refreshCatalog)
	app.Get("/api/v1/session/:table/cart", h.getCart)
	app.Post("/api/v1/session/:table/cart", h.updateCart)
	app.Delete("/api/v1/session/:table/cart", h.clearCart)
}

type cartRequest struct {
	ItemID   string `json:"itemId"`
	Quantity *int   `json:"quantity,omitempty"`
}

type cartResponse struct {
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`
}

// sessionMenu serves the ordering screen list from the session snapshot,
// running the search/filter pipeline and the search-linked suggestions.
func (h *Handler) sessionMenu(c *fiber.Ctx) error {
	table := c.Params("table")
	h.service.Open(c.Context(), table)

	query := c.Query("q")
	category := c.Query("category", menu.CategoryAll)
	if category != menu.CategoryAll && !menu.KnownCategory(category) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unknown category"})
	}

	_, catalog := h.service.Snapshot(table)
	results := menu.Filter(catalog, query, category)
	var suggestions []menu.Item
	if category == menu.CategoryAll {
		suggestions = menu.SearchSuggestions(catalog, results, query)
	}
	return c.JSON(fiber.Map{"items": results, "suggestions": suggestions})
}

func (h *Handler) refreshCatalog(c *fiber.Ctx) error {
	h.service.RefreshCatalog(c.Context(), c.Params("table"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	table := c.Params("table")
	return c.JSON(cartResponse{
		Entries: h.service.Entries(table),
		Total:   h.service.Total(table),
	})
}

// updateCart applies a signed quantity change: positive adds units of the
// item, negative removes. An omitted quantity defaults to 1; an explicit
// zero is a no-op.
func (h *Handler) updateCart(c *fiber.Ctx) error {
	payload := new(cartRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ItemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "itemId is required"})
	}
	qty := 1
	if payload.Quantity != nil {
		qty = *payload.Quantity
	}

	entries, total, err := h.service.AddItem(c.Params("table"), payload.ItemID, qty)
	if err != nil {
		if errors.Is(err, ErrUnknownItem) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "item not in catalog"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(cartResponse{Entries: entries, Total: total})
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	h.service.Clear(c.Params("table"))
	return c.SendStatus(fiber.StatusNoContent)
}
