package recommend

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/seafood-house/pos-backend/internal/cart"
	"github.com/seafood-house/pos-backend/internal/menu"
)

// SessionSource provides the cart and catalog snapshot of an ordering
// session. *cart.Service satisfies it.
type SessionSource interface {
	Snapshot(table string) ([]cart.Entry, []menu.Item)
}

// RealClock reads the local wall clock; tests inject fixed hours instead.
type RealClock struct{}

func (RealClock) Hour() int { return time.Now().Hour() }

type Handler struct {
	sessions SessionSource
	clock    Clock
}

func NewHandler(sessions SessionSource, clock Clock) *Handler {
	return &Handler{sessions: sessions, clock: clock}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/v1/session/:table/recommendations", h.getRecommendations)
}

func (h *Handler) getRecommendations(c *fiber.Ctx) error {
	entries, catalog := h.sessions.Snapshot(c.Params("table"))
	visible := menu.Filter(catalog, "", menu.CategoryAll)
	items := Recommend(entries, visible, h.clock.Hour(), DefaultTopN)
	if items == nil {
		items = []menu.Item{}
	}
	return c.JSON(items)
}
