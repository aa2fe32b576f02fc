package order

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/v1/session/:table/checkout", h.checkout)
}

func (h *Handler) checkout(c *fiber.Ctx) error {
	tc := new(TableContext)
	if err := c.BodyParser(tc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if tc.TableID == "" {
		tc.TableID = c.Params("table")
	}

	invoiceID, err := h.service.Checkout(c.Context(), c.Params("table"), *tc)
	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cart is empty"})
		}
		// submission failures must reach the caller: the cart is intact
		// and the staff can retry
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"invoiceId": invoiceID})
}
