package payment

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
	app.Post("/api/v1/payment", h.settle)
	app.Get("/api/v1/payment/history", h.history)
	app.Get("/api/v1/payment/revenue", h.revenue)
}

type settleRequest struct {
	InvoiceID string `json:"invoiceId"`
	TableID   string `json:"tableId,omitempty"`
}

func (h *Handler) settle(c *fiber.Ctx) error {
	payload := new(settleRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.InvoiceID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invoiceId is required"})
	}

	rec, err := h.service.Settle(c.Context(), payload.InvoiceID, payload.TableID)
	if err != nil {
		if errors.Is(err, ErrInvoiceNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "invoice not found"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

func (h *Handler) history(c *fiber.Ctx) error {
	records, err := h.service.History(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(records)
}

func (h *Handler) revenue(c *fiber.Ctx) error {
	sum, err := h.service.Revenue(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(sum)
}
