package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bikeverse/api/internal/services"
)

type OrderHandler struct {
	orders *services.OrderService
}

func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.orders.List(c.Context())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(orders)
}

func (h *OrderHandler) ByOwner(c *fiber.Ctx) error {
	orders, err := h.orders.ByOwner(c.Context(), c.Params("email"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(orders)
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var doc bson.M
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	id, err := h.orders.Create(c.Context(), doc)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"insertedId": id})
}

func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.orders.Delete(c.Context(), c.Params("id")); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"message": "Order deleted successfully"})
}
