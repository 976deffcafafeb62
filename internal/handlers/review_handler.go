package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bikeverse/api/internal/services"
)

type ReviewHandler struct {
	reviews *services.ReviewService
}

func NewReviewHandler(reviews *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

func (h *ReviewHandler) List(c *fiber.Ctx) error {
	reviews, err := h.reviews.List(c.Context())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(reviews)
}

func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var doc bson.M
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	id, err := h.reviews.Create(c.Context(), doc)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"insertedId": id})
}
