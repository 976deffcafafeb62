package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bikeverse/api/internal/auth"
	"github.com/bikeverse/api/internal/services"
)

type UserHandler struct {
	users  *services.UserService
	issuer *auth.Issuer
}

func NewUserHandler(users *services.UserService, issuer *auth.Issuer) *UserHandler {
	return &UserHandler{users: users, issuer: issuer}
}

// Login upserts the user document for the path email and issues a token
// whose claims are the submitted fields. Registration and login are the
// same operation.
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var body bson.M
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	result, err := h.users.Upsert(c.Context(), c.Params("email"), body)
	if err != nil {
		return respondErr(c, err)
	}

	token, err := h.issuer.Issue(body)
	if err != nil {
		return respondErr(c, err)
	}

	return c.JSON(fiber.Map{"result": result, "token": token})
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	user, err := h.users.Get(c.Context(), c.Params("email"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	var body bson.M
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	result, err := h.users.Update(c.Context(), c.Params("email"), body)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(result)
}

// IsAdmin responds with a bare JSON boolean, false included for emails that
// have no user document at all.
func (h *UserHandler) IsAdmin(c *fiber.Ctx) error {
	isAdmin, err := h.users.IsAdmin(c.Context(), c.Params("email"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(isAdmin)
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.Context())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(users)
}

func (h *UserHandler) MakeAdmin(c *fiber.Ctx) error {
	result, err := h.users.MakeAdmin(c.Context(), c.Params("email"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(result)
}

func (h *UserHandler) Remove(c *fiber.Ctx) error {
	if err := h.users.Remove(c.Context(), c.Params("email")); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"message": "User removed successfully"})
}
