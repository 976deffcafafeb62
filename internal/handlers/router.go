package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/bikeverse/api/internal/middleware"
	"github.com/bikeverse/api/internal/models"
)

// NewApp builds the fiber app with the full route table. Route paths are
// the ones existing clients call; only guards were consolidated.
func NewApp(guard *middleware.Guard, parts *PartHandler, users *UserHandler, orders *OrderHandler, reviews *ReviewHandler) *fiber.App {
	app := fiber.New()

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	admin := guard.RequireRole(models.RoleAdmin)
	selfOrAdmin := guard.RequireSelfOrRole("email", models.RoleAdmin)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("bikeverse is running")
	})

	// Parts
	app.Get("/parts", parts.List)
	app.Get("/partscount", parts.Count)
	app.Get("/featured", parts.Featured)
	app.Get("/partsCollection", parts.ByCategory)
	app.Get("/part/:id", parts.Get)
	app.Put("/part/:id", parts.UpdateStock)
	app.Post("/parts", guard.Protect, admin, parts.Create)
	app.Delete("/part/:id", guard.Protect, admin, parts.Delete)
	app.Post("/part/:id/image", guard.Protect, admin, parts.UploadImage)
	app.Get("/part/:id/image", parts.ImageURL)

	// Reviews
	app.Get("/reviews", reviews.List)
	app.Post("/reviews", guard.Protect, reviews.Create)

	// Orders
	app.Get("/orders", guard.Protect, admin, orders.List)
	app.Post("/orders", guard.Protect, orders.Create)
	app.Get("/userOrders/:email", guard.Protect, selfOrAdmin, orders.ByOwner)
	app.Delete("/order/:id", guard.Protect, orders.Delete)

	// Users
	app.Put("/loginUser/:email", users.Login)
	app.Get("/user/:email", guard.Protect, selfOrAdmin, users.Get)
	app.Put("/user/:email", guard.Protect, selfOrAdmin, users.Update)
	app.Get("/admin/:email", guard.Protect, users.IsAdmin)
	app.Get("/users", guard.Protect, users.List)
	app.Put("/makeAdmin/:email", guard.Protect, admin, users.MakeAdmin)
	app.Delete("/removeUser/:email", guard.Protect, admin, users.Remove)

	return app
}
