package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/bikeverse/api/internal/auth"
	"github.com/bikeverse/api/internal/models"
)

// Locals keys set by Protect for downstream handlers.
const (
	LocalClaims = "claims"
	LocalEmail  = "email"
	LocalRole   = "role"
)

// Guard builds the route protection middleware around a token verifier.
type Guard struct {
	issuer *auth.Issuer
}

func NewGuard(issuer *auth.Issuer) *Guard {
	return &Guard{issuer: issuer}
}

// Protect rejects requests without a valid bearer token. The response
// bodies are the ones API clients already depend on.
func (g *Guard) Protect(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	if header == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized access"})
	}

	// Token is the text after the first space ("Bearer <token>"). A header
	// without one carries no token and fails verification.
	_, token, found := strings.Cut(header, " ")
	if !found {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Forbidden Access"})
	}

	claims, err := g.issuer.Verify(token)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Forbidden Access"})
	}

	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	c.Locals(LocalClaims, claims)
	c.Locals(LocalEmail, email)
	c.Locals(LocalRole, models.Role(role))

	return c.Next()
}

// RequireRole allows only tokens carrying the given role. Must run after
// Protect.
func (g *Guard) RequireRole(role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if r, _ := c.Locals(LocalRole).(models.Role); r != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Forbidden Access"})
		}
		return c.Next()
	}
}

// RequireSelfOrRole allows a token whose email equals the named path
// parameter, or one carrying the given role. Must run after Protect.
func (g *Guard) RequireSelfOrRole(param string, role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := c.Locals(LocalEmail).(string)
		r, _ := c.Locals(LocalRole).(models.Role)
		if email != "" && email == c.Params(param) {
			return c.Next()
		}
		if r == role {
			return c.Next()
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Forbidden Access"})
	}
}
