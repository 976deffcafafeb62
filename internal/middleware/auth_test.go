package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bikeverse/api/internal/auth"
	"github.com/bikeverse/api/internal/models"
)

func testApp(t *testing.T) (*fiber.App, *auth.Issuer) {
	t.Helper()
	issuer := auth.NewIssuer("test-secret", time.Hour)
	guard := NewGuard(issuer)

	app := fiber.New()
	app.Get("/protected", guard.Protect, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"email": c.Locals(LocalEmail),
			"role":  c.Locals(LocalRole),
		})
	})
	app.Get("/admin-only", guard.Protect, guard.RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/self/:email", guard.Protect, guard.RequireSelfOrRole("email", models.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app, issuer
}

func body(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&m))
	return m
}

func TestProtectMissingHeader(t *testing.T) {
	app, _ := testApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Unauthorized access", body(t, resp)["message"])
}

func TestProtectInvalidToken(t *testing.T) {
	app, _ := testApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bogus.token.value")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Forbidden Access", body(t, resp)["message"])
}

func TestProtectAttachesClaims(t *testing.T) {
	app, issuer := testApp(t)

	token, err := issuer.Issue(map[string]interface{}{"email": "a@x.com", "role": "admin"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	got := body(t, resp)
	assert.Equal(t, "a@x.com", got["email"])
	assert.Equal(t, "admin", got["role"])
}

func TestRequireRole(t *testing.T) {
	app, issuer := testApp(t)

	userToken, err := issuer.Issue(map[string]interface{}{"email": "u@x.com"})
	require.NoError(t, err)
	adminToken, err := issuer.Issue(map[string]interface{}{"email": "a@x.com", "role": "admin"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireSelfOrRole(t *testing.T) {
	app, issuer := testApp(t)

	selfToken, err := issuer.Issue(map[string]interface{}{"email": "u@x.com"})
	require.NoError(t, err)
	adminToken, err := issuer.Issue(map[string]interface{}{"email": "a@x.com", "role": "admin"})
	require.NoError(t, err)

	cases := []struct {
		name   string
		path   string
		token  string
		status int
	}{
		{"own resource", "/self/u@x.com", selfToken, http.StatusOK},
		{"someone else's resource", "/self/other@x.com", selfToken, http.StatusForbidden},
		{"admin on any resource", "/self/other@x.com", adminToken, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			req.Header.Set("Authorization", "Bearer "+tc.token)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}
