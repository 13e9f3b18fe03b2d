package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bookmyfield/backend/pkg/constant"
	"github.com/bookmyfield/backend/pkg/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	jwt.Initialize("test-app", "test-secret-key", time.Hour, time.Hour*24)
}

func adminRoute(handlerRan *bool) *fiber.App {
	app := fiber.New()

	app.Get("/admin", Jwt(), CheckRole(constant.RoleAdmin), func(c *fiber.Ctx) error {
		*handlerRan = true

		return c.SendStatus(fiber.StatusOK)
	})

	return app
}

func bearerToken(t *testing.T, role constant.Role) string {
	t.Helper()

	token, err := jwt.GenerateAccessToken("user-id", "test@gmail.com", role)
	require.NoError(t, err)

	return "Bearer " + token
}

func TestCheckRole(t *testing.T) {
	t.Run("success: allowed role reaches the handler", func(t *testing.T) {
		handlerRan := false
		app := adminRoute(&handlerRan)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", bearerToken(t, constant.RoleAdmin))

		res, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.True(t, handlerRan)
	})

	t.Run("error: disallowed role is rejected before the handler runs", func(t *testing.T) {
		handlerRan := false
		app := adminRoute(&handlerRan)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", bearerToken(t, constant.RoleCustomer))

		res, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, res.StatusCode)
		assert.False(t, handlerRan)
	})

	t.Run("error: missing token is rejected before the handler runs", func(t *testing.T) {
		handlerRan := false
		app := adminRoute(&handlerRan)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)

		res, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
		assert.False(t, handlerRan)
	})

	t.Run("error: no principal without the jwt middleware", func(t *testing.T) {
		handlerRan := false
		app := fiber.New()

		app.Get("/admin", CheckRole(constant.RoleAdmin), func(c *fiber.Ctx) error {
			handlerRan = true

			return c.SendStatus(fiber.StatusOK)
		})

		res, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
		assert.False(t, handlerRan)
	})
}
