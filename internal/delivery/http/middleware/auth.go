package middleware

import (
	"strings"

	"github.com/bookmyfield/backend/internal/delivery/http/response"
	"github.com/bookmyfield/backend/pkg/constant"
	"github.com/bookmyfield/backend/pkg/failure"
	"github.com/bookmyfield/backend/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

// Principal is the authenticated identity stored in fiber locals after the
// Jwt middleware accepts a token.
type Principal struct {
	ID    string
	Email string
	Role  constant.Role
}

func Jwt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			err := failure.Unauthorized("missing authorization header")

			return response.WithError(c, err)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			err := failure.Unauthorized("invalid authorization header format")

			return response.WithError(c, err)
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			err := failure.Unauthorized("invalid token")

			return response.WithError(c, err)
		}

		role, err := constant.ParseRole(claims.Role)
		if err != nil {
			err := failure.Unauthorized("invalid token")

			return response.WithError(c, err)
		}

		c.Locals(constant.JwtFieldPrincipal, Principal{
			ID:    claims.ID,
			Email: claims.Email,
			Role:  role,
		})

		return c.Next()
	}
}

// PrincipalFrom reads the identity the Jwt middleware stored. The bool is
// false on routes that skipped the middleware.
func PrincipalFrom(c *fiber.Ctx) (Principal, bool) {
	p, ok := c.Locals(constant.JwtFieldPrincipal).(Principal)

	return p, ok
}
