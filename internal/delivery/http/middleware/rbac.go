package middleware

import (
	"github.com/bookmyfield/backend/internal/delivery/http/response"
	"github.com/bookmyfield/backend/pkg/constant"
	"github.com/bookmyfield/backend/pkg/failure"
	"github.com/gofiber/fiber/v2"
)

func CheckRole(allowedRoles ...constant.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := PrincipalFrom(c)
		if !ok {
			err := failure.Unauthorized("role information not found")

			return response.WithError(c, err)
		}

		for _, allowedRole := range allowedRoles {
			if p.Role == allowedRole {
				return c.Next()
			}
		}

		err := failure.Forbidden("insufficient permissions")

		return response.WithError(c, err)
	}
}
