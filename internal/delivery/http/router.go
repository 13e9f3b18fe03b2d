package http

import (
	"github.com/bookmyfield/backend/config"
	_ "github.com/bookmyfield/backend/docs" // Swagger docs
	authHandler "github.com/bookmyfield/backend/internal/domains/auth/handler"
	bookingHandler "github.com/bookmyfield/backend/internal/domains/bookings/handler"
	contactHandler "github.com/bookmyfield/backend/internal/domains/contact/handler"
	fieldHandler "github.com/bookmyfield/backend/internal/domains/fields/handler"
	userHandler "github.com/bookmyfield/backend/internal/domains/user/handler"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"github.com/bookmyfield/backend/internal/delivery/http/middleware"
	"github.com/bookmyfield/backend/pkg/logger"
)

type Handlers struct {
	Auth    *authHandler.Handler
	User    *userHandler.Handler
	Field   *fieldHandler.Handler
	Booking *bookingHandler.Handler
	Contact *contactHandler.Handler
}

// NewRouter initializes the HTTP router and registers the routes for the application.
// Swagger spec:
// @title BookMyField API
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func NewRouter(
	app *fiber.App,
	cfg *config.Config,
	l logger.Interface,
	handlers Handlers,
) {
	// Options
	app.Use(middleware.Logger(l))
	app.Use(middleware.Recovery(l))
	app.Use(middleware.RequestID())
	app.Use(middleware.CORS(cfg))

	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	apiV1Group := app.Group("/v1")
	{
		handlers.Auth.RegisterRoutes(apiV1Group)
		handlers.User.RegisterRoutes(apiV1Group)
		handlers.Field.RegisterRoutes(apiV1Group)
		handlers.Booking.RegisterRoutes(apiV1Group)
		handlers.Contact.RegisterRoutes(apiV1Group)
	}

	app.Use("*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "route not found",
		})
	})
}
