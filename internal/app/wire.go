//go:build wireinject
// +build wireinject

package app

import (
	"fmt"

	"github.com/bookmyfield/backend/config"
	"github.com/bookmyfield/backend/internal/delivery/http"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/wire"

	authHandler "github.com/bookmyfield/backend/internal/domains/auth/handler"
	authService "github.com/bookmyfield/backend/internal/domains/auth/service"

	userHandler "github.com/bookmyfield/backend/internal/domains/user/handler"
	userRepository "github.com/bookmyfield/backend/internal/domains/user/repository"
	userService "github.com/bookmyfield/backend/internal/domains/user/service"

	fieldHandler "github.com/bookmyfield/backend/internal/domains/fields/handler"
	fieldRepository "github.com/bookmyfield/backend/internal/domains/fields/repository"
	fieldService "github.com/bookmyfield/backend/internal/domains/fields/service"

	bookingHandler "github.com/bookmyfield/backend/internal/domains/bookings/handler"
	bookingRepository "github.com/bookmyfield/backend/internal/domains/bookings/repository"
	bookingService "github.com/bookmyfield/backend/internal/domains/bookings/service"

	contactHandler "github.com/bookmyfield/backend/internal/domains/contact/handler"
	contactRepository "github.com/bookmyfield/backend/internal/domains/contact/repository"
	contactService "github.com/bookmyfield/backend/internal/domains/contact/service"

	"github.com/bookmyfield/backend/pkg/httpserver"
	"github.com/bookmyfield/backend/pkg/jwt"
	"github.com/bookmyfield/backend/pkg/logger"
	"github.com/bookmyfield/backend/pkg/mail"
	"github.com/bookmyfield/backend/pkg/postgres"
	"github.com/bookmyfield/backend/pkg/redis"
	"github.com/bookmyfield/backend/pkg/storage"
)

// Application represents the dependency-injected app
type Application struct {
	HTTPServer *httpserver.Server
	Logger     logger.Interface
	PG         *postgres.Postgres
	Redis      *redis.Redis
	JWT        *jwt.JWT
}

func provideUserQuerier() userRepository.Querier {
	return userRepository.New()
}

var userDomain = wire.NewSet(
	provideUserQuerier,
	userService.New,
	userHandler.New,
)

var authDomain = wire.NewSet(
	authService.New,
	authHandler.New,
)

var fieldDomain = wire.NewSet(
	fieldRepository.New,
	fieldService.New,
	fieldHandler.New,
	wire.Bind(new(fieldRepository.Querier), new(*fieldRepository.Queries)),
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	bookingHandler.New,
	wire.Bind(new(bookingRepository.Querier), new(*bookingRepository.Queries)),
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
	contactHandler.New,
	wire.Bind(new(contactRepository.Querier), new(*contactRepository.Queries)),
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	fieldDomain,
	bookingDomain,
	contactDomain,
)

func InitializeApp(cfg *config.Config) (*Application, error) {
	wire.Build(
		// Infrastructure providers
		provideLogger,
		providePostgres,
		providePgxIface,
		provideValidator,
		provideRedis,
		provideRedisCache,
		provideJWT,
		provideStorage,
		provideMail,

		domains,

		wire.Struct(new(http.Handlers), "*"),

		// HTTP server
		provideRouter,
		provideHTTPServer,

		// Application
		wire.Struct(new(Application), "*"),
	)

	return &Application{}, nil
}

func provideRouter(
	cfg *config.Config,
	l logger.Interface,
	h http.Handlers,
) *fiber.App {
	app := fiber.New()

	http.NewRouter(
		app,
		cfg,
		l,
		h,
	)

	return app
}

func provideLogger(cfg *config.Config) logger.Interface {
	return logger.New(cfg.Log.Level)
}

func provideJWT(cfg *config.Config) *jwt.JWT {
	jwt.Initialize(cfg.App.Name, cfg.JWT.Secret, jwt.ParseDuration(cfg.JWT.AccessTokenExpiry), jwt.ParseDuration(cfg.JWT.RefreshTokenExpiry))
	return jwt.GetInstance()
}

func providePostgres(cfg *config.Config, l logger.Interface) (*postgres.Postgres, error) {
	dsn := postgres.ConnectionBuilder(cfg.Pg.Host, cfg.Pg.Port, cfg.Pg.User, cfg.Pg.Password, cfg.Pg.Dbname, cfg.Pg.SSLMode, cfg.Pg.Timezone)
	pg, err := postgres.New(dsn, postgres.MaxPoolSize(cfg.Pg.PoolMax))
	if err != nil {
		return nil, err
	}
	return pg, nil
}

func providePgxIface(pg *postgres.Postgres) postgres.PgxIface {
	return pg.Pool
}

func provideRedis(cfg *config.Config) (*redis.Redis, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	return redis.New(addr, cfg.Redis.Password, cfg.Redis.DB)
}

func provideRedisCache(r *redis.Redis, l logger.Interface) redis.IRedisCache {
	return redis.NewRedisCache(r.Client, l)
}

func provideValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func provideStorage(cfg *config.Config) (*storage.Client, error) {
	return storage.NewClient(storage.Config{
		AccessKeyID:     cfg.Storage.AccessKeyID,
		SecretAccessKey: cfg.Storage.SecretAccessKey,
		EndpointURL:     cfg.Storage.EndpointURL,
		Region:          cfg.Storage.Region,
		BucketName:      cfg.Storage.BucketName,
	})
}

func provideMail(cfg *config.Config) mail.Service {
	return mail.New(mail.Config{
		SMTPHost:     cfg.Mail.SMTPHost,
		SMTPPort:     cfg.Mail.SMTPPort,
		SMTPUsername: cfg.Mail.SMTPUsername,
		SMTPPassword: cfg.Mail.SMTPPassword,
		FromEmail:    cfg.Mail.FromEmail,
		FromName:     cfg.Mail.FromName,
	})
}

func provideHTTPServer(cfg *config.Config, app *fiber.App) *httpserver.Server {
	return httpserver.New(
		httpserver.Port(cfg.HTTP.Port),
		httpserver.App(app),
	)
}
