package handlers

import (
	"time"

	"shareit/internal/middleware"
	"shareit/internal/repositories"
	"shareit/internal/services"
	"shareit/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppConfig wires the server's dependencies.
type AppConfig struct {
	DB *gorm.DB
	// Publisher receives booking lifecycle events. Nil disables publishing.
	Publisher services.BookingEventPublisher
	// Auth, when set, requires every call to carry a gateway token.
	Auth *services.AuthService
	// Clock overrides time.Now for services and validation.
	Clock func() time.Time
	// Quiet disables request logging.
	Quiet bool
}

// NewApp builds the ShareIt server: repositories, services, handlers and middleware.
func NewApp(cfg AppConfig) *fiber.App {
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}

	userRepo := repositories.NewGORMUserRepository(cfg.DB)
	itemRepo := repositories.NewGORMItemRepository(cfg.DB)
	requestRepo := repositories.NewGORMRequestRepository(cfg.DB)
	bookingRepo := repositories.NewGORMBookingRepository(cfg.DB)
	commentRepo := repositories.NewGORMCommentRepository(cfg.DB)

	userService := services.NewUserService(userRepo)
	commentService := services.NewCommentService(commentRepo, userRepo, itemRepo, bookingRepo).WithClock(now)
	itemService := services.NewItemService(itemRepo, userRepo, requestRepo, bookingRepo, commentService).WithClock(now)
	requestService := services.NewRequestService(requestRepo, userRepo, itemRepo).WithClock(now)
	bookingService := services.NewBookingService(bookingRepo, userRepo, itemRepo, cfg.Publisher).WithClock(now)

	validate := validation.New().WithClock(now)

	app := fiber.New(fiber.Config{
		AppName:      "shareit-server",
		ErrorHandler: ErrorHandler,
	})

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	if !cfg.Quiet {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		}))
	}

	app.Get("/health", Health)

	api := app.Group("")
	if cfg.Auth != nil {
		api = app.Group("", middleware.GatewayAuth(cfg.Auth))
	}

	NewUserHandler(userService, validate).RegisterRoutes(api)
	NewItemHandler(itemService, commentService, validate).RegisterRoutes(api)
	NewRequestHandler(requestService, validate).RegisterRoutes(api)
	NewBookingHandler(bookingService, validate).RegisterRoutes(api)

	return app
}

// Health reports liveness.
func Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}
