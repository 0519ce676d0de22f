// Package gateway is the public entry point of ShareIt. It validates every
// call and forwards the ones that pass to the server unchanged.
package gateway

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"shareit/internal/handlers"
	"shareit/internal/middleware"
	"shareit/internal/models"
	"shareit/internal/services"
	"shareit/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/proxy"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// Config configures a Gateway.
type Config struct {
	// ServerURL is the base URL of the ShareIt server, e.g. http://localhost:8080.
	ServerURL string
	Timeout   time.Duration
	// Auth, when set, signs a token for every forwarded call.
	Auth *services.AuthService
	// Clock overrides time.Now for booking window checks.
	Clock func() time.Time
	// Quiet disables request logging.
	Quiet bool
}

// Gateway validates and forwards requests to the ShareIt server.
type Gateway struct {
	serverURL string
	timeout   time.Duration
	auth      *services.AuthService
	validate  *validation.Validator
	quiet     bool
}

// New creates a new Gateway.
func New(cfg Config) *Gateway {
	validate := validation.New()
	if cfg.Clock != nil {
		validate = validate.WithClock(cfg.Clock)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Gateway{
		serverURL: strings.TrimRight(cfg.ServerURL, "/"),
		timeout:   timeout,
		auth:      cfg.Auth,
		validate:  validate,
		quiet:     cfg.Quiet,
	}
}

// App builds the fiber application serving the public surface.
func (g *Gateway) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "shareit-gateway",
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	if !g.quiet {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		}))
	}

	app.Get("/health", handlers.Health)
	g.RegisterRoutes(app)
	return app
}

// RegisterRoutes registers the validated routes with the Fiber app.
func (g *Gateway) RegisterRoutes(router fiber.Router) {
	users := router.Group("/users")
	users.Post("/", g.body(func() any { return &models.UserDto{} }), g.forward)
	users.Get("/", g.forward)
	users.Get("/:id", g.pathID, g.forward)
	users.Patch("/:id", g.pathID, g.body(func() any { return &models.UserPatch{} }), g.forward)
	users.Delete("/:id", g.pathID, g.forward)

	items := router.Group("/items", middleware.SharerUserID())
	items.Post("/", g.body(func() any { return &models.ItemDto{} }), g.forward)
	items.Get("/", g.forward)
	items.Get("/search", g.forward)
	items.Get("/:id", g.pathID, g.forward)
	items.Patch("/:id", g.pathID, g.body(func() any { return &models.ItemPatch{} }), g.forward)
	items.Post("/:id/comment", g.pathID, g.body(func() any { return &models.CommentDto{} }), g.forward)

	requests := router.Group("/requests", middleware.SharerUserID())
	requests.Post("/", g.body(func() any { return &models.ItemRequestDto{} }), g.forward)
	requests.Get("/", g.forward)
	requests.Get("/all", g.paging, g.forward)
	requests.Get("/:id", g.pathID, g.forward)

	bookings := router.Group("/bookings", middleware.SharerUserID())
	bookings.Post("/", g.body(func() any { return &models.BookingDto{} }), g.forward)
	bookings.Get("/", g.state, g.paging, g.forward)
	bookings.Get("/owner", g.state, g.paging, g.forward)
	bookings.Get("/:id", g.pathID, g.forward)
	bookings.Patch("/:id", g.pathID, g.approved, g.forward)
}

// body validates the JSON body against the DTO returned by newDto.
func (g *Gateway) body(newDto func() any) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := handlers.ParseBody(c, g.validate, newDto()); err != nil {
			return err
		}
		return c.Next()
	}
}

func (g *Gateway) pathID(c *fiber.Ctx) error {
	if _, err := handlers.PathID(c, "id"); err != nil {
		return err
	}
	return c.Next()
}

func (g *Gateway) paging(c *fiber.Ctx) error {
	from, size, err := handlers.Paging(c)
	if err != nil {
		return err
	}
	if err := g.validate.Var("from", from, "min=0"); err != nil {
		return err
	}
	if err := g.validate.Var("size", size, "min=1"); err != nil {
		return err
	}
	return c.Next()
}

func (g *Gateway) state(c *fiber.Ctx) error {
	raw := c.Query("state", string(models.StateAll))
	if _, ok := models.ParseBookingState(raw); !ok {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Unknown state: %s", raw))
	}
	return c.Next()
}

func (g *Gateway) approved(c *fiber.Ctx) error {
	if _, err := strconv.ParseBool(c.Query("approved")); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "approved must be true or false")
	}
	return c.Next()
}

// forward relays the call to the server and copies back its status and body.
func (g *Gateway) forward(c *fiber.Ctx) error {
	if id, ok := c.Locals("requestid").(string); ok {
		c.Request().Header.Set(fiber.HeaderXRequestID, id)
	}
	if g.auth != nil {
		token, err := g.auth.IssueToken(middleware.SharerID(c))
		if err != nil {
			return err
		}
		c.Request().Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	target := g.serverURL + c.OriginalURL()
	if err := proxy.DoTimeout(c, target, g.timeout); err != nil {
		log.Printf("Failed to forward %s %s: %v", c.Method(), target, err)
		return fmt.Errorf("failed to reach shareit server: %w", err)
	}
	c.Response().Header.Del(fiber.HeaderServer)
	return nil
}
