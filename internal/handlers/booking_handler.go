package handlers

import (
	"fmt"
	"strconv"

	"shareit/internal/middleware"
	"shareit/internal/models"
	"shareit/internal/services"
	"shareit/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// BookingHandler handles HTTP requests for bookings.
type BookingHandler struct {
	service  *services.BookingService
	validate *validation.Validator
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *services.BookingService, validate *validation.Validator) *BookingHandler {
	return &BookingHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the booking routes with the Fiber app.
func (h *BookingHandler) RegisterRoutes(router fiber.Router) {
	bookingRoutes := router.Group("/bookings", middleware.SharerUserID())
	bookingRoutes.Post("/", h.CreateBooking)
	bookingRoutes.Get("/", h.GetBookerBookings)
	bookingRoutes.Get("/owner", h.GetOwnerBookings)
	bookingRoutes.Get("/:id", h.GetBooking)
	bookingRoutes.Patch("/:id", h.ApproveBooking)
}

// CreateBooking handles POST /bookings.
func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	var dto models.BookingDto
	if err := ParseBody(c, h.validate, &dto); err != nil {
		return err
	}
	booking, err := h.service.CreateBooking(middleware.SharerID(c), dto)
	if err != nil {
		return err
	}
	return created(c, fmt.Sprintf("/bookings/%d", booking.ID), booking)
}

// ApproveBooking handles PATCH /bookings/:id?approved=.
func (h *BookingHandler) ApproveBooking(c *fiber.Ctx) error {
	id, err := PathID(c, "id")
	if err != nil {
		return err
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "approved must be true or false")
	}
	booking, err := h.service.ApproveBooking(id, middleware.SharerID(c), approved)
	if err != nil {
		return err
	}
	return c.JSON(booking)
}

// GetBooking handles GET /bookings/:id.
func (h *BookingHandler) GetBooking(c *fiber.Ctx) error {
	id, err := PathID(c, "id")
	if err != nil {
		return err
	}
	booking, err := h.service.GetBooking(id, middleware.SharerID(c))
	if err != nil {
		return err
	}
	return c.JSON(booking)
}

// GetBookerBookings handles GET /bookings?state=&from=&size=.
func (h *BookingHandler) GetBookerBookings(c *fiber.Ctx) error {
	from, size, err := Paging(c)
	if err != nil {
		return err
	}
	bookings, err := h.service.GetBookerBookings(middleware.SharerID(c), c.Query("state", string(models.StateAll)), from, size)
	if err != nil {
		return err
	}
	return c.JSON(bookings)
}

// GetOwnerBookings handles GET /bookings/owner?state=&from=&size=.
func (h *BookingHandler) GetOwnerBookings(c *fiber.Ctx) error {
	from, size, err := Paging(c)
	if err != nil {
		return err
	}
	bookings, err := h.service.GetOwnerBookings(middleware.SharerID(c), c.Query("state", string(models.StateAll)), from, size)
	if err != nil {
		return err
	}
	return c.JSON(bookings)
}
