package handlers

import (
	"fmt"

	"shareit/internal/middleware"
	"shareit/internal/models"
	"shareit/internal/services"
	"shareit/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// RequestHandler handles HTTP requests for the request board.
type RequestHandler struct {
	service  *services.RequestService
	validate *validation.Validator
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(service *services.RequestService, validate *validation.Validator) *RequestHandler {
	return &RequestHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the request routes with the Fiber app.
func (h *RequestHandler) RegisterRoutes(router fiber.Router) {
	requestRoutes := router.Group("/requests", middleware.SharerUserID())
	requestRoutes.Post("/", h.CreateRequest)
	requestRoutes.Get("/", h.GetOwnRequests)
	requestRoutes.Get("/all", h.GetOtherRequests)
	requestRoutes.Get("/:id", h.GetRequest)
}

// CreateRequest handles POST /requests.
func (h *RequestHandler) CreateRequest(c *fiber.Ctx) error {
	var dto models.ItemRequestDto
	if err := ParseBody(c, h.validate, &dto); err != nil {
		return err
	}
	request, err := h.service.CreateRequest(middleware.SharerID(c), dto)
	if err != nil {
		return err
	}
	return created(c, fmt.Sprintf("/requests/%d", request.ID), request)
}

// GetOwnRequests handles GET /requests.
func (h *RequestHandler) GetOwnRequests(c *fiber.Ctx) error {
	requests, err := h.service.GetOwnRequests(middleware.SharerID(c))
	if err != nil {
		return err
	}
	return c.JSON(requests)
}

// GetOtherRequests handles GET /requests/all?from=&size=.
func (h *RequestHandler) GetOtherRequests(c *fiber.Ctx) error {
	from, size, err := Paging(c)
	if err != nil {
		return err
	}
	requests, err := h.service.GetOtherRequests(middleware.SharerID(c), from, size)
	if err != nil {
		return err
	}
	return c.JSON(requests)
}

// GetRequest handles GET /requests/:id.
func (h *RequestHandler) GetRequest(c *fiber.Ctx) error {
	id, err := PathID(c, "id")
	if err != nil {
		return err
	}
	request, err := h.service.GetRequest(id, middleware.SharerID(c))
	if err != nil {
		return err
	}
	return c.JSON(request)
}
