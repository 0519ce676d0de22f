package handlers

import (
	"fmt"

	"shareit/internal/models"
	"shareit/internal/services"
	"shareit/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service  *services.UserService
	validate *validation.Validator
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService, validate *validation.Validator) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Post("/", h.CreateUser)
	userRoutes.Get("/", h.GetAllUsers)
	userRoutes.Get("/:id", h.GetUser)
	userRoutes.Patch("/:id", h.UpdateUser)
	userRoutes.Delete("/:id", h.DeleteUser)
}

// CreateUser handles POST /users.
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var dto models.UserDto
	if err := ParseBody(c, h.validate, &dto); err != nil {
		return err
	}
	user, err := h.service.CreateUser(dto)
	if err != nil {
		return err
	}
	return created(c, fmt.Sprintf("/users/%d", user.ID), user)
}

// GetAllUsers handles GET /users.
func (h *UserHandler) GetAllUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers()
	if err != nil {
		return err
	}
	if users == nil {
		users = []models.User{}
	}
	return c.JSON(users)
}

// GetUser handles GET /users/:id.
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := PathID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.service.GetUser(id)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// UpdateUser handles PATCH /users/:id.
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := PathID(c, "id")
	if err != nil {
		return err
	}
	var patch models.UserPatch
	if err := ParseBody(c, h.validate, &patch); err != nil {
		return err
	}
	user, err := h.service.UpdateUser(id, patch)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// DeleteUser handles DELETE /users/:id.
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := PathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteUser(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
