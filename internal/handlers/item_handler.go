package handlers

import (
	"fmt"

	"shareit/internal/middleware"
	"shareit/internal/models"
	"shareit/internal/services"
	"shareit/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ItemHandler handles HTTP requests for items and their comments.
type ItemHandler struct {
	items    *services.ItemService
	comments *services.CommentService
	validate *validation.Validator
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(items *services.ItemService, comments *services.CommentService, validate *validation.Validator) *ItemHandler {
	return &ItemHandler{
		items:    items,
		comments: comments,
		validate: validate,
	}
}

// RegisterRoutes registers the item routes with the Fiber app.
func (h *ItemHandler) RegisterRoutes(router fiber.Router) {
	itemRoutes := router.Group("/items", middleware.SharerUserID())
	itemRoutes.Post("/", h.CreateItem)
	itemRoutes.Get("/", h.GetOwnerItems)
	itemRoutes.Get("/search", h.SearchItems)
	itemRoutes.Get("/:id", h.GetItem)
	itemRoutes.Patch("/:id", h.UpdateItem)
	itemRoutes.Post("/:id/comment", h.AddComment)
}

// CreateItem handles POST /items.
func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	var dto models.ItemDto
	if err := ParseBody(c, h.validate, &dto); err != nil {
		return err
	}
	item, err := h.items.CreateItem(middleware.SharerID(c), dto)
	if err != nil {
		return err
	}
	return created(c, fmt.Sprintf("/items/%d", item.ID), item)
}

// GetOwnerItems handles GET /items.
func (h *ItemHandler) GetOwnerItems(c *fiber.Ctx) error {
	items, err := h.items.GetOwnerItems(middleware.SharerID(c))
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// SearchItems handles GET /items/search?text=.
func (h *ItemHandler) SearchItems(c *fiber.Ctx) error {
	items, err := h.items.SearchItems(c.Query("text"))
	if err != nil {
		return err
	}
	if items == nil {
		items = []models.Item{}
	}
	return c.JSON(items)
}

// GetItem handles GET /items/:id.
func (h *ItemHandler) GetItem(c *fiber.Ctx) error {
	id, err := PathID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.items.GetItem(id, middleware.SharerID(c))
	if err != nil {
		return err
	}
	return c.JSON(item)
}

// UpdateItem handles PATCH /items/:id.
func (h *ItemHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := PathID(c, "id")
	if err != nil {
		return err
	}
	var patch models.ItemPatch
	if err := ParseBody(c, h.validate, &patch); err != nil {
		return err
	}
	item, err := h.items.UpdateItem(id, middleware.SharerID(c), patch)
	if err != nil {
		return err
	}
	return c.JSON(item)
}

// AddComment handles POST /items/:id/comment. It answers 200 rather than 201.
func (h *ItemHandler) AddComment(c *fiber.Ctx) error {
	id, err := PathID(c, "id")
	if err != nil {
		return err
	}
	var dto models.CommentDto
	if err := ParseBody(c, h.validate, &dto); err != nil {
		return err
	}
	comment, err := h.comments.AddComment(id, middleware.SharerID(c), dto)
	if err != nil {
		return err
	}
	return c.JSON(comment)
}
