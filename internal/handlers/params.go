package handlers

import (
	"fmt"
	"strconv"

	"shareit/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultFrom = 0
	defaultSize = 10
)

// ParseBody decodes the JSON body into dst and validates it.
func ParseBody(c *fiber.Ctx, v *validation.Validator, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
	}
	return v.Struct(dst)
}

// PathID reads a positive numeric path parameter.
func PathID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id < 1 {
		return 0, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s must be a positive integer", name))
	}
	return id, nil
}

// queryInt reads an optional integer query parameter.
func queryInt(c *fiber.Ctx, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s must be an integer", name))
	}
	return n, nil
}

// Paging reads the from/size window of a listing.
func Paging(c *fiber.Ctx) (from, size int, err error) {
	if from, err = queryInt(c, "from", defaultFrom); err != nil {
		return 0, 0, err
	}
	if size, err = queryInt(c, "size", defaultSize); err != nil {
		return 0, 0, err
	}
	return from, size, nil
}

func created(c *fiber.Ctx, location string, body any) error {
	c.Location(location)
	return c.Status(fiber.StatusCreated).JSON(body)
}
