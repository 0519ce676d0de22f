package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// SharerHeader carries the id of the acting user on every user-scoped call.
const SharerHeader = "X-Sharer-User-Id"

// SharerUserIDKey is the Locals key under which SharerUserID stores the parsed id.
const SharerUserIDKey = "sharer_user_id"

// SharerUserID parses the X-Sharer-User-Id header into Locals. A missing or
// malformed header is a bad request.
func SharerUserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(SharerHeader)
		if raw == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Required request header '"+SharerHeader+"' is not present")
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Header '"+SharerHeader+"' must be an integer")
		}
		c.Locals(SharerUserIDKey, id)
		return c.Next()
	}
}

// SharerID returns the id stored by SharerUserID.
func SharerID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(SharerUserIDKey).(int64)
	return id
}
