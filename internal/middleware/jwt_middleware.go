package middleware

import (
	"log"
	"strconv"
	"strings"

	"shareit/internal/services"

	"github.com/gofiber/fiber/v2"
)

// GatewayAuth is a Fiber middleware that only lets through calls carrying a
// valid gateway token. When the X-Sharer-User-Id header is present the token
// must have been issued for that user.
func GatewayAuth(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization header is required")
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization header format must be 'Bearer <token>'")
		}

		userID, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("Gateway token rejected: %v", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}

		// Malformed headers are left for SharerUserID to reject.
		if raw := c.Get(SharerHeader); raw != "" {
			if sharerID, err := strconv.ParseInt(raw, 10, 64); err == nil && sharerID != userID {
				return fiber.NewError(fiber.StatusUnauthorized, "Token was issued for another user")
			}
		}

		return c.Next()
	}
}
