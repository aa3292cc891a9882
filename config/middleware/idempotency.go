package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	idempotencyLocal  = "idempotencyKey"
)

// IdempotencyKey requires the Idempotency-Key header to be a UUID when
// present and issues a fresh one otherwise. The key is echoed back so a
// client can resend the same submission.
func IdempotencyKey() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get(IdempotencyHeader)
		if key == "" {
			key = uuid.NewString()
		} else if _, err := uuid.Parse(key); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Invalid Idempotency-Key header",
				"details": "the key must be a UUID",
			})
		}

		c.Locals(idempotencyLocal, key)
		c.Set(IdempotencyHeader, key)
		return c.Next()
	}
}

// GetIdempotencyKey returns the key stored by IdempotencyKey.
func GetIdempotencyKey(c *fiber.Ctx) string {
	key, _ := c.Locals(idempotencyLocal).(string)
	return key
}
