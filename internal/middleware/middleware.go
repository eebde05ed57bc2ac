package middleware

import (
	"context"
	"runtime/debug"

	"docuchat/config"
	chatservice "docuchat/internal/services/chat"
	"docuchat/pkg/apperror"
	"docuchat/pkg/apperror/status"
	"docuchat/pkg/logger"

	"github.com/gofiber/fiber/v3"
)

// BotLocalKey is where APIKeyAuth parks the resolved chatbot for handlers.
const BotLocalKey = "bot"

// ConnectionLimiter limits the number of concurrent connections
type ConnectionLimiter struct {
	limit    int
	waitlist chan struct{}
}

func NewConnectionLimiter(limit int) *ConnectionLimiter {
	return &ConnectionLimiter{
		limit:    limit,
		waitlist: make(chan struct{}, limit),
	}
}

func (cl *ConnectionLimiter) Acquire() bool {
	select {
	case cl.waitlist <- struct{}{}:
		return true
	default:
		return false
	}
}

func (cl *ConnectionLimiter) Release() {
	select {
	case <-cl.waitlist:
	default:
	}
}

// ConnectionLimit creates a middleware for connection limiting
func ConnectionLimit(limiter *ConnectionLimiter) fiber.Handler {
	return func(c fiber.Ctx) error {
		if !limiter.Acquire() {
			return c.Status(fiber.StatusServiceUnavailable).SendString("Server is at maximum capacity")
		}
		defer limiter.Release()
		return c.Next()
	}
}

// Recover creates a middleware for panic recovery
func Recover() fiber.Handler {
	return func(c fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				logger.WithFields(map[string]interface{}{
					"panic":      r,
					"method":     c.Method(),
					"path":       c.Path(),
					"ip":         c.IP(),
					"user_agent": c.Get("User-Agent"),
					"stack":      string(stack),
				}).Errorf("Panic recovered")

				err := c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Internal Server Error",
					"message": "An unexpected error occurred",
				})
				if err != nil {
					logger.WithField("error", err).Errorf("Failed to send error response")
				}
			}
		}()
		return c.Next()
	}
}

// APIKeyAuth resolves the chatbot from the X-API-Key header and stores it in
// request locals; requests without a valid key are rejected.
func APIKeyAuth() fiber.Handler {
	return func(c fiber.Ctx) error {
		key := c.Get("X-API-Key")
		if key == "" {
			return apperror.Unauthorized(config.ModuleChat, c, status.ChatUnauthorized, "missing API key")
		}
		bot, err := chatservice.GetBotByAPIKey(context.Background(), key)
		if err != nil {
			return apperror.Unauthorized(config.ModuleChat, c, status.ChatUnauthorized, "invalid API key")
		}
		c.Locals(BotLocalKey, bot)
		return c.Next()
	}
}
