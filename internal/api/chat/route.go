package chat

import (
	"docuchat/internal/middleware"

	"github.com/gofiber/fiber/v3"
)

func RegisterRoutes(r fiber.Router) {
	r.Post("/chat", HandleChat, middleware.APIKeyAuth())
}
