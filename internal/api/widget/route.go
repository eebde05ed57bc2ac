package widget

import (
	"github.com/gofiber/fiber/v3"
)

func RegisterRoutes(r fiber.Router) {
	r.Get("/bots/:botID/embed", HandleEmbedCode)
}
