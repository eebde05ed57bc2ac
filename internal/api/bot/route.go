package bot

import (
	"github.com/gofiber/fiber/v3"
)

func RegisterRoutes(r fiber.Router) {
	r.Post("/bots", HandleCreate)
	r.Get("/bots/:botID", HandleGet)
}
