package main

import (
	"fmt"

	"docuchat/config"
	"docuchat/internal/api/bot"
	"docuchat/internal/api/chat"
	"docuchat/internal/api/healthcheck"
	"docuchat/internal/api/upload"
	"docuchat/internal/api/widget"
	"docuchat/internal/middleware"
	"docuchat/pkg/logger"

	"github.com/gofiber/fiber/v3"
)

func main() {
	if err := config.Init("config.yaml"); err != nil {
		logger.Fatal(err, "failed to load config")
	}
	if err := logger.SetLevel(string(config.Cfg.LogLevel)); err != nil {
		logger.Warn("invalid log level %q, keeping default", config.Cfg.LogLevel)
	}

	app := fiber.New(fiber.Config{
		AppName:     config.Cfg.Server.AppName,
		BodyLimit:   config.Cfg.Server.BodyLimit,
		Concurrency: config.Cfg.Server.Concurrency,
	})

	app.Use(middleware.Recover())
	app.Use(middleware.ConnectionLimit(middleware.NewConnectionLimiter(config.Cfg.Server.Concurrency)))

	// routes
	healthcheck.RegisterRoutes(app)
	bot.RegisterRoutes(app)
	upload.RegisterRoutes(app)
	chat.RegisterRoutes(app)
	widget.RegisterRoutes(app)

	addr := fmt.Sprintf(":%d", config.Cfg.Server.Port)
	if err := app.Listen(addr); err != nil {
		logger.Error(err, "server error")
	}
}
