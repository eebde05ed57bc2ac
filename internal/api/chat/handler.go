package chat

import (
	"context"
	"encoding/json"
	"strings"

	"docuchat/config"
	"docuchat/internal/database/model"
	"docuchat/internal/middleware"
	chatservice "docuchat/internal/services/chat"
	"docuchat/pkg/apperror"
	"docuchat/pkg/apperror/status"

	"github.com/gofiber/fiber/v3"
)

func HandleChat(c fiber.Ctx) error {
	trackingID := c.Get("X-Request-ID")

	bot, ok := c.Locals(middleware.BotLocalKey).(*model.Chatbot)
	if !ok || bot == nil {
		return apperror.Unauthorized(config.ModuleChat, c, status.ChatUnauthorized, "missing API key")
	}

	var req chatservice.Request
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return apperror.BadRequest(config.ModuleChat, c, status.ChatInvalidRequestBody, err.Error())
	}
	req.Question = strings.TrimSpace(req.Question)
	if req.Question == "" {
		return apperror.BadRequest(config.ModuleChat, c, status.ChatMissingParams, "question is empty")
	}

	resp, err := chatservice.Run(context.Background(), bot, req.Question)
	if err != nil {
		return apperror.InternalError(config.ModuleChat, c, err)
	}

	return apperror.Success(config.ModuleChat, c, apperror.FiberSuccessMessage{
		Code:       status.OK,
		Message:    "ok",
		TrackingID: trackingID,
		Data:       resp,
	})
}
