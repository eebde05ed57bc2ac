package widget

import (
	"context"
	"fmt"
	"strconv"

	"docuchat/config"
	"docuchat/internal/database"
	"docuchat/internal/database/model"
	"docuchat/pkg/apperror"
	"docuchat/pkg/apperror/status"

	"github.com/gofiber/fiber/v3"
)

type embedResponse struct {
	BotID     int64  `json:"bot_id"`
	EmbedCode string `json:"embed_code"`
}

// HandleEmbedCode returns the script snippet customers paste into their site
// to mount the chat widget for one bot.
func HandleEmbedCode(c fiber.Ctx) error {
	trackingID := c.Get("X-Request-ID")

	botID, err := strconv.ParseInt(c.Params("botID"), 10, 64)
	if err != nil {
		return apperror.BadRequest(config.ModuleWidget, c, status.BotMissingParams, "invalid botID")
	}

	b, err := database.GetEntityByID[model.Chatbot](context.Background(), botID)
	if err != nil {
		return apperror.NotFound(config.ModuleWidget, c, status.BotNotFound, "chatbot not found")
	}

	return apperror.Success(config.ModuleWidget, c, apperror.FiberSuccessMessage{
		Code:       status.OK,
		Message:    "ok",
		TrackingID: trackingID,
		Data:       embedResponse{BotID: b.ID, EmbedCode: EmbedCode(b.ID)},
	})
}

// EmbedCode renders the widget snippet for a bot.
func EmbedCode(botID int64) string {
	w := config.Cfg.Widget
	return fmt.Sprintf(
		"<script>\n  window.docuchatConfig = { botId: %d, baseUrl: %q };\n</script>\n<script src=%q async></script>",
		botID, w.BaseURL, w.ScriptURL,
	)
}
