package bot

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"docuchat/config"
	"docuchat/internal/database"
	"docuchat/internal/database/model"
	"docuchat/pkg/apperror"
	"docuchat/pkg/apperror/status"

	"github.com/gofiber/fiber/v3"
)

type createRequest struct {
	Name string `json:"name"`
}

type createResponse struct {
	BotID  int64  `json:"bot_id"`
	Name   string `json:"name"`
	APIKey string `json:"api_key"`
}

type summaryResponse struct {
	BotID     int64  `json:"bot_id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Documents int64  `json:"documents"`
}

// HandleCreate registers a new chatbot and issues its API key.
func HandleCreate(c fiber.Ctx) error {
	trackingID := c.Get("X-Request-ID")

	var req createRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return apperror.BadRequest(config.ModuleBot, c, status.BotInvalidRequestBody, err.Error())
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return apperror.BadRequest(config.ModuleBot, c, status.BotMissingParams, "name is required")
	}

	ctx := context.Background()
	now := time.Now()
	b := model.Chatbot{Name: req.Name, Status: "active", CreatedAt: &now}
	if err := database.CreateEntity(ctx, &b); err != nil {
		return apperror.InternalError(config.ModuleBot, c, err)
	}

	key, err := newAPIKey()
	if err != nil {
		return apperror.InternalError(config.ModuleBot, c, err)
	}
	rec := model.APIKey{ChatbotID: b.ID, Key: key, CreatedAt: &now}
	if err := database.CreateEntity(ctx, &rec); err != nil {
		return apperror.InternalError(config.ModuleBot, c, err)
	}

	return apperror.Success(config.ModuleBot, c, apperror.FiberSuccessMessage{
		Code:       status.OK,
		Message:    "Chatbot created",
		TrackingID: trackingID,
		Data:       createResponse{BotID: b.ID, Name: b.Name, APIKey: key},
	})
}

// HandleGet returns a chatbot summary with its document count.
func HandleGet(c fiber.Ctx) error {
	trackingID := c.Get("X-Request-ID")

	botID, err := strconv.ParseInt(c.Params("botID"), 10, 64)
	if err != nil {
		return apperror.BadRequest(config.ModuleBot, c, status.BotMissingParams, "invalid botID")
	}

	ctx := context.Background()
	b, err := database.GetEntityByID[model.Chatbot](ctx, botID)
	if err != nil {
		return apperror.NotFound(config.ModuleBot, c, status.BotNotFound, "chatbot not found")
	}

	db, err := database.GetDB()
	if err != nil {
		return apperror.InternalError(config.ModuleBot, c, err)
	}
	var count int64
	if err := db.WithContext(ctx).Model(&model.Document{}).
		Where("chatbot_id = ?", b.ID).Count(&count).Error; err != nil {
		return apperror.InternalError(config.ModuleBot, c, err)
	}

	return apperror.Success(config.ModuleBot, c, apperror.FiberSuccessMessage{
		Code:       status.OK,
		Message:    "ok",
		TrackingID: trackingID,
		Data:       summaryResponse{BotID: b.ID, Name: b.Name, Status: b.Status, Documents: count},
	})
}

func newAPIKey() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "dc_" + hex.EncodeToString(buf), nil
}
