package upload

import (
	"context"
	"strconv"

	"docuchat/config"
	"docuchat/internal/core/docprep"
	"docuchat/internal/database"
	"docuchat/internal/database/model"
	"docuchat/internal/services/ingest"
	"docuchat/pkg/apperror"
	"docuchat/pkg/apperror/status"
	"docuchat/pkg/logger"

	"github.com/gofiber/fiber/v3"
)

type documentSummary struct {
	DocID     int64  `json:"doc_id"`
	Filename  string `json:"filename"`
	WordCount int    `json:"word_count"`
	Chunks    int    `json:"chunks"`
	Status    string `json:"status"`
}

type uploadResponse struct {
	Documents  []documentSummary `json:"documents"`
	TotalWords int               `json:"total_words"`
}

func uploadLimits() docprep.Limits {
	u := config.Cfg.Upload
	return docprep.Limits{
		MaxFiles:        u.MaxFiles,
		MaxFileBytes:    u.MaxFileBytes(),
		ChunkSize:       u.ChunkSize,
		ChunkOverlap:    u.ChunkOverlap,
		ContextMaxChars: u.ContextMaxChars,
	}
}

// HandleUpload ingests one multipart batch for a bot: validate the batch,
// extract and chunk every file, store raw bytes, persist the results.
func HandleUpload(c fiber.Ctx) error {
	trackingID := c.Get("X-Request-ID")

	botID, err := strconv.ParseInt(c.Params("botID"), 10, 64)
	if err != nil {
		return apperror.BadRequest(config.ModuleUpload, c, status.UploadMissingParams, "invalid botID")
	}

	ctx := context.Background()
	bot, err := database.GetEntityByID[model.Chatbot](ctx, botID)
	if err != nil {
		return apperror.NotFound(config.ModuleUpload, c, status.BotNotFound, "chatbot not found")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return apperror.BadRequest(config.ModuleUpload, c, status.UploadInvalidRequestBody, "multipart form required")
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		return apperror.BadRequest(config.ModuleUpload, c, status.UploadMissingParams, "at least one file is required")
	}

	files := adaptFiles(headers)
	limits := uploadLimits()

	if res := docprep.ValidateFiles(files, limits); !res.IsValid {
		return apperror.BadRequest(config.ModuleUpload, c, status.UploadValidationFailed,
			"file validation failed", res.Errors...)
	}

	processor, err := docprep.NewProcessor(limits, nil)
	if err != nil {
		return apperror.InternalError(config.ModuleUpload, c, err)
	}
	result := processor.ProcessFiles(ctx, files)

	// Store raw bytes; a storage failure degrades that file's record, it does
	// not fail the batch.
	stored := make([]ingest.StoredFile, len(files))
	for i, f := range files {
		path, sha, err := storeFile(f)
		if err != nil {
			logger.Error(err, "upload: store failed for %s", f.Name())
			continue
		}
		stored[i] = ingest.StoredFile{
			Path:        path,
			Sha256:      sha,
			ContentType: f.ContentType(),
			SizeBytes:   f.Size(),
		}
	}

	docIDs, err := ingest.PersistBatch(ctx, bot.ID, result, stored)
	if err != nil {
		return apperror.InternalError(config.ModuleUpload, c, err)
	}

	summaries := make([]documentSummary, len(result.Documents))
	for i, d := range result.Documents {
		st := ingest.StatusReady
		if d.WordCount == 0 {
			st = ingest.StatusFailed
		}
		summaries[i] = documentSummary{
			DocID:     docIDs[i],
			Filename:  d.Filename,
			WordCount: d.WordCount,
			Chunks:    len(d.Chunks),
			Status:    st,
		}
	}

	return apperror.Success(config.ModuleUpload, c, apperror.FiberSuccessMessage{
		Code:       status.OK,
		Message:    "Files processed successfully",
		TrackingID: trackingID,
		Data:       uploadResponse{Documents: summaries, TotalWords: result.TotalWords},
	})
}
