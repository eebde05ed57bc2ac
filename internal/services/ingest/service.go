package ingest

import (
	"context"
	"time"

	"docuchat/internal/core/docprep"
	"docuchat/internal/database"
	"docuchat/internal/database/model"
	"docuchat/pkg/logger"

	"gorm.io/gorm"
)

// Document statuses persisted alongside the batch.
const (
	StatusReady  = "ready"
	StatusFailed = "failed"
)

// StoredFile describes where one uploaded file's raw bytes ended up.
// Entries may be zero-valued for files whose storage failed.
type StoredFile struct {
	Path        string
	Sha256      string
	ContentType string
	SizeBytes   int64
}

// PersistBatch writes document and chunk rows for one processed batch in a
// single transaction. stored[i] corresponds to res.Documents[i]. Returns the
// new document IDs in input order.
func PersistBatch(ctx context.Context, botID int64, res docprep.Result, stored []StoredFile) ([]int64, error) {
	ids := make([]int64, len(res.Documents))

	err := database.WithTx(ctx, func(tx *gorm.DB) error {
		now := time.Now()
		for i, d := range res.Documents {
			status := StatusReady
			if d.WordCount == 0 {
				status = StatusFailed
			}
			filename := d.Filename
			wordCount := int32(d.WordCount)
			doc := model.Document{
				ChatbotID:        botID,
				OriginalFilename: &filename,
				WordCount:        &wordCount,
				Status:           status,
				UploadedAt:       &now,
			}
			if i < len(stored) && stored[i].Path != "" {
				path := stored[i].Path
				sha := stored[i].Sha256
				ctype := stored[i].ContentType
				size := stored[i].SizeBytes
				doc.FilePath = &path
				doc.Sha256 = &sha
				doc.ContentType = &ctype
				doc.SizeBytes = &size
			}
			if err := tx.Create(&doc).Error; err != nil {
				return err
			}
			ids[i] = doc.ID

			if len(d.Chunks) > 0 {
				if err := insertChunks(tx, doc.ID, d.Chunks); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		logger.Error(err, "ingest: persist batch failed")
		return nil, err
	}

	logger.WithFields(map[string]interface{}{
		"bot_id":      botID,
		"documents":   len(res.Documents),
		"total_words": res.TotalWords,
	}).Info("ingest: batch persisted")
	return ids, nil
}
