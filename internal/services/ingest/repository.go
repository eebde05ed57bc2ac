package ingest

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"

	"docuchat/internal/core/docprep"
	"docuchat/internal/database/model"

	"gorm.io/gorm"
)

func insertChunks(tx *gorm.DB, docID int64, chunks []docprep.Chunk) error {
	records := make([]model.Chunk, 0, len(chunks))
	for _, ch := range chunks {
		preview := buildContentPreview(ch.Content, 512)
		h := sha256.Sum256([]byte(ch.Content))
		hash := hex.EncodeToString(h[:])
		records = append(records, model.Chunk{
			DocumentID:     docID,
			ChunkIndex:     int32(ch.Index),
			Content:        ch.Content,
			ContentPreview: &preview,
			ContentHash:    hash,
		})
	}
	return tx.Create(&records).Error
}

// buildContentPreview sanitizes the preview to valid UTF-8 printable characters
// and truncates by runes to avoid splitting multi-byte sequences.
func buildContentPreview(s string, maxRunes int) string {
	var b strings.Builder
	b.Grow(len(s))
	count := 0
	for _, r := range s {
		if r == '\uFEFF' { // BOM
			continue
		}
		if r == '\n' || r == '\t' || r == '\r' {
			// keep common whitespace
		} else if !unicode.IsPrint(r) {
			continue
		}
		b.WriteRune(r)
		count++
		if count >= maxRunes {
			break
		}
	}
	return strings.TrimSpace(b.String())
}
