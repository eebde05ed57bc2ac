package chat

import (
	"context"
	"time"

	"docuchat/internal/core/docprep"
	"docuchat/internal/database"
	"docuchat/internal/database/model"
	"docuchat/internal/services/ingest"
)

// GetBotByAPIKey resolves the chatbot owning the given API key.
func GetBotByAPIKey(ctx context.Context, key string) (*model.Chatbot, error) {
	db, err := database.GetDB()
	if err != nil {
		return nil, err
	}
	var k model.APIKey
	if err := db.WithContext(ctx).Where("api_key = ?", key).First(&k).Error; err != nil {
		return nil, err
	}
	return database.GetEntityByID[model.Chatbot](ctx, k.ChatbotID)
}

// loadDocuments rebuilds the bot's ready documents from persisted chunk rows,
// in upload order, so the context assembler sees the same Document shape the
// processor produced.
func loadDocuments(ctx context.Context, botID int64) ([]docprep.Document, error) {
	rows, err := database.FindEntities[model.Document](ctx, "id asc",
		"chatbot_id = ? AND status = ?", botID, ingest.StatusReady)
	if err != nil {
		return nil, err
	}

	docs := make([]docprep.Document, 0, len(rows))
	for _, row := range rows {
		chunkRows, err := database.FindEntities[model.Chunk](ctx, "chunk_index asc",
			"document_id = ?", row.ID)
		if err != nil {
			return nil, err
		}
		filename := ""
		if row.OriginalFilename != nil {
			filename = *row.OriginalFilename
		}
		doc := docprep.Document{Filename: filename, Chunks: make([]docprep.Chunk, 0, len(chunkRows))}
		for _, cr := range chunkRows {
			doc.Chunks = append(doc.Chunks, docprep.Chunk{
				Content: cr.Content,
				Index:   int(cr.ChunkIndex),
				Source:  filename,
			})
		}
		if row.WordCount != nil {
			doc.WordCount = int(*row.WordCount)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func persistMessages(ctx context.Context, botID int64, question, answer string) error {
	now := time.Now()
	userMsg := model.Message{ChatbotID: botID, Role: "user", Content: question, CreatedAt: &now}
	if err := database.CreateEntity(ctx, &userMsg); err != nil {
		return err
	}
	assistantMsg := model.Message{ChatbotID: botID, Role: "assistant", Content: answer, CreatedAt: &now}
	return database.CreateEntity(ctx, &assistantMsg)
}
