package model

import "time"

type Chatbot struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement:true" json:"id"`
	Name      string     `gorm:"column:name;not null" json:"name"`
	Status    string     `gorm:"column:status;default:active" json:"status"`
	CreatedAt *time.Time `gorm:"column:created_at" json:"created_at"`
}

func (*Chatbot) TableName() string { return "chatbots" }

type APIKey struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement:true" json:"id"`
	ChatbotID int64      `gorm:"column:chatbot_id;index" json:"chatbot_id"`
	Key       string     `gorm:"column:api_key;uniqueIndex;size:64" json:"api_key"`
	CreatedAt *time.Time `gorm:"column:created_at" json:"created_at"`
}

func (*APIKey) TableName() string { return "api_keys" }

type Document struct {
	ID               int64      `gorm:"column:id;primaryKey;autoIncrement:true" json:"id"`
	ChatbotID        int64      `gorm:"column:chatbot_id;index" json:"chatbot_id"`
	OriginalFilename *string    `gorm:"column:original_filename" json:"original_filename"`
	FilePath         *string    `gorm:"column:file_path" json:"file_path"`
	ContentType      *string    `gorm:"column:content_type" json:"content_type"`
	SizeBytes        *int64     `gorm:"column:size_bytes" json:"size_bytes"`
	WordCount        *int32     `gorm:"column:word_count" json:"word_count"`
	Status           string     `gorm:"column:status;default:uploaded" json:"status"`
	Sha256           *string    `gorm:"column:sha256" json:"sha256"`
	UploadedAt       *time.Time `gorm:"column:uploaded_at" json:"uploaded_at"`
}

func (*Document) TableName() string { return "documents" }

type Chunk struct {
	ID             int64   `gorm:"column:id;primaryKey;autoIncrement:true" json:"id"`
	DocumentID     int64   `gorm:"column:document_id;index" json:"document_id"`
	ChunkIndex     int32   `gorm:"column:chunk_index" json:"chunk_index"`
	Content        string  `gorm:"column:content;type:mediumtext" json:"content"`
	ContentPreview *string `gorm:"column:content_preview" json:"content_preview"`
	ContentHash    string  `gorm:"column:content_hash;size:64" json:"content_hash"`
}

func (*Chunk) TableName() string { return "chunks" }

type Message struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement:true" json:"id"`
	ChatbotID int64      `gorm:"column:chatbot_id;index" json:"chatbot_id"`
	Role      string     `gorm:"column:role;size:16" json:"role"`
	Content   string     `gorm:"column:content;type:mediumtext" json:"content"`
	CreatedAt *time.Time `gorm:"column:created_at" json:"created_at"`
}

func (*Message) TableName() string { return "messages" }
