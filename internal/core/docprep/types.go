package docprep

import "io"

// Chunk is a bounded window of a document's text, the smallest unit the
// context assembler works with.
type Chunk struct {
	Content string `json:"content"`
	Index   int    `json:"index"`
	Source  string `json:"source"`
}

// Document is the uniform record produced for every processed file, failed
// extractions included (empty Content, zero WordCount).
type Document struct {
	Filename  string  `json:"filename"`
	Content   string  `json:"content"`
	Chunks    []Chunk `json:"chunks"`
	WordCount int     `json:"word_count"`
}

// Result is the outcome of processing one batch.
type Result struct {
	Documents  []Document `json:"documents"`
	TotalWords int        `json:"total_words"`
}

// ValidationResult lists every policy violation found in a batch.
type ValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// Limits carries the batch policy and chunking parameters. Passed explicitly
// so tests can vary limits without touching process-wide state.
type Limits struct {
	MaxFiles        int
	MaxFileBytes    int64
	ChunkSize       int
	ChunkOverlap    int
	ContextMaxChars int
}

// File is the only capability this pipeline needs from the host file
// abstraction. The upload handler adapts *multipart.FileHeader to it.
type File interface {
	Name() string
	ContentType() string
	Size() int64
	Open() (io.ReadCloser, error)
}
