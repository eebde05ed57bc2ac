package docprep

import (
	"context"
	"fmt"
	"strings"

	"docuchat/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Processor turns a validated batch of files into Document records.
type Processor struct {
	limits    Limits
	extractor Extractor
}

// NewProcessor rejects malformed chunking parameters up front; those are
// caller bugs and must not be silently tolerated per batch.
func NewProcessor(limits Limits, ex Extractor) (*Processor, error) {
	if limits.ChunkSize <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidChunking, limits.ChunkSize)
	}
	if limits.ChunkOverlap < 0 || limits.ChunkOverlap >= limits.ChunkSize {
		return nil, fmt.Errorf("%w: overlap %d out of range [0, %d)", ErrInvalidChunking, limits.ChunkOverlap, limits.ChunkSize)
	}
	if ex == nil {
		ex = NewExtractor()
	}
	return &Processor{limits: limits, extractor: ex}, nil
}

// ProcessFiles extracts and chunks every file in the batch. Files are
// processed concurrently; Documents preserves input order regardless of
// completion order. Extraction failures degrade to an empty-content
// Document and never abort the batch, so the result is always well-formed.
func (p *Processor) ProcessFiles(ctx context.Context, files []File) Result {
	docs := make([]Document, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			docs[i] = p.processOne(gctx, f)
			return nil
		})
	}
	_ = g.Wait()

	total := 0
	for _, d := range docs {
		total += d.WordCount
	}
	return Result{Documents: docs, TotalWords: total}
}

func (p *Processor) processOne(ctx context.Context, f File) Document {
	doc := Document{Filename: f.Name(), Chunks: []Chunk{}}

	text, err := p.extractor.Extract(ctx, f)
	if err != nil {
		logger.WithFields(map[string]interface{}{
			"file":  f.Name(),
			"type":  f.ContentType(),
			"error": err.Error(),
		}).Warnf("docprep: extraction failed")
		return doc
	}

	doc.Content = text
	doc.WordCount = len(strings.Fields(text))

	chunks, err := ChunkText(text, p.limits.ChunkSize, p.limits.ChunkOverlap, f.Name())
	if err != nil {
		// Unreachable with limits vetted in NewProcessor
		logger.Error(err, "docprep: chunking failed for %s", f.Name())
		return doc
	}
	doc.Chunks = chunks
	return doc
}
