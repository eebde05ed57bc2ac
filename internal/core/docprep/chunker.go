package docprep

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// DefaultSource tags chunks whose caller did not name an originating document.
const DefaultSource = "document"

// ErrInvalidChunking marks caller bugs (bad size/overlap), not bad input data.
var ErrInvalidChunking = errors.New("invalid chunking parameters")

// Sentence punctuation is a plain separator and is dropped from chunk
// content. Lossy for tokens like "3.14"; accepted trade-off.
func isWordSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == '.' || r == '!' || r == '?'
}

// ChunkText splits text into ordered overlapping windows of whole words.
// Words accumulate until the next one would push the joined length past
// chunkSize; the next window is then seeded with the trailing whole words
// that fit in overlap characters. A single word longer than chunkSize
// occupies an oversized chunk of its own. Empty text yields no chunks.
func ChunkText(text string, chunkSize, overlap int, source string) ([]Chunk, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidChunking, chunkSize)
	}
	if overlap < 0 || overlap >= chunkSize {
		return nil, fmt.Errorf("%w: overlap %d out of range [0, %d)", ErrInvalidChunking, overlap, chunkSize)
	}
	if source == "" {
		source = DefaultSource
	}

	words := strings.FieldsFunc(text, isWordSeparator)
	if len(words) == 0 {
		return []Chunk{}, nil
	}

	var chunks []Chunk
	var current []string
	currentLen := 0

	flush := func() {
		chunks = append(chunks, Chunk{
			Content: strings.Join(current, " "),
			Index:   len(chunks),
			Source:  source,
		})
	}

	for _, w := range words {
		added := len(w)
		if len(current) > 0 {
			added++ // joining space
		}
		if len(current) > 0 && currentLen+added > chunkSize {
			flush()
			current, currentLen = carryTail(current, overlap)
			added = len(w)
			if len(current) > 0 {
				added++
			}
			// The seed plus the incoming word must still fit the budget;
			// drop carried words from the front until it does.
			for len(current) > 0 && currentLen+added > chunkSize {
				currentLen -= len(current[0])
				current = current[1:]
				if len(current) > 0 {
					currentLen--
				} else {
					added = len(w)
				}
			}
		}
		current = append(current, w)
		currentLen += added
	}
	flush()

	return chunks, nil
}

// carryTail returns the trailing whole words of a closed chunk whose joined
// length fits within overlap characters, along with that length. Partial
// words are never carried.
func carryTail(words []string, overlap int) ([]string, int) {
	if overlap <= 0 {
		return nil, 0
	}
	carried := 0
	length := 0
	for i := len(words) - 1; i >= 0; i-- {
		add := len(words[i])
		if carried > 0 {
			add++
		}
		if length+add > overlap {
			break
		}
		length += add
		carried++
	}
	if carried == 0 {
		return nil, 0
	}
	tail := make([]string, carried)
	copy(tail, words[len(words)-carried:])
	return tail, length
}
