package docprep

import (
	"fmt"
	"strings"
)

// DefaultContextMaxChars bounds the assembled context when the caller passes
// a non-positive budget.
const DefaultContextMaxChars = 8000

// BuildContext concatenates every document's chunk contents into one string
// for prompt injection: a labeled section per document, in input order,
// truncated to maxChars runes. Truncation may cut mid-word; callers needing
// clean cuts must choose a generous budget.
func BuildContext(docs []Document, maxChars int) string {
	if maxChars <= 0 {
		maxChars = DefaultContextMaxChars
	}
	if len(docs) == 0 {
		return ""
	}

	sections := make([]string, 0, len(docs))
	for _, d := range docs {
		parts := make([]string, 0, len(d.Chunks))
		for _, c := range d.Chunks {
			parts = append(parts, c.Content)
		}
		sections = append(sections, fmt.Sprintf("[Document: %s]\n%s", d.Filename, strings.Join(parts, "\n")))
	}

	out := strings.Join(sections, "\n\n")
	runes := []rune(out)
	if len(runes) > maxChars {
		out = string(runes[:maxChars])
	}
	return out
}
