package docprep

import (
	"errors"
	"strings"
	"testing"
)

func TestChunkText_EmptyText(t *testing.T) {
	chunks, err := ChunkText("", 100, 10, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 0 {
		t.Fatalf("expected no chunks for empty text, got %d", len(chunks))
	}

	chunks, err = ChunkText("   \n\t  ", 100, 10, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 0 {
		t.Fatalf("expected no chunks for whitespace-only text, got %d", len(chunks))
	}
}

func TestChunkText_SingleChunkWhenTextFits(t *testing.T) {
	text := "hello world this fits"
	for _, overlap := range []int{0, 5, 20} {
		chunks, err := ChunkText(text, 100, overlap, "")
		if err != nil {
			t.Fatalf("overlap %d: unexpected error: %v", overlap, err)
		}
		if len(chunks) != 1 {
			t.Fatalf("overlap %d: expected exactly one chunk, got %d", overlap, len(chunks))
		}
		if chunks[0].Content != text {
			t.Fatalf("overlap %d: content = %q, want %q", overlap, chunks[0].Content, text)
		}
	}
}

func TestChunkText_RespectsSizeBound(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor sit amet ", 40)
	chunks, err := ChunkText(text, 50, 10, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for _, c := range chunks {
		if len(c.Content) > 50 {
			t.Errorf("chunk %d length %d exceeds size 50: %q", c.Index, len(c.Content), c.Content)
		}
		if c.Content == "" {
			t.Errorf("chunk %d has empty content", c.Index)
		}
	}
}

func TestChunkText_IndexesContiguousFromZero(t *testing.T) {
	text := strings.Repeat("alpha beta gamma delta ", 30)
	chunks, err := ChunkText(text, 40, 0, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, c := range chunks {
		if c.Index != i {
			t.Fatalf("chunk at position %d has index %d", i, c.Index)
		}
	}
}

func TestChunkText_OverlapCarriesTrailingWords(t *testing.T) {
	text := "aaa bbb ccc ddd eee"
	chunks, err := ChunkText(text, 7, 3, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i := 1; i < len(chunks); i++ {
		prevWords := strings.Fields(chunks[i-1].Content)
		lastWord := prevWords[len(prevWords)-1]
		if !strings.HasPrefix(chunks[i].Content, lastWord) {
			t.Errorf("chunk %d %q does not start with trailing word %q of chunk %d",
				i, chunks[i].Content, lastWord, i-1)
		}
	}
}

func TestChunkText_SizeBoundWithLargeOverlap(t *testing.T) {
	// With overlap close to chunkSize the carried seed can crowd out the
	// incoming word; multi-word chunks must still respect the budget.
	chunks, err := ChunkText("abcdefgh ij klmnop", 10, 9, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range chunks {
		if len(strings.Fields(c.Content)) > 1 && len(c.Content) > 10 {
			t.Errorf("multi-word chunk %d length %d exceeds size 10: %q", c.Index, len(c.Content), c.Content)
		}
	}

	text := strings.Repeat("lorem ipsum dolor sit amet ", 40)
	for _, overlap := range []int{45, 48, 49} {
		chunks, err := ChunkText(text, 50, overlap, "")
		if err != nil {
			t.Fatalf("overlap %d: unexpected error: %v", overlap, err)
		}
		for _, c := range chunks {
			if len(strings.Fields(c.Content)) > 1 && len(c.Content) > 50 {
				t.Errorf("overlap %d: multi-word chunk %d length %d exceeds size 50: %q",
					overlap, c.Index, len(c.Content), c.Content)
			}
		}
	}
}

func TestChunkText_ReconstructsWordSequence(t *testing.T) {
	text := "one two three four five six seven eight nine ten"
	chunks, err := ChunkText(text, 15, 0, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []string
	for _, c := range chunks {
		got = append(got, strings.Fields(c.Content)...)
	}
	want := strings.Fields(text)
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Fatalf("reconstructed %q, want %q", strings.Join(got, " "), strings.Join(want, " "))
	}
}

func TestChunkText_ReconstructsWithOverlap(t *testing.T) {
	text := "aaa bbb ccc ddd eee fff ggg"
	chunks, err := ChunkText(text, 7, 3, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	var got []string
	for i, c := range chunks {
		words := strings.Fields(c.Content)
		if i > 0 {
			prev := strings.Fields(chunks[i-1].Content)
			words = words[carriedPrefixLen(prev, words):]
		}
		got = append(got, words...)
	}
	want := strings.Fields(text)
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Fatalf("reconstructed %q, want %q", strings.Join(got, " "), strings.Join(want, " "))
	}
}

// carriedPrefixLen counts the leading words of cur that repeat the trailing
// words of prev, i.e. the overlap carried between adjacent chunks.
func carriedPrefixLen(prev, cur []string) int {
	max := len(cur)
	if len(prev) < max {
		max = len(prev)
	}
	for k := max; k > 0; k-- {
		match := true
		for j := 0; j < k; j++ {
			if prev[len(prev)-k+j] != cur[j] {
				match = false
				break
			}
		}
		if match {
			return k
		}
	}
	return 0
}

func TestChunkText_DropsSentencePunctuation(t *testing.T) {
	chunks, err := ChunkText("Hello world. Goodbye!", 100, 0, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 1 {
		t.Fatalf("expected one chunk, got %d", len(chunks))
	}
	if chunks[0].Content != "Hello world Goodbye" {
		t.Fatalf("content = %q, want %q", chunks[0].Content, "Hello world Goodbye")
	}
}

func TestChunkText_LongWordGetsOwnOversizedChunk(t *testing.T) {
	text := "tiny " + strings.Repeat("x", 30) + " tiny"
	chunks, err := ChunkText(text, 10, 0, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, c := range chunks {
		if strings.Contains(c.Content, strings.Repeat("x", 30)) {
			found = true
		}
	}
	if !found {
		t.Fatalf("oversized word missing from chunks: %+v", chunks)
	}
}

func TestChunkText_SourceTagging(t *testing.T) {
	chunks, err := ChunkText("some text", 100, 0, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chunks[0].Source != DefaultSource {
		t.Fatalf("default source = %q, want %q", chunks[0].Source, DefaultSource)
	}

	chunks, err = ChunkText("some text", 100, 0, "handbook.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chunks[0].Source != "handbook.pdf" {
		t.Fatalf("source = %q, want handbook.pdf", chunks[0].Source)
	}
}

func TestChunkText_InvalidArguments(t *testing.T) {
	cases := []struct {
		name    string
		size    int
		overlap int
	}{
		{"zero size", 0, 0},
		{"negative size", -5, 0},
		{"negative overlap", 100, -1},
		{"overlap equals size", 100, 100},
		{"overlap exceeds size", 100, 150},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ChunkText("some text", tc.size, tc.overlap, "")
			if err == nil {
				t.Fatalf("expected error for size=%d overlap=%d", tc.size, tc.overlap)
			}
			if !errors.Is(err, ErrInvalidChunking) {
				t.Fatalf("expected ErrInvalidChunking, got %v", err)
			}
		})
	}
}
