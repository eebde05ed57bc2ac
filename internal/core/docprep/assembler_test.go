package docprep

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func docWithChunks(name string, contents ...string) Document {
	d := Document{Filename: name}
	for i, c := range contents {
		d.Chunks = append(d.Chunks, Chunk{Content: c, Index: i, Source: name})
	}
	return d
}

func TestBuildContext_Empty(t *testing.T) {
	if got := BuildContext(nil, 1000); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	if got := BuildContext([]Document{}, 1000); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestBuildContext_ContainsFilenamesAndContentInOrder(t *testing.T) {
	docs := []Document{
		docWithChunks("pricing.pdf", "our plans start at ten dollars"),
		docWithChunks("faq.md", "refunds are processed within a week"),
	}

	out := BuildContext(docs, 10000)

	for _, want := range []string{"pricing.pdf", "faq.md", "our plans start", "refunds are processed"} {
		if !strings.Contains(out, want) {
			t.Fatalf("context missing %q: %q", want, out)
		}
	}
	if strings.Index(out, "pricing.pdf") > strings.Index(out, "faq.md") {
		t.Fatalf("documents out of order: %q", out)
	}
}

func TestBuildContext_JoinsChunksPerDocument(t *testing.T) {
	docs := []Document{docWithChunks("guide.txt", "part one", "part two")}
	out := BuildContext(docs, 10000)
	if !strings.Contains(out, "part one") || !strings.Contains(out, "part two") {
		t.Fatalf("chunks not joined: %q", out)
	}
}

func TestBuildContext_TruncatesToBudget(t *testing.T) {
	docs := []Document{
		docWithChunks("big.txt", strings.Repeat("word ", 500)),
	}
	for _, budget := range []int{1, 25, 100, 1000} {
		out := BuildContext(docs, budget)
		if n := utf8.RuneCountInString(out); n > budget {
			t.Fatalf("budget %d: context length %d exceeds it", budget, n)
		}
	}
}

func TestBuildContext_DefaultBudget(t *testing.T) {
	docs := []Document{
		docWithChunks("big.txt", strings.Repeat("word ", 5000)),
	}
	out := BuildContext(docs, 0)
	if n := utf8.RuneCountInString(out); n > DefaultContextMaxChars {
		t.Fatalf("default budget exceeded: %d", n)
	}
	if out == "" {
		t.Fatal("expected non-empty context")
	}
}
