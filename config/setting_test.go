package config

import "testing"

func TestUploadDefaults(t *testing.T) {
	u := defaultConfig.Upload
	if u.MaxFiles != 5 {
		t.Fatalf("max files = %d, want 5", u.MaxFiles)
	}
	if u.MaxFileBytes() != 5<<20 {
		t.Fatalf("max file bytes = %d, want %d", u.MaxFileBytes(), 5<<20)
	}
	if u.ChunkSize <= 0 || u.ChunkOverlap < 0 || u.ChunkOverlap >= u.ChunkSize {
		t.Fatalf("invalid default chunking parameters: size=%d overlap=%d", u.ChunkSize, u.ChunkOverlap)
	}
	if u.ContextMaxChars <= 0 {
		t.Fatalf("context budget = %d", u.ContextMaxChars)
	}
}
