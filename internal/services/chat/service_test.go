package chat

import (
	"strings"
	"testing"
)

func TestBuildPrompt_InjectsContext(t *testing.T) {
	ctxStr := "[Document: faq.md]\nrefunds take a week"
	sys, user := buildPrompt("Acme Support", "how long do refunds take", ctxStr)

	if !strings.Contains(sys, "Acme Support") {
		t.Fatalf("system prompt missing bot name: %q", sys)
	}
	if !strings.Contains(sys, ctxStr) {
		t.Fatalf("system prompt missing document context: %q", sys)
	}
	if user != "how long do refunds take" {
		t.Fatalf("user message = %q", user)
	}
}

func TestBuildPrompt_NoDocuments(t *testing.T) {
	sys, _ := buildPrompt("Acme Support", "hello", "")
	if !strings.Contains(sys, "No documents") {
		t.Fatalf("expected empty-context notice, got %q", sys)
	}
	if strings.Contains(sys, "Documents:\n") {
		t.Fatalf("unexpected documents section for empty context: %q", sys)
	}
}
