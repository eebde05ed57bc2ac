package docprep

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestExtract_PlainText(t *testing.T) {
	ex := NewExtractor()
	got, err := ex.Extract(context.Background(), textFile("a.txt", "plain text content"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "plain text content" {
		t.Fatalf("got %q", got)
	}
}

func TestExtract_MarkdownReadDirectly(t *testing.T) {
	ex := NewExtractor()
	md := "# Heading\n\nSome body text"
	got, err := ex.Extract(context.Background(), fakeFile{
		name: "readme.md", ctype: TypeMarkdown, size: int64(len(md)), data: md,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != md {
		t.Fatalf("got %q, want %q", got, md)
	}
}

func TestExtract_StripsBOMAndControlRunes(t *testing.T) {
	ex := NewExtractor()
	raw := "\uFEFFhello\x00 world\x07"
	got, err := ex.Extract(context.Background(), fakeFile{
		name: "weird.txt", ctype: TypeText, size: int64(len(raw)), data: raw,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello world" {
		t.Fatalf("got %q, want %q", got, "hello world")
	}
}

func TestExtract_EmptyTextFails(t *testing.T) {
	ex := NewExtractor()
	if _, err := ex.Extract(context.Background(), textFile("blank.txt", "   \n  ")); err == nil {
		t.Fatal("expected error for whitespace-only file")
	}
}

func TestExtract_Docx(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("zip create: %v", err)
	}
	_, _ = w.Write([]byte(`<?xml version="1.0"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` +
		`<w:p><w:r><w:t>First paragraph</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Second paragraph</w:t></w:r></w:p>` +
		`</w:body></w:document>`))
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}

	ex := NewExtractor()
	got, err := ex.Extract(context.Background(), fakeFile{
		name:  "report.docx",
		ctype: TypeDocx,
		size:  int64(buf.Len()),
		data:  buf.String(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "First paragraph") || !strings.Contains(got, "Second paragraph") {
		t.Fatalf("extracted text missing paragraphs: %q", got)
	}
	if strings.Index(got, "First") > strings.Index(got, "Second") {
		t.Fatalf("paragraph order lost: %q", got)
	}
}

func TestExtract_DocxWithoutDocumentXMLFails(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("other.xml")
	_, _ = w.Write([]byte("<x/>"))
	_ = zw.Close()

	ex := NewExtractor()
	_, err := ex.Extract(context.Background(), fakeFile{
		name: "bad.docx", ctype: TypeDocx, size: int64(buf.Len()), data: buf.String(),
	})
	if err == nil {
		t.Fatal("expected error for docx without word/document.xml")
	}
}

func TestExtract_CorruptPDFFails(t *testing.T) {
	ex := NewExtractor()
	_, err := ex.Extract(context.Background(), fakeFile{
		name: "junk.pdf", ctype: TypePDF, size: 9, data: "not a pdf",
	})
	if err == nil {
		t.Fatal("expected error for corrupt pdf")
	}
}

func TestExtract_UnknownTypeFails(t *testing.T) {
	ex := NewExtractor()
	_, err := ex.Extract(context.Background(), fakeFile{
		name: "a.zip", ctype: "application/zip", size: 2, data: "zz",
	})
	if err == nil {
		t.Fatal("expected error for unsupported content type")
	}
}
