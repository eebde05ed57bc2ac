package docprep

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// Extractor turns one file into raw text. Implementations are safe for
// concurrent use; the processor calls Extract from multiple goroutines.
type Extractor interface {
	Extract(ctx context.Context, f File) (string, error)
}

type extractor struct{}

// NewExtractor returns the default extractor: PDF via ledongthuc/pdf, DOCX
// via the embedded word/document.xml, TXT and Markdown read directly.
func NewExtractor() Extractor { return extractor{} }

func (extractor) Extract(ctx context.Context, f File) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	rc, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", f.Name(), err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", f.Name(), err)
	}

	switch f.ContentType() {
	case TypePDF:
		return extractPDF(data)
	case TypeDocx:
		return extractDocx(data)
	case TypeText, TypeMarkdown:
		return extractPlain(data)
	default:
		return "", fmt.Errorf("no extractor for content type %q", f.ContentType())
	}
}

func extractPlain(data []byte) (string, error) {
	content := sanitizeUTF8Printable(string(data))
	if content == "" {
		return "", errors.New("empty content")
	}
	return content, nil
}

func extractPDF(data []byte) (out string, err error) {
	// The pdf reader panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			out = ""
			err = fmt.Errorf("pdf extraction panic: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var b strings.Builder
	totalPage := r.NumPage()
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		p := r.Page(pageIndex)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			// Failed pages are skipped, not fatal
			continue
		}
		b.WriteString(text)
		b.WriteString("\n\n")
	}

	content := sanitizeUTF8Printable(b.String())
	if content == "" {
		return "", errors.New("empty content")
	}
	return content, nil
}

func extractDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", errors.New("docx: missing word/document.xml")
	}
	rc, err := docFile.Open()
	if err != nil {
		return "", fmt.Errorf("docx: %w", err)
	}
	defer rc.Close()

	dec := xml.NewDecoder(rc)
	var b strings.Builder
	inText := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("docx: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}

	content := sanitizeUTF8Printable(b.String())
	if content == "" {
		return "", errors.New("empty content")
	}
	return content, nil
}

// sanitizeUTF8Printable removes BOM and non-printable runes, keeping common whitespace.
func sanitizeUTF8Printable(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\uFEFF' { // BOM
			continue
		}
		if r == unicode.ReplacementChar { // U+FFFD
			continue
		}
		if r == '\n' || r == '\t' || r == '\r' {
			// keep
		} else if !unicode.IsPrint(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
