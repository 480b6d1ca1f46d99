// Package extract pulls plain text out of uploaded résumé documents.
// It is a best-effort front-end: callers get text, or an empty string for
// unsupported or unreadable input, never a panic.
package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Text extracts plain text from a document identified by filename
// extension. Unsupported formats and extraction failures yield "",
// matching the collaborator contract the analyzer is written against.
func Text(filename string, data []byte) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err := PDFText(data)
		if err != nil {
			return ""
		}
		return text
	case ".docx":
		text, err := DocxText(data)
		if err != nil {
			return ""
		}
		return text
	case ".txt", ".md":
		return string(data)
	default:
		return ""
	}
}

// PDFText extracts the concatenated page text of a PDF document.
func PDFText(data []byte) (text string, err error) {
	// The pdf library can panic on malformed files; keep that inside
	// the extraction boundary.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("pdf extraction panicked: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue // best effort: skip unreadable pages
		}
		b.WriteString(pageText)
	}
	return b.String(), nil
}

// DocxText extracts the document body text of a DOCX file.
func DocxText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("docx extraction panicked: %v", r)
		}
	}()

	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return stripDocxTags(doc.Editable().GetContent()), nil
}

// stripDocxTags removes the WordprocessingML markup the docx library
// leaves in the raw content string.
func stripDocxTags(content string) string {
	var b strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
			b.WriteByte(' ')
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
