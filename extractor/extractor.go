// Package extractor turns uploaded document bytes into plain text.
package extractor

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Format is an accepted upload type, named by its lowercase extension
type Format string

const (
	FormatTXT  Format = "txt"
	FormatPDF  Format = "pdf"
	FormatDOC  Format = "doc"
	FormatDOCX Format = "docx"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file type")
	ErrEmptyDocument     = errors.New("document contains no text")
)

// SupportedFormats lists the accepted extensions in display order
func SupportedFormats() []Format {
	return []Format{FormatTXT, FormatPDF, FormatDOC, FormatDOCX}
}

// FormatFromFilename picks the format from the text after the last dot
func FormatFromFilename(filename string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	for _, f := range SupportedFormats() {
		if Format(ext) == f {
			return f, nil
		}
	}
	if ext == "" {
		return "", fmt.Errorf("%w: missing extension", ErrUnsupportedFormat)
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
}

// Extract returns the text content of data, or ErrEmptyDocument when it has
// none. Legacy .doc files are read as plain text, the same way .txt files are.
func Extract(format Format, data []byte) (string, error) {
	var (
		text string
		err  error
	)
	switch format {
	case FormatTXT, FormatDOC:
		text, err = decodeText(data)
	case FormatDOCX:
		text, err = extractDOCX(data)
	case FormatPDF:
		text, err = extractPDF(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyDocument
	}
	return text, nil
}

// decodeText reads UTF-8 and falls back to Latin-1, which accepts any byte sequence
func decodeText(data []byte) (string, error) {
	if utf8.Valid(data) {
		return strings.TrimPrefix(string(data), "\ufeff"), nil
	}
	text, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode text: %w", err)
	}
	return string(text), nil
}
