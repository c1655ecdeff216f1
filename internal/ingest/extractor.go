// ABOUTME: Document ingestion collaborator turning file-like input into plain text
// ABOUTME: Plain text and markdown extractors selected by file extension
package ingest

import (
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
)

// Extracted is the output of one ingestion: plain text plus a human-readable
// type label and optional metadata.
type Extracted struct {
	Text      string
	TypeLabel string
	Metadata  map[string]string
}

// Extractor turns raw file-like input into extracted plain text.
type Extractor interface {
	Extract(r io.Reader, filename string) (*Extracted, error)
}

// ForFilename selects an extractor by extension. Unknown extensions are
// treated as plain text.
func ForFilename(name string) Extractor {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return &Markdown{}
	default:
		return &PlainText{}
	}
}

// PlainText passes file contents through unchanged.
type PlainText struct{}

func (p *PlainText) Extract(r io.Reader, filename string) (*Extracted, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	text := string(data)
	return &Extracted{
		Text:      text,
		TypeLabel: "Plain text",
		Metadata: map[string]string{
			"extension": filepath.Ext(filename),
			"words":     fmt.Sprintf("%d", len(strings.Fields(text))),
		},
	}, nil
}

var (
	codeFencePattern = regexp.MustCompile("(?s)```.*?```")
	headingPattern   = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	linkPattern      = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	emphasisPattern  = regexp.MustCompile(`(\*\*|__|\*|_|` + "`" + `)`)
)

// Markdown strips markup so chunking and ranking see prose, not syntax.
type Markdown struct{}

func (m *Markdown) Extract(r io.Reader, filename string) (*Extracted, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}

	text := string(data)
	text = codeFencePattern.ReplaceAllString(text, "")
	text = headingPattern.ReplaceAllString(text, "")
	text = linkPattern.ReplaceAllString(text, "$1")
	text = emphasisPattern.ReplaceAllString(text, "")

	return &Extracted{
		Text:      text,
		TypeLabel: "Markdown",
		Metadata: map[string]string{
			"extension": filepath.Ext(filename),
			"words":     fmt.Sprintf("%d", len(strings.Fields(text))),
		},
	}, nil
}
