// ABOUTME: Chunker splits document text into overlapping word windows
// ABOUTME: Deterministic pure splitting; windows advance by size minus overlap
package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/harper/doctalk/internal/models"
)

// Chunker produces word-window chunks with a fixed size and overlap.
type Chunker struct {
	size    int
	overlap int
}

// NewChunker validates the window geometry. The step (size - overlap) must be
// positive or windows would never advance.
func NewChunker(size, overlap int) (*Chunker, error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", size)
	}
	if overlap < 0 || overlap >= size {
		return nil, fmt.Errorf("chunk overlap must be in [0, size), got %d", overlap)
	}
	return &Chunker{size: size, overlap: overlap}, nil
}

// Split chunks a document's text, back-referencing chunks by document ID.
// Chunk order matches text order.
func (c *Chunker) Split(doc *models.Document) []models.Chunk {
	windows := SplitWords(doc.Text, c.size, c.overlap)
	chunks := make([]models.Chunk, 0, len(windows))
	for i, text := range windows {
		chunks = append(chunks, models.Chunk{
			ID:         "chunk_" + uuid.New().String(),
			DocumentID: doc.ID,
			Position:   i,
			Text:       text,
		})
	}
	return chunks
}

// SplitWords splits text into trimmed, non-empty word windows of `size` words
// advancing by `size - overlap`. Empty windows are dropped.
func SplitWords(text string, size, overlap int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	step := size - overlap
	if step <= 0 {
		return nil
	}

	var windows []string
	for start := 0; start < len(words); start += step {
		end := start + size
		if end > len(words) {
			end = len(words)
		}

		window := strings.TrimSpace(strings.Join(words[start:end], " "))
		if window != "" {
			windows = append(windows, window)
		}

		if end == len(words) {
			break
		}
	}
	return windows
}
