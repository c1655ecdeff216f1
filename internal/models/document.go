// ABOUTME: Document and Chunk models for uploaded files
// ABOUTME: Documents are immutable after upload and live only for the session
package models

// Document represents one uploaded file after text extraction.
type Document struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Text      string            `json:"text"`
	Chunks    []Chunk           `json:"chunks"`
	TypeLabel string            `json:"type_label,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// Chunk is a word-bounded window of a document's text. Chunks back-reference
// their document by ID, never by pointer, and keep their position in text order.
type Chunk struct {
	ID         string `json:"chunk_id"`
	DocumentID string `json:"document_id"`
	Position   int    `json:"position"`
	Text       string `json:"text"`
}

// EmbeddedChunk pairs a chunk's text with its embedding vector. Instances are
// appended to the session store once and never mutated.
type EmbeddedChunk struct {
	Text         string    `json:"text"`
	Vector       []float64 `json:"vector"`
	DocumentID   string    `json:"document_id"`
	DocumentName string    `json:"document_name"`
}
