// ABOUTME: Error types raised by document operations
// ABOUTME: These surface to the caller unchanged; no retry applies to them
package core

import "fmt"

// EmptyDocumentError means ingestion produced no text. Fatal to that upload,
// other uploads are unaffected.
type EmptyDocumentError struct {
	Name string
}

func (e *EmptyDocumentError) Error() string {
	return fmt.Sprintf("document %q has no extractable text; try a different file or format", e.Name)
}

// InsufficientDocumentsError means an operation was asked to run over fewer
// documents than it needs.
type InsufficientDocumentsError struct {
	Required int
	Got      int
}

func (e *InsufficientDocumentsError) Error() string {
	return fmt.Sprintf("operation requires at least %d document(s), got %d", e.Required, e.Got)
}
