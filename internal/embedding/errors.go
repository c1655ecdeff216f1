// ABOUTME: Error types for the embedding worker and client
// ABOUTME: All of these are recoverable by falling back to lexical ranking
package embedding

import (
	"fmt"
	"time"
)

// InitError means the worker could not be constructed. Semantic retrieval is
// unavailable for the session, but the host keeps running.
type InitError struct {
	Reason string
}

func (e *InitError) Error() string {
	return fmt.Sprintf("embedding worker initialization failed: %s", e.Reason)
}

// TimeoutError means a single embed call exceeded its deadline.
type TimeoutError struct {
	After time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("embedding request timed out after %s", e.After)
}

// WorkerError carries an error message reported by the worker.
type WorkerError struct {
	Message string
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("embedding worker error: %s", e.Message)
}
