// ABOUTME: Error types for the inference service client
// ABOUTME: Rate limiting is the only error class that triggers retry
package llm

import "fmt"

// RateLimitError reports an HTTP 429 from the inference service. It is the
// only error the retry loop acts on.
type RateLimitError struct {
	Message string
}

func (e *RateLimitError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("inference service rate limited the request (%s); wait a moment and retry", e.Message)
	}
	return "inference service rate limited the request; wait a moment and retry"
}

// APIError reports any other failed inference call: non-429 HTTP errors,
// embedded API error objects, and responses with no choices.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("inference service error (status %d): %s", e.Status, e.Message)
}
