// ABOUTME: Embedding client owning the worker as a scoped resource
// ABOUTME: Lazy guarded initialization, per-call timeout, explicit teardown
package embedding

import (
	"context"
	"log"
	"sync"
	"time"
)

// DefaultTimeout bounds a single embed call, including worker queueing.
const DefaultTimeout = 30 * time.Second

// Config holds configuration for the embedding client.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client provides embed(text) -> vector over the isolated worker. The worker
// is constructed lazily on first use and lives until Close.
type Client struct {
	cfg Config

	initOnce sync.Once
	initErr  error
	w        *worker
}

// NewClient creates an embedding client. The worker is not started until the
// first Embed call, so construction never fails.
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{cfg: cfg}
}

// Embed produces the embedding vector for text. It fails with TimeoutError
// after the configured deadline, abandoning its reply listener so the worker
// never blocks on it. Progress messages are logged and never resolve the call.
func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	c.initOnce.Do(func() {
		c.w, c.initErr = newWorker(c.cfg.APIKey, c.cfg.BaseURL, c.cfg.Model)
	})
	if c.initErr != nil {
		return nil, c.initErr
	}

	// Buffered so the worker's progress + result never block after we leave.
	reply := make(chan message, 4)

	timer := time.NewTimer(c.cfg.Timeout)
	defer timer.Stop()

	select {
	case c.w.requests <- embedRequest{text: text, reply: reply}:
	case <-timer.C:
		return nil, &TimeoutError{After: c.cfg.Timeout}
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	for {
		select {
		case msg := <-reply:
			switch msg.kind {
			case progressMessage:
				log.Printf("[embedding] %s", msg.info)
			case errorMessage:
				return nil, &WorkerError{Message: msg.errMsg}
			case resultMessage:
				return msg.vector, nil
			}
		case <-timer.C:
			return nil, &TimeoutError{After: c.cfg.Timeout}
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// Close tears the worker down at session end. Safe to call when the worker
// was never started.
func (c *Client) Close() {
	c.initOnce.Do(func() {
		c.initErr = &InitError{Reason: "client closed before first use"}
	})
	if c.w != nil {
		c.w.stop()
	}
}
