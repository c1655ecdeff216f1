// ABOUTME: Provider-agnostic chat client over OpenAI-compatible endpoints
// ABOUTME: One implementation serves both the answer and synthesis providers
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/harper/doctalk/internal/util"
	openai "github.com/sashabaranov/go-openai"
)

// Message is one role-tagged chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Convenience constructors for the two roles the pipeline uses.
func System(content string) Message { return Message{Role: openai.ChatMessageRoleSystem, Content: content} }
func User(content string) Message   { return Message{Role: openai.ChatMessageRoleUser, Content: content} }

// ChatOptions shape a single completion request.
type ChatOptions struct {
	Temperature float32
	MaxTokens   int
}

// RetryPolicy bounds retries on rate limiting. Attempts beyond the delay
// schedule reuse its last entry; an empty schedule retries immediately.
type RetryPolicy struct {
	MaxAttempts int
	Delays      []time.Duration
}

// Per-operation policies. The source flows intentionally differ: single-shot
// answering fails fast, cheap summaries retry without pause, and synthesis
// calls back off hard because they follow a burst of summary calls.
var (
	AnswerPolicy    = RetryPolicy{MaxAttempts: 1}
	SummaryPolicy   = RetryPolicy{MaxAttempts: 2}
	SynthesisPolicy = RetryPolicy{MaxAttempts: 3, Delays: []time.Duration{10 * time.Second, 30 * time.Second}}
)

// Config holds configuration for one inference provider.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Client issues chat completions against one OpenAI-compatible provider.
type Client struct {
	client *openai.Client
	model  string
}

// New creates a chat client for the given provider.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("llm: API key is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("llm: model is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
	}, nil
}

// Chat issues exactly one completion call. HTTP 429 maps to RateLimitError,
// other non-2xx statuses and empty choice lists map to APIError, and
// transport failures propagate as-is.
func (c *Client) Chat(ctx context.Context, messages []Message, opts ChatOptions) (string, error) {
	chatMessages := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		chatMessages[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    chatMessages,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return "", classifyError(err)
	}

	if len(resp.Choices) == 0 {
		return "", &APIError{Status: http.StatusOK, Message: "no completion choices returned"}
	}

	return resp.Choices[0].Message.Content, nil
}

// ChatWithRetry runs Chat under the given policy, retrying only on rate
// limiting. Exhausting the budget surfaces the last rate-limit error.
func (c *Client) ChatWithRetry(ctx context.Context, messages []Message, opts ChatOptions, policy RetryPolicy) (string, error) {
	attempts := policy.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			if !util.Sleep(util.DelayForAttempt(policy.Delays, attempt-1), ctx.Done()) {
				return "", ctx.Err()
			}
		}

		content, err := c.Chat(ctx, messages, opts)
		if err == nil {
			return content, nil
		}

		var rateLimited *RateLimitError
		if !errors.As(err, &rateLimited) {
			return "", err
		}
		lastErr = err
	}

	return "", lastErr
}

// classifyError maps go-openai errors onto the pipeline's taxonomy. The
// library reports JSON error bodies as APIError and everything else as
// RequestError, so both must be inspected for status 429.
func classifyError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return &RateLimitError{Message: apiErr.Message}
		}
		return &APIError{Status: apiErr.HTTPStatusCode, Message: apiErr.Message}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.HTTPStatusCode == http.StatusTooManyRequests {
			return &RateLimitError{Message: reqErr.Error()}
		}
		return &APIError{Status: reqErr.HTTPStatusCode, Message: reqErr.Error()}
	}

	return err
}
