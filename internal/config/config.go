// ABOUTME: Centralized configuration for the doctalk pipeline
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the document pipeline
type Config struct {
	// Answer provider (general-purpose, single-shot question answering)
	OpenAIKey   string
	AnswerModel string

	// Synthesis provider (fast, OpenAI-compatible endpoint for multi-step flows)
	FastAPIKey  string
	FastBaseURL string
	FastModel   string

	// Embedding settings
	EmbeddingModel  string
	SemanticEnabled bool
	EmbedTimeout    time.Duration

	// Retrieval settings
	ChunkSize    int
	ChunkOverlap int
	TopK         int

	// Orchestration settings
	SummaryBudget  int
	SynthesisDelay time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		AnswerModel:     getEnv("DOCTALK_ANSWER_MODEL", "gpt-4o-mini"),
		FastAPIKey:      os.Getenv("DOCTALK_FAST_API_KEY"),
		FastBaseURL:     getEnv("DOCTALK_FAST_BASE_URL", "https://api.groq.com/openai/v1"),
		FastModel:       getEnv("DOCTALK_FAST_MODEL", "llama-3.1-8b-instant"),
		EmbeddingModel:  getEnv("DOCTALK_EMBEDDING_MODEL", "text-embedding-3-small"),
		SemanticEnabled: getEnvBool("DOCTALK_SEMANTIC", true),
		EmbedTimeout:    getEnvDuration("DOCTALK_EMBED_TIMEOUT", 30*time.Second),
		ChunkSize:       getEnvInt("DOCTALK_CHUNK_SIZE", 200),
		ChunkOverlap:    getEnvInt("DOCTALK_CHUNK_OVERLAP", 40),
		TopK:            getEnvInt("DOCTALK_TOP_K", 3),
		SummaryBudget:   getEnvInt("DOCTALK_SUMMARY_BUDGET", 3000),
		SynthesisDelay:  getEnvDuration("DOCTALK_SYNTHESIS_DELAY", 2*time.Second),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("DOCTALK_CHUNK_SIZE must be positive, got %d", c.ChunkSize)
	}
	if c.ChunkOverlap < 0 || c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("DOCTALK_CHUNK_OVERLAP must be in [0, chunk size), got %d", c.ChunkOverlap)
	}
	if c.TopK <= 0 {
		return fmt.Errorf("DOCTALK_TOP_K must be positive, got %d", c.TopK)
	}
	if c.SummaryBudget <= 0 {
		return fmt.Errorf("DOCTALK_SUMMARY_BUDGET must be positive, got %d", c.SummaryBudget)
	}
	return nil
}

// SynthesisKey returns the API key for the synthesis provider, falling back to
// the answer provider's key when no dedicated key is configured.
func (c *Config) SynthesisKey() string {
	if c.FastAPIKey != "" {
		return c.FastAPIKey
	}
	return c.OpenAIKey
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v == "true" || v == "1"
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
