// ABOUTME: Tests for centralized configuration system
// ABOUTME: Verifies environment variable parsing and validation
package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear environment to test defaults
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.AnswerModel != "gpt-4o-mini" {
		t.Errorf("AnswerModel = %s, want gpt-4o-mini", cfg.AnswerModel)
	}
	if cfg.FastBaseURL != "https://api.groq.com/openai/v1" {
		t.Errorf("FastBaseURL = %s, want https://api.groq.com/openai/v1", cfg.FastBaseURL)
	}
	if cfg.FastModel != "llama-3.1-8b-instant" {
		t.Errorf("FastModel = %s, want llama-3.1-8b-instant", cfg.FastModel)
	}
	if cfg.EmbeddingModel != "text-embedding-3-small" {
		t.Errorf("EmbeddingModel = %s, want text-embedding-3-small", cfg.EmbeddingModel)
	}
	if !cfg.SemanticEnabled {
		t.Error("SemanticEnabled = false, want true")
	}
	if cfg.EmbedTimeout != 30*time.Second {
		t.Errorf("EmbedTimeout = %v, want 30s", cfg.EmbedTimeout)
	}
	if cfg.ChunkSize != 200 {
		t.Errorf("ChunkSize = %d, want 200", cfg.ChunkSize)
	}
	if cfg.ChunkOverlap != 40 {
		t.Errorf("ChunkOverlap = %d, want 40", cfg.ChunkOverlap)
	}
	if cfg.TopK != 3 {
		t.Errorf("TopK = %d, want 3", cfg.TopK)
	}
	if cfg.SummaryBudget != 3000 {
		t.Errorf("SummaryBudget = %d, want 3000", cfg.SummaryBudget)
	}
	if cfg.SynthesisDelay != 2*time.Second {
		t.Errorf("SynthesisDelay = %v, want 2s", cfg.SynthesisDelay)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Clearenv()
	os.Setenv("OPENAI_API_KEY", "test-key")
	os.Setenv("DOCTALK_ANSWER_MODEL", "gpt-4")
	os.Setenv("DOCTALK_FAST_API_KEY", "fast-key")
	os.Setenv("DOCTALK_FAST_BASE_URL", "https://example.com/v1")
	os.Setenv("DOCTALK_FAST_MODEL", "llama-3.3-70b-versatile")
	os.Setenv("DOCTALK_SEMANTIC", "false")
	os.Setenv("DOCTALK_EMBED_TIMEOUT", "10s")
	os.Setenv("DOCTALK_CHUNK_SIZE", "500")
	os.Setenv("DOCTALK_CHUNK_OVERLAP", "100")
	os.Setenv("DOCTALK_TOP_K", "5")
	os.Setenv("DOCTALK_SUMMARY_BUDGET", "2000")
	os.Setenv("DOCTALK_SYNTHESIS_DELAY", "500ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.OpenAIKey != "test-key" {
		t.Errorf("OpenAIKey = %s, want test-key", cfg.OpenAIKey)
	}
	if cfg.AnswerModel != "gpt-4" {
		t.Errorf("AnswerModel = %s, want gpt-4", cfg.AnswerModel)
	}
	if cfg.FastAPIKey != "fast-key" {
		t.Errorf("FastAPIKey = %s, want fast-key", cfg.FastAPIKey)
	}
	if cfg.FastBaseURL != "https://example.com/v1" {
		t.Errorf("FastBaseURL = %s, want https://example.com/v1", cfg.FastBaseURL)
	}
	if cfg.SemanticEnabled {
		t.Error("SemanticEnabled = true, want false")
	}
	if cfg.EmbedTimeout != 10*time.Second {
		t.Errorf("EmbedTimeout = %v, want 10s", cfg.EmbedTimeout)
	}
	if cfg.ChunkSize != 500 {
		t.Errorf("ChunkSize = %d, want 500", cfg.ChunkSize)
	}
	if cfg.ChunkOverlap != 100 {
		t.Errorf("ChunkOverlap = %d, want 100", cfg.ChunkOverlap)
	}
	if cfg.TopK != 5 {
		t.Errorf("TopK = %d, want 5", cfg.TopK)
	}
	if cfg.SynthesisDelay != 500*time.Millisecond {
		t.Errorf("SynthesisDelay = %v, want 500ms", cfg.SynthesisDelay)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"zero chunk size", "DOCTALK_CHUNK_SIZE", "0"},
		{"negative overlap", "DOCTALK_CHUNK_OVERLAP", "-1"},
		{"overlap equals size", "DOCTALK_CHUNK_OVERLAP", "200"},
		{"zero top k", "DOCTALK_TOP_K", "0"},
		{"zero summary budget", "DOCTALK_SUMMARY_BUDGET", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			os.Setenv(tt.key, tt.val)

			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%s should fail", tt.key, tt.val)
			}
		})
	}
}

func TestSynthesisKey_Fallback(t *testing.T) {
	cfg := &Config{OpenAIKey: "general"}
	if got := cfg.SynthesisKey(); got != "general" {
		t.Errorf("SynthesisKey() = %q, want fallback to general key", got)
	}

	cfg.FastAPIKey = "fast"
	if got := cfg.SynthesisKey(); got != "fast" {
		t.Errorf("SynthesisKey() = %q, want fast", got)
	}
}
