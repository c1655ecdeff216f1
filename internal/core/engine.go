// ABOUTME: Engine implements the caller-facing document operations
// ABOUTME: Wires chunking, retrieval, orchestration, and extraction together
package core

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/harper/doctalk/internal/config"
	"github.com/harper/doctalk/internal/embedding"
	"github.com/harper/doctalk/internal/ingest"
	"github.com/harper/doctalk/internal/llm"
	"github.com/harper/doctalk/internal/models"
	"github.com/harper/doctalk/internal/util"
)

// Engine runs document operations for one session. Uploads are expected to be
// issued sequentially; operations themselves are single logical threads of
// control suspended only at embedding calls, inference calls, and pacing delays.
type Engine struct {
	cfg      *config.Config
	chunker  *Chunker
	answerer *llm.Client
	synth    *llm.Client
	embedder *embedding.Client
	store    *embedding.Store
	semantic *SemanticRanker
	lexical  *LexicalRanker

	mu         sync.Mutex
	semanticOK bool
}

// NewEngine builds an engine from configuration. The embedding worker is not
// started here; it spins up lazily on the first embed.
func NewEngine(cfg *config.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	chunker, err := NewChunker(cfg.ChunkSize, cfg.ChunkOverlap)
	if err != nil {
		return nil, err
	}

	answerer, err := llm.New(llm.Config{APIKey: cfg.OpenAIKey, Model: cfg.AnswerModel})
	if err != nil {
		return nil, fmt.Errorf("answer provider: %w", err)
	}

	synth, err := llm.New(llm.Config{APIKey: cfg.SynthesisKey(), BaseURL: cfg.FastBaseURL, Model: cfg.FastModel})
	if err != nil {
		return nil, fmt.Errorf("synthesis provider: %w", err)
	}

	store := embedding.NewStore()
	embedder := embedding.NewClient(embedding.Config{
		APIKey:  cfg.OpenAIKey,
		Model:   cfg.EmbeddingModel,
		Timeout: cfg.EmbedTimeout,
	})

	return &Engine{
		cfg:        cfg,
		chunker:    chunker,
		answerer:   answerer,
		synth:      synth,
		embedder:   embedder,
		store:      store,
		semantic:   NewSemanticRanker(embedder, store, cfg.TopK),
		lexical:    NewLexicalRanker(cfg.TopK),
		semanticOK: cfg.SemanticEnabled,
	}, nil
}

// Close tears down the session's embedding worker.
func (e *Engine) Close() {
	if e.embedder != nil {
		e.embedder.Close()
	}
}

// UploadDocument ingests one file, chunks it, and embeds the chunks when
// semantic retrieval is enabled. Embedding failure downgrades the session to
// lexical ranking instead of failing the upload.
func (e *Engine) UploadDocument(ctx context.Context, name string, r io.Reader) (*models.Document, error) {
	extracted, err := ingest.ForFilename(name).Extract(r, name)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(extracted.Text)
	if text == "" {
		return nil, &EmptyDocumentError{Name: name}
	}

	doc := &models.Document{
		ID:        "doc_" + uuid.New().String(),
		Name:      name,
		Text:      text,
		TypeLabel: extracted.TypeLabel,
		Metadata:  extracted.Metadata,
	}
	doc.Chunks = e.chunker.Split(doc)

	if e.semanticEnabled() {
		// One request in flight at a time bounds worker memory.
		for _, chunk := range doc.Chunks {
			vector, err := e.embedder.Embed(ctx, chunk.Text)
			if err != nil {
				e.disableSemantic(err)
				break
			}
			e.store.Append(models.EmbeddedChunk{
				Text:         chunk.Text,
				Vector:       vector,
				DocumentID:   doc.ID,
				DocumentName: doc.Name,
			})
		}
	}

	return doc, nil
}

// QueryDocuments answers a question grounded in retrieved passages.
func (e *Engine) QueryDocuments(ctx context.Context, query string, docs []models.Document) (*models.QueryResult, error) {
	if len(docs) < 1 {
		return nil, &InsufficientDocumentsError{Required: 1, Got: len(docs)}
	}

	sources := e.retrieve(ctx, query, docs)
	contextText, attributions := BuildContext(sources)

	answer, err := e.answerer.ChatWithRetry(ctx, answerMessages(contextText, query), llm.ChatOptions{
		Temperature: 0.3,
		MaxTokens:   1024,
	}, llm.AnswerPolicy)
	if err != nil {
		return nil, err
	}

	return &models.QueryResult{Answer: answer, Sources: attributions}, nil
}

// CompareDocuments extracts similarities and differences between documents.
func (e *Engine) CompareDocuments(ctx context.Context, docs []models.Document) (*models.ComparisonResult, error) {
	if len(docs) < 2 {
		return nil, &InsufficientDocumentsError{Required: 2, Got: len(docs)}
	}

	raw, err := e.summarizeThenSynthesize(ctx, docs, compareMessages)
	if err != nil {
		return nil, err
	}
	return ExtractComparison(raw), nil
}

// DetectContradictions extracts contradictions and coverage gaps.
func (e *Engine) DetectContradictions(ctx context.Context, docs []models.Document) (*models.ContradictionResult, error) {
	if len(docs) < 2 {
		return nil, &InsufficientDocumentsError{Required: 2, Got: len(docs)}
	}

	raw, err := e.summarizeThenSynthesize(ctx, docs, contradictionMessages)
	if err != nil {
		return nil, err
	}
	return ExtractContradictions(raw), nil
}

// DebateDocuments simulates a debate between documents on a topic.
func (e *Engine) DebateDocuments(ctx context.Context, docs []models.Document, topic string) (*models.DebateResult, error) {
	if len(docs) < 2 {
		return nil, &InsufficientDocumentsError{Required: 2, Got: len(docs)}
	}

	raw, err := e.summarizeThenSynthesize(ctx, docs, func(summaries []docSummary) []llm.Message {
		return debateMessages(topic, summaries)
	})
	if err != nil {
		return nil, err
	}

	names := make([]string, len(docs))
	for i, d := range docs {
		names[i] = d.Name
	}
	return ExtractDebate(raw, names, topic), nil
}

// AssistWriting generates text grounded in the documents.
func (e *Engine) AssistWriting(ctx context.Context, docs []models.Document, prompt, mode string) (*models.WritingResult, error) {
	if len(docs) < 1 {
		return nil, &InsufficientDocumentsError{Required: 1, Got: len(docs)}
	}
	if mode == "" {
		mode = "draft"
	}

	raw, err := e.summarizeThenSynthesize(ctx, docs, func(summaries []docSummary) []llm.Message {
		return writingMessages(prompt, mode, summaries)
	})
	if err != nil {
		return nil, err
	}
	return ExtractWriting(raw), nil
}

// GenerateSuggestedQuestions proposes questions a reader could ask.
func (e *Engine) GenerateSuggestedQuestions(ctx context.Context, docs []models.Document) ([]string, error) {
	if len(docs) < 1 {
		return nil, &InsufficientDocumentsError{Required: 1, Got: len(docs)}
	}

	excerpts := make([]docSummary, len(docs))
	for i, d := range docs {
		excerpts[i] = docSummary{Name: d.Name, Summary: e.excerpt(&d)}
	}

	raw, err := e.synth.ChatWithRetry(ctx, questionsMessages(excerpts), llm.ChatOptions{
		Temperature: 0.6,
		MaxTokens:   300,
	}, llm.SummaryPolicy)
	if err != nil {
		return nil, err
	}
	return ExtractQuestions(raw), nil
}

// retrieve ranks passages for a query, preferring semantic ranking and
// falling back to lexical on any embedding failure. Retrieval never
// hard-fails as long as a document has text.
func (e *Engine) retrieve(ctx context.Context, query string, docs []models.Document) []models.Source {
	if e.semanticEnabled() && e.store.Len() > 0 {
		sources, err := e.semantic.Rank(ctx, query, docs)
		if err == nil {
			return sources
		}
		log.Printf("[core] semantic ranking unavailable, falling back to lexical: %v", err)
	}
	return e.lexical.Rank(query, docs)
}

// summarizeThenSynthesize is the shared pipeline behind every multi-document
// flow: per-document summaries, a pacing delay for downstream rate limits,
// then one synthesis call with the operation's prompt.
func (e *Engine) summarizeThenSynthesize(ctx context.Context, docs []models.Document, buildPrompt func([]docSummary) []llm.Message) (string, error) {
	summaries := make([]docSummary, len(docs))
	for i, d := range docs {
		summaries[i] = docSummary{Name: d.Name, Summary: e.summarizeDocument(ctx, &d)}
	}

	if !util.Sleep(e.cfg.SynthesisDelay, ctx.Done()) {
		return "", ctx.Err()
	}

	return e.synth.ChatWithRetry(ctx, buildPrompt(summaries), llm.ChatOptions{
		Temperature: 0.5,
		MaxTokens:   1024,
	}, llm.SynthesisPolicy)
}

// summarizeDocument produces a cheap per-document summary, degrading to a
// placeholder so a single failure never sinks the parent operation.
func (e *Engine) summarizeDocument(ctx context.Context, doc *models.Document) string {
	summary, err := e.synth.ChatWithRetry(ctx, summaryMessages(doc.Name, e.excerpt(doc)), llm.ChatOptions{
		Temperature: 0.3,
		MaxTokens:   200,
	}, llm.SummaryPolicy)
	if err != nil {
		log.Printf("[core] summarizing %q failed, using placeholder: %v", doc.Name, err)
		return "Document: " + doc.Name
	}
	return summary
}

// excerpt joins a document's leading chunks up to the character budget.
func (e *Engine) excerpt(doc *models.Document) string {
	budget := e.cfg.SummaryBudget
	var b strings.Builder
	for _, chunk := range doc.Chunks {
		if b.Len() >= budget {
			break
		}
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(chunk.Text)
	}

	runes := []rune(b.String())
	if len(runes) > budget {
		return string(runes[:budget])
	}
	return string(runes)
}

func (e *Engine) semanticEnabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.semanticOK
}

// disableSemantic downgrades the session to lexical ranking after an
// embedding failure. Sticky until the session ends.
func (e *Engine) disableSemantic(cause error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.semanticOK {
		log.Printf("[core] disabling semantic retrieval for this session: %v", cause)
		e.semanticOK = false
	}
}
