// ABOUTME: Similarity rankers selecting top-K passages for a query
// ABOUTME: Semantic cosine ranking over embeddings with a lexical fallback
package core

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/harper/doctalk/internal/embedding"
	"github.com/harper/doctalk/internal/models"
)

// DefaultTopK is the number of passages returned per query.
const DefaultTopK = 3

// minTokenLength: lexical query tokens this short or shorter are discarded.
const minTokenLength = 2

// unknownDocumentName stands in when an embedded chunk references a document
// the caller no longer knows about.
const unknownDocumentName = "Unknown document"

// CosineSimilarity computes normalized vector alignment in [-1, 1].
// Mismatched lengths and zero-magnitude vectors score 0, never NaN.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Embedder is the slice of the embedding client the semantic ranker needs.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// SemanticRanker scores stored embedded chunks against a query embedding.
type SemanticRanker struct {
	embedder Embedder
	store    *embedding.Store
	topK     int
}

// NewSemanticRanker creates a semantic ranker over the given session store.
func NewSemanticRanker(embedder Embedder, store *embedding.Store, topK int) *SemanticRanker {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &SemanticRanker{embedder: embedder, store: store, topK: topK}
}

// Rank embeds the query and returns the top-K chunks by cosine similarity.
// Ties keep insertion order. Document names resolve through the caller's
// document set; unknown IDs degrade to a placeholder name.
func (r *SemanticRanker) Rank(ctx context.Context, query string, docs []models.Document) ([]models.Source, error) {
	queryVector, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(docs))
	for _, d := range docs {
		names[d.ID] = d.Name
	}

	chunks := r.store.Snapshot()
	sources := make([]models.Source, 0, len(chunks))
	for _, chunk := range chunks {
		name, ok := names[chunk.DocumentID]
		if !ok {
			name = unknownDocumentName
		}
		sources = append(sources, models.Source{
			Text:         chunk.Text,
			DocumentID:   chunk.DocumentID,
			DocumentName: name,
			Score:        CosineSimilarity(queryVector, chunk.Vector),
		})
	}

	sort.SliceStable(sources, func(i, j int) bool {
		return sources[i].Score > sources[j].Score
	})

	if len(sources) > r.topK {
		sources = sources[:r.topK]
	}
	return sources, nil
}

// LexicalRanker scores chunks by query token overlap. It needs no embeddings
// and serves as the transparent fallback when semantic ranking cannot run.
type LexicalRanker struct {
	topK int
}

// NewLexicalRanker creates a lexical ranker returning at most topK sources.
func NewLexicalRanker(topK int) *LexicalRanker {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &LexicalRanker{topK: topK}
}

// Rank scores every chunk of every document as matched tokens over total
// query tokens. Chunks matching nothing are excluded.
func (r *LexicalRanker) Rank(query string, docs []models.Document) []models.Source {
	tokens := lexicalTokens(query)
	if len(tokens) == 0 {
		return nil
	}

	var sources []models.Source
	for _, doc := range docs {
		for _, chunk := range doc.Chunks {
			lowered := strings.ToLower(chunk.Text)
			matches := 0
			for _, token := range tokens {
				if strings.Contains(lowered, token) {
					matches++
				}
			}
			if matches == 0 {
				continue
			}
			sources = append(sources, models.Source{
				Text:         chunk.Text,
				DocumentID:   doc.ID,
				DocumentName: doc.Name,
				Score:        float64(matches) / float64(len(tokens)),
			})
		}
	}

	sort.SliceStable(sources, func(i, j int) bool {
		return sources[i].Score > sources[j].Score
	})

	if len(sources) > r.topK {
		sources = sources[:r.topK]
	}
	return sources
}

// lexicalTokens lowercases, splits on whitespace, and discards short tokens.
func lexicalTokens(query string) []string {
	var tokens []string
	for _, field := range strings.Fields(strings.ToLower(query)) {
		if len(field) > minTokenLength {
			tokens = append(tokens, field)
		}
	}
	return tokens
}
