// ABOUTME: Tests for cosine similarity and both ranking strategies
// ABOUTME: Semantic ranking is exercised through a deterministic fake embedder
package core

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/harper/doctalk/internal/embedding"
	"github.com/harper/doctalk/internal/models"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical vectors", []float64{1, 2, 3}, []float64{1, 2, 3}, 1.0},
		{"opposite vectors", []float64{1, 0}, []float64{-1, 0}, -1.0},
		{"orthogonal vectors", []float64{1, 0}, []float64{0, 1}, 0.0},
		{"zero vector", []float64{0, 0, 0}, []float64{1, 2, 3}, 0.0},
		{"both zero", []float64{0, 0}, []float64{0, 0}, 0.0},
		{"length mismatch", []float64{1, 2}, []float64{1, 2, 3}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if math.IsNaN(got) {
				t.Fatal("CosineSimilarity() returned NaN")
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CosineSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosineSimilarity_SymmetricAndBounded(t *testing.T) {
	a := []float64{0.3, -1.2, 4.5, 0.01}
	b := []float64{-2.0, 0.8, 1.1, 3.3}

	ab := CosineSimilarity(a, b)
	ba := CosineSimilarity(b, a)
	if math.Abs(ab-ba) > 1e-12 {
		t.Errorf("CosineSimilarity not symmetric: %v vs %v", ab, ba)
	}
	if ab < -1.0-1e-9 || ab > 1.0+1e-9 {
		t.Errorf("CosineSimilarity() = %v, want within [-1, 1]", ab)
	}
}

// fakeEmbedder returns a fixed vector for any input.
type fakeEmbedder struct {
	vector []float64
	err    error
}

func (f *fakeEmbedder) Embed(_ context.Context, _ string) ([]float64, error) {
	return f.vector, f.err
}

func newSemanticFixture() (*embedding.Store, []models.Document) {
	store := embedding.NewStore()
	store.Append(models.EmbeddedChunk{Text: "almost aligned", Vector: []float64{1, 0.1}, DocumentID: "doc_a", DocumentName: "a.txt"})
	store.Append(models.EmbeddedChunk{Text: "perfectly aligned", Vector: []float64{1, 0}, DocumentID: "doc_a", DocumentName: "a.txt"})
	store.Append(models.EmbeddedChunk{Text: "orthogonal", Vector: []float64{0, 1}, DocumentID: "doc_b", DocumentName: "b.txt"})
	docs := []models.Document{
		{ID: "doc_a", Name: "a.txt"},
		{ID: "doc_b", Name: "b.txt"},
	}
	return store, docs
}

func TestSemanticRanker_OrdersByScore(t *testing.T) {
	store, docs := newSemanticFixture()
	ranker := NewSemanticRanker(&fakeEmbedder{vector: []float64{1, 0}}, store, 3)

	sources, err := ranker.Rank(context.Background(), "query", docs)
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}

	if len(sources) != 3 {
		t.Fatalf("Rank() returned %d sources, want 3", len(sources))
	}
	if sources[0].Text != "perfectly aligned" {
		t.Errorf("top source = %q, want the aligned chunk", sources[0].Text)
	}
	if math.Abs(sources[0].Score-1.0) > 1e-9 {
		t.Errorf("top score = %v, want 1.0", sources[0].Score)
	}
	for i := 1; i < len(sources); i++ {
		if sources[i].Score > sources[i-1].Score {
			t.Errorf("sources not in descending score order at %d", i)
		}
	}
}

func TestSemanticRanker_Idempotent(t *testing.T) {
	store, docs := newSemanticFixture()
	ranker := NewSemanticRanker(&fakeEmbedder{vector: []float64{0.7, 0.7}}, store, 3)

	first, err := ranker.Rank(context.Background(), "query", docs)
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	second, err := ranker.Rank(context.Background(), "query", docs)
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("re-ranking changed result count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Text != second[i].Text || first[i].Score != second[i].Score {
			t.Errorf("re-ranking changed result %d", i)
		}
	}
}

func TestSemanticRanker_TopK(t *testing.T) {
	store, docs := newSemanticFixture()
	ranker := NewSemanticRanker(&fakeEmbedder{vector: []float64{1, 0}}, store, 2)

	sources, err := ranker.Rank(context.Background(), "query", docs)
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	if len(sources) != 2 {
		t.Errorf("Rank() returned %d sources, want top 2", len(sources))
	}
}

func TestSemanticRanker_UnknownDocumentName(t *testing.T) {
	store := embedding.NewStore()
	store.Append(models.EmbeddedChunk{Text: "orphaned chunk text", Vector: []float64{1}, DocumentID: "doc_gone", DocumentName: "gone.txt"})
	ranker := NewSemanticRanker(&fakeEmbedder{vector: []float64{1}}, store, 3)

	sources, err := ranker.Rank(context.Background(), "query", nil)
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	if len(sources) != 1 {
		t.Fatalf("Rank() returned %d sources, want 1", len(sources))
	}
	if sources[0].DocumentName != "Unknown document" {
		t.Errorf("DocumentName = %q, want the unknown placeholder", sources[0].DocumentName)
	}
}

func TestSemanticRanker_EmbedErrorPropagates(t *testing.T) {
	store, docs := newSemanticFixture()
	wantErr := errors.New("worker down")
	ranker := NewSemanticRanker(&fakeEmbedder{err: wantErr}, store, 3)

	if _, err := ranker.Rank(context.Background(), "query", docs); !errors.Is(err, wantErr) {
		t.Errorf("Rank() error = %v, want %v", err, wantErr)
	}
}

func lexicalDocs() []models.Document {
	return []models.Document{
		{
			ID: "doc_a", Name: "glaciers.txt",
			Chunks: []models.Chunk{
				{DocumentID: "doc_a", Position: 0, Text: "Glaciers store frozen freshwater in mountain ranges"},
				{DocumentID: "doc_a", Position: 1, Text: "Glacial melt accelerates with warming"},
			},
		},
		{
			ID: "doc_b", Name: "markets.txt",
			Chunks: []models.Chunk{
				{DocumentID: "doc_b", Position: 0, Text: "Bond markets priced in the rate decision"},
			},
		},
	}
}

func TestLexicalRanker_FullMatchScoresOne(t *testing.T) {
	ranker := NewLexicalRanker(3)
	sources := ranker.Rank("glaciers frozen freshwater", lexicalDocs())

	if len(sources) == 0 {
		t.Fatal("Rank() returned no sources")
	}
	if sources[0].Score != 1.0 {
		t.Errorf("full-match chunk score = %v, want 1.0", sources[0].Score)
	}
	if sources[0].DocumentID != "doc_a" {
		t.Errorf("top source from %q, want doc_a", sources[0].DocumentID)
	}
}

func TestLexicalRanker_ExcludesZeroMatches(t *testing.T) {
	ranker := NewLexicalRanker(10)
	sources := ranker.Rank("glaciers", lexicalDocs())

	for _, s := range sources {
		if s.DocumentID == "doc_b" {
			t.Errorf("chunk with no matching tokens was returned: %q", s.Text)
		}
		if s.Score <= 0 {
			t.Errorf("returned source with score %v, want > 0", s.Score)
		}
	}
}

func TestLexicalRanker_ShortTokensDiscarded(t *testing.T) {
	ranker := NewLexicalRanker(3)
	// "in" and "of" are too short to count as tokens
	if sources := ranker.Rank("in of", lexicalDocs()); sources != nil {
		t.Errorf("Rank() with only short tokens = %v, want nil", sources)
	}
}

func TestLexicalRanker_CaseInsensitive(t *testing.T) {
	ranker := NewLexicalRanker(3)
	sources := ranker.Rank("GLACIERS", lexicalDocs())
	if len(sources) == 0 {
		t.Fatal("Rank() is case sensitive; expected matches for uppercase query")
	}
}
