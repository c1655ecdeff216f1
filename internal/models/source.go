// ABOUTME: Source model for retrieval results with attribution
// ABOUTME: Produced per query, ephemeral, ordered by similarity
package models

// Source is one retrieved passage with its attribution and similarity score.
// Score is cosine similarity in semantic mode or a normalized token match
// ratio in lexical mode.
type Source struct {
	Text         string  `json:"text"`
	DocumentID   string  `json:"document_id"`
	DocumentName string  `json:"document_name"`
	Score        float64 `json:"score"`
}
