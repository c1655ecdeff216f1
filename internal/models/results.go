// ABOUTME: Typed result aggregates returned by document operations
// ABOUTME: All results are ephemeral and produced per operation
package models

// QueryResult is the answer to a question plus the passages that grounded it.
type QueryResult struct {
	Answer  string   `json:"answer"`
	Sources []Source `json:"sources"`
}

// ComparisonResult holds extracted similarities and differences between documents.
type ComparisonResult struct {
	Similarities []string `json:"similarities"`
	Differences  []string `json:"differences"`
	Summary      string   `json:"summary"`
}

// ContradictionResult holds extracted contradictions and coverage gaps.
type ContradictionResult struct {
	Contradictions []string `json:"contradictions"`
	Gaps           []string `json:"gaps"`
	Summary        string   `json:"summary"`
}

// DebateRound is one document's argument in a simulated debate.
type DebateRound struct {
	DocumentName string `json:"document_name"`
	Argument     string `json:"argument"`
}

// DebateResult is a simulated debate between documents on a topic.
type DebateResult struct {
	Topic      string        `json:"topic"`
	Rounds     []DebateRound `json:"rounds"`
	Conclusion string        `json:"conclusion"`
}

// WritingResult is the output of a writing-assistance operation.
type WritingResult struct {
	GeneratedText string   `json:"generated_text"`
	Suggestions   []string `json:"suggestions"`
	StyleNotes    string   `json:"style_notes"`
}
