// ABOUTME: Context assembler joining ranked passages into a grounding prompt
// ABOUTME: Builds parallel attribution records with truncated previews
package core

import (
	"strings"

	"github.com/harper/doctalk/internal/models"
)

// PreviewLength caps attribution passage previews.
const PreviewLength = 150

// BuildContext concatenates passage texts with blank-line separators and
// returns attribution records whose previews are truncated. The attribution
// list has the same length and order as the passages used.
func BuildContext(sources []models.Source) (string, []models.Source) {
	texts := make([]string, len(sources))
	attributions := make([]models.Source, len(sources))
	for i, src := range sources {
		texts[i] = src.Text
		attributions[i] = models.Source{
			Text:         previewOf(src.Text),
			DocumentID:   src.DocumentID,
			DocumentName: src.DocumentName,
			Score:        src.Score,
		}
	}
	return strings.Join(texts, "\n\n"), attributions
}

// previewOf truncates a passage to PreviewLength runes plus an ellipsis.
func previewOf(text string) string {
	runes := []rune(text)
	if len(runes) <= PreviewLength {
		return text
	}
	return string(runes[:PreviewLength]) + "..."
}
