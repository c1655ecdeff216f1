// ABOUTME: Structured-text extractor turning free-form model output into typed results
// ABOUTME: Tagged-line classifier: header, bullet item, or plain text, one linear pass
package core

import (
	"regexp"
	"strings"

	"github.com/harper/doctalk/internal/models"
)

const (
	// minItemLength filters out low-content list items and summaries.
	minItemLength = 10
	// listItemCap bounds extracted lists for UI/payload size.
	listItemCap = 5
	// questionCap bounds suggested question lists.
	questionCap = 5
	// fallbackSummaryLength is how much raw text stands in for a summary.
	fallbackSummaryLength = 200
)

const genericSummary = "The documents were analyzed, but a detailed summary could not be produced."

const genericDraft = "No draft could be generated from the provided documents."

var numberedItemPattern = regexp.MustCompile(`^\d+[.)]\s+(.*)$`)

// section accumulates the lines assigned to one labeled block.
type section struct {
	bullets []string // bullet items, marker stripped
	plain   []string // non-bulleted content lines
	all     []string // every content line in order
}

func (s *section) add(line string) {
	s.all = append(s.all, line)
	if item, ok := bulletText(line); ok {
		s.bullets = append(s.bullets, item)
	} else {
		s.plain = append(s.plain, line)
	}
}

// items returns bullet items that pass the content-quality filter, capped.
func (s *section) items(max int) []string {
	if s == nil {
		return nil
	}
	var items []string
	for _, b := range s.bullets {
		item := stripEmphasis(b)
		if len([]rune(item)) < minItemLength {
			continue
		}
		items = append(items, item)
		if len(items) == max {
			break
		}
	}
	return items
}

// summary joins the section's non-bulleted lines with spaces.
func (s *section) summary() string {
	if s == nil {
		return ""
	}
	return stripEmphasis(strings.Join(s.plain, " "))
}

// text joins every content line, bulleted or not, with spaces.
func (s *section) text() string {
	if s == nil {
		return ""
	}
	return stripEmphasis(strings.Join(s.all, " "))
}

// block rejoins the section's lines preserving line breaks.
func (s *section) block() string {
	if s == nil {
		return ""
	}
	return strings.Join(s.all, "\n")
}

// extractSections classifies each line and assigns content to the currently
// active section. Lines before the first recognized header are dropped.
func extractSections(text string, labels []string) map[string]*section {
	sections := make(map[string]*section)
	var active *section

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if label, rest, ok := matchHeader(line, labels); ok {
			active = &section{}
			sections[label] = active
			if rest != "" {
				active.add(rest)
			}
			continue
		}
		if active != nil {
			active.add(line)
		}
	}
	return sections
}

// matchHeader reports whether a line is a section header for one of the
// expected labels, tolerating emphasis markers, markdown headings, and
// inconsistent casing. Labels are matched literally, so document names with
// pattern metacharacters need no escaping. Content following "LABEL:" on the
// same line is returned as rest.
func matchHeader(line string, labels []string) (label, rest string, ok bool) {
	cleaned := headerText(line)
	for _, l := range labels {
		if strings.EqualFold(cleaned, l) {
			return l, "", true
		}
		if len(cleaned) > len(l) && strings.EqualFold(cleaned[:len(l)], l) {
			// tolerate emphasis between label and colon, e.g. "**LABEL**: text"
			tail := strings.TrimLeft(cleaned[len(l):], "*_ ")
			if strings.HasPrefix(tail, ":") {
				return l, strings.TrimSpace(tail[1:]), true
			}
		}
	}
	return "", "", false
}

// headerText strips heading and emphasis noise around a potential label.
func headerText(line string) string {
	s := strings.TrimSpace(line)
	s = strings.TrimLeft(s, "#")
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "*_")
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, ":") {
		// emphasis tucked inside the colon, e.g. "**LABEL**:"
		s = strings.TrimSpace(strings.Trim(strings.TrimSuffix(s, ":"), "*_"))
	}
	return s
}

// bulletText strips a leading bullet or numbering marker if present.
func bulletText(line string) (string, bool) {
	for _, marker := range []string{"- ", "• ", "* "} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(line[len(marker):]), true
		}
	}
	if m := numberedItemPattern.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

// stripEmphasis removes bold/italic markers from item text.
func stripEmphasis(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), "*_"))
}

// fallbackSummary takes the leading raw text when no section yielded content.
func fallbackSummary(text string) string {
	t := strings.TrimSpace(text)
	runes := []rune(t)
	if len(runes) > fallbackSummaryLength {
		return string(runes[:fallbackSummaryLength]) + "..."
	}
	return t
}

// ensureSummary guarantees a non-empty, non-trivial summary string.
func ensureSummary(s string) string {
	s = strings.TrimSpace(s)
	if len([]rune(s)) < minItemLength {
		return genericSummary
	}
	return s
}

// ExtractComparison parses SIMILARITIES / DIFFERENCES / SUMMARY sections.
func ExtractComparison(text string) *models.ComparisonResult {
	sections := extractSections(text, []string{"SIMILARITIES", "DIFFERENCES", "SUMMARY"})

	similarities := sections["SIMILARITIES"].items(listItemCap)
	differences := sections["DIFFERENCES"].items(listItemCap)
	summary := sections["SUMMARY"].summary()

	if len(similarities) == 0 && len(differences) == 0 && summary == "" {
		summary = fallbackSummary(text)
	}

	return &models.ComparisonResult{
		Similarities: similarities,
		Differences:  differences,
		Summary:      ensureSummary(summary),
	}
}

// ExtractContradictions parses CONTRADICTIONS / GAPS / SUMMARY sections.
func ExtractContradictions(text string) *models.ContradictionResult {
	sections := extractSections(text, []string{"CONTRADICTIONS", "GAPS", "SUMMARY"})

	contradictions := sections["CONTRADICTIONS"].items(listItemCap)
	gaps := sections["GAPS"].items(listItemCap)
	summary := sections["SUMMARY"].summary()

	if len(contradictions) == 0 && len(gaps) == 0 && summary == "" {
		summary = fallbackSummary(text)
	}

	return &models.ContradictionResult{
		Contradictions: contradictions,
		Gaps:           gaps,
		Summary:        ensureSummary(summary),
	}
}

// ExtractDebate locates one labeled round per document display name and a
// trailing CONCLUSION section. Rounds keep document order, not text order.
func ExtractDebate(text string, docNames []string, topic string) *models.DebateResult {
	labels := make([]string, 0, len(docNames)+1)
	labels = append(labels, docNames...)
	labels = append(labels, "CONCLUSION")

	sections := extractSections(text, labels)

	rounds := make([]models.DebateRound, 0, len(docNames))
	for _, name := range docNames {
		argument := sections[name].text()
		if len([]rune(argument)) < minItemLength {
			continue
		}
		rounds = append(rounds, models.DebateRound{DocumentName: name, Argument: argument})
	}

	conclusion := sections["CONCLUSION"].text()
	if len(rounds) == 0 && conclusion == "" {
		conclusion = fallbackSummary(text)
	}

	return &models.DebateResult{
		Topic:      topic,
		Rounds:     rounds,
		Conclusion: ensureSummary(conclusion),
	}
}

// ExtractWriting parses GENERATED TEXT / SUGGESTIONS / STYLE NOTES sections.
// Responses without the expected layout are treated wholesale as the draft.
func ExtractWriting(text string) *models.WritingResult {
	sections := extractSections(text, []string{"GENERATED TEXT", "SUGGESTIONS", "STYLE NOTES"})

	generated := sections["GENERATED TEXT"].block()
	if strings.TrimSpace(generated) == "" {
		generated = strings.TrimSpace(text)
	}
	if generated == "" {
		generated = genericDraft
	}

	return &models.WritingResult{
		GeneratedText: generated,
		Suggestions:   sections["SUGGESTIONS"].items(listItemCap),
		StyleNotes:    sections["STYLE NOTES"].text(),
	}
}

// ExtractQuestions pulls suggested questions out of a model response: bullet
// or numbered lines ending in a question mark, falling back to any line that
// ends in one.
func ExtractQuestions(text string) []string {
	var questions []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		candidate, ok := bulletText(line)
		if !ok {
			candidate = line
		}
		candidate = stripEmphasis(candidate)
		if len([]rune(candidate)) < minItemLength || !strings.HasSuffix(candidate, "?") {
			continue
		}
		questions = append(questions, candidate)
		if len(questions) == questionCap {
			break
		}
	}
	return questions
}
