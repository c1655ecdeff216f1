// ABOUTME: Prompt builders for every document operation
// ABOUTME: Synthesis prompts request the section layout the extractor parses
package core

import (
	"fmt"
	"strings"

	"github.com/harper/doctalk/internal/llm"
)

const answerSystemPrompt = `You are a document analysis assistant. Answer the user's question using only the provided context passages. If the context does not contain the answer, say so plainly. Mention the documents you drew from by name.`

const summarySystemPrompt = `You summarize documents in 3-4 sentences, keeping the key claims, topics, and any notable numbers.`

// docSummary pairs a document's display name with its generated summary.
type docSummary struct {
	Name    string
	Summary string
}

func formatSummaries(summaries []docSummary) string {
	var b strings.Builder
	for _, s := range summaries {
		fmt.Fprintf(&b, "Document: %s\n%s\n\n", s.Name, s.Summary)
	}
	return strings.TrimSpace(b.String())
}

func answerMessages(contextText, question string) []llm.Message {
	var b strings.Builder
	if contextText == "" {
		b.WriteString("CONTEXT:\n(no relevant passages were retrieved)\n")
	} else {
		b.WriteString("CONTEXT:\n")
		b.WriteString(contextText)
		b.WriteString("\n")
	}
	b.WriteString("\nQUESTION:\n")
	b.WriteString(question)
	return []llm.Message{llm.System(answerSystemPrompt), llm.User(b.String())}
}

func summaryMessages(name, excerpt string) []llm.Message {
	return []llm.Message{
		llm.System(summarySystemPrompt),
		llm.User(fmt.Sprintf("Summarize the document %q:\n\n%s", name, excerpt)),
	}
}

func compareMessages(summaries []docSummary) []llm.Message {
	system := `You compare documents. Respond with exactly these sections:
SIMILARITIES:
- one similarity per line, starting with "- "
DIFFERENCES:
- one difference per line, starting with "- "
SUMMARY:
A short paragraph summarizing the comparison.`
	return []llm.Message{
		llm.System(system),
		llm.User("Compare the following documents:\n\n" + formatSummaries(summaries)),
	}
}

func contradictionMessages(summaries []docSummary) []llm.Message {
	system := `You audit documents for conflicts. Respond with exactly these sections:
CONTRADICTIONS:
- one contradiction between the documents per line, starting with "- "
GAPS:
- one topic covered by some documents but missing from others per line, starting with "- "
SUMMARY:
A short paragraph on overall consistency.`
	return []llm.Message{
		llm.System(system),
		llm.User("Find contradictions and gaps across these documents:\n\n" + formatSummaries(summaries)),
	}
}

func debateMessages(topic string, summaries []docSummary) []llm.Message {
	names := make([]string, len(summaries))
	for i, s := range summaries {
		names[i] = s.Name
	}
	system := fmt.Sprintf(`You simulate a debate between documents, each defending its own perspective. Write one round per document. Start each round with the document's exact name followed by a colon, one of: %s. Finish with a final section starting with "CONCLUSION:" that weighs the arguments.`, strings.Join(names, ", "))
	return []llm.Message{
		llm.System(system),
		llm.User(fmt.Sprintf("Debate topic: %s\n\nDocuments:\n\n%s", topic, formatSummaries(summaries))),
	}
}

func writingMessages(prompt, mode string, summaries []docSummary) []llm.Message {
	system := `You are a writing assistant grounded in the user's documents. Respond with exactly these sections:
GENERATED TEXT:
The requested text.
SUGGESTIONS:
- one improvement or follow-up idea per line, starting with "- "
STYLE NOTES:
A short note on tone and style choices.`
	return []llm.Message{
		llm.System(system),
		llm.User(fmt.Sprintf("Writing mode: %s\nRequest: %s\n\nSource documents:\n\n%s", mode, prompt, formatSummaries(summaries))),
	}
}

func questionsMessages(summaries []docSummary) []llm.Message {
	system := `You suggest questions a reader could ask about the given documents. Reply with exactly 5 questions, one per line, each starting with "- " and ending with "?".`
	return []llm.Message{
		llm.System(system),
		llm.User("Suggest questions about these documents:\n\n" + formatSummaries(summaries)),
	}
}
