// ABOUTME: MCP tool handler implementations for the doctalk server
// ABOUTME: Holds the session document registry and adapts tool calls onto the engine
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/harper/doctalk/internal/core"
	"github.com/harper/doctalk/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers contains the handler functions for all MCP tools. Documents live
// only for the lifetime of the server process.
type Handlers struct {
	engine *core.Engine

	mu    sync.Mutex
	docs  map[string]models.Document
	order []string // upload order, for stable listing and defaults
}

// UploadDocument handles the upload_document tool
func (h *Handlers) UploadDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name argument is required and must be a string"), nil
	}
	content, err := request.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError("content argument is required and must be a string"), nil
	}

	doc, err := h.engine.UploadDocument(ctx, name, strings.NewReader(content))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("upload failed: %v", err)), nil
	}

	h.mu.Lock()
	h.docs[doc.ID] = *doc
	h.order = append(h.order, doc.ID)
	h.mu.Unlock()

	response := map[string]interface{}{
		"document_id": doc.ID,
		"name":        doc.Name,
		"type":        doc.TypeLabel,
		"chunks":      len(doc.Chunks),
	}
	return jsonResult(response)
}

// ListDocuments handles the list_documents tool
func (h *Handlers) ListDocuments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.mu.Lock()
	documents := make([]map[string]interface{}, 0, len(h.order))
	for _, id := range h.order {
		doc := h.docs[id]
		documents = append(documents, map[string]interface{}{
			"document_id": doc.ID,
			"name":        doc.Name,
			"type":        doc.TypeLabel,
			"chunks":      len(doc.Chunks),
		})
	}
	h.mu.Unlock()

	return jsonResult(map[string]interface{}{"documents": documents})
}

// QueryDocuments handles the query_documents tool
func (h *Handlers) QueryDocuments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}

	docs, err := h.selectDocuments(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := h.engine.QueryDocuments(ctx, query, docs)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("query failed: %v", err)), nil
	}

	sources := make([]map[string]interface{}, 0, len(result.Sources))
	for _, s := range result.Sources {
		sources = append(sources, map[string]interface{}{
			"document":   s.DocumentName,
			"excerpt":    s.Text,
			"similarity": s.Score,
		})
	}

	return jsonResult(map[string]interface{}{
		"answer":  result.Answer,
		"sources": sources,
	})
}

// CompareDocuments handles the compare_documents tool
func (h *Handlers) CompareDocuments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	docs, err := h.selectDocuments(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := h.engine.CompareDocuments(ctx, docs)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{
		"similarities": result.Similarities,
		"differences":  result.Differences,
		"summary":      result.Summary,
	})
}

// DetectContradictions handles the detect_contradictions tool
func (h *Handlers) DetectContradictions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	docs, err := h.selectDocuments(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := h.engine.DetectContradictions(ctx, docs)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("contradiction analysis failed: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{
		"contradictions": result.Contradictions,
		"gaps":           result.Gaps,
		"summary":        result.Summary,
	})
}

// DebateDocuments handles the debate_documents tool
func (h *Handlers) DebateDocuments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic, err := request.RequireString("topic")
	if err != nil {
		return mcp.NewToolResultError("topic argument is required and must be a string"), nil
	}

	docs, err := h.selectDocuments(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := h.engine.DebateDocuments(ctx, docs, topic)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("debate failed: %v", err)), nil
	}

	rounds := make([]map[string]interface{}, 0, len(result.Rounds))
	for _, r := range result.Rounds {
		rounds = append(rounds, map[string]interface{}{
			"document": r.DocumentName,
			"argument": r.Argument,
		})
	}

	return jsonResult(map[string]interface{}{
		"topic":      result.Topic,
		"rounds":     rounds,
		"conclusion": result.Conclusion,
	})
}

// AssistWriting handles the assist_writing tool
func (h *Handlers) AssistWriting(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prompt, err := request.RequireString("prompt")
	if err != nil {
		return mcp.NewToolResultError("prompt argument is required and must be a string"), nil
	}
	mode := request.GetString("mode", "draft")

	docs, err := h.selectDocuments(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := h.engine.AssistWriting(ctx, docs, prompt, mode)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("writing assistance failed: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{
		"generated_text": result.GeneratedText,
		"suggestions":    result.Suggestions,
		"style_notes":    result.StyleNotes,
	})
}

// SuggestQuestions handles the suggest_questions tool
func (h *Handlers) SuggestQuestions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	docs, err := h.selectDocuments(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	questions, err := h.engine.GenerateSuggestedQuestions(ctx, docs)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("question generation failed: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{"questions": questions})
}

// selectDocuments resolves the optional document_ids argument against the
// session registry, defaulting to every uploaded document in upload order.
func (h *Handlers) selectDocuments(request mcp.CallToolRequest) ([]models.Document, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ids := h.order
	if args, ok := request.Params.Arguments.(map[string]any); ok {
		if raw, exists := args["document_ids"]; exists {
			arr, ok := raw.([]interface{})
			if !ok {
				return nil, fmt.Errorf("document_ids must be an array of strings")
			}
			ids = make([]string, 0, len(arr))
			for _, item := range arr {
				id, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("document_ids must be an array of strings")
				}
				ids = append(ids, id)
			}
		}
	}

	docs := make([]models.Document, 0, len(ids))
	for _, id := range ids {
		doc, ok := h.docs[id]
		if !ok {
			return nil, fmt.Errorf("unknown document ID %q; use list_documents to see uploaded documents", id)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func jsonResult(response map[string]interface{}) (*mcp.CallToolResult, error) {
	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}
