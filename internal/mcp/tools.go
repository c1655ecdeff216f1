// ABOUTME: MCP tool definitions and registration for the doctalk server
// ABOUTME: Defines JSON schemas for all 8 document tools
package mcp

import (
	"github.com/harper/doctalk/internal/core"
	"github.com/harper/doctalk/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, engine *core.Engine) *Handlers {
	handlers := &Handlers{
		engine: engine,
		docs:   make(map[string]models.Document),
	}

	// 1. upload_document - Add a document to the session
	server.AddTool(mcp.Tool{
		Name:        "upload_document",
		Description: "Upload a document into the session. The document is chunked and indexed for retrieval; subsequent tools operate on uploaded documents.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Document filename, e.g. notes.md. The extension selects the extractor.",
				},
				"content": map[string]interface{}{
					"type":        "string",
					"description": "Full document text",
				},
			},
			Required: []string{"name", "content"},
		},
	}, handlers.UploadDocument)

	// 2. list_documents - List uploaded documents
	server.AddTool(mcp.Tool{
		Name:        "list_documents",
		Description: "List the documents uploaded in this session with their IDs and chunk counts.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListDocuments)

	// 3. query_documents - Answer a question from the documents
	server.AddTool(mcp.Tool{
		Name:        "query_documents",
		Description: "Answer a question grounded in the uploaded documents. Returns the answer and the source passages it drew on.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Question to answer",
				},
				"document_ids": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Document IDs to search (default: all uploaded documents)",
				},
			},
			Required: []string{"query"},
		},
	}, handlers.QueryDocuments)

	// 4. compare_documents - Similarities and differences
	server.AddTool(mcp.Tool{
		Name:        "compare_documents",
		Description: "Compare two or more documents, returning their similarities, differences, and a summary.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"document_ids": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Document IDs to compare (default: all uploaded documents, at least 2)",
				},
			},
		},
	}, handlers.CompareDocuments)

	// 5. detect_contradictions - Conflicting claims and gaps
	server.AddTool(mcp.Tool{
		Name:        "detect_contradictions",
		Description: "Find contradictions between documents and coverage gaps where one document addresses something the others do not.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"document_ids": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Document IDs to analyze (default: all uploaded documents, at least 2)",
				},
			},
		},
	}, handlers.DetectContradictions)

	// 6. debate_documents - Simulated debate on a topic
	server.AddTool(mcp.Tool{
		Name:        "debate_documents",
		Description: "Simulate a debate where each document argues its perspective on a topic, ending with a conclusion.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"topic": map[string]interface{}{
					"type":        "string",
					"description": "Topic the documents debate",
				},
				"document_ids": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Document IDs to include (default: all uploaded documents, at least 2)",
				},
			},
			Required: []string{"topic"},
		},
	}, handlers.DebateDocuments)

	// 7. assist_writing - Grounded text generation
	server.AddTool(mcp.Tool{
		Name:        "assist_writing",
		Description: "Generate text grounded in the uploaded documents: a draft, an outline, or a continuation, with suggestions and style notes.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"prompt": map[string]interface{}{
					"type":        "string",
					"description": "What to write",
				},
				"mode": map[string]interface{}{
					"type":        "string",
					"description": "Writing mode: draft, outline, or continue (default: draft)",
				},
				"document_ids": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Document IDs to ground on (default: all uploaded documents)",
				},
			},
			Required: []string{"prompt"},
		},
	}, handlers.AssistWriting)

	// 8. suggest_questions - Questions worth asking
	server.AddTool(mcp.Tool{
		Name:        "suggest_questions",
		Description: "Suggest questions a reader could ask about the uploaded documents.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"document_ids": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Document IDs to draw from (default: all uploaded documents)",
				},
			},
		},
	}, handlers.SuggestQuestions)

	return handlers
}
