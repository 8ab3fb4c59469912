package mcp

import (
	"context"
	"encoding/json"
	stderrors "errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/peteretelej/largefile/internal/errors"
	"github.com/peteretelej/largefile/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	deps *ops.Deps
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(deps *ops.Deps) *Handlers {
	return &Handlers{deps: deps}
}

// Request types for each tool

// OverviewRequest represents the arguments for get_overview.
type OverviewRequest struct {
	AbsoluteFilePath string `json:"absolute_file_path"`
}

// SearchRequest represents the arguments for search_content.
type SearchRequest struct {
	AbsoluteFilePath string `json:"absolute_file_path"`
	SearchPattern    string `json:"search_pattern"`
	FuzzyMatching    bool   `json:"fuzzy_matching,omitempty"`
	MaxResults       int    `json:"max_results,omitempty"`
	ContextLines     *int   `json:"context_lines,omitempty"`
}

// ReadRequest represents the arguments for read_content.
type ReadRequest struct {
	AbsoluteFilePath string `json:"absolute_file_path"`
	TargetLine       int    `json:"target_line,omitempty"`
	TargetPattern    string `json:"target_pattern,omitempty"`
}

// EditRequest represents the arguments for edit_content.
type EditRequest struct {
	AbsoluteFilePath string `json:"absolute_file_path"`
	SearchText       string `json:"search_text"`
	ReplaceText      string `json:"replace_text"`
	FuzzyMatching    bool   `json:"fuzzy_matching,omitempty"`
	PreviewOnly      bool   `json:"preview_only,omitempty"`
	MaxReplacements  int    `json:"max_replacements,omitempty"`
}

// Handler implementations

// HandleOverview handles the get_overview tool call.
func (h *Handlers) HandleOverview(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[OverviewRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Overview(h.deps, ops.OverviewInput{Path: input.AbsoluteFilePath})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleSearch handles the search_content tool call.
func (h *Handlers) HandleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SearchRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Search(h.deps, ops.SearchInput{
		Path:         input.AbsoluteFilePath,
		Pattern:      input.SearchPattern,
		Fuzzy:        input.FuzzyMatching,
		MaxResults:   input.MaxResults,
		ContextLines: input.ContextLines,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleRead handles the read_content tool call.
func (h *Handlers) HandleRead(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ReadRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Read(h.deps, ops.ReadInput{
		Path:          input.AbsoluteFilePath,
		TargetLine:    input.TargetLine,
		TargetPattern: input.TargetPattern,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleEdit handles the edit_content tool call.
func (h *Handlers) HandleEdit(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[EditRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Edit(h.deps, ops.EditInput{
		Path:            input.AbsoluteFilePath,
		SearchText:      input.SearchText,
		ReplaceText:     input.ReplaceText,
		Fuzzy:           input.FuzzyMatching,
		Preview:         input.PreviewOnly,
		MaxReplacements: input.MaxReplacements,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// errorResult renders a structured error payload with IsError set, so agents
// can read the code and suggestion instead of a bare message string.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	var lfErr *errors.Error
	if stderrors.As(err, &lfErr) {
		errorObj := map[string]any{
			"code":    lfErr.Code,
			"message": lfErr.Message,
		}
		if lfErr.Suggestion != "" {
			errorObj["suggestion"] = lfErr.Suggestion
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
