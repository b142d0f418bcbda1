package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	rnerrors "github.com/rn-labs/rninject/internal/errors"
	"github.com/rn-labs/rninject/internal/generate"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	gen *generate.Generator
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(gen *generate.Generator) *Handlers {
	return &Handlers{gen: gen}
}

// GenerateCodeRequest represents the arguments for generate_code.
type GenerateCodeRequest struct {
	Capabilities []string `json:"capabilities"`
	Language     string   `json:"language,omitempty"`
	ModuleFormat string   `json:"module_format,omitempty"`
}

// CapabilityInfo is one entry of the list_capabilities output.
type CapabilityInfo struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Summary  string   `json:"summary"`
	Packages []string `json:"packages"`
	Default  bool     `json:"default"`
}

// ListCapabilitiesOutput is the list_capabilities result.
type ListCapabilitiesOutput struct {
	CatalogVersion string           `json:"catalog_version"`
	Capabilities   []CapabilityInfo `json:"capabilities"`
}

// GenerateCodeOutput is the generate_code result.
type GenerateCodeOutput struct {
	ID           string   `json:"id"`
	Code         string   `json:"code"`
	Packages     []string `json:"packages"`
	Imports      []string `json:"imports"`
	Language     string   `json:"language"`
	ModuleFormat string   `json:"module_format"`
	FileName     string   `json:"file_name"`
}

// HandleListCapabilities handles the list_capabilities tool call.
func (h *Handlers) HandleListCapabilities(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reg := h.gen.Registry()
	out := ListCapabilitiesOutput{CatalogVersion: reg.Version()}
	for _, c := range reg.All() {
		info := CapabilityInfo{
			Name:    c.Name,
			Label:   c.Label,
			Summary: c.Doc.Summary,
			Default: c.Default,
		}
		for _, p := range c.Packages {
			info.Packages = append(info.Packages, p.InstallSpec())
		}
		out.Capabilities = append(out.Capabilities, info)
	}
	return successResult(out)
}

// HandleGenerateCode handles the generate_code tool call.
func (h *Handlers) HandleGenerateCode(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[GenerateCodeRequest](req)
	if err != nil {
		return errorResult(rnerrors.NewInvalidRequest(rnerrors.StageValidate, err.Error())), nil
	}

	result, err := h.gen.Generate(ctx, generate.Request{
		Selection:    input.Capabilities,
		Language:     generate.Language(input.Language),
		ModuleFormat: generate.ModuleFormat(input.ModuleFormat),
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(GenerateCodeOutput{
		ID:           result.ID,
		Code:         result.Code,
		Packages:     result.InstallSpecs(),
		Imports:      result.Imports,
		Language:     string(result.Language),
		ModuleFormat: string(result.ModuleFormat),
		FileName:     "index." + result.Language.Extension(),
	})
}

// errorResult renders err as a tool error. Internal and uncoded errors are
// reduced to a generic message.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if ie, ok := rnerrors.As(err); ok && ie.Code != rnerrors.ErrInternal {
		errorObj := map[string]any{
			"code":    ie.Code,
			"message": ie.Message,
			"stage":   ie.Stage,
		}
		if ie.Identifier != "" {
			errorObj["identifier"] = ie.Identifier
		}
		if ie.Err != nil {
			errorObj["cause"] = ie.Err.Error()
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    rnerrors.ErrInternal,
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

func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
