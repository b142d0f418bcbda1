package mcp

import (
	"sort"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rn-labs/rninject/internal/branding"
	"github.com/rn-labs/rninject/internal/generate"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

var listCapabilitiesToolDef = mcp.NewTool("list_capabilities",
	mcp.WithDescription("List the Request Network client functions that can be generated, with their labels, required packages and whether they are selected by default."),
)

var generateCodeToolDef = mcp.NewTool("generate_code",
	mcp.WithDescription("Generate a source module containing the selected Request Network client functions. Returns the code and the npm packages it needs."),
	mcp.WithArray("capabilities",
		mcp.Required(),
		mcp.Description("Function names to include, in output order (see list_capabilities)."),
		mcp.Items(map[string]any{"type": "string"}),
	),
	mcp.WithString("language",
		mcp.Description("Output language."),
		mcp.Enum("typescript", "javascript"),
	),
	mcp.WithString("module_format",
		mcp.Description("Module system for javascript output; ignored for typescript."),
		mcp.Enum("esm", "cjs"),
	),
)

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"list_capabilities": {
		def:     listCapabilitiesToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleListCapabilities },
	},
	"generate_code": {
		def:     generateCodeToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleGenerateCode },
	},
}

// AllToolNames returns every tool name, sorted.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewServer creates an MCP server with the generation tools registered.
func NewServer(gen *generate.Generator, version string) *server.MCPServer {
	s := server.NewMCPServer(
		branding.CLIName(),
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(gen)
	for _, name := range AllToolNames() {
		entry := toolRegistry[name]
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(gen *generate.Generator, version string) error {
	return server.ServeStdio(NewServer(gen, version))
}
