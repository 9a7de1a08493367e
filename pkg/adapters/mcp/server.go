package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/cellview/pkg/domain"
	"github.com/aretw0/cellview/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Engine defines the interface required by the MCP server to render outputs.
type Engine interface {
	ports.Decoder
	Format(mime domain.MIMEType, value domain.Value) string
}

// OutputType describes one recognized tag and the route it renders through.
type OutputType struct {
	MIME  domain.MIMEType `json:"mime" jsonschema_description:"The type tag"`
	Route domain.Route    `json:"route" jsonschema_description:"The formatting routine"`
	JSON  bool            `json:"json" jsonschema_description:"Whether the payload is a JSON document"`
}

// Server wraps a cellview Engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine, version string) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("cellview-mcp", version),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: render_output
	renderTool := mcp.NewTool("render_output",
		mcp.WithDescription("Render a notebook cell output payload as an HTML fragment."),
		mcp.WithString("mime", mcp.Required(), mcp.Description("The MIME-like type tag of the payload")),
		mcp.WithString("data", mcp.Required(), mcp.Description("The payload text (JSON document or HTML)")),
	)
	s.mcpServer.AddTool(renderTool, s.HandleRenderOutput)

	// TOOL: list_output_types
	s.mcpServer.AddTool(mcp.NewTool("list_output_types",
		mcp.WithDescription("List the recognized output type tags and how each is rendered."),
	), s.HandleListOutputTypes)
}

// HandleRenderOutput parses and formats one payload.
// Parse failures are reported as tool errors, not protocol errors.
func (s *Server) HandleRenderOutput(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mime, err := request.RequireString("mime")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data := request.GetString("data", "")

	payload := domain.OutputPayload{Type: domain.MIMEType(mime), Data: []byte(data)}
	value, err := s.engine.Parse(payload)
	if err != nil {
		slog.Warn("MCP render_output: Payload rejected", "mime", mime, "error", err)
		var unsupported *domain.UnsupportedTypeError
		if errors.As(err, &unsupported) {
			return mcp.NewToolResultError(fmt.Sprintf("%v (see list_output_types)", err)), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(s.engine.Format(payload.Type, value)), nil
}

// HandleListOutputTypes returns the recognized tags as JSON.
func (s *Server) HandleListOutputTypes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	types := make([]OutputType, 0, len(domain.SupportedTypes))
	for _, t := range domain.SupportedTypes {
		types = append(types, OutputType{MIME: t, Route: t.Route(), JSON: t.IsJSON()})
	}
	jsonBytes, err := json.Marshal(types)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
