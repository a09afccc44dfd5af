package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"focusdesk/internal/bridge"
)

// Server exposes the document store, backups and transfers to local
// assistants over the Model Context Protocol.
type Server struct {
	cmds    bridge.Commands
	version string
	log     hclog.Logger
}

func New(cmds bridge.Commands, version string, log hclog.Logger) *Server {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	if version == "" {
		version = "dev"
	}
	return &Server{cmds: cmds, version: version, log: log}
}

func (s *Server) Build() *server.MCPServer {
	srv := server.NewMCPServer(
		"focusdesk",
		s.version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Read and update focusdesk profiles, activities, settings and todos, and manage their backups."),
		server.WithRecovery(),
	)
	s.registerResources(srv)
	s.registerTools(srv)
	return srv
}

// ServeStdio blocks until stdin closes.
func (s *Server) ServeStdio(_ context.Context) error {
	s.log.Info("mcp server on stdio", "version", s.version)
	return server.ServeStdio(s.Build())
}

func textResult(format string, args ...any) *mcp.CallToolResult {
	return mcp.NewToolResultText(fmt.Sprintf(format, args...))
}

func jsonResult(payload any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func stringArg(req mcp.CallToolRequest, name string) string {
	args, _ := req.Params.Arguments.(map[string]any)
	value, _ := args[name].(string)
	return value
}
