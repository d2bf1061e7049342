package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/logcheck/logcheck/internal/application"
)

// NewLogcheckMCPServer creates an MCP server with the logcheck tools
// registered. dir is the folder whose activity logs the tools validate.
func NewLogcheckMCPServer(dir string, svc *application.ValidateService) *server.MCPServer {
	s := server.NewMCPServer(
		"logcheck",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, dir, svc)

	return s
}
