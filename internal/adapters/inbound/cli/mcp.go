package cli

import (
	"fmt"
	"path/filepath"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/logcheck/logcheck/internal/adapters/inbound/mcp"
	"github.com/logcheck/logcheck/internal/logging"
)

func newMCPCmd(logCfg *logging.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the logcheck MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(logCfg))
	return cmd
}

func newMCPServeCmd(logCfg *logging.Config) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start logcheck MCP server (stdio)",
		Long:  "Start the logcheck MCP server using stdio transport so assistants can validate activity logs and single rows.",
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			svc := newValidateService(newLogger(cmd, *logCfg))
			s := mcpadapter.NewLogcheckMCPServer(absPath, svc)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Folder containing the activity logs")

	return cmd
}
