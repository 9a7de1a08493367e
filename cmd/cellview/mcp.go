package main

import (
	"log"
	"os"

	"github.com/aretw0/cellview"
	"github.com/aretw0/cellview/pkg/adapters/mcp"
	"github.com/aretw0/cellview/pkg/domain"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts cellview as an MCP server over stdio, exposing the render_output and
list_output_types tools to AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		engine := newEngine(cfg, logger, domain.Hooks{})
		srv := mcp.NewServer(engine, cellview.Version)

		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)
		logger.Info("Starting cellview MCP server (stdio)")
		return srv.ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
