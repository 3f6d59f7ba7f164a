package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vizard/internal/agent"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve play sessions to an agent over MCP",
	Long: `Start an MCP server on stdin/stdout. Agents create sessions, type keys
tick by tick and export the replay of their run.

Logs go to --log-file only, as stdout carries the protocol.

Examples:
  vizard mcp
  vizard mcp --fps 10 --log-file ./mcp.log`,
	Run: runMCP,
}

func runMCP(_ *cobra.Command, _ []string) {
	settings := loadSettings()
	logger, closeLog := newLogger()
	defer closeLog()

	manager := agent.NewManager(settings, flagFPS, logger)
	if err := agent.NewServer(manager).Serve(); err != nil {
		logger.Error("mcp server stopped", "error", err)
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
