package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	homeymcp "github.com/aretw0/homey-mcp"
	"github.com/aretw0/homey-mcp/internal/presentation/tui"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the bridge as an MCP Server.
Every Homey operation is published as a tool.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")
		if transport != "stdio" && transport != "sse" {
			return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", transport)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		bridge, logger, err := startBridge(ctx, cmd)
		if err != nil {
			return err
		}
		srv := bridge.MCPServer()

		switch transport {
		case "stdio":
			// Stdout carries JSON-RPC frames.
			logger.Info("Starting homey-mcp MCP Server (Stdio)...", "version", homeymcp.Version)
			if err := srv.ServeStdio(); err != nil {
				return fmt.Errorf("MCP Server execution failed: %w", err)
			}
		case "sse":
			if tui.IsTerminal(cmd.ErrOrStderr()) {
				tui.PrintBanner(cmd.ErrOrStderr(), homeymcp.Version)
			}
			if err := srv.ServeSSE(ctx, port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("MCP Server execution failed: %w", err)
			}
			logger.Info("MCP Server stopped gracefully")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
}
