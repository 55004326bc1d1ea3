package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	homeymcp "github.com/aretw0/homey-mcp"
	"github.com/aretw0/homey-mcp/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "homey-mcp",
	Short: "Expose a Homey controller to AI agents over MCP",
	Long: `homey-mcp bridges a Homey home-automation controller and tool-calling agents.

Configuration comes from HOMEY_TOKEN, HOMEY_ADDRESS (local connection),
HOMEY_ID (cloud connection) and HOMEY_LOG_LEVEL, or from a YAML file passed
with --config. Environment variables override the file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errInvocationFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().Bool("demo", false, "Serve the built-in demo controller instead of a real Homey")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
}

// startBridge builds the bridge from the global flags.
func startBridge(ctx context.Context, cmd *cobra.Command) (*homeymcp.Bridge, *slog.Logger, error) {
	configPath, _ := cmd.Flags().GetString("config")
	demo, _ := cmd.Flags().GetBool("demo")
	logLevel, _ := cmd.Flags().GetString("log-level")

	return cli.CreateBridge(ctx, cli.StartOptions{
		ConfigPath: configPath,
		Demo:       demo,
		LogLevel:   logLevel,
		Stderr:     cmd.ErrOrStderr(),
	})
}
