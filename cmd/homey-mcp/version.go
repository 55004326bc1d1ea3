package main

import (
	"fmt"
	"strings"

	homeymcp "github.com/aretw0/homey-mcp"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of homey-mcp",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "homey-mcp version %s\n", strings.TrimSpace(homeymcp.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
