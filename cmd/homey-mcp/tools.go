package main

import (
	"encoding/json"
	"fmt"

	homeymcp "github.com/aretw0/homey-mcp"
	"github.com/aretw0/homey-mcp/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Describe the operations published to agents",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		// The catalog is static; no controller is needed to describe it.
		bridge, err := homeymcp.New()
		if err != nil {
			return err
		}
		descs := bridge.Catalog().List()

		if asJSON {
			out := make([]map[string]any, 0, len(descs))
			for _, d := range descs {
				out = append(out, map[string]any{
					"name":        d.Name,
					"description": d.Description,
					"inputSchema": d.Schema.JSONSchema(),
				})
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		rendered, err := tui.NewRenderer(cmd.OutOrStdout())(tui.CatalogMarkdown(descs))
		if err != nil {
			return fmt.Errorf("render catalog: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	toolsCmd.Flags().Bool("json", false, "Print the catalog as JSON")
}
