package main

import (
	"errors"
	"fmt"

	"github.com/aretw0/homey-mcp/internal/presentation/graph"
	"github.com/aretw0/homey-mcp/pkg/ports"
	"github.com/aretw0/homey-mcp/pkg/registry"
	"github.com/spf13/cobra"
)

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "Print the zone tree and its devices as a Mermaid flowchart",
	RunE: func(cmd *cobra.Command, args []string) error {
		bridge, _, err := startBridge(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		backend := bridge.Backend()
		if backend == nil {
			return errors.New(registry.NotConnectedMessage)
		}
		return printZoneGraph(cmd, backend)
	},
}

func printZoneGraph(cmd *cobra.Command, backend ports.Backend) error {
	zones, err := backend.GetZones(cmd.Context())
	if err != nil {
		return fmt.Errorf("list zones: %w", err)
	}
	devices, err := backend.GetDevices(cmd.Context())
	if err != nil {
		return fmt.Errorf("list devices: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(zones, devices))
	return nil
}

func init() {
	rootCmd.AddCommand(zonesCmd)
}
