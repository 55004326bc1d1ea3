package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// errInvocationFailed exits non-zero after the error result was printed.
var errInvocationFailed = errors.New("invocation failed")

var callCmd = &cobra.Command{
	Use:   "call <operation> [json-arguments]",
	Short: "Invoke one operation and print its result",
	Example: `  homey-mcp call list_zones
  homey-mcp call control_zone_lights '{"zoneName":"Kitchen","on":true}'
  homey-mcp --demo call get_sensor_readings`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var input map[string]any
		if len(args) == 2 {
			if err := json.Unmarshal([]byte(args[1]), &input); err != nil {
				return fmt.Errorf("arguments must be a JSON object: %w", err)
			}
		}

		bridge, _, err := startBridge(cmd.Context(), cmd)
		if err != nil {
			return err
		}

		res := bridge.Invoke(cmd.Context(), args[0], input)
		fmt.Fprintln(cmd.OutOrStdout(), res.Message())
		if res.IsError {
			return errInvocationFailed
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(callCmd)
}
