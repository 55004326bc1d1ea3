package homeymcp_test

import (
	"context"
	"fmt"
	"log"

	homeymcp "github.com/aretw0/homey-mcp"
	"github.com/aretw0/homey-mcp/pkg/adapters/memory"
)

// ExampleBridge_Invoke runs operations against the in-memory demo controller.
func ExampleBridge_Invoke() {
	bridge, err := homeymcp.New()
	if err != nil {
		log.Fatal(err)
	}
	ctx := context.Background()
	if err := bridge.ConnectBackend(ctx, memory.NewDemo()); err != nil {
		log.Fatal(err)
	}

	res := bridge.Invoke(ctx, "control_zone_lights", map[string]any{"zoneName": "living room", "on": true})
	fmt.Println(res.Message())

	res = bridge.Invoke(ctx, "run_flow", map[string]any{"flowName": "good night"})
	fmt.Println(res.Message())

	res = bridge.Invoke(ctx, "unknown_op", nil)
	fmt.Println(res.Message())
	// Output:
	// Turned on 2 light(s) in Living Room.
	// Triggered flow Good Night (flow-goodnight).
	// Error: Unknown operation: unknown_op
}
