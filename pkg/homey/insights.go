package homey

import (
	"context"
	"strings"

	"github.com/aretw0/homey-mcp/pkg/ports"
	"github.com/aretw0/homey-mcp/pkg/registry"
)

// powerMarkers identify insights logs that carry power or energy data.
var powerMarkers = []string{"meter_power", "measure_power"}

func isPowerLog(id string) bool {
	for _, m := range powerMarkers {
		if strings.Contains(id, m) {
			return true
		}
	}
	return false
}

// energyLogs returns log identifiers only. Fetching the values is a separate call.
func (h *Handlers) energyLogs(ctx context.Context, b ports.Backend, _ registry.Args) ([]registry.Content, error) {
	logs, err := b.GetLogs(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0)
	for _, l := range logs {
		if isPowerLog(l.ID) {
			ids = append(ids, l.ID)
		}
	}
	return jsonResult(ids)
}
