package ports

import (
	"context"
	"fmt"

	"github.com/aretw0/homey-mcp/pkg/domain"
)

// Backend is the capability-typed handle to the home-automation controller.
// Every call fetches fresh state; implementations must not cache snapshots.
// Collections are returned in the order the controller reports them.
type Backend interface {
	// GetDevices returns every device known to the controller.
	GetDevices(ctx context.Context) ([]domain.Device, error)

	// GetDevice returns a single device. Unknown ids yield an error wrapping domain.ErrNotFound.
	GetDevice(ctx context.Context, id string) (domain.Device, error)

	// SetCapabilityValue writes a capability value on a device.
	SetCapabilityValue(ctx context.Context, deviceID, capabilityID string, value any) error

	// GetZones returns the flat zone list.
	GetZones(ctx context.Context) ([]domain.Zone, error)

	// GetFlows returns the standard flows.
	GetFlows(ctx context.Context) ([]domain.Flow, error)

	// TriggerFlow runs a standard flow once.
	TriggerFlow(ctx context.Context, id string) error

	// GetLogs returns the insights log catalog.
	GetLogs(ctx context.Context) ([]domain.LogEntry, error)
}

// AdvancedFlowManager lists and triggers advanced flows.
type AdvancedFlowManager interface {
	GetAdvancedFlows(ctx context.Context) ([]domain.AdvancedFlow, error)
	TriggerAdvancedFlow(ctx context.Context, id string) error
}

// AdvancedFlowSource is implemented by backends that expose advanced flows
// through a dedicated manager. AdvancedFlows may return nil when the
// connected controller predates the feature.
type AdvancedFlowSource interface {
	AdvancedFlows() AdvancedFlowManager
}

// ResolveAdvancedFlows finds the advanced-flow accessor on a backend.
// The dedicated manager is preferred; a backend that implements
// AdvancedFlowManager directly is the fallback path.
func ResolveAdvancedFlows(b Backend) (AdvancedFlowManager, error) {
	if src, ok := b.(AdvancedFlowSource); ok {
		if m := src.AdvancedFlows(); m != nil {
			return m, nil
		}
	}
	if m, ok := b.(AdvancedFlowManager); ok {
		return m, nil
	}
	return nil, fmt.Errorf("advanced flows: %w", domain.ErrUnsupported)
}
