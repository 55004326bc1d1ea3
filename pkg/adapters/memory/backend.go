package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/aretw0/homey-mcp/pkg/domain"
)

// Backend implements ports.Backend in memory.
// It also implements ports.AdvancedFlowManager directly, which exercises the
// fallback accessor path. Safe for concurrent use.
type Backend struct {
	mu            sync.RWMutex
	devices       []domain.Device
	zones         []domain.Zone
	flows         []domain.Flow
	advancedFlows []domain.AdvancedFlow
	logs          []domain.LogEntry

	failures  map[string]error // deviceID -> error returned by SetCapabilityValue
	calls     int
	triggered []string
}

// Option configures the Backend.
type Option func(*Backend)

// WithDevices seeds devices in the given order.
func WithDevices(devices ...domain.Device) Option {
	return func(b *Backend) { b.devices = append(b.devices, devices...) }
}

// WithZones seeds zones.
func WithZones(zones ...domain.Zone) Option {
	return func(b *Backend) { b.zones = append(b.zones, zones...) }
}

// WithFlows seeds standard flows.
func WithFlows(flows ...domain.Flow) Option {
	return func(b *Backend) { b.flows = append(b.flows, flows...) }
}

// WithAdvancedFlows seeds advanced flows.
func WithAdvancedFlows(flows ...domain.AdvancedFlow) Option {
	return func(b *Backend) { b.advancedFlows = append(b.advancedFlows, flows...) }
}

// WithLogs seeds the insights log catalog.
func WithLogs(logs ...domain.LogEntry) Option {
	return func(b *Backend) { b.logs = append(b.logs, logs...) }
}

// WithCapabilityFailure makes every SetCapabilityValue on deviceID fail with err.
func WithCapabilityFailure(deviceID string, err error) Option {
	return func(b *Backend) { b.failures[deviceID] = err }
}

// NewBackend creates a new in-memory backend.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{failures: make(map[string]error)}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// GetDevices returns copies of all devices.
func (b *Backend) GetDevices(ctx context.Context) ([]domain.Device, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls++

	out := make([]domain.Device, len(b.devices))
	for i, d := range b.devices {
		out[i] = copyDevice(d)
	}
	return out, nil
}

// GetDevice returns a copy of one device.
func (b *Backend) GetDevice(ctx context.Context, id string) (domain.Device, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls++

	i := b.deviceIndex(id)
	if i < 0 {
		return domain.Device{}, fmt.Errorf("device %s: %w", id, domain.ErrNotFound)
	}
	return copyDevice(b.devices[i]), nil
}

// SetCapabilityValue stores the value, unless a failure was injected.
func (b *Backend) SetCapabilityValue(ctx context.Context, deviceID, capabilityID string, value any) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls++

	if err, ok := b.failures[deviceID]; ok {
		return err
	}
	i := b.deviceIndex(deviceID)
	if i < 0 {
		return fmt.Errorf("device %s: %w", deviceID, domain.ErrNotFound)
	}

	d := &b.devices[i]
	if !d.HasCapability(capabilityID) {
		return fmt.Errorf("invalid capability %s for device %s", capabilityID, deviceID)
	}
	if d.CapabilitiesObj == nil {
		d.CapabilitiesObj = make(map[string]domain.CapabilityState)
	}
	st := d.CapabilitiesObj[capabilityID]
	st.ID = capabilityID
	st.Value = value
	d.CapabilitiesObj[capabilityID] = st
	return nil
}

// GetZones returns all zones.
func (b *Backend) GetZones(ctx context.Context) ([]domain.Zone, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls++
	return append([]domain.Zone(nil), b.zones...), nil
}

// GetFlows returns all standard flows.
func (b *Backend) GetFlows(ctx context.Context) ([]domain.Flow, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls++
	return append([]domain.Flow(nil), b.flows...), nil
}

// TriggerFlow records a standard flow run.
func (b *Backend) TriggerFlow(ctx context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls++

	for _, f := range b.flows {
		if f.ID == id {
			b.triggered = append(b.triggered, id)
			return nil
		}
	}
	return fmt.Errorf("flow %s: %w", id, domain.ErrNotFound)
}

// GetAdvancedFlows returns all advanced flows.
func (b *Backend) GetAdvancedFlows(ctx context.Context) ([]domain.AdvancedFlow, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls++
	return append([]domain.AdvancedFlow(nil), b.advancedFlows...), nil
}

// TriggerAdvancedFlow records an advanced flow run.
func (b *Backend) TriggerAdvancedFlow(ctx context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls++

	for _, f := range b.advancedFlows {
		if f.ID == id {
			b.triggered = append(b.triggered, id)
			return nil
		}
	}
	return fmt.Errorf("advanced flow %s: %w", id, domain.ErrNotFound)
}

// GetLogs returns the insights log catalog.
func (b *Backend) GetLogs(ctx context.Context) ([]domain.LogEntry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls++
	return append([]domain.LogEntry(nil), b.logs...), nil
}

// Calls returns the number of backend calls served so far.
func (b *Backend) Calls() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.calls
}

// Triggered returns the ids of flows and advanced flows run so far, in order.
func (b *Backend) Triggered() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]string(nil), b.triggered...)
}

func (b *Backend) deviceIndex(id string) int {
	for i, d := range b.devices {
		if d.ID == id {
			return i
		}
	}
	return -1
}

func copyDevice(d domain.Device) domain.Device {
	d.Capabilities = append([]string(nil), d.Capabilities...)
	if d.CapabilitiesObj != nil {
		obj := make(map[string]domain.CapabilityState, len(d.CapabilitiesObj))
		for k, v := range d.CapabilitiesObj {
			obj[k] = v
		}
		d.CapabilitiesObj = obj
	}
	return d
}
