package ports

import (
	"context"
	"testing"

	"github.com/aretw0/homey-mcp/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// BackendFixture names the data a backend under contract test must contain.
type BackendFixture struct {
	DeviceID     string // an existing device
	CapabilityID string // a writable capability on DeviceID
	Value        any    // a value to write; must differ from the current one
	ZoneID       string // an existing zone
	FlowID       string // an existing standard flow
}

// RunBackendContract runs a suite of tests to verify that a Backend implementation
// adheres to the defined interface contract.
func RunBackendContract(t *testing.T, backend Backend, fx BackendFixture) {
	ctx := context.Background()

	t.Run("GetDevices", func(t *testing.T) {
		devices, err := backend.GetDevices(ctx)
		require.NoError(t, err)

		found := false
		for _, d := range devices {
			assert.NotEmpty(t, d.ID, "every device needs an id")
			if d.ID == fx.DeviceID {
				found = true
			}
		}
		assert.True(t, found, "device %s missing from list", fx.DeviceID)
	})

	t.Run("GetDevice NotFound", func(t *testing.T) {
		_, err := backend.GetDevice(ctx, "non-existent-device")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("SetCapabilityValue round trip", func(t *testing.T) {
		err := backend.SetCapabilityValue(ctx, fx.DeviceID, fx.CapabilityID, fx.Value)
		require.NoError(t, err)

		device, err := backend.GetDevice(ctx, fx.DeviceID)
		require.NoError(t, err)
		assert.Equal(t, fx.Value, device.CapabilityValues()[fx.CapabilityID])
	})

	t.Run("GetZones", func(t *testing.T) {
		zones, err := backend.GetZones(ctx)
		require.NoError(t, err)

		ids := make([]string, 0, len(zones))
		for _, z := range zones {
			ids = append(ids, z.ID)
		}
		assert.Contains(t, ids, fx.ZoneID)
	})

	t.Run("Flows", func(t *testing.T) {
		flows, err := backend.GetFlows(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, flows)

		assert.NoError(t, backend.TriggerFlow(ctx, fx.FlowID))
		assert.ErrorIs(t, backend.TriggerFlow(ctx, "non-existent-flow"), domain.ErrNotFound)
	})

	t.Run("GetLogs", func(t *testing.T) {
		_, err := backend.GetLogs(ctx)
		assert.NoError(t, err)
	})
}
