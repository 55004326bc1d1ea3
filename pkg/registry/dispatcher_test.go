package registry

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/aretw0/homey-mcp/pkg/domain"
	"github.com/aretw0/homey-mcp/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingBackend records how many backend calls were attempted.
type countingBackend struct {
	calls atomic.Int32
}

func (b *countingBackend) GetDevices(context.Context) ([]domain.Device, error) {
	b.calls.Add(1)
	return []domain.Device{{ID: "d1"}}, nil
}
func (b *countingBackend) GetDevice(_ context.Context, id string) (domain.Device, error) {
	b.calls.Add(1)
	return domain.Device{}, fmt.Errorf("device %s: %w", id, domain.ErrNotFound)
}
func (b *countingBackend) SetCapabilityValue(context.Context, string, string, any) error {
	b.calls.Add(1)
	return nil
}
func (b *countingBackend) GetZones(context.Context) ([]domain.Zone, error) {
	b.calls.Add(1)
	return nil, nil
}
func (b *countingBackend) GetFlows(context.Context) ([]domain.Flow, error) {
	b.calls.Add(1)
	return nil, nil
}
func (b *countingBackend) TriggerFlow(context.Context, string) error {
	b.calls.Add(1)
	return nil
}
func (b *countingBackend) GetLogs(context.Context) ([]domain.LogEntry, error) {
	b.calls.Add(1)
	return nil, nil
}

func testCatalog() *Catalog {
	return MustCatalog(
		Operation{
			Descriptor: Descriptor{Name: "list", Description: "lists"},
			Handler: func(ctx context.Context, b ports.Backend, _ Args) ([]Content, error) {
				devices, err := b.GetDevices(ctx)
				if err != nil {
					return nil, err
				}
				return []Content{Text(devices[0].ID), Text("second")}, nil
			},
		},
		Operation{
			Descriptor: Descriptor{
				Name:   "get",
				Schema: NewSchema(String("deviceId", Required())),
			},
			Handler: func(ctx context.Context, b ports.Backend, args Args) ([]Content, error) {
				id, _ := args.String("deviceId")
				_, err := b.GetDevice(ctx, id)
				return nil, err
			},
		},
		Operation{
			Descriptor: Descriptor{Name: "explode"},
			Handler: func(context.Context, ports.Backend, Args) ([]Content, error) {
				var m map[string]int
				m["boom"]++
				return nil, nil
			},
		},
		Operation{
			Descriptor: Descriptor{Name: "plain_error"},
			Handler: func(context.Context, ports.Backend, Args) ([]Content, error) {
				return nil, errors.New("Capability out of range")
			},
		},
	)
}

func TestDispatcher_NotConnected(t *testing.T) {
	backend := &countingBackend{}
	catalog := testCatalog()

	session := ports.NewSession()
	err := session.Establish(context.Background(), func(context.Context) (ports.Backend, error) {
		return backend, errors.New("connection refused")
	})
	require.Error(t, err)
	d := NewDispatcher(catalog, session)

	for _, desc := range catalog.List() {
		res := d.Invoke(context.Background(), desc.Name, map[string]any{"deviceId": "d1"})
		assert.True(t, res.IsError, desc.Name)
		require.Len(t, res.Content, 1)
		assert.Equal(t, "Error: "+NotConnectedMessage, res.Content[0].Text)
	}
	assert.Equal(t, int32(0), backend.calls.Load(), "no backend call while disconnected")

	res := NewDispatcher(catalog, ports.NewConnectedSession(backend)).Invoke(context.Background(), "list", nil)
	assert.False(t, res.IsError)
	assert.Equal(t, int32(1), backend.calls.Load(), "the same backend is reachable once connected")
}

func TestDispatcher_UnknownOperation(t *testing.T) {
	d := NewDispatcher(testCatalog(), ports.NewConnectedSession(&countingBackend{}))

	for _, name := range []string{"nope", "LIST", "lis", "list ", ""} {
		res := d.Invoke(context.Background(), name, nil)
		assert.True(t, res.IsError)
		assert.Equal(t, "Error: Unknown operation: "+name, res.Content[0].Text)
	}
}

func TestDispatcher_Success(t *testing.T) {
	backend := &countingBackend{}
	d := NewDispatcher(testCatalog(), ports.NewConnectedSession(backend))

	res := d.Invoke(context.Background(), "list", nil)
	assert.False(t, res.IsError)
	assert.Equal(t, []Content{Text("d1"), Text("second")}, res.Content, "content is wrapped verbatim")
	assert.Equal(t, int32(1), backend.calls.Load())
}

func TestDispatcher_HandlerErrors(t *testing.T) {
	d := NewDispatcher(testCatalog(), ports.NewConnectedSession(&countingBackend{}))
	ctx := context.Background()

	res := d.Invoke(ctx, "get", map[string]any{"deviceId": "ghost"})
	assert.True(t, res.IsError)
	assert.Equal(t, "Error: device ghost: not found", res.Content[0].Text)

	res = d.Invoke(ctx, "plain_error", nil)
	assert.Equal(t, "Error: Capability out of range", res.Content[0].Text, "message is surfaced unmodified")

	res = d.Invoke(ctx, "explode", nil)
	assert.True(t, res.IsError, "panics are contained")
	assert.Contains(t, res.Content[0].Text, "assignment to entry in nil map")
}

func TestDispatcher_Validation(t *testing.T) {
	backend := &countingBackend{}
	ctx := context.Background()

	d := NewDispatcher(testCatalog(), ports.NewConnectedSession(backend))
	res := d.Invoke(ctx, "get", map[string]any{})
	assert.True(t, res.IsError)
	assert.Contains(t, res.Content[0].Text, `missing required field "deviceId"`)
	assert.Equal(t, int32(0), backend.calls.Load(), "rejected before the handler runs")

	loose := NewDispatcher(testCatalog(), ports.NewConnectedSession(backend), WithoutValidation())
	res = loose.Invoke(ctx, "get", map[string]any{})
	assert.True(t, res.IsError)
	assert.Equal(t, int32(1), backend.calls.Load(), "handler reached without validation")
}

func TestDispatcher_Hooks(t *testing.T) {
	var invoked []string
	var events []InvocationEvent
	hooks := Hooks{
		OnInvoke: func(_ context.Context, op string, _ Args) { invoked = append(invoked, op) },
		OnComplete: func(_ context.Context, e InvocationEvent) {
			events = append(events, e)
		},
	}
	d := NewDispatcher(testCatalog(), ports.NewConnectedSession(&countingBackend{}), WithHooks(hooks))

	d.Invoke(context.Background(), "list", nil)
	d.Invoke(context.Background(), "missing", nil)

	assert.Equal(t, []string{"list", "missing"}, invoked)
	require.Len(t, events, 2)
	assert.False(t, events[0].IsError)
	assert.True(t, events[1].IsError)
	assert.Equal(t, "Error: Unknown operation: missing", events[1].Message)
}

func TestDispatcher_SanitizesStrings(t *testing.T) {
	var got string
	catalog := MustCatalog(Operation{
		Descriptor: Descriptor{Name: "echo", Schema: NewSchema(String("text", Required()))},
		Handler: func(_ context.Context, _ ports.Backend, args Args) ([]Content, error) {
			got, _ = args.String("text")
			return []Content{Text(got)}, nil
		},
	})
	d := NewDispatcher(catalog, ports.NewConnectedSession(&countingBackend{}))

	res := d.Invoke(context.Background(), "echo", map[string]any{"text": "Liv\x1bing\x00 Room"})
	assert.False(t, res.IsError)
	assert.Equal(t, "Living Room", got)

	res = d.Invoke(context.Background(), "echo", map[string]any{"text": "\xff"})
	assert.True(t, res.IsError)
	assert.Contains(t, res.Message(), "invalid UTF-8")
}
