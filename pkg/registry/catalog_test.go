package registry

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/homey-mcp/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(context.Context, ports.Backend, Args) ([]Content, error) {
	return []Content{Text("ok")}, nil
}

func op(name string) Operation {
	return Operation{
		Descriptor: Descriptor{Name: name, Description: name + " description"},
		Handler:    noop,
	}
}

func TestNewCatalog(t *testing.T) {
	c, err := NewCatalog(op("b"), op("a"), op("c"))
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	names := []string{}
	for _, d := range c.List() {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"b", "a", "c"}, names, "registration order is preserved")

	_, ok := c.Lookup("a")
	assert.True(t, ok)
	_, ok = c.Lookup("A")
	assert.False(t, ok, "lookup is exact")
	_, ok = c.Lookup("")
	assert.False(t, ok)
}

func TestNewCatalog_Errors(t *testing.T) {
	_, err := NewCatalog(op("a"), op("a"))
	assert.ErrorIs(t, err, ErrDuplicateOperation)

	_, err = NewCatalog(Operation{Descriptor: Descriptor{Name: "x"}})
	assert.Error(t, err)

	_, err = NewCatalog(Operation{Handler: noop})
	assert.Error(t, err)

	assert.Panics(t, func() { MustCatalog(op("a"), op("a")) })
}

func TestCatalog_ListIsIdempotent(t *testing.T) {
	c := MustCatalog(op("a"), op("b"))

	first, _ := json.Marshal(c.List())

	// Mutating a returned slice must not leak into the catalog.
	l := c.List()
	l[0].Name = "mutated"

	second, _ := json.Marshal(c.List())
	assert.Equal(t, string(first), string(second))
}

func TestCatalog_ListUnchangedByInvocations(t *testing.T) {
	c := testCatalog()
	d := NewDispatcher(c, ports.NewConnectedSession(&countingBackend{}))
	ctx := context.Background()

	first, err := json.Marshal(c.List())
	require.NoError(t, err)

	d.Invoke(ctx, "list", nil)
	d.Invoke(ctx, "get", map[string]any{"deviceId": "ghost"})
	d.Invoke(ctx, "get", map[string]any{})
	d.Invoke(ctx, "explode", nil)
	d.Invoke(ctx, "unknown", nil)

	second, err := json.Marshal(c.List())
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}
