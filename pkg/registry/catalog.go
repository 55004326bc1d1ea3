package registry

import (
	"context"
	"fmt"

	"github.com/aretw0/homey-mcp/pkg/ports"
)

// Handler executes one operation against a borrowed Backend.
// It returns content blocks or an error; it never owns the Backend.
type Handler func(ctx context.Context, backend ports.Backend, args Args) ([]Content, error)

// Descriptor names a callable operation and its input shape.
type Descriptor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Schema      Schema `json:"-"`
}

// Operation ties a Descriptor to its Handler.
type Operation struct {
	Descriptor
	Handler Handler
}

// Catalog is the ordered, immutable set of operations.
// Descriptors and handlers come from the same Operation values, so a name
// can never point at a handler for a different schema.
type Catalog struct {
	ops   []Operation
	index map[string]int
}

// NewCatalog builds a Catalog. Names must be unique and non-empty.
func NewCatalog(ops ...Operation) (*Catalog, error) {
	c := &Catalog{
		ops:   make([]Operation, 0, len(ops)),
		index: make(map[string]int, len(ops)),
	}
	for _, op := range ops {
		if op.Name == "" {
			return nil, fmt.Errorf("operation without name")
		}
		if op.Handler == nil {
			return nil, fmt.Errorf("operation %q has no handler", op.Name)
		}
		if _, exists := c.index[op.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateOperation, op.Name)
		}
		c.index[op.Name] = len(c.ops)
		c.ops = append(c.ops, op)
	}
	return c, nil
}

// MustCatalog is like NewCatalog but panics on error. Intended for static catalogs.
func MustCatalog(ops ...Operation) *Catalog {
	c, err := NewCatalog(ops...)
	if err != nil {
		panic(err)
	}
	return c
}

// List returns a copy of the descriptors in registration order.
func (c *Catalog) List() []Descriptor {
	out := make([]Descriptor, len(c.ops))
	for i, op := range c.ops {
		out[i] = op.Descriptor
	}
	return out
}

// Lookup finds an operation by exact name.
func (c *Catalog) Lookup(name string) (Operation, bool) {
	i, ok := c.index[name]
	if !ok {
		return Operation{}, false
	}
	return c.ops[i], true
}

// Len returns the number of operations.
func (c *Catalog) Len() int {
	return len(c.ops)
}
