package homey

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/homey-mcp/pkg/domain"
	"github.com/aretw0/homey-mcp/pkg/ports"
	"github.com/aretw0/homey-mcp/pkg/registry"
)

var errFlowArgs = fmt.Errorf("%w: flowId or flowName is required", registry.ErrInvalidArgument)

func (h *Handlers) listFlows(ctx context.Context, b ports.Backend, _ registry.Args) ([]registry.Content, error) {
	flows, err := b.GetFlows(ctx)
	if err != nil {
		return nil, err
	}
	if flows == nil {
		flows = []domain.Flow{}
	}
	return jsonResult(flows)
}

func (h *Handlers) runFlow(ctx context.Context, b ports.Backend, args registry.Args) ([]registry.Content, error) {
	id, name := args.OptionalString("flowId"), args.OptionalString("flowName")
	if id == "" {
		if name == "" {
			return nil, errFlowArgs
		}
		flows, err := b.GetFlows(ctx)
		if err != nil {
			return nil, err
		}
		for _, f := range flows {
			if strings.EqualFold(f.Name, name) {
				id, name = f.ID, f.Name
				break
			}
		}
		if id == "" {
			return nil, fmt.Errorf("flow not found: %s", name)
		}
	}

	if err := b.TriggerFlow(ctx, id); err != nil {
		return nil, err
	}
	return textResult("Triggered flow %s.", flowLabel(id, name))
}

func (h *Handlers) listAdvancedFlows(ctx context.Context, b ports.Backend, _ registry.Args) ([]registry.Content, error) {
	m, err := ports.ResolveAdvancedFlows(b)
	if err != nil {
		return nil, err
	}
	flows, err := m.GetAdvancedFlows(ctx)
	if err != nil {
		return nil, err
	}
	if flows == nil {
		flows = []domain.AdvancedFlow{}
	}
	return jsonResult(flows)
}

func (h *Handlers) runAdvancedFlow(ctx context.Context, b ports.Backend, args registry.Args) ([]registry.Content, error) {
	id, name := args.OptionalString("flowId"), args.OptionalString("flowName")
	if id == "" && name == "" {
		return nil, errFlowArgs
	}

	m, err := ports.ResolveAdvancedFlows(b)
	if err != nil {
		return nil, err
	}
	if id == "" {
		flows, err := m.GetAdvancedFlows(ctx)
		if err != nil {
			return nil, err
		}
		for _, f := range flows {
			if strings.EqualFold(f.Name, name) {
				id, name = f.ID, f.Name
				break
			}
		}
		if id == "" {
			return nil, fmt.Errorf("advanced flow not found: %s", name)
		}
	}

	if err := m.TriggerAdvancedFlow(ctx, id); err != nil {
		return nil, err
	}
	return textResult("Triggered advanced flow %s.", flowLabel(id, name))
}

func flowLabel(id, name string) string {
	if name == "" {
		return id
	}
	return fmt.Sprintf("%s (%s)", name, id)
}
