package homey

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/homey-mcp/pkg/domain"
	"github.com/aretw0/homey-mcp/pkg/ports"
	"github.com/aretw0/homey-mcp/pkg/registry"
)

// DeviceSummary is the compact projection used by list operations.
type DeviceSummary struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Zone         string         `json:"zone"`
	Class        string         `json:"class"`
	Capabilities []string       `json:"capabilities"`
	Values       map[string]any `json:"values"`
}

func summarize(d domain.Device) DeviceSummary {
	caps := d.Capabilities
	if caps == nil {
		caps = []string{}
	}
	return DeviceSummary{
		ID:           d.ID,
		Name:         d.Name,
		Zone:         d.ZoneName,
		Class:        d.Class,
		Capabilities: caps,
		Values:       d.CapabilityValues(),
	}
}

func summarizeAll(devices []domain.Device) []DeviceSummary {
	out := make([]DeviceSummary, 0, len(devices))
	for _, d := range devices {
		out = append(out, summarize(d))
	}
	return out
}

func jsonResult(v any) ([]registry.Content, error) {
	c, err := registry.JSON(v)
	if err != nil {
		return nil, err
	}
	return []registry.Content{c}, nil
}

func textResult(format string, a ...any) ([]registry.Content, error) {
	return []registry.Content{registry.Text(fmt.Sprintf(format, a...))}, nil
}

func (h *Handlers) listDevices(ctx context.Context, b ports.Backend, _ registry.Args) ([]registry.Content, error) {
	devices, err := b.GetDevices(ctx)
	if err != nil {
		return nil, err
	}
	return jsonResult(summarizeAll(devices))
}

func (h *Handlers) getDevice(ctx context.Context, b ports.Backend, args registry.Args) ([]registry.Content, error) {
	id, err := args.String("deviceId")
	if err != nil {
		return nil, err
	}
	device, err := b.GetDevice(ctx, id)
	if err != nil {
		return nil, err
	}
	return jsonResult(device)
}

func (h *Handlers) findDeviceByName(ctx context.Context, b ports.Backend, args registry.Args) ([]registry.Content, error) {
	name, err := args.String("name")
	if err != nil {
		return nil, err
	}
	devices, err := b.GetDevices(ctx)
	if err != nil {
		return nil, err
	}

	var exact, partial []domain.Device
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, d := range devices {
		switch {
		case strings.EqualFold(d.Name, name):
			exact = append(exact, d)
		case needle != "" && strings.Contains(strings.ToLower(d.Name), needle):
			partial = append(partial, d)
		}
	}

	if len(exact) > 0 {
		return jsonResult(summarizeAll(exact))
	}
	if len(partial) > 0 {
		return jsonResult(summarizeAll(partial))
	}
	return nil, fmt.Errorf("no device matching %q: %w", name, domain.ErrNotFound)
}

func (h *Handlers) setCapability(ctx context.Context, b ports.Backend, args registry.Args) ([]registry.Content, error) {
	id, err := args.String("deviceId")
	if err != nil {
		return nil, err
	}
	capability, err := args.String("capabilityId")
	if err != nil {
		return nil, err
	}
	value, err := args.Value("value")
	if err != nil {
		return nil, err
	}

	device, err := b.GetDevice(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := b.SetCapabilityValue(ctx, device.ID, capability, value); err != nil {
		return nil, err
	}
	return textResult("Set %s to %v on %s (%s).", capability, value, device.Name, device.ID)
}

// isSensor selects devices of class sensor or with any measure_* capability.
func isSensor(d domain.Device) bool {
	return d.Class == domain.ClassSensor || d.HasCapabilityPrefix(domain.MeasurePrefix)
}

func formatReading(st domain.CapabilityState) string {
	s := fmt.Sprintf("%s: %v", st.ID, st.Value)
	if st.Units != "" {
		s += " " + st.Units
	}
	return s
}

func (h *Handlers) sensorReadings(ctx context.Context, b ports.Backend, _ registry.Args) ([]registry.Content, error) {
	devices, err := b.GetDevices(ctx)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, d := range devices {
		if !isSensor(d) {
			continue
		}
		readings := "no active measures"
		if measures := d.Measures(); len(measures) > 0 {
			parts := make([]string, 0, len(measures))
			for _, m := range measures {
				parts = append(parts, formatReading(m))
			}
			readings = strings.Join(parts, ", ")
		}
		lines = append(lines, fmt.Sprintf("%s (%s): %s", d.Name, d.ZoneName, readings))
	}

	if len(lines) == 0 {
		return textResult("No sensor devices found.")
	}
	return textResult("%s", strings.Join(lines, "\n"))
}
