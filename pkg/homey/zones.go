package homey

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/homey-mcp/pkg/domain"
	"github.com/aretw0/homey-mcp/pkg/ports"
	"github.com/aretw0/homey-mcp/pkg/registry"
)

// errZoneArgs is returned when neither zoneId nor zoneName was supplied.
var errZoneArgs = fmt.Errorf("%w: zoneName or zoneId is required", registry.ErrInvalidArgument)

// resolveZone matches a zone by display name, ignoring case.
// The first match in backend order wins.
func resolveZone(ctx context.Context, b ports.Backend, name string) (domain.Zone, error) {
	zones, err := b.GetZones(ctx)
	if err != nil {
		return domain.Zone{}, err
	}
	for _, z := range zones {
		if strings.EqualFold(z.Name, name) {
			return z, nil
		}
	}
	return domain.Zone{}, fmt.Errorf("zone not found: %s", name)
}

func devicesInZone(devices []domain.Device, zoneID string) []domain.Device {
	var out []domain.Device
	for _, d := range devices {
		if d.Zone == zoneID {
			out = append(out, d)
		}
	}
	return out
}

func (h *Handlers) listZones(ctx context.Context, b ports.Backend, _ registry.Args) ([]registry.Content, error) {
	zones, err := b.GetZones(ctx)
	if err != nil {
		return nil, err
	}
	if zones == nil {
		zones = []domain.Zone{}
	}
	return jsonResult(zones)
}

// ZoneDevices is the result of find_devices_by_zone.
type ZoneDevices struct {
	ZoneID   string          `json:"zoneId"`
	ZoneName string          `json:"zoneName,omitempty"`
	Devices  []DeviceSummary `json:"devices"`
}

func (h *Handlers) devicesByZone(ctx context.Context, b ports.Backend, args registry.Args) ([]registry.Content, error) {
	zoneID := args.OptionalString("zoneId")
	zoneName := args.OptionalString("zoneName")

	switch {
	case zoneID != "":
	case zoneName != "":
		zone, err := resolveZone(ctx, b, zoneName)
		if err != nil {
			return nil, err
		}
		zoneID, zoneName = zone.ID, zone.Name
	default:
		return nil, errZoneArgs
	}

	devices, err := b.GetDevices(ctx)
	if err != nil {
		return nil, err
	}
	return jsonResult(ZoneDevices{
		ZoneID:   zoneID,
		ZoneName: zoneName,
		Devices:  summarizeAll(devicesInZone(devices, zoneID)),
	})
}

func isLight(d domain.Device) bool {
	return d.Class == domain.ClassLight || d.HasCapability(domain.CapabilityOnOff)
}

func (h *Handlers) controlZoneLights(ctx context.Context, b ports.Backend, args registry.Args) ([]registry.Content, error) {
	name, err := args.String("zoneName")
	if err != nil {
		return nil, err
	}
	on, err := args.Bool("on")
	if err != nil {
		return nil, err
	}
	brightness, dim, err := args.OptionalNumber("brightness")
	if err != nil {
		return nil, err
	}
	if dim && (brightness < 0 || brightness > 1) {
		return nil, fmt.Errorf("%w: brightness must be between 0 and 1", registry.ErrInvalidArgument)
	}

	zone, err := resolveZone(ctx, b, name)
	if err != nil {
		return nil, err
	}
	devices, err := b.GetDevices(ctx)
	if err != nil {
		return nil, err
	}

	updated := 0
	for _, d := range devicesInZone(devices, zone.ID) {
		if !isLight(d) {
			continue
		}
		if err := h.switchLight(ctx, b, d, on, dim, brightness); err != nil {
			h.logger.Warn("zone light update skipped",
				"zone", zone.Name,
				"device", d.ID,
				"name", d.Name,
				"error", err,
			)
			continue
		}
		updated++
	}

	state := "off"
	if on {
		state = "on"
	}
	return textResult("Turned %s %d light(s) in %s.", state, updated, zone.Name)
}

// switchLight issues the per-device calls sequentially.
func (h *Handlers) switchLight(ctx context.Context, b ports.Backend, d domain.Device, on, dim bool, brightness float64) error {
	if err := b.SetCapabilityValue(ctx, d.ID, domain.CapabilityOnOff, on); err != nil {
		return err
	}
	if on && dim && d.HasCapability(domain.CapabilityDim) {
		if err := b.SetCapabilityValue(ctx, d.ID, domain.CapabilityDim, brightness); err != nil {
			return fmt.Errorf("set dim: %w", err)
		}
	}
	return nil
}
