package homey

import (
	"log/slog"

	"github.com/aretw0/homey-mcp/internal/logging"
	"github.com/aretw0/homey-mcp/pkg/registry"
)

// Operation names.
const (
	OpListDevices       = "list_devices"
	OpGetDevice         = "get_device"
	OpFindDeviceByName  = "find_device_by_name"
	OpSetCapability     = "set_capability"
	OpSensorReadings    = "get_sensor_readings"
	OpListZones         = "list_zones"
	OpDevicesByZone     = "find_devices_by_zone"
	OpControlZoneLights = "control_zone_lights"
	OpListFlows         = "list_flows"
	OpRunFlow           = "run_flow"
	OpListAdvancedFlows = "list_advanced_flows"
	OpRunAdvancedFlow   = "run_advanced_flow"
	OpEnergyLogs        = "get_energy_logs"
)

// Handlers implements the catalog operations.
type Handlers struct {
	logger *slog.Logger
}

// NewHandlers creates the handler set. A nil logger discards batch diagnostics.
func NewHandlers(logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handlers{logger: logger}
}

// Operations returns every operation in catalog order.
func (h *Handlers) Operations() []registry.Operation {
	return []registry.Operation{
		{
			Descriptor: registry.Descriptor{
				Name:        OpListDevices,
				Description: "List all devices with their zone, class, capabilities and current capability values.",
			},
			Handler: h.listDevices,
		},
		{
			Descriptor: registry.Descriptor{
				Name:        OpGetDevice,
				Description: "Get the full details of a single device by its id.",
				Schema: registry.NewSchema(
					registry.String("deviceId", registry.Required(), registry.Description("The device id")),
				),
			},
			Handler: h.getDevice,
		},
		{
			Descriptor: registry.Descriptor{
				Name:        OpFindDeviceByName,
				Description: "Find devices by display name. Exact case-insensitive matches win; otherwise partial matches are returned.",
				Schema: registry.NewSchema(
					registry.String("name", registry.Required(), registry.Description("Full or partial device name")),
				),
			},
			Handler: h.findDeviceByName,
		},
		{
			Descriptor: registry.Descriptor{
				Name:        OpSetCapability,
				Description: "Set a capability value on a device, e.g. onoff=true, dim=0.5 or target_temperature=21.",
				Schema: registry.NewSchema(
					registry.String("deviceId", registry.Required(), registry.Description("The device id")),
					registry.String("capabilityId", registry.Required(), registry.Description("The capability id, e.g. onoff or dim")),
					registry.NewField("value",
						[]registry.Kind{registry.KindBoolean, registry.KindNumber, registry.KindString},
						registry.Required(), registry.Description("The new value")),
				),
			},
			Handler: h.setCapability,
		},
		{
			Descriptor: registry.Descriptor{
				Name:        OpSensorReadings,
				Description: "Summarize the current measure_* readings of every sensor device.",
			},
			Handler: h.sensorReadings,
		},
		{
			Descriptor: registry.Descriptor{
				Name:        OpListZones,
				Description: "List all zones with their parent zone.",
			},
			Handler: h.listZones,
		},
		{
			Descriptor: registry.Descriptor{
				Name:        OpDevicesByZone,
				Description: "List the devices in a zone, given its name (case-insensitive) or id.",
				Schema: registry.NewSchema(
					registry.String("zoneName", registry.Description("The zone name")),
					registry.String("zoneId", registry.Description("The zone id; takes precedence over zoneName")),
				),
			},
			Handler: h.devicesByZone,
		},
		{
			Descriptor: registry.Descriptor{
				Name:        OpControlZoneLights,
				Description: "Turn every light in a zone on or off. Devices that fail are skipped; the result reports how many were updated.",
				Schema: registry.NewSchema(
					registry.String("zoneName", registry.Required(), registry.Description("The zone name")),
					registry.Boolean("on", registry.Required(), registry.Description("true to turn on, false to turn off")),
					registry.Number("brightness", registry.Description("Optional dim level between 0 and 1, applied when turning on")),
				),
			},
			Handler: h.controlZoneLights,
		},
		{
			Descriptor: registry.Descriptor{
				Name:        OpListFlows,
				Description: "List the standard flows.",
			},
			Handler: h.listFlows,
		},
		{
			Descriptor: registry.Descriptor{
				Name:        OpRunFlow,
				Description: "Trigger a standard flow by id or by name.",
				Schema:      flowSchema(),
			},
			Handler: h.runFlow,
		},
		{
			Descriptor: registry.Descriptor{
				Name:        OpListAdvancedFlows,
				Description: "List the advanced flows.",
			},
			Handler: h.listAdvancedFlows,
		},
		{
			Descriptor: registry.Descriptor{
				Name:        OpRunAdvancedFlow,
				Description: "Trigger an advanced flow by id or by name.",
				Schema:      flowSchema(),
			},
			Handler: h.runAdvancedFlow,
		},
		{
			Descriptor: registry.Descriptor{
				Name:        OpEnergyLogs,
				Description: "List the ids of insights logs that record power or energy.",
			},
			Handler: h.energyLogs,
		},
	}
}

// NewCatalog builds the static catalog.
func NewCatalog(logger *slog.Logger) *registry.Catalog {
	return registry.MustCatalog(NewHandlers(logger).Operations()...)
}

func flowSchema() registry.Schema {
	return registry.NewSchema(
		registry.String("flowId", registry.Description("The flow id")),
		registry.String("flowName", registry.Description("The flow name, matched case-insensitively")),
	)
}
