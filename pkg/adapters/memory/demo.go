package memory

import "github.com/aretw0/homey-mcp/pkg/domain"

// NewDemo returns a backend seeded with a small two-floor home.
// It backs the --demo flag and is handy in tests.
func NewDemo() *Backend {
	house := "zone-house"
	ground := "zone-ground"

	return NewBackend(
		WithZones(
			domain.Zone{ID: house, Name: "Home"},
			domain.Zone{ID: ground, Name: "Ground Floor", Parent: &house},
			domain.Zone{ID: "zone-living", Name: "Living Room", Parent: &ground},
			domain.Zone{ID: "zone-kitchen", Name: "Kitchen", Parent: &ground},
		),
		WithDevices(
			domain.Device{
				ID: "dev-ceiling", Name: "Ceiling Light", Zone: "zone-living", ZoneName: "Living Room",
				Class:        domain.ClassLight,
				Capabilities: []string{"onoff", "dim"},
				CapabilitiesObj: map[string]domain.CapabilityState{
					"onoff": {ID: "onoff", Value: false},
					"dim":   {ID: "dim", Value: 0.8},
				},
			},
			domain.Device{
				ID: "dev-lamp", Name: "Floor Lamp", Zone: "zone-living", ZoneName: "Living Room",
				Class:        "socket",
				Capabilities: []string{"onoff", "measure_power"},
				CapabilitiesObj: map[string]domain.CapabilityState{
					"onoff":         {ID: "onoff", Value: true},
					"measure_power": {ID: "measure_power", Value: 12.4, Units: "W"},
				},
			},
			domain.Device{
				ID: "dev-climate", Name: "Climate Sensor", Zone: "zone-living", ZoneName: "Living Room",
				Class:        domain.ClassSensor,
				Capabilities: []string{"measure_temperature", "measure_humidity"},
				CapabilitiesObj: map[string]domain.CapabilityState{
					"measure_temperature": {ID: "measure_temperature", Value: 21.5, Units: "°C"},
					"measure_humidity":    {ID: "measure_humidity", Value: 44.0, Units: "%"},
				},
			},
			domain.Device{
				ID: "dev-spots", Name: "Kitchen Spots", Zone: "zone-kitchen", ZoneName: "Kitchen",
				Class:        domain.ClassLight,
				Capabilities: []string{"onoff"},
				CapabilitiesObj: map[string]domain.CapabilityState{
					"onoff": {ID: "onoff", Value: false},
				},
			},
			domain.Device{
				ID: "dev-door", Name: "Back Door", Zone: "zone-kitchen", ZoneName: "Kitchen",
				Class:        domain.ClassSensor,
				Capabilities: []string{"alarm_contact"},
				CapabilitiesObj: map[string]domain.CapabilityState{
					"alarm_contact": {ID: "alarm_contact", Value: false},
				},
			},
		),
		WithFlows(
			domain.Flow{ID: "flow-goodnight", Name: "Good Night", Enabled: true},
			domain.Flow{ID: "flow-morning", Name: "Morning", Enabled: true},
		),
		WithAdvancedFlows(
			domain.AdvancedFlow{ID: "aflow-away", Name: "Away Mode", Enabled: true},
		),
		WithLogs(
			domain.LogEntry{ID: "homey:device:dev-lamp:measure_power", OwnerName: "Floor Lamp", Title: "Power", Units: "W"},
			domain.LogEntry{ID: "homey:device:dev-lamp:meter_power", OwnerName: "Floor Lamp", Title: "Energy", Units: "kWh"},
			domain.LogEntry{ID: "homey:device:dev-climate:measure_temperature", OwnerName: "Climate Sensor", Title: "Temperature", Units: "°C"},
		),
	)
}
