package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/homey-mcp/internal/presentation/graph"
	"github.com/aretw0/homey-mcp/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestGenerateMermaid(t *testing.T) {
	home := "home"
	tests := []struct {
		name     string
		zones    []domain.Zone
		devices  []domain.Device
		contains []string
		excludes []string
	}{
		{
			name:  "Zone Tree",
			zones: []domain.Zone{{ID: "home", Name: "Home"}, {ID: "living-room", Name: "Living Room", Parent: &home}},
			contains: []string{
				"zone_home[\"Home\"]",
				"zone_living_room[\"Living Room\"]",
				"zone_home --> zone_living_room",
			},
		},
		{
			name: "Device Shapes",
			devices: []domain.Device{
				{ID: "l1", Name: "Lamp", Class: domain.ClassLight, Zone: "home"},
				{ID: "s1", Name: "Thermo", Class: domain.ClassSensor, Zone: "home"},
				{ID: "p1", Name: "Plug", Class: "socket"},
			},
			contains: []string{
				"dev_l1([\"Lamp\"])",
				"dev_s1[/\"Thermo\"/]",
				"dev_p1(\"Plug\")",
				"zone_home -.- dev_l1",
			},
			excludes: []string{"-.- dev_p1", "classDef on"},
		},
		{
			name: "Quotes Escaped",
			devices: []domain.Device{
				{ID: "x", Name: `Kid's "Night" Light`},
			},
			contains: []string{`dev_x("Kid's 'Night' Light")`},
		},
		{
			name: "Active Devices Styled",
			devices: []domain.Device{
				{ID: "on-1", Name: "On", CapabilitiesObj: map[string]domain.CapabilityState{"onoff": {Value: true}}},
				{ID: "off-1", Name: "Off", CapabilitiesObj: map[string]domain.CapabilityState{"onoff": {Value: false}}},
			},
			contains: []string{"classDef on", "class dev_on_1 on;"},
			excludes: []string{"class dev_off_1 on;"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.zones, tt.devices)
			assert.True(t, strings.HasPrefix(got, "graph TD\n"))
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, got, unwanted)
			}
		})
	}
}
