package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDevice_Capabilities(t *testing.T) {
	d := Device{
		ID:           "d1",
		Capabilities: []string{"onoff", "measure_temperature", "measure_humidity", "dim"},
		CapabilitiesObj: map[string]CapabilityState{
			"onoff":               {Value: true},
			"measure_temperature": {ID: "measure_temperature", Value: 21.5, Units: "°C"},
		},
	}

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"has onoff", d.HasCapability("onoff"), true},
		{"lacks alarm", d.HasCapability("alarm_motion"), false},
		{"measure prefix", d.HasCapabilityPrefix(MeasurePrefix), true},
		{"meter prefix", d.HasCapabilityPrefix("meter_"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestDevice_CapabilityValues(t *testing.T) {
	d := Device{
		CapabilitiesObj: map[string]CapabilityState{
			"onoff": {Value: false},
			"dim":   {Value: 0.4},
		},
	}
	assert.Equal(t, map[string]any{"onoff": false, "dim": 0.4}, d.CapabilityValues())
	assert.Empty(t, Device{}.CapabilityValues())
}

func TestDevice_Measures(t *testing.T) {
	d := Device{
		Capabilities: []string{"measure_humidity", "onoff", "measure_temperature", "measure_co2"},
		CapabilitiesObj: map[string]CapabilityState{
			"measure_temperature": {Value: 20.0},
			"measure_humidity":    {ID: "measure_humidity", Value: 55},
			"onoff":               {Value: true},
		},
	}

	got := d.Measures()
	if assert.Len(t, got, 2) {
		// Declaration order, with missing state entries skipped.
		assert.Equal(t, "measure_humidity", got[0].ID)
		assert.Equal(t, "measure_temperature", got[1].ID)
	}
}

func TestDevice_Measures_UndeclaredState(t *testing.T) {
	d := Device{
		Capabilities: []string{"measure_power"},
		CapabilitiesObj: map[string]CapabilityState{
			"measure_temperature": {Value: 20.0},
			"measure_power":       {Value: 3.5},
			"measure_co2":         {Value: 400},
			"alarm_motion":        {Value: false},
		},
	}

	got := d.Measures()
	ids := make([]string, 0, len(got))
	for _, st := range got {
		ids = append(ids, st.ID)
	}
	// Declared first, then the rest sorted.
	assert.Equal(t, []string{"measure_power", "measure_co2", "measure_temperature"}, ids)

	onlyState := Device{CapabilitiesObj: map[string]CapabilityState{"measure_temperature": {Value: 20}}}
	if assert.Len(t, onlyState.Measures(), 1) {
		assert.Equal(t, 20, onlyState.Measures()[0].Value)
	}
}
