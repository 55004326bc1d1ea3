package domain

import (
	"sort"
	"strings"
	"time"
)

// Well-known device classes and capability identifiers.
const (
	ClassSensor = "sensor"
	ClassLight  = "light"

	CapabilityOnOff = "onoff"
	CapabilityDim   = "dim"

	MeasurePrefix = "measure_"
)

// CapabilityState is the current reading of a single capability.
type CapabilityState struct {
	ID          string     `json:"id"`
	Value       any        `json:"value"`
	Title       string     `json:"title,omitempty"`
	Units       string     `json:"units,omitempty"`
	LastUpdated *time.Time `json:"lastUpdated,omitempty"`
}

// Device is a snapshot of a controller device.
type Device struct {
	ID              string                     `json:"id"`
	Name            string                     `json:"name"`
	Zone            string                     `json:"zone"`
	ZoneName        string                     `json:"zoneName"`
	Class           string                     `json:"class"`
	Capabilities    []string                   `json:"capabilities"`
	CapabilitiesObj map[string]CapabilityState `json:"capabilitiesObj"`
}

// HasCapability reports whether the device declares the capability.
func (d Device) HasCapability(id string) bool {
	for _, c := range d.Capabilities {
		if c == id {
			return true
		}
	}
	return false
}

// HasCapabilityPrefix reports whether any declared capability starts with prefix.
func (d Device) HasCapabilityPrefix(prefix string) bool {
	for _, c := range d.Capabilities {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

// CapabilityValues flattens CapabilitiesObj into an id -> value map.
// Capabilities without a reported state are left out.
func (d Device) CapabilityValues() map[string]any {
	values := make(map[string]any, len(d.CapabilitiesObj))
	for id, st := range d.CapabilitiesObj {
		values[id] = st.Value
	}
	return values
}

// Measures returns the measure_* capability states. Entries follow the
// Capabilities declaration order; state entries not declared there come
// after, sorted by id.
func (d Device) Measures() []CapabilityState {
	var out []CapabilityState
	seen := make(map[string]bool, len(d.Capabilities))
	for _, id := range d.Capabilities {
		if seen[id] || !strings.HasPrefix(id, MeasurePrefix) {
			continue
		}
		seen[id] = true
		if st, ok := d.CapabilitiesObj[id]; ok {
			out = append(out, withID(st, id))
		}
	}

	var extra []string
	for id := range d.CapabilitiesObj {
		if !seen[id] && strings.HasPrefix(id, MeasurePrefix) {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	for _, id := range extra {
		out = append(out, withID(d.CapabilitiesObj[id], id))
	}
	return out
}

func withID(st CapabilityState, id string) CapabilityState {
	if st.ID == "" {
		st.ID = id
	}
	return st
}
