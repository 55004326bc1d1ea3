package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/homey-mcp/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of the zone tree with each
// device attached to its zone. Shapes follow the device class:
// - Zone: [Rectangle]
// - Light: ([Stadium])
// - Sensor: [/Parallelogram/]
// - Other: (Rounded)
// Devices whose onoff capability is true get the "on" style.
func GenerateMermaid(zones []domain.Zone, devices []domain.Device) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, z := range zones {
		safeID := sanitizeMermaidID("zone_" + z.ID)
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", safeID, escapeLabel(z.Name)))
		if z.Parent != nil && *z.Parent != "" {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", sanitizeMermaidID("zone_"+*z.Parent), safeID))
		}
	}

	var on []string
	for _, d := range devices {
		safeID := sanitizeMermaidID("dev_" + d.ID)

		opener, closer := "(", ")"
		switch {
		case d.Class == domain.ClassLight:
			opener, closer = "([", "])"
		case d.Class == domain.ClassSensor:
			opener, closer = "[/", "/]"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, escapeLabel(d.Name), closer))
		if d.Zone != "" {
			sb.WriteString(fmt.Sprintf("    %s -.- %s\n", sanitizeMermaidID("zone_"+d.Zone), safeID))
		}

		if st, ok := d.CapabilitiesObj[domain.CapabilityOnOff]; ok {
			if v, isBool := st.Value.(bool); isBool && v {
				on = append(on, safeID)
			}
		}
	}

	if len(on) > 0 {
		sb.WriteString("\n    %% Device state\n")
		sb.WriteString("    classDef on fill:#ffeb3b,stroke:#fbc02d,stroke-width:2px,color:#000;\n")
		for _, id := range on {
			sb.WriteString(fmt.Sprintf("    class %s on;\n", id))
		}
	}

	return sb.String()
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, ":", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
