package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/homey-mcp/pkg/registry"
)

// CatalogMarkdown documents every operation with its arguments.
func CatalogMarkdown(descs []registry.Descriptor) string {
	var sb strings.Builder
	sb.WriteString("# Homey operations\n\n")
	for _, d := range descs {
		fmt.Fprintf(&sb, "## `%s`\n\n%s\n\n", d.Name, d.Description)
		if len(d.Schema.Fields) == 0 {
			sb.WriteString("_No arguments._\n\n")
			continue
		}
		sb.WriteString("| argument | type | required | description |\n")
		sb.WriteString("|---|---|---|---|\n")
		for _, f := range d.Schema.Fields {
			kinds := make([]string, 0, len(f.Kinds))
			for _, k := range f.Kinds {
				kinds = append(kinds, string(k))
			}
			required := "no"
			if f.Required {
				required = "yes"
			}
			desc := f.Description
			if len(f.Enum) > 0 {
				desc = strings.TrimSpace(desc + " One of: " + strings.Join(f.Enum, ", ") + ".")
			}
			fmt.Fprintf(&sb, "| `%s` | %s | %s | %s |\n", f.Name, strings.Join(kinds, " \\| "), required, desc)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
