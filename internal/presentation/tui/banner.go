package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the startup banner. Callers pass stderr: stdout may
// carry protocol traffic.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	p := out.EnvColorProfile()

	lines := []struct {
		text  string
		color string
	}{
		{`  _   _                            __  __  ____ ____  `, "#34d399"},
		{` | | | | ___  _ __ ___   ___ _   _|  \/  |/ ___|  _ \ `, "#2dd4bf"},
		{` | |_| |/ _ \| '_ ' _ \ / _ \ | | | |\/| | |   | |_) |`, "#22d3ee"},
		{` |  _  | (_) | | | | | |  __/ |_| | |  | | |___|  __/ `, "#38bdf8"},
		{` |_| |_|\___/|_| |_| |_|\___|\__, |_|  |_|\____|_|    `, "#60a5fa"},
		{`                             |___/                    `, "#818cf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String("  "+version).Faint())
	fmt.Fprintln(w)
}
