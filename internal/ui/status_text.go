package ui

import (
	"strings"

	"wilson-ca/internal/core"
)

// StatusHeight is the height of the status bar in pixels.
const StatusHeight = 20

var statusKeys = []string{"step", "steps", "active", "rate", "radius", "threshold", "refractory"}

// StatusLine formats the progress and parameters a sim exposes.
func StatusLine(sim core.Sim, paused bool) string {
	var b strings.Builder
	b.WriteString(sim.Name())
	if provider, ok := sim.(core.ParameterProvider); ok {
		snap := provider.Parameters()
		for _, key := range statusKeys {
			p, ok := snap.Lookup(key)
			if !ok {
				continue
			}
			b.WriteString("  ")
			b.WriteString(p.Key)
			b.WriteByte('=')
			b.WriteString(p.Value)
		}
	}
	if paused {
		b.WriteString("  [paused]")
	}
	return b.String()
}
