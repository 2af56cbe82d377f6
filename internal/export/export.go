// Package export writes generated profile batches to flat files. Each
// writer is an Exporter; optional capabilities report availability and are
// skipped with a warning instead of failing the run.
package export

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/geoforge/geoprofile/internal/profile"
)

// Exporter writes a batch of profiles to one output file.
type Exporter interface {
	// Name identifies the format in diagnostics.
	Name() string
	// Available reports whether the capability can run in this build.
	// Unavailable exporters are skipped, not treated as failures.
	Available() bool
	// Export writes the profiles to path.
	Export(profiles []profile.Profile, path string) error
}

// Target pairs an exporter with its output path.
type Target struct {
	Exporter Exporter
	Path     string
}

// Run writes the batch through every target. A missing capability or a
// failed write is reported and does not abort sibling outputs; Run returns
// an error only when nothing could be written at all.
func Run(profiles []profile.Profile, targets []Target) error {
	if len(targets) == 0 {
		return nil
	}

	failed := 0
	written := 0
	for _, t := range targets {
		if !t.Exporter.Available() {
			color.Yellow("⚠️  %s export unavailable, skipping %s", t.Exporter.Name(), t.Path)
			continue
		}
		if err := t.Exporter.Export(profiles, t.Path); err != nil {
			color.Red("❌ %s export failed: %v", t.Exporter.Name(), err)
			failed++
			continue
		}
		color.Green("✅ Data saved to %s: %s", t.Exporter.Name(), t.Path)
		written++
	}

	if failed > 0 && written == 0 {
		return fmt.Errorf("all %d attempted exports failed", failed)
	}
	return nil
}
