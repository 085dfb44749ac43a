package main

import (
	"testing"

	"github.com/bokeh-tools/kernelplot/internal/bokeh"
	"github.com/bokeh-tools/kernelplot/internal/kernel"
)

func TestRunProducesLoadableKernels(t *testing.T) {
	dir := t.TempDir()

	if err := run(dir); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	table, err := kernel.Load(dir)
	if err != nil {
		t.Fatalf("generated kernels must load cleanly: %v", err)
	}

	// Nine parameter sets, one kernel of length 2r+1 per radius.
	samplesPerSet := 0
	for _, r := range radii {
		samplesPerSet += 1 + 2*r
	}
	if want := len(bokeh.ParamSets) * samplesPerSet; len(table) != want {
		t.Errorf("loaded %d rows, want %d", len(table), want)
	}

	if got, want := len(table.Components()), len(bokeh.ParamSets); got != want {
		t.Errorf("table has %d component labels, want %d", got, want)
	}
	if got, want := len(table.Radii()), len(radii); got != want {
		t.Errorf("table has %d radii, want %d", got, want)
	}

	// Pixel offsets must be centred for every generated kernel.
	for _, label := range table.Components() {
		for _, r := range table.Radii() {
			facet := table.Facet(label, r)
			if len(facet) != 1+2*r {
				t.Errorf("facet %s/%d has %d samples, want %d", label, r, len(facet), 1+2*r)
				continue
			}
			if facet[0].Pixel != -r || facet[len(facet)-1].Pixel != r {
				t.Errorf("facet %s/%d spans pixels %d..%d, want %d..%d",
					label, r, facet[0].Pixel, facet[len(facet)-1].Pixel, -r, r)
			}
		}
	}
}
