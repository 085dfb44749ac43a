// Command kernel-dashboard renders a directory of kernel JSON dumps as an
// interactive HTML page of line charts, one chart per radius and components
// combination. It is a debugging companion to kernelplot's PNG grid.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/bokeh-tools/kernelplot/internal/kernel"
	"github.com/bokeh-tools/kernelplot/internal/render"
)

var (
	dir = flag.String("dir", "plots", "Directory containing kernel JSON files")
	out = flag.String("out", "", "Output HTML path (default <dir>/kernel_shapes.html)")
)

func main() {
	flag.Parse()

	outPath := *out
	if outPath == "" {
		outPath = filepath.Join(*dir, "kernel_shapes.html")
	}

	table, err := kernel.Load(*dir)
	if err != nil {
		log.Fatalf("load kernels: %v", err)
	}

	f, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("create dashboard: %v", err)
	}
	if err := render.WriteHTML(table, f); err != nil {
		f.Close()
		log.Fatalf("render dashboard: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("close dashboard: %v", err)
	}

	log.Printf("wrote dashboard for %d kernel samples to %s", len(table), outPath)
}
