// Command kernelplot renders an overview of 1-D convolution kernel shapes.
//
// It scans a directory of kernel dumps named <components>_<radius>.json
// (each a JSON array of numbers), flattens them into a table and writes a
// faceted grid of line charts to <directory>/kernel_shapes.png, one facet
// per radius and components combination.
//
// Usage:
//
//	kernelplot [directory]
//
// The directory defaults to "plots". Any unreadable directory, malformed
// file or write failure aborts the run with a non-zero exit status.
package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/bokeh-tools/kernelplot/internal/kernel"
	"github.com/bokeh-tools/kernelplot/internal/render"
)

const outputName = "kernel_shapes.png"

func main() {
	flag.Parse()

	dir := "plots"
	if flag.NArg() > 0 {
		dir = flag.Arg(0)
	}

	if err := run(dir); err != nil {
		log.Fatalf("kernelplot: %v", err)
	}
}

func run(dir string) error {
	table, err := kernel.Load(dir)
	if err != nil {
		return err
	}

	outPath := filepath.Join(dir, outputName)
	if err := render.Grid(table, outPath); err != nil {
		return err
	}

	log.Printf("plotted %d kernel samples to %s", len(table), outPath)
	return nil
}
