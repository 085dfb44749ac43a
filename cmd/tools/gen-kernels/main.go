// Command gen-kernels dumps the combined bokeh component kernels as JSON
// files consumable by kernelplot.
//
// For each of the nine published parameter sets and each radius in
// {1, 5, 10, 50, 100} it writes <components>_<radius>.json into the output
// directory (default "plots"), where <components> is the number of gaussian
// components in the set.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/bokeh-tools/kernelplot/internal/bokeh"
)

var radii = []int{1, 5, 10, 50, 100}

func main() {
	flag.Parse()

	outDir := "plots"
	if flag.NArg() > 0 {
		outDir = flag.Arg(0)
	}

	if err := run(outDir); err != nil {
		log.Fatalf("gen-kernels: %v", err)
	}
}

func run(outDir string) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	count := 0
	for n, set := range bokeh.ParamSets {
		for _, radius := range radii {
			kernel := bokeh.CombinedKernel(set, float64(radius), radius)

			data, err := json.Marshal(kernel)
			if err != nil {
				return fmt.Errorf("encode kernel: %w", err)
			}

			name := filepath.Join(outDir, fmt.Sprintf("%d_%d.json", n+1, radius))
			if err := os.WriteFile(name, data, 0644); err != nil {
				return fmt.Errorf("write kernel file: %w", err)
			}
			count++
		}
	}

	log.Printf("wrote %d kernel files to %s", count, outDir)
	return nil
}
