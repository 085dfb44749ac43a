// Package render draws kernel tables as faceted grids of line charts, one
// facet per (radius, components) combination: radii as grid rows, component
// labels as grid columns.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/bokeh-tools/kernelplot/internal/kernel"
)

// Facet tile dimensions. The overall canvas grows with the grid so each
// facet keeps the same size regardless of how many kernels are plotted.
const (
	facetWidth  = 3 * vg.Inch
	facetHeight = 2.2 * vg.Inch
	legendWidth = 1.3 * vg.Inch
	titleHeight = 0.5 * vg.Inch
)

// Grid renders table as a faceted grid of line charts and writes the result
// as a PNG to outPath, overwriting any existing file. Each facet plots pixel
// offset against kernel value with per-facet axis ranges; Y-axis ticks are
// suppressed on every facet since only the shape is being compared. A single
// legend maps line colors to component labels and the whole grid carries one
// "Kernel Shapes" title.
//
// The image is written to a temporary file in the output directory and
// renamed into place, so outPath is never left partially written.
func Grid(table kernel.Table, outPath string) error {
	if len(table) == 0 {
		return errors.New("render: empty kernel table")
	}

	radii, components, facets := facetGrid(table)
	colors := componentColors(len(components))

	plots := make([][]*plot.Plot, len(radii))
	for i, radius := range radii {
		plots[i] = make([]*plot.Plot, len(components))
		for j, label := range components {
			rows := facets[facetKey{radius: radius, components: label}]
			if len(rows) == 0 {
				// Combinations with no data stay blank.
				continue
			}
			p, err := facetPlot(rows, radius, label, colors[j])
			if err != nil {
				return err
			}
			plots[i][j] = p
		}
	}

	width := legendWidth + facetWidth*vg.Length(len(components))
	height := titleHeight + facetHeight*vg.Length(len(radii))
	img := vgimg.New(width, height)
	dc := draw.New(img)

	drawTitle(draw.Crop(dc, 0, 0, height-titleHeight, 0), "Kernel Shapes")

	if err := drawLegend(draw.Crop(dc, width-legendWidth, 0, 0, -titleHeight), components, colors); err != nil {
		return err
	}

	tiles := draw.Tiles{
		Rows: len(radii),
		Cols: len(components),
		PadX: vg.Points(6),
		PadY: vg.Points(6),
	}
	gridCanvas := draw.Crop(dc, 0, -legendWidth, 0, -titleHeight)
	canvases := plot.Align(plots, tiles, gridCanvas)
	for i := range plots {
		for j := range plots[i] {
			if plots[i][j] != nil {
				plots[i][j].Draw(canvases[i][j])
			}
		}
	}

	return writePNG(img, outPath)
}

// facetKey identifies one tile of the grid.
type facetKey struct {
	radius     int
	components string
}

// facetGrid partitions the table into facets: one grid row per distinct
// radius (ascending) and one grid column per distinct components label
// (ascending lexicographic).
func facetGrid(table kernel.Table) (radii []int, components []string, facets map[facetKey]kernel.Table) {
	radii = table.Radii()
	components = table.Components()
	facets = make(map[facetKey]kernel.Table)
	for _, row := range table {
		key := facetKey{radius: row.Radius, components: row.Components}
		facets[key] = append(facets[key], row)
	}
	return radii, components, facets
}

// facetPlot builds the line chart for a single facet. The polyline connects
// the samples in ascending pixel order with straight segments.
func facetPlot(rows kernel.Table, radius int, label string, c color.Color) (*plot.Plot, error) {
	sorted := append(kernel.Table(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Pixel < sorted[j].Pixel })

	pts := make(plotter.XYs, len(sorted))
	for i, row := range sorted {
		pts[i] = plotter.XY{X: float64(row.Pixel), Y: row.Value}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("facet %s radius %d: %w", label, radius, err)
	}
	line.Color = c
	line.Width = vg.Points(1)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("radius = %d | components = %s", radius, label)
	p.X.Label.Text = "pixels"
	// Kernel magnitude is not the subject of comparison; hide the Y scale.
	p.Y.Tick.Marker = plot.ConstantTicks(nil)
	p.Add(line)
	return p, nil
}

// drawTitle paints the grid-wide title centred in the reserved top strip.
func drawTitle(c draw.Canvas, title string) {
	sty := text.Style{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, vg.Points(16)),
		XAlign:  text.XCenter,
		YAlign:  text.YTop,
		Handler: plot.DefaultTextHandler,
	}
	c.FillText(sty, vg.Point{X: (c.Min.X + c.Max.X) / 2, Y: c.Max.Y}, title)
}

// drawLegend paints the single shared legend for the components dimension
// into the reserved right strip.
func drawLegend(c draw.Canvas, components []string, colors []color.Color) error {
	legend := plot.NewLegend()
	legend.Top = true
	for j, label := range components {
		thumb, err := plotter.NewLine(plotter.XYs{})
		if err != nil {
			return fmt.Errorf("legend entry %s: %w", label, err)
		}
		thumb.Color = colors[j]
		thumb.Width = vg.Points(1)
		legend.Add(label, thumb)
	}
	legend.Draw(c)
	return nil
}

// writePNG encodes the canvas to a temporary file next to outPath and
// renames it into place.
func writePNG(img *vgimg.Canvas, outPath string) error {
	tmp, err := os.CreateTemp(filepath.Dir(outPath), "."+filepath.Base(outPath)+"-*")
	if err != nil {
		return fmt.Errorf("create output image: %w", err)
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("encode output image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("flush output image: %w", err)
	}
	if err := os.Rename(tmp.Name(), outPath); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write output image: %w", err)
	}
	return nil
}
