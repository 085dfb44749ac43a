package render

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/bokeh-tools/kernelplot/internal/kernel"
)

// WriteHTML renders the table as an interactive HTML page of line charts,
// one chart per (radius, components) facet, in facet-grid order. This is a
// debugging surface; the PNG grid remains the canonical output.
func WriteHTML(table kernel.Table, w io.Writer) error {
	if len(table) == 0 {
		return errors.New("render: empty kernel table")
	}

	page := components.NewPage()
	page.PageTitle = "Kernel Shapes"

	radii, componentLabels, facets := facetGrid(table)
	for _, radius := range radii {
		for _, label := range componentLabels {
			rows := facets[facetKey{radius: radius, components: label}]
			if len(rows) == 0 {
				continue
			}
			page.AddCharts(facetChart(rows, radius, label))
		}
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}
	return nil
}

// facetChart builds one echarts line chart for a single facet.
func facetChart(rows kernel.Table, radius int, label string) *charts.Line {
	sorted := append(kernel.Table(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Pixel < sorted[j].Pixel })

	x := make([]string, len(sorted))
	data := make([]opts.LineData, len(sorted))
	for i, row := range sorted {
		x[i] = strconv.Itoa(row.Pixel)
		data[i] = opts.LineData{Value: row.Value}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "480px", Height: "320px"}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("radius = %d | components = %s", radius, label)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(x).AddSeries(label, data)
	return line
}
