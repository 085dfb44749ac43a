// Package kernel loads 1-D convolution kernel dumps from a directory and
// flattens them into a sorted table of per-sample observations.
//
// Each kernel lives in its own file named <components>_<radius>.json whose
// body is a JSON array of numbers. The filename carries the grouping keys;
// the array index carries the pixel offset relative to the kernel centre.
package kernel

import "sort"

// Row is one flattened kernel sample.
type Row struct {
	// Components is the opaque label parsed from the filename, typically
	// the number of gaussian components used to build the kernel.
	Components string
	// Radius is the kernel half-width parsed from the filename.
	Radius int
	// Pixel is the sample offset from the kernel centre: array index minus
	// radius, so a kernel of length 2*radius+1 spans -radius..+radius.
	Pixel int
	// Value is the sampled kernel magnitude.
	Value float64
}

// Table is an ordered collection of rows. After Sort, rows are grouped by
// (Components, Radius) with pixel order inside each group preserved from
// the source array.
type Table []Row

// Sort orders the table by Components (lexicographic ascending) and then
// Radius (numeric ascending). The sort is stable so rows sharing both keys
// keep their relative emission order.
func (t Table) Sort() {
	sort.SliceStable(t, func(i, j int) bool {
		if t[i].Components != t[j].Components {
			return t[i].Components < t[j].Components
		}
		return t[i].Radius < t[j].Radius
	})
}

// Components returns the distinct component labels in ascending order.
func (t Table) Components() []string {
	seen := make(map[string]bool)
	var labels []string
	for _, r := range t {
		if !seen[r.Components] {
			seen[r.Components] = true
			labels = append(labels, r.Components)
		}
	}
	sort.Strings(labels)
	return labels
}

// Radii returns the distinct radii in ascending order.
func (t Table) Radii() []int {
	seen := make(map[int]bool)
	var radii []int
	for _, r := range t {
		if !seen[r.Radius] {
			seen[r.Radius] = true
			radii = append(radii, r.Radius)
		}
	}
	sort.Ints(radii)
	return radii
}

// Facet returns the rows belonging to one (components, radius) combination,
// in their original order.
func (t Table) Facet(components string, radius int) Table {
	var facet Table
	for _, r := range t {
		if r.Components == components && r.Radius == radius {
			facet = append(facet, r)
		}
	}
	return facet
}
