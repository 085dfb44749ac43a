package kernel

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var (
	// ErrMalformedFilename reports a .json entry whose base name does not
	// split into exactly <components>_<radius> with a non-negative base-10
	// radius.
	ErrMalformedFilename = errors.New("malformed kernel filename")

	// ErrMalformedContent reports a kernel file whose body is not a JSON
	// array of numbers.
	ErrMalformedContent = errors.New("malformed kernel content")
)

// ParseFilename splits a kernel filename into its grouping keys. The base
// name (extension removed) must contain exactly one underscore; everything
// before it is the components label and everything after it must parse as a
// non-negative base-10 integer radius.
func ParseFilename(name string) (components string, radius int, err error) {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	parts := strings.Split(base, "_")
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("%w: %q is not <components>_<radius>", ErrMalformedFilename, name)
	}
	r, err := strconv.ParseUint(parts[1], 10, strconv.IntSize-1)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q has no valid radius", ErrMalformedFilename, name)
	}
	return parts[0], int(r), nil
}

// Load scans dir (non-recursively) for kernel files and flattens them into
// a table sorted by (components, radius). Entries without a .json extension
// are skipped. Any unreadable directory, malformed filename or malformed
// file body aborts the whole load; no partial table is returned.
//
// Files are read one at a time, so the scan holds at most one open handle
// regardless of directory size.
func Load(dir string) (Table, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list kernel directory: %w", err)
	}

	var table Table
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		components, radius, err := ParseFilename(entry.Name())
		if err != nil {
			return nil, err
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read kernel file: %w", err)
		}

		var samples []float64
		if err := json.Unmarshal(data, &samples); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedContent, entry.Name(), err)
		}
		if samples == nil {
			// json "null" unmarshals into a nil slice without error.
			return nil, fmt.Errorf("%w: %s: not a JSON array", ErrMalformedContent, entry.Name())
		}

		for n, v := range samples {
			table = append(table, Row{
				Components: components,
				Radius:     radius,
				Pixel:      n - radius,
				Value:      v,
			})
		}
	}

	table.Sort()
	return table, nil
}
