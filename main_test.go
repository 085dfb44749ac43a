package main

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/bokeh-tools/kernelplot/internal/kernel"
)

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"1_1.json":   `[0.25, 0.5, 0.25]`,
		"3_2.json":   `[0.05, 0.2, 0.5, 0.2, 0.05]`,
		"readme.txt": `ignored`,
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0644); err != nil {
			t.Fatalf("failed to write fixture %s: %v", name, err)
		}
	}

	if err := run(dir); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, outputName))
	if err != nil {
		t.Fatalf("output image missing: %v", err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("output is not a valid PNG: %v", err)
	}
}

func TestRunMalformedFilenameProducesNoImage(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "noUnderscore.json"), []byte(`[1]`), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	err := run(dir)
	if !errors.Is(err, kernel.ErrMalformedFilename) {
		t.Fatalf("run = %v, want ErrMalformedFilename", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, outputName)); !os.IsNotExist(statErr) {
		t.Error("output image exists after a fatal loading error")
	}
}

func TestRunMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")

	if err := run(dir); err == nil {
		t.Fatal("run succeeded on a missing directory")
	}
	if _, statErr := os.Stat(filepath.Join(dir, outputName)); !os.IsNotExist(statErr) {
		t.Error("output image exists after a fatal loading error")
	}
}
