package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Indusoptima/plotsync-sub001/pkg/plan"
)

// WriteFloorplan encodes a floorplan as indented JSON and writes it to w.
// The output includes the wall graph and all openings with their resolved
// door arcs, and can be re-imported with [ReadFloorplan] for round-trip
// processing.
func WriteFloorplan(fp plan.Floorplan, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fp); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportFloorplan writes a floorplan to a JSON file at path.
// This is a convenience wrapper around [WriteFloorplan] for file-based output.
func ExportFloorplan(fp plan.Floorplan, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteFloorplan(fp, f)
}

// WriteSpec encodes a specification as indented JSON and writes it to w.
func WriteSpec(spec plan.Spec, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(spec); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportSpec writes a specification to a JSON file at path. Useful for
// normalizing a TOML specification into the tool-facing JSON form.
func ExportSpec(spec plan.Spec, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteSpec(spec, f)
}
