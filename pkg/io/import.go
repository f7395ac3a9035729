package io

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Indusoptima/plotsync-sub001/pkg/plan"
)

// tomlSpec mirrors plan.Spec with toml tags, so hand-written specification
// files use the same field names as the JSON form.
type tomlSpec struct {
	Rooms       []tomlRoom    `toml:"rooms"`
	Adjacencies []tomlAdjEdge `toml:"adjacencies"`
	Envelope    tomlEnvelope  `toml:"envelope"`
}

type tomlRoom struct {
	ID         string  `toml:"id"`
	Type       string  `toml:"type"`
	TargetArea float64 `toml:"target_area"`
}

type tomlAdjEdge struct {
	A      string `toml:"a"`
	B      string `toml:"b"`
	Weight int    `toml:"weight"`
	Kind   string `toml:"kind"`
}

type tomlEnvelope struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Floor  int     `toml:"floor"`
	Entry  string  `toml:"entry"`
}

// ReadSpec decodes a JSON specification from r.
//
// The input must be a JSON object with a "rooms" array and an "envelope"
// object; "adjacencies" is optional. After decoding, the specification's
// structural validation runs, so the returned spec always has unique,
// non-empty room IDs and a positive envelope.
//
// ReadSpec does not close r.
func ReadSpec(r io.Reader) (plan.Spec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return plan.Spec{}, fmt.Errorf("read: %w", err)
	}
	spec, err := plan.UnmarshalSpec(data)
	if err != nil {
		return plan.Spec{}, fmt.Errorf("decode: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return plan.Spec{}, err
	}
	return spec, nil
}

// ReadSpecTOML decodes a TOML specification from r.
// The same structural validation applies as for [ReadSpec].
func ReadSpecTOML(r io.Reader) (plan.Spec, error) {
	var data tomlSpec
	if _, err := toml.NewDecoder(r).Decode(&data); err != nil {
		return plan.Spec{}, fmt.Errorf("decode: %w", err)
	}

	spec := plan.Spec{
		Envelope: plan.Envelope{
			Width:  data.Envelope.Width,
			Height: data.Envelope.Height,
			Floor:  data.Envelope.Floor,
			Entry:  plan.EntryFace(data.Envelope.Entry),
		},
	}
	for _, room := range data.Rooms {
		spec.Rooms = append(spec.Rooms, plan.RoomSpec{
			ID:         room.ID,
			Type:       plan.RoomType(room.Type),
			TargetArea: room.TargetArea,
		})
	}
	for _, e := range data.Adjacencies {
		spec.Adjacencies = append(spec.Adjacencies, plan.AdjacencyEdge{
			A:      e.A,
			B:      e.B,
			Weight: e.Weight,
			Kind:   plan.AdjacencyKind(e.Kind),
		})
	}

	if err := spec.Validate(); err != nil {
		return plan.Spec{}, err
	}
	return spec, nil
}

// ImportSpec reads a specification file, selecting the decoder from the
// extension: .toml uses [ReadSpecTOML], everything else [ReadSpec]. Errors
// wrap the underlying cause with the file path for context.
func ImportSpec(path string) (plan.Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return plan.Spec{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var spec plan.Spec
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		spec, err = ReadSpecTOML(f)
	} else {
		spec, err = ReadSpec(f)
	}
	if err != nil {
		return plan.Spec{}, fmt.Errorf("import %s: %w", path, err)
	}
	return spec, nil
}

// ReadFloorplan decodes a JSON floorplan from r. It does not re-run the
// validation gate; use the validator when the plan's provenance is unknown.
func ReadFloorplan(r io.Reader) (plan.Floorplan, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return plan.Floorplan{}, fmt.Errorf("read: %w", err)
	}
	fp, err := plan.UnmarshalFloorplan(data)
	if err != nil {
		return plan.Floorplan{}, fmt.Errorf("decode: %w", err)
	}
	return fp, nil
}

// ImportFloorplan reads a JSON floorplan file at path.
func ImportFloorplan(path string) (plan.Floorplan, error) {
	f, err := os.Open(path)
	if err != nil {
		return plan.Floorplan{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	fp, err := ReadFloorplan(f)
	if err != nil {
		return plan.Floorplan{}, fmt.Errorf("import %s: %w", path, err)
	}
	return fp, nil
}
