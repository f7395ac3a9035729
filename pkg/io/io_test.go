package io

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/Indusoptima/plotsync-sub001/pkg/plan"
)

const specTOML = `
[envelope]
width = 12.0
height = 9.0
entry = "north"

[[rooms]]
id = "living"
type = "living"
target_area = 28.0

[[rooms]]
id = "kitchen"
type = "kitchen"
target_area = 12.0

[[adjacencies]]
a = "living"
b = "kitchen"
kind = "should"
weight = 5
`

func TestReadSpecTOML(t *testing.T) {
	spec, err := ReadSpecTOML(strings.NewReader(specTOML))
	if err != nil {
		t.Fatalf("ReadSpecTOML: %v", err)
	}

	if len(spec.Rooms) != 2 {
		t.Fatalf("rooms = %d, want 2", len(spec.Rooms))
	}
	if spec.Rooms[0].Type != plan.RoomLiving || spec.Rooms[0].TargetArea != 28 {
		t.Errorf("first room = %+v", spec.Rooms[0])
	}
	if spec.Envelope.Entry != plan.FaceNorth {
		t.Errorf("entry face = %q, want north", spec.Envelope.Entry)
	}
	if len(spec.Adjacencies) != 1 || spec.Adjacencies[0].Kind != plan.AdjacencyShould {
		t.Errorf("adjacencies = %+v", spec.Adjacencies)
	}
}

func TestReadSpecJSON(t *testing.T) {
	in := `{
		"rooms": [
			{"id": "living", "type": "living", "target_area": 24},
			{"id": "bath", "type": "bathroom", "target_area": 5}
		],
		"envelope": {"width": 10, "height": 8}
	}`

	spec, err := ReadSpec(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadSpec: %v", err)
	}
	if len(spec.Rooms) != 2 || spec.Envelope.Width != 10 {
		t.Errorf("spec = %+v", spec)
	}
}

func TestReadSpecRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"MalformedJSON", `{"rooms": [`},
		{"NoEnvelope", `{"rooms": [{"id": "a", "type": "living", "target_area": 10}]}`},
		{"DuplicateID", `{
			"rooms": [
				{"id": "a", "type": "living", "target_area": 10},
				{"id": "a", "type": "kitchen", "target_area": 8}
			],
			"envelope": {"width": 10, "height": 8}
		}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadSpec(strings.NewReader(tt.in)); err == nil {
				t.Error("invalid specification accepted")
			}
		})
	}
}

func TestImportSpecExtensionDispatch(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "spec.toml")
	if err := os.WriteFile(tomlPath, []byte(specTOML), 0o644); err != nil {
		t.Fatal(err)
	}
	fromTOML, err := ImportSpec(tomlPath)
	if err != nil {
		t.Fatalf("ImportSpec toml: %v", err)
	}

	jsonPath := filepath.Join(dir, "spec.json")
	if err := ExportSpec(fromTOML, jsonPath); err != nil {
		t.Fatalf("ExportSpec: %v", err)
	}
	fromJSON, err := ImportSpec(jsonPath)
	if err != nil {
		t.Fatalf("ImportSpec json: %v", err)
	}

	if !reflect.DeepEqual(fromTOML, fromJSON) {
		t.Errorf("TOML and JSON forms disagree:\n%+v\n%+v", fromTOML, fromJSON)
	}
}

func TestFloorplanRoundTrip(t *testing.T) {
	fp := plan.Floorplan{
		Envelope: plan.Envelope{Width: 10, Height: 8},
		Layout: plan.Layout{Rooms: map[string]plan.RoomPlacement{
			"living": {RoomID: "living", Type: plan.RoomLiving, Rect: plan.Rect{Width: 5, Height: 8}},
		}},
		Walls: []plan.WallSegment{
			{ID: "wall-001", A: plan.Point{}, B: plan.Point{X: 10}, Exterior: true, Thickness: plan.ExteriorWallThickness},
		},
	}

	var buf bytes.Buffer
	if err := WriteFloorplan(fp, &buf); err != nil {
		t.Fatalf("WriteFloorplan: %v", err)
	}
	back, err := ReadFloorplan(&buf)
	if err != nil {
		t.Fatalf("ReadFloorplan: %v", err)
	}
	if !reflect.DeepEqual(fp, back) {
		t.Errorf("round trip changed the floorplan:\n%+v\n%+v", fp, back)
	}

	path := filepath.Join(t.TempDir(), "plan.json")
	if err := ExportFloorplan(fp, path); err != nil {
		t.Fatalf("ExportFloorplan: %v", err)
	}
	fromFile, err := ImportFloorplan(path)
	if err != nil {
		t.Fatalf("ImportFloorplan: %v", err)
	}
	if !reflect.DeepEqual(fp, fromFile) {
		t.Error("file round trip changed the floorplan")
	}
}
