package plan

import "encoding/json"

// MarshalSpec serializes a specification to JSON bytes.
// Output is deterministic: encoding/json sorts map keys.
func MarshalSpec(s Spec) ([]byte, error) {
	return json.Marshal(s)
}

// UnmarshalSpec deserializes JSON bytes to a specification.
func UnmarshalSpec(data []byte) (Spec, error) {
	var s Spec
	if err := json.Unmarshal(data, &s); err != nil {
		return Spec{}, err
	}
	return s, nil
}

// MarshalFloorplan serializes a floorplan to JSON bytes.
func MarshalFloorplan(f Floorplan) ([]byte, error) {
	return json.Marshal(f)
}

// UnmarshalFloorplan deserializes JSON bytes to a floorplan.
func UnmarshalFloorplan(data []byte) (Floorplan, error) {
	var f Floorplan
	if err := json.Unmarshal(data, &f); err != nil {
		return Floorplan{}, err
	}
	return f, nil
}
