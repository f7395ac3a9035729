package plan

import (
	"math"
	"testing"
)

func TestLayoutClone(t *testing.T) {
	orig := NewLayout()
	orig.Rooms["a"] = RoomPlacement{RoomID: "a", Type: RoomLiving, Rect: Rect{Width: 5, Height: 4}}
	orig.Cost = 12.5

	clone := orig.Clone()
	if clone.Generation != orig.Generation+1 {
		t.Errorf("Generation = %d, want %d", clone.Generation, orig.Generation+1)
	}

	// Mutating the clone must not touch the original.
	p := clone.Rooms["a"]
	p.Rect.X = 99
	clone.Rooms["a"] = p

	if orig.Rooms["a"].Rect.X != 0 {
		t.Errorf("clone mutation leaked into original: X = %v", orig.Rooms["a"].Rect.X)
	}
}

func TestLayoutRoomIDsSorted(t *testing.T) {
	l := NewLayout()
	for _, id := range []string{"kitchen", "bedroom", "living"} {
		l.Rooms[id] = RoomPlacement{RoomID: id}
	}
	ids := l.RoomIDs()
	want := []string{"bedroom", "kitchen", "living"}
	for i, id := range want {
		if ids[i] != id {
			t.Fatalf("RoomIDs = %v, want %v", ids, want)
		}
	}
}

func TestSharedWallLength(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want float64
	}{
		{
			name: "VerticalAbutment",
			a:    Rect{X: 0, Y: 0, Width: 4, Height: 4},
			b:    Rect{X: 4, Y: 1, Width: 3, Height: 5},
			want: 3,
		},
		{
			name: "HorizontalAbutment",
			a:    Rect{X: 0, Y: 0, Width: 4, Height: 3},
			b:    Rect{X: 1, Y: 3, Width: 4, Height: 3},
			want: 3,
		},
		{
			name: "NotTouching",
			a:    Rect{X: 0, Y: 0, Width: 4, Height: 4},
			b:    Rect{X: 5, Y: 0, Width: 3, Height: 4},
			want: 0,
		},
		{
			name: "CornerOnly",
			a:    Rect{X: 0, Y: 0, Width: 4, Height: 4},
			b:    Rect{X: 4, Y: 4, Width: 3, Height: 3},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pa := RoomPlacement{RoomID: "a", Rect: tt.a}
			pb := RoomPlacement{RoomID: "b", Rect: tt.b}
			got := SharedWallLength(pa, pb, 0.01)
			if math.Abs(got-tt.want) > Epsilon {
				t.Errorf("SharedWallLength = %v, want %v", got, tt.want)
			}
			if rev := SharedWallLength(pb, pa, 0.01); math.Abs(rev-got) > Epsilon {
				t.Errorf("asymmetric shared wall: %v vs %v", got, rev)
			}
		})
	}
}

func TestSpecValidateCases(t *testing.T) {
	tests := []struct {
		name    string
		spec    Spec
		wantErr error
	}{
		{
			name: "Valid",
			spec: Spec{
				Rooms:    []RoomSpec{{ID: "living", Type: RoomLiving, TargetArea: 20}},
				Envelope: Envelope{Width: 10, Height: 8},
			},
		},
		{
			name: "EmptyRoomID",
			spec: Spec{
				Rooms:    []RoomSpec{{Type: RoomLiving, TargetArea: 20}},
				Envelope: Envelope{Width: 10, Height: 8},
			},
			wantErr: ErrEmptyRoomID,
		},
		{
			name: "DuplicateRoomID",
			spec: Spec{
				Rooms: []RoomSpec{
					{ID: "x", Type: RoomLiving, TargetArea: 20},
					{ID: "x", Type: RoomKitchen, TargetArea: 8},
				},
				Envelope: Envelope{Width: 10, Height: 8},
			},
			wantErr: ErrDuplicateRoomID,
		},
		{
			name:    "DegenerateEnvelope",
			spec:    Spec{Envelope: Envelope{Width: 0, Height: 8}},
			wantErr: ErrEmptyEnvelope,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if err != tt.wantErr {
				t.Errorf("Validate = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRoomTypeZone(t *testing.T) {
	tests := []struct {
		typ  RoomType
		want Zone
	}{
		{RoomBedroom, ZonePrivate},
		{RoomStudy, ZonePrivate},
		{RoomKitchen, ZoneService},
		{RoomBathroom, ZoneService},
		{RoomUtility, ZoneService},
		{RoomGarage, ZoneService},
		{RoomLiving, ZonePublic},
		{RoomDining, ZonePublic},
		{RoomHallway, ZonePublic},
		{RoomBalcony, ZonePublic},
		{RoomType("greenhouse"), ZonePublic}, // unknown defaults to public
	}
	for _, tt := range tests {
		if got := tt.typ.Zone(); got != tt.want {
			t.Errorf("%s.Zone() = %s, want %s", tt.typ, got, tt.want)
		}
	}
}

func TestSpecRoundTrip(t *testing.T) {
	spec := Spec{
		Rooms: []RoomSpec{
			{ID: "living", Type: RoomLiving, TargetArea: 24},
			{ID: "bed1", Type: RoomBedroom, TargetArea: 12},
		},
		Adjacencies: []AdjacencyEdge{
			{A: "living", B: "bed1", Weight: 5, Kind: AdjacencyShould},
		},
		Envelope: Envelope{Width: 12, Height: 9, Entry: FaceSouth},
	}

	data, err := MarshalSpec(spec)
	if err != nil {
		t.Fatalf("MarshalSpec: %v", err)
	}
	got, err := UnmarshalSpec(data)
	if err != nil {
		t.Fatalf("UnmarshalSpec: %v", err)
	}
	if len(got.Rooms) != 2 || got.Rooms[0].ID != "living" {
		t.Errorf("rooms did not survive round trip: %+v", got.Rooms)
	}
	if got.Envelope.Width != 12 || got.Adjacencies[0].Kind != AdjacencyShould {
		t.Errorf("fields did not survive round trip: %+v", got)
	}
}
