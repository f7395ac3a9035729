package plan_test

import (
	"fmt"

	"github.com/Indusoptima/plotsync-sub001/pkg/plan"
)

func ExampleRect_IntersectionArea() {
	a := plan.Rect{X: 0, Y: 0, Width: 4, Height: 4}
	b := plan.Rect{X: 2, Y: 2, Width: 4, Height: 4}

	fmt.Println(a.IntersectionArea(b))
	// Output: 4
}

func ExampleRect_ContainsRect() {
	envelope := plan.Rect{Width: 10, Height: 8}
	room := plan.Rect{X: 1, Y: 1, Width: 4, Height: 3}

	fmt.Println(envelope.ContainsRect(room, 0))
	fmt.Println(envelope.ContainsRect(plan.Rect{X: 8, Y: 0, Width: 4, Height: 3}, 0))
	// Output:
	// true
	// false
}

func ExampleSpec_Validate() {
	spec := plan.Spec{
		Rooms: []plan.RoomSpec{
			{ID: "living", Type: plan.RoomLiving, TargetArea: 24},
			{ID: "bath", Type: plan.RoomBathroom, TargetArea: 5},
		},
		Envelope: plan.Envelope{Width: 10, Height: 8},
	}

	fmt.Println(spec.Validate())
	// Output: <nil>
}
