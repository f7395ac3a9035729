package pipeline_test

import (
	"context"
	"fmt"
	"io"
	"log"

	charmlog "github.com/charmbracelet/log"

	"github.com/Indusoptima/plotsync-sub001/pkg/pipeline"
	"github.com/Indusoptima/plotsync-sub001/pkg/plan"
)

func ExampleRunner_Solve() {
	spec := &plan.Spec{
		Rooms: []plan.RoomSpec{
			{ID: "living", Type: plan.RoomLiving, TargetArea: 24},
			{ID: "kitchen", Type: plan.RoomKitchen, TargetArea: 10},
			{ID: "bed", Type: plan.RoomBedroom, TargetArea: 14},
		},
		Envelope: plan.Envelope{Width: 10, Height: 8},
	}

	runner := pipeline.NewRunner(nil, nil, charmlog.New(io.Discard))
	defer runner.Close()

	result, err := runner.Solve(context.Background(), spec, pipeline.Options{Seed: 42, Iterations: 500})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(len(result.Floorplan.Layout.Rooms), "rooms placed")
	// Output: 3 rooms placed
}
