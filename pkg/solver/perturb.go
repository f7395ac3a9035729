package solver

import (
	"math"
	"math/rand/v2"

	"github.com/Indusoptima/plotsync-sub001/pkg/plan"
)

// Perturbation step sizes, relative to envelope dimensions.
const (
	translateStep = 0.10
	resizePull    = 0.5
	aspectJitter  = 0.2
)

// perturb produces a candidate layout by applying one of four perturbation
// kinds, selected uniformly, to a clone of cur. The input layout is never
// modified. ids must be the sorted room IDs of the layout so that room
// selection is deterministic for a given rng state.
func perturb(scorer *Scorer, cur plan.Layout, ids []string, rng *rand.Rand) plan.Layout {
	cand := cur.Clone()
	if len(ids) == 0 {
		return cand
	}

	switch rng.IntN(4) {
	case 0:
		translateRoom(scorer, cand, ids[rng.IntN(len(ids))], rng)
	case 1:
		resizeRoom(scorer, cand, ids[rng.IntN(len(ids))], rng)
	case 2:
		if len(ids) >= 2 {
			i := rng.IntN(len(ids))
			j := rng.IntN(len(ids) - 1)
			if j >= i {
				j++
			}
			swapRooms(scorer, cand, ids[i], ids[j])
		} else {
			translateRoom(scorer, cand, ids[0], rng)
		}
	case 3:
		adjustAspect(scorer, cand, ids[rng.IntN(len(ids))], rng)
	}
	return cand
}

// translateRoom moves a room by a random step, clamped inside the envelope.
func translateRoom(scorer *Scorer, l plan.Layout, id string, rng *rand.Rand) {
	p := l.Rooms[id]
	dx := (rng.Float64()*2 - 1) * translateStep * scorer.bounds.Width
	dy := (rng.Float64()*2 - 1) * translateStep * scorer.bounds.Height
	p.Rect.X += dx
	p.Rect.Y += dy
	clampIntoBounds(&p.Rect, scorer.bounds)
	l.Rooms[id] = p
}

// resizeRoom pulls a room's area toward its target while keeping its aspect
// ratio and respecting the type's minimum dimension.
func resizeRoom(scorer *Scorer, l plan.Layout, id string, rng *rand.Rand) {
	p := l.Rooms[id]
	target := scorer.targets[id]
	area := p.Area()
	if target <= 0 || area <= 0 {
		return
	}

	newArea := area + (target-area)*resizePull*rng.Float64()
	ratio := p.Rect.Width / p.Rect.Height
	minDim := scorer.engine.Standard(scorer.types[id]).MinDimension

	w := max(math.Sqrt(newArea*ratio), minDim)
	h := max(newArea/w, minDim)
	p.Rect.Width = w
	p.Rect.Height = h
	clampIntoBounds(&p.Rect, scorer.bounds)
	l.Rooms[id] = p
}

// swapRooms exchanges the positions of two rooms, keeping each room's size.
func swapRooms(scorer *Scorer, l plan.Layout, a, b string) {
	pa, pb := l.Rooms[a], l.Rooms[b]
	pa.Rect.X, pb.Rect.X = pb.Rect.X, pa.Rect.X
	pa.Rect.Y, pb.Rect.Y = pb.Rect.Y, pa.Rect.Y
	clampIntoBounds(&pa.Rect, scorer.bounds)
	clampIntoBounds(&pb.Rect, scorer.bounds)
	l.Rooms[a] = pa
	l.Rooms[b] = pb
}

// adjustAspect reshapes a room at constant area, respecting the minimum
// dimension for its type.
func adjustAspect(scorer *Scorer, l plan.Layout, id string, rng *rand.Rand) {
	p := l.Rooms[id]
	f := 1 + (rng.Float64()*2-1)*aspectJitter
	minDim := scorer.engine.Standard(scorer.types[id]).MinDimension

	w := max(p.Rect.Width*f, minDim)
	h := max(p.Area()/w, minDim)
	p.Rect.Width = w
	p.Rect.Height = h
	clampIntoBounds(&p.Rect, scorer.bounds)
	l.Rooms[id] = p
}

// clampIntoBounds shifts (and if necessary shrinks) a rectangle so it lies
// within bounds.
func clampIntoBounds(r *plan.Rect, bounds plan.Rect) {
	r.Width = min(r.Width, bounds.Width)
	r.Height = min(r.Height, bounds.Height)
	r.X = clamp(r.X, bounds.Left(), bounds.Right()-r.Width)
	r.Y = clamp(r.Y, bounds.Bottom(), bounds.Top()-r.Height)
}
