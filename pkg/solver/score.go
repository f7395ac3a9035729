package solver

import (
	"fmt"
	"math"

	"github.com/Indusoptima/plotsync-sub001/pkg/plan"
	"github.com/Indusoptima/plotsync-sub001/pkg/rules"
)

// abutTolerance is how closely two room edges must line up to count as a
// shared wall during scoring.
const abutTolerance = 0.05

// Weights are the relative importance of the five cost terms. Overlap and
// envelope violations carry dominating weights: a layout with any overlap
// must always cost more than any overlap-free arrangement.
type Weights struct {
	Overlap     float64 `json:"overlap"`
	Adjacency   float64 `json:"adjacency"`
	Compactness float64 `json:"compactness"`
	AreaFit     float64 `json:"area_fit"`
	EnvelopeFit float64 `json:"envelope_fit"`
}

// DefaultWeights returns the standard term weights.
func DefaultWeights() Weights {
	return Weights{
		Overlap:     1000,
		Adjacency:   2,
		Compactness: 1,
		AreaFit:     4,
		EnvelopeFit: 500,
	}
}

// Hash fingerprints the weights for cache keys.
func (w Weights) Hash() string {
	return fmt.Sprintf("%g:%g:%g:%g:%g", w.Overlap, w.Adjacency, w.Compactness, w.AreaFit, w.EnvelopeFit)
}

// Breakdown is the per-term cost decomposition returned alongside the total,
// for diagnostics and tests. All terms are non-negative; zero is perfect.
type Breakdown struct {
	Overlap     float64 `json:"overlap"`
	Adjacency   float64 `json:"adjacency"`
	Compactness float64 `json:"compactness"`
	AreaFit     float64 `json:"area_fit"`
	EnvelopeFit float64 `json:"envelope_fit"`
	Total       float64 `json:"total"`
}

// Scorer computes the scalar cost of candidate layouts for one
// specification. A Scorer is immutable after construction and safe to share
// across goroutines.
type Scorer struct {
	engine  *rules.Engine
	weights Weights
	bounds  plan.Rect
	targets map[string]float64
	types   map[string]plan.RoomType
	edges   []plan.AdjacencyEdge
}

// NewScorer builds a scorer for the given specification. A nil weights
// pointer uses DefaultWeights. Adjacency edges are resolved once up front
// through the rule engine.
func NewScorer(engine *rules.Engine, spec *plan.Spec, weights *Weights) *Scorer {
	w := DefaultWeights()
	if weights != nil {
		w = *weights
	}
	targets := make(map[string]float64, len(spec.Rooms))
	types := make(map[string]plan.RoomType, len(spec.Rooms))
	for _, r := range spec.Rooms {
		targets[r.ID] = r.TargetArea
		types[r.ID] = r.Type
	}
	return &Scorer{
		engine:  engine,
		weights: w,
		bounds:  spec.Envelope.Bounds(),
		targets: targets,
		types:   types,
		edges:   engine.EffectiveEdges(spec),
	}
}

// Edges returns the resolved adjacency edges the scorer penalizes against.
func (s *Scorer) Edges() []plan.AdjacencyEdge { return s.edges }

// Score computes the weighted cost of a layout with its per-term breakdown.
// Lower is better; zero means every term is perfectly satisfied.
func (s *Scorer) Score(l plan.Layout) Breakdown {
	placements := l.Placements()

	b := Breakdown{
		Overlap:     s.overlapTerm(placements),
		Adjacency:   s.adjacencyTerm(l),
		Compactness: s.compactnessTerm(placements),
		AreaFit:     s.areaFitTerm(placements),
		EnvelopeFit: s.envelopeTerm(placements),
	}
	b.Total = s.weights.Overlap*b.Overlap +
		s.weights.Adjacency*b.Adjacency +
		s.weights.Compactness*b.Compactness +
		s.weights.AreaFit*b.AreaFit +
		s.weights.EnvelopeFit*b.EnvelopeFit
	return b
}

// overlapTerm sums pairwise intersection areas.
func (s *Scorer) overlapTerm(placements []plan.RoomPlacement) float64 {
	var sum float64
	for i := range placements {
		for j := i + 1; j < len(placements); j++ {
			sum += placements[i].Rect.IntersectionArea(placements[j].Rect)
		}
	}
	return sum
}

// adjacencyTerm penalizes unmet must/should edges and violated avoid edges.
// Rooms count as adjacent when they share at least MinSharedWall meters of
// wall.
func (s *Scorer) adjacencyTerm(l plan.Layout) float64 {
	minShared := s.engine.Config().MinSharedWall
	var penalty float64
	for _, edge := range s.edges {
		a, okA := l.Rooms[edge.A]
		b, okB := l.Rooms[edge.B]
		if !okA || !okB {
			continue
		}
		shared := plan.SharedWallLength(a, b, abutTolerance)
		switch edge.Kind {
		case plan.AdjacencyMust:
			if shared < minShared {
				penalty += 3 * float64(edge.Weight)
			}
		case plan.AdjacencyShould:
			if shared < minShared {
				penalty += float64(edge.Weight)
			}
		case plan.AdjacencyAvoid:
			if shared >= minShared {
				penalty += float64(edge.Weight)
			}
		}
	}
	return penalty
}

// compactnessTerm measures each room's deviation from the ideal
// perimeter-to-area ratio. For a given area the square minimizes perimeter,
// so the ideal ratio is 4/sqrt(area).
func (s *Scorer) compactnessTerm(placements []plan.RoomPlacement) float64 {
	var sum float64
	for _, p := range placements {
		area := p.Area()
		if area <= 0 {
			sum += 10 // degenerate rooms are heavily non-compact
			continue
		}
		ideal := 4 / math.Sqrt(area)
		sum += math.Abs(p.Rect.Perimeter()/area - ideal)
	}
	return sum
}

// areaFitTerm sums squared relative deviations from target areas.
func (s *Scorer) areaFitTerm(placements []plan.RoomPlacement) float64 {
	var sum float64
	for _, p := range placements {
		target := s.targets[p.RoomID]
		if target <= 0 {
			continue
		}
		rel := (p.Area() - target) / target
		sum += rel * rel
	}
	return sum
}

// envelopeTerm sums the area of room portions outside the envelope.
func (s *Scorer) envelopeTerm(placements []plan.RoomPlacement) float64 {
	var sum float64
	for _, p := range placements {
		sum += p.Rect.OutsideArea(s.bounds)
	}
	return sum
}
