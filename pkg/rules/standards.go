package rules

import "github.com/Indusoptima/plotsync-sub001/pkg/plan"

// Standard is the dimensional standard for one room type. Areas are in
// square meters, dimensions in meters. The aspect range bounds the
// acceptable long/short side ratio.
type Standard struct {
	MinArea      float64
	MaxArea      float64
	MinDimension float64
	MinAspect    float64
	MaxAspect    float64
}

// roomStandards is the constant per-type table. Constructed once, read-only.
var roomStandards = map[plan.RoomType]Standard{
	plan.RoomBedroom:  {MinArea: 9, MaxArea: 25, MinDimension: 2.4, MinAspect: 1.0, MaxAspect: 2.0},
	plan.RoomBathroom: {MinArea: 3.5, MaxArea: 10, MinDimension: 1.5, MinAspect: 1.0, MaxAspect: 2.5},
	plan.RoomKitchen:  {MinArea: 5, MaxArea: 20, MinDimension: 1.8, MinAspect: 1.0, MaxAspect: 2.5},
	plan.RoomLiving:   {MinArea: 12, MaxArea: 40, MinDimension: 3.0, MinAspect: 1.0, MaxAspect: 2.0},
	plan.RoomDining:   {MinArea: 7, MaxArea: 20, MinDimension: 2.4, MinAspect: 1.0, MaxAspect: 2.0},
	plan.RoomHallway:  {MinArea: 2, MaxArea: 15, MinDimension: 1.0, MinAspect: 1.0, MaxAspect: 6.0},
	plan.RoomStudy:    {MinArea: 6, MaxArea: 15, MinDimension: 2.2, MinAspect: 1.0, MaxAspect: 2.0},
	plan.RoomUtility:  {MinArea: 3, MaxArea: 10, MinDimension: 1.5, MinAspect: 1.0, MaxAspect: 2.5},
	plan.RoomGarage:   {MinArea: 12, MaxArea: 40, MinDimension: 2.7, MinAspect: 1.0, MaxAspect: 2.5},
	plan.RoomBalcony:  {MinArea: 2, MaxArea: 15, MinDimension: 1.2, MinAspect: 1.0, MaxAspect: 4.0},
}

// unknownStandard is the forward-compatibility default for room types this
// version does not know.
var unknownStandard = Standard{MinArea: 4, MaxArea: 40, MinDimension: 1.5, MinAspect: 1.0, MaxAspect: 3.0}

// defaultAdjacencies is the mandatory adjacency preference table, keyed by
// room type. Symmetric by construction: lookups try both orders.
var defaultAdjacencies = []plan.AdjacencyEdge{
	{A: string(plan.RoomKitchen), B: string(plan.RoomDining), Weight: 8, Kind: plan.AdjacencyMust},
	{A: string(plan.RoomLiving), B: string(plan.RoomDining), Weight: 7, Kind: plan.AdjacencyShould},
	{A: string(plan.RoomLiving), B: string(plan.RoomHallway), Weight: 6, Kind: plan.AdjacencyShould},
	{A: string(plan.RoomBedroom), B: string(plan.RoomBathroom), Weight: 6, Kind: plan.AdjacencyShould},
	{A: string(plan.RoomKitchen), B: string(plan.RoomUtility), Weight: 5, Kind: plan.AdjacencyShould},
	{A: string(plan.RoomLiving), B: string(plan.RoomBalcony), Weight: 5, Kind: plan.AdjacencyShould},
	{A: string(plan.RoomGarage), B: string(plan.RoomUtility), Weight: 4, Kind: plan.AdjacencyShould},
	{A: string(plan.RoomBedroom), B: string(plan.RoomKitchen), Weight: 4, Kind: plan.AdjacencyAvoid},
	{A: string(plan.RoomBedroom), B: string(plan.RoomGarage), Weight: 5, Kind: plan.AdjacencyAvoid},
}

// Engine is the immutable rule table plus its thresholds. Safe for use from
// any number of goroutines; nothing ever writes to it after construction.
type Engine struct {
	cfg         Config
	standards   map[plan.RoomType]Standard
	adjacencies []plan.AdjacencyEdge
}

// New creates an engine with the given thresholds. A nil config uses the
// built-in defaults.
func New(cfg *Config) *Engine {
	c := DefaultConfig()
	if cfg != nil {
		c = *cfg
	}
	return &Engine{
		cfg:         c,
		standards:   roomStandards,
		adjacencies: defaultAdjacencies,
	}
}

// Config returns the engine's thresholds.
func (e *Engine) Config() Config { return e.cfg }

// Standard returns the dimensional standard for a room type. Unknown types
// get a permissive generic standard.
func (e *Engine) Standard(t plan.RoomType) Standard {
	if s, ok := e.standards[t]; ok {
		return s
	}
	return unknownStandard
}

// MandatoryAdjacencies returns the built-in type-level adjacency table.
func (e *Engine) MandatoryAdjacencies() []plan.AdjacencyEdge {
	return e.adjacencies
}

// MinRequiredArea returns the sum of minimum areas across the room specs,
// before any feasibility margin.
func (e *Engine) MinRequiredArea(rooms []plan.RoomSpec) float64 {
	var sum float64
	for _, r := range rooms {
		sum += e.Standard(r.Type).MinArea
	}
	return sum
}
