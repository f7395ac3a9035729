package rules

// Typology is the coarse classification of a whole building by area and
// room count. Downstream components use it to scale optimizer iteration
// budgets and zone templates.
type Typology string

// Building typologies, smallest to largest.
const (
	TypologyStudio    Typology = "studio"
	TypologyApartment Typology = "apartment"
	TypologyTownhouse Typology = "townhouse"
	TypologyVilla     Typology = "villa"
	TypologyMansion   Typology = "mansion"
)

// ClassifyTypology buckets a building by total area (m²) and room count.
// The thresholds are deliberately loose: either a large area or a high room
// count is enough to move up a bucket.
func ClassifyTypology(area float64, roomCount int) Typology {
	switch {
	case roomCount <= 2 && area <= 45:
		return TypologyStudio
	case area >= 400 || roomCount >= 11:
		return TypologyMansion
	case area >= 250 || roomCount >= 9:
		return TypologyVilla
	case area >= 130 || roomCount >= 6:
		return TypologyTownhouse
	default:
		return TypologyApartment
	}
}

// IterationBudget returns the default annealing iteration budget for a
// typology. Bigger buildings get more iterations because the search space
// grows with room count.
func (t Typology) IterationBudget() int {
	switch t {
	case TypologyStudio:
		return 2000
	case TypologyApartment:
		return 5000
	case TypologyTownhouse:
		return 8000
	case TypologyVilla:
		return 12000
	case TypologyMansion:
		return 20000
	default:
		return 5000
	}
}
