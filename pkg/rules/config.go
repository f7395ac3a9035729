package rules

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the tunable numeric thresholds of the rule engine. These are
// empirically chosen values, not fixed architecture; deployments can override
// them with a TOML file.
type Config struct {
	// CirculationRatio is the fraction of summed room area reserved for
	// circulation (corridors, wall footprints) in area-distribution checks.
	CirculationRatio float64 `toml:"circulation_ratio"`

	// UnderutilizationRatio triggers an AREA_UNDERUTILIZATION warning when
	// the summed room area falls below this fraction of the total area.
	UnderutilizationRatio float64 `toml:"underutilization_ratio"`

	// MaxMustAdjacencies is the most "must" edges any single room can carry.
	// A rectangular room exposes four wall faces, so demands beyond that
	// cannot be realized by 2D abutment.
	MaxMustAdjacencies int `toml:"max_must_adjacencies"`

	// FeasibilityMargin scales the sum of minimum room areas when deciding
	// whether a specification can fit the envelope at all.
	FeasibilityMargin float64 `toml:"feasibility_margin"`

	// DefaultAdjacencyWeight is returned for type pairs without an explicit
	// adjacency entry.
	DefaultAdjacencyWeight int `toml:"default_adjacency_weight"`

	// MinSharedWall is the shared-wall length (meters) below which two rooms
	// do not count as adjacent.
	MinSharedWall float64 `toml:"min_shared_wall"`

	// MinCorridorWidth is the code-compliance minimum hallway width.
	MinCorridorWidth float64 `toml:"min_corridor_width"`

	// MinDoorWidth and MaxDoorWidth bound acceptable door widths.
	MinDoorWidth float64 `toml:"min_door_width"`
	MaxDoorWidth float64 `toml:"max_door_width"`

	// WindowWallFraction sizes windows relative to their hosting wall.
	WindowWallFraction float64 `toml:"window_wall_fraction"`

	// WindowCoverageRatio is the minimum total window length relative to a
	// habitable room's perimeter before a WINDOW_COVERAGE warning fires.
	WindowCoverageRatio float64 `toml:"window_coverage_ratio"`
}

// DefaultConfig returns the built-in thresholds.
func DefaultConfig() Config {
	return Config{
		CirculationRatio:       0.15,
		UnderutilizationRatio:  0.60,
		MaxMustAdjacencies:     4,
		FeasibilityMargin:      1.2,
		DefaultAdjacencyWeight: 3,
		MinSharedWall:          1.2,
		MinCorridorWidth:       1.0,
		MinDoorWidth:           0.7,
		MaxDoorWidth:           1.2,
		WindowWallFraction:     0.3,
		WindowCoverageRatio:    0.10,
	}
}

// LoadConfig reads threshold overrides from a TOML file. Fields absent from
// the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
