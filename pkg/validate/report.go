package validate

import "github.com/Indusoptima/plotsync-sub001/pkg/rules"

// Pass names, in execution order.
const (
	PassStructural   = "structural"
	PassNonOverlap   = "non-overlap"
	PassContainment  = "containment"
	PassConnectivity = "connectivity"
	PassCompliance   = "code-compliance"
)

// PassReport holds one pass's findings.
type PassReport struct {
	Name   string        `json:"name" bson:"name"`
	Issues []rules.Issue `json:"issues,omitempty" bson:"issues,omitempty"`

	// Corrected reports that the pass auto-corrected geometry and the
	// recorded issues reflect the re-check after correction.
	Corrected bool `json:"corrected,omitempty" bson:"corrected,omitempty"`
}

// Errors returns the number of error-severity issues in the pass.
func (p PassReport) Errors() int { return rules.CountErrors(p.Issues) }

// Report aggregates all validation passes over one floorplan.
type Report struct {
	Passes     []PassReport `json:"passes" bson:"passes"`
	FinalValid bool         `json:"final_valid" bson:"final_valid"`
}

// ErrorCount returns the total error-severity issues across passes.
func (r Report) ErrorCount() int {
	n := 0
	for _, p := range r.Passes {
		n += p.Errors()
	}
	return n
}

// WarningCount returns the total warning-severity issues across passes.
func (r Report) WarningCount() int {
	n := 0
	for _, p := range r.Passes {
		for _, is := range p.Issues {
			if !is.IsError() {
				n++
			}
		}
	}
	return n
}

// Issues flattens every pass's findings in pass order.
func (r Report) Issues() []rules.Issue {
	var out []rules.Issue
	for _, p := range r.Passes {
		out = append(out, p.Issues...)
	}
	return out
}
