package rules

import "fmt"

// Severity distinguishes blocking findings from advisory ones.
type Severity string

// Issue severities.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Rule codes emitted by the engine and the geometric validator.
const (
	RuleMinArea               = "MIN_AREA"
	RuleMaxArea               = "MAX_AREA"
	RuleMinDimension          = "MIN_DIMENSION"
	RuleAspectRatio           = "ASPECT_RATIO"
	RuleAreaOverflow          = "AREA_OVERFLOW"
	RuleAreaUnderutilization  = "AREA_UNDERUTILIZATION"
	RuleExcessMustAdjacencies = "EXCESS_MUST_ADJACENCIES"
	RuleRoomOverlap           = "ROOM_OVERLAP"
	RuleOutsideEnvelope       = "OUTSIDE_ENVELOPE"
	RuleDegenerateRoom        = "DEGENERATE_ROOM"
	RuleUnreachableRoom       = "UNREACHABLE_ROOM"
	RuleMissingDoor           = "MISSING_DOOR"
	RuleMissingWindow         = "MISSING_WINDOW"
	RuleMissingEntry          = "MISSING_ENTRY"
	RuleWallLeakage           = "WALL_LEAKAGE"
	RuleCorridorWidth         = "CORRIDOR_WIDTH"
	RuleDoorWidth             = "DOOR_WIDTH"
	RuleWindowCoverage        = "WINDOW_COVERAGE"
)

// Issue is a single finding about a specification or layout.
type Issue struct {
	Severity Severity `json:"severity" bson:"severity"`
	Rule     string   `json:"rule" bson:"rule"`
	RoomID   string   `json:"room_id,omitempty" bson:"room_id,omitempty"`
	Message  string   `json:"message" bson:"message"`
}

// IsError reports whether the issue is blocking.
func (i Issue) IsError() bool { return i.Severity == SeverityError }

// String renders the issue for logs and CLI output.
func (i Issue) String() string {
	if i.RoomID != "" {
		return fmt.Sprintf("[%s] %s (%s): %s", i.Severity, i.Rule, i.RoomID, i.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", i.Severity, i.Rule, i.Message)
}

// Errorf appends a formatted error issue to issues.
func Errorf(issues []Issue, rule, roomID, format string, args ...any) []Issue {
	return append(issues, Issue{
		Severity: SeverityError,
		Rule:     rule,
		RoomID:   roomID,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Warnf appends a formatted warning issue to issues.
func Warnf(issues []Issue, rule, roomID, format string, args ...any) []Issue {
	return append(issues, Issue{
		Severity: SeverityWarning,
		Rule:     rule,
		RoomID:   roomID,
		Message:  fmt.Sprintf(format, args...),
	})
}

// CountErrors returns the number of error-severity issues.
func CountErrors(issues []Issue) int {
	n := 0
	for _, i := range issues {
		if i.IsError() {
			n++
		}
	}
	return n
}
