// Package severity provides severity level constants for issues reported
// during schema resolution.
//
// The levels are ordered from least to most severe:
// Info < Warning < Critical
package severity

// Severity indicates how serious a resolution issue is.
type Severity int

const (
	// SeverityInfo indicates informational messages about resolution choices,
	// such as collapsing a shapeless object schema to a placeholder.
	SeverityInfo Severity = iota

	// SeverityWarning indicates lossy degradations that do not stop resolution,
	// such as an unresolved reference or a dropped allOf variant.
	SeverityWarning

	// SeverityCritical indicates conditions that truncate part of the output,
	// such as exceeding the nesting depth ceiling.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
