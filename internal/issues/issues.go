// Package issues provides a unified issue type for problems found while
// resolving schemas into example-ready form.
package issues

import (
	"fmt"

	"github.com/schemock/schemock/internal/severity"
)

// Issue represents a single problem found during schema resolution.
type Issue struct {
	// Path is the path to the problematic node within the schema being
	// resolved (e.g., "$.properties.owner.items")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Ref is the $ref string involved, when the issue concerns a reference
	Ref string
	// Value is the problematic value (optional)
	Value any
}

// String returns a formatted representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	result := fmt.Sprintf("%s %s: %s", symbol, i.Path, i.Message)
	if i.Ref != "" {
		result += fmt.Sprintf(" (ref: %s)", i.Ref)
	}
	return result
}

// CountBySeverity tallies issues at each severity level.
// Returns counts in the order: info, warning, critical.
func CountBySeverity(list []Issue) (infos, warnings, criticals int) {
	for _, issue := range list {
		switch issue.Severity {
		case severity.SeverityInfo:
			infos++
		case severity.SeverityWarning:
			warnings++
		case severity.SeverityCritical:
			criticals++
		}
	}
	return infos, warnings, criticals
}
