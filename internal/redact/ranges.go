// Package redact parses redaction range specifications and applies them to
// edit scripts. Ranges address 1-indexed line positions in one operation's
// file side (file A for deletes, file B for inserts) and are inclusive on
// both ends.
package redact

import (
	"fmt"
	"strconv"
	"strings"

	"zkdiff/internal/models"
)

// Range marks one operation's line positions whose content must be hidden.
// Start and End are 1-indexed and inclusive.
type Range struct {
	Operation models.DiffOperation
	Start     int
	End       int
}

// Covers reports whether the 1-indexed position of an entry with the given
// operation falls inside the range.
func (r Range) Covers(operation models.DiffOperation, position int) bool {
	return r.Operation == operation && position >= r.Start && position <= r.End
}

// SyntaxError reports a malformed redaction specification. It is raised at
// parse time, before any execution is attempted.
type SyntaxError struct {
	Spec   string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid redaction range %q: %s", e.Spec, e.Reason)
}

// NewSyntaxError creates a new SyntaxError.
func NewSyntaxError(spec, reason string) *SyntaxError {
	return &SyntaxError{Spec: spec, Reason: reason}
}

// ParseRanges parses a comma-separated redaction specification of the form
// "operation:start-end[,operation:start-end...]". Operations accept long and
// short forms: delete|d, insert|i, replace|r. A replace range expands into a
// Delete range and an Insert range at the same bounds, since replace is
// encoded as a Delete+Insert pair. An empty specification yields no ranges.
func ParseRanges(spec string) ([]Range, error) {
	if spec == "" {
		return nil, nil
	}

	var ranges []Range
	for _, part := range strings.Split(spec, ",") {
		parsed, err := parseRange(part)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, parsed...)
	}
	return ranges, nil
}

func parseRange(part string) ([]Range, error) {
	pieces := strings.Split(part, ":")
	if len(pieces) != 2 {
		return nil, NewSyntaxError(part, "expected operation:start-end")
	}

	bounds := strings.Split(pieces[1], "-")
	if len(bounds) != 2 {
		return nil, NewSyntaxError(part, "expected bounds in start-end form")
	}

	start, err := parseBound(part, bounds[0])
	if err != nil {
		return nil, err
	}
	end, err := parseBound(part, bounds[1])
	if err != nil {
		return nil, err
	}
	if start > end {
		return nil, NewSyntaxError(part, fmt.Sprintf("start %d is greater than end %d", start, end))
	}

	switch pieces[0] {
	case "delete", "d":
		return []Range{{Operation: models.OperationDelete, Start: start, End: end}}, nil
	case "insert", "i":
		return []Range{{Operation: models.OperationInsert, Start: start, End: end}}, nil
	case "replace", "r":
		return []Range{
			{Operation: models.OperationDelete, Start: start, End: end},
			{Operation: models.OperationInsert, Start: start, End: end},
		}, nil
	default:
		return nil, NewSyntaxError(part, fmt.Sprintf("unknown operation %q", pieces[0]))
	}
}

func parseBound(part, bound string) (int, error) {
	value, err := strconv.Atoi(bound)
	if err != nil {
		return 0, NewSyntaxError(part, fmt.Sprintf("bound %q is not a number", bound))
	}
	if value < 1 {
		return 0, NewSyntaxError(part, fmt.Sprintf("bound %d must be a positive line number", value))
	}
	return value, nil
}
