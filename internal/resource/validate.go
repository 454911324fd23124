package resource

import "strings"

// Rule names a required field of a create request and how to check that it
// was supplied.
type Rule[C any] struct {
	Field string        // wire name reported on failure
	Check func(*C) bool // reports whether the field is present and non-blank
}

// NonBlank builds a Check that passes when the string read by get is
// non-empty after trimming whitespace.
func NonBlank[C any](get func(*C) string) func(*C) bool {
	return func(req *C) bool {
		return strings.TrimSpace(get(req)) != ""
	}
}

// Validate runs the rules in declaration order and reports the first field
// that fails its check, so the offending field named to the client is always
// deterministic. Optional fields never have rules.
func Validate[C any](req *C, rules []Rule[C]) error {
	for _, rule := range rules {
		if !rule.Check(req) {
			return &ValidationError{Field: rule.Field}
		}
	}
	return nil
}
