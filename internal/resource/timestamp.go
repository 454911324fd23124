package resource

import "time"

// StampLayout is the fixed wire and storage representation of an instant:
// UTC, seven fractional digits, locale independent.
const StampLayout = "2006-01-02T15:04:05.0000000Z"

// stampResolution is the finest increment StampLayout can represent.
const stampResolution = 100 * time.Nanosecond

// Stamp renders an instant in StampLayout.
func Stamp(t time.Time) string {
	return t.UTC().Format(StampLayout)
}

// ParseStamp parses a StampLayout string back into a UTC instant.
func ParseStamp(s string) (time.Time, error) {
	return time.Parse(StampLayout, s)
}

// Now returns the current UTC instant truncated to the stamp resolution, so
// an instant stamped at creation survives a render/reparse round trip
// unchanged.
func Now() time.Time {
	return time.Now().UTC().Truncate(stampResolution)
}
