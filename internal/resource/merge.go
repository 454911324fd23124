package resource

// The merge helpers implement the partial-update policy: an absent or empty
// incoming value leaves the stored value unchanged, a non-empty value
// replaces it. Clearing a field through update is deliberately impossible.

// MergeString applies the merge policy to a plain string field.
func MergeString(dst *string, src *string) {
	if src != nil && *src != "" {
		*dst = *src
	}
}

// MergeStringPtr applies the merge policy to a nullable string field.
func MergeStringPtr(dst **string, src *string) {
	if src != nil && *src != "" {
		*dst = src
	}
}
