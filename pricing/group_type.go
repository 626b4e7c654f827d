package pricing

import "fmt"

// GroupType is the closed set of cardinality kinds for customization groups
// and builder steps. The catalog stores the raw string; everything in this
// package goes through ParseGroupType so an unknown value fails loudly as a
// data error instead of silently falling through a string comparison.
type GroupType string

const (
	// GroupSingle: exactly one selection when the group is required.
	GroupSingle GroupType = "single"
	// GroupSingleOptional: at most one selection, deselect-to-none allowed.
	GroupSingleOptional GroupType = "single_optional"
	// GroupMultiple: zero or more selections.
	GroupMultiple GroupType = "multiple"
)

func ParseGroupType(s string) (GroupType, error) {
	switch GroupType(s) {
	case GroupSingle, GroupSingleOptional, GroupMultiple:
		return GroupType(s), nil
	default:
		return "", fmt.Errorf("unknown group type %q", s)
	}
}

// IsSingle reports whether the type allows at most one selection.
func (t GroupType) IsSingle() bool {
	return t == GroupSingle || t == GroupSingleOptional
}
