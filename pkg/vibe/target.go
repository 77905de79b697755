package vibe

import "fmt"

// Attributes holds a fragment's per-axis values. A zero entry means the
// fragment has no data for that axis; valid values are ScaleMin–ScaleMax.
type Attributes [NumAxes]int8

// Value returns the attribute for the given axis and whether it is set.
func (a Attributes) Value(ax Axis) (int, bool) {
	if ax < 0 || ax >= NumAxes || a[ax] == 0 {
		return 0, false
	}
	return int(a[ax]), true
}

// Complete reports whether every axis carries a value.
func (a Attributes) Complete() bool {
	for _, v := range a {
		if v == 0 {
			return false
		}
	}
	return true
}

// Range is an inclusive [Min,Max] window on the 1–10 scale.
type Range struct {
	Min int
	Max int
}

// Contains reports whether v falls inside the range.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Target is a per-axis set of optional ranges. The zero value has no
// preference on any axis. A Target is read-only during scoring; build it
// up front with Set.
type Target struct {
	ranges [NumAxes]Range
	has    [NumAxes]bool
}

// Set records an inclusive range for the axis. Min and max must satisfy
// ScaleMin <= min <= max <= ScaleMax.
func (t *Target) Set(ax Axis, min, max int) error {
	if ax < 0 || ax >= NumAxes {
		return fmt.Errorf("%w: axis %d", ErrInvalidAxis, int(ax))
	}
	if min < ScaleMin || max > ScaleMax || min > max {
		return fmt.Errorf("%w: %s [%d,%d]", ErrInvalidRange, ax, min, max)
	}
	t.ranges[ax] = Range{Min: min, Max: max}
	t.has[ax] = true
	return nil
}

// Clear removes any preference on the axis.
func (t *Target) Clear(ax Axis) {
	if ax >= 0 && ax < NumAxes {
		t.has[ax] = false
	}
}

// Range returns the range for the axis and whether one is set.
func (t Target) Range(ax Axis) (Range, bool) {
	if ax < 0 || ax >= NumAxes || !t.has[ax] {
		return Range{}, false
	}
	return t.ranges[ax], true
}
