package vibe

const (
	// neutral is the midpoint value used when a target has no preference
	// on an axis.
	neutral = 5

	// maxAxisDistance is the largest possible distance on a single axis.
	maxAxisDistance = ScaleMax - ScaleMin

	// missingDataFactor inflates the penalty for axes the fragment has no
	// value for. Missing data scores worse than a known off-target value,
	// which rewards fully annotated fragments.
	missingDataFactor = 1.2
)

// Match scores how well the fragment attributes fit the target, returning a
// value in [0,100]. An attribute inside its requested range contributes
// zero distance; outside the range it contributes the distance to the
// nearer bound; with no range set it contributes the distance to the
// neutral midpoint. Distances are summed over all axes, normalized by the
// worst case, and inverted.
func Match(attrs Attributes, target Target) float64 {
	const maxTotal = float64(NumAxes * maxAxisDistance)

	var total float64
	for _, ax := range Axes() {
		v, ok := attrs.Value(ax)
		if !ok {
			total += float64(maxAxisDistance) / 2 * missingDataFactor
			continue
		}
		r, ok := target.Range(ax)
		if !ok {
			total += abs(v - neutral)
			continue
		}
		if r.Contains(v) {
			continue
		}
		total += min(abs(v-r.Min), abs(v-r.Max))
	}

	normalized := min(total/maxTotal, 1.0)
	return 100 * (1 - normalized)
}

func abs(v int) float64 {
	if v < 0 {
		return float64(-v)
	}
	return float64(v)
}
