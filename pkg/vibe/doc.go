// Package vibe models the aesthetic dimension of name fragments and scores
// how well a fragment matches a requested aesthetic target.
//
// Every fragment carries up to five attribute values, one per Axis, each an
// integer on a 1–10 scale (Benevolence runs good→evil, Elegance runs
// elegant→rough, and so on). A Target holds optional inclusive [min,max]
// ranges per axis; axes without a range are treated as "no preference" and
// scored against the neutral midpoint.
//
// Match converts the per-axis distances between a fragment's attributes and
// a target into a single score in [0,100], where 100 means every known
// attribute falls inside its requested range. Missing attribute data is
// penalized harder than a known off-target value, so fully annotated
// fragments always outrank incomplete ones at equal distance.
package vibe
