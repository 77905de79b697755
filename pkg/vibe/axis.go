package vibe

// Axis identifies one of the five aesthetic dimensions a fragment is
// annotated with. The zero value is Benevolence.
type Axis int

// Aesthetic axes. Each runs low→high on a 1–10 scale.
const (
	Benevolence Axis = iota // 1 = good, 10 = evil
	Elegance                // 1 = elegant, 10 = rough
	Exoticism               // 1 = common, 10 = exotic
	Potency                 // 1 = weak, 10 = powerful
	GenderLean              // 1 = feminine, 10 = masculine
)

// NumAxes is the number of aesthetic axes.
const NumAxes = 5

// Scale bounds shared by attribute values and target ranges.
const (
	ScaleMin = 1
	ScaleMax = 10
)

var axisNames = [NumAxes]string{
	Benevolence: "benevolence",
	Elegance:    "elegance",
	Exoticism:   "exoticism",
	Potency:     "potency",
	GenderLean:  "gender_lean",
}

// String returns the snake_case axis name used in theme files and API
// payloads.
func (a Axis) String() string {
	if a < 0 || a >= NumAxes {
		return "unknown"
	}
	return axisNames[a]
}

// Axes returns all axes in declaration order.
func Axes() [NumAxes]Axis {
	return [NumAxes]Axis{Benevolence, Elegance, Exoticism, Potency, GenderLean}
}

// ParseAxis resolves an axis by its snake_case name.
func ParseAxis(name string) (Axis, bool) {
	for i, n := range axisNames {
		if n == name {
			return Axis(i), true
		}
	}
	return 0, false
}
