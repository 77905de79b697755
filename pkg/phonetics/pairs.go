package phonetics

// pairPenalties grades adjacent letter pairs that are individually awkward
// but too mild for the severity blacklist. The table is scanned over every
// two-character window of the boundary text when Penalties.PairTableScale
// is positive; matches accumulate and the sum is scaled before being
// subtracted from the score.
var pairPenalties = map[string]float64{
	"bx": 6, "cx": 6, "dx": 6, "fx": 6, "gx": 6,
	"kx": 6, "px": 6, "tx": 6, "vv": 5, "ww": 5,
	"qq": 8, "qa": 3, "qe": 3, "qi": 3, "qo": 3,
	"zv": 5, "vz": 5, "zw": 5, "wz": 5, "zj": 6,
	"jj": 7, "kk": 4, "pp": 3, "tt": 3, "gg": 4,
	"hh": 6, "uu": 4, "ii": 4, "yy": 6, "yx": 7,
}

// pairTablePenalty sums the table penalties of every adjacent letter pair
// in the given lowercase boundary text.
func pairTablePenalty(boundary string) float64 {
	var total float64
	for i := 0; i+2 <= len(boundary); i++ {
		total += pairPenalties[boundary[i:i+2]]
	}
	return total
}
