package types

// Pivot is the value the coordinate scenario compares y against.
const Pivot = 5

// Coordinate is a cartesian point as an (x, y) tuple.
type Coordinate = Pair[int, int]

// CompareToPivot returns ">5", "<5" or "=5" for y. Equality is its own
// case, checked after both inequalities.
func CompareToPivot(y int) string {
	if y > Pivot {
		return ">5"
	} else if y < Pivot {
		return "<5"
	}
	return "=5"
}
