package sparse

// Popcount exposes the bitmap population count for consistency checks.
func Popcount(v *Vector) int { return v.popcount() }
