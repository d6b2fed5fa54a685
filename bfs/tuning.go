package bfs

import "fmt"

// Default direction heuristic constants.
const (
	DefaultAlpha = 8.0
	DefaultBeta1 = 8.0
	DefaultBeta2 = 512.0
)

// Tuning holds the push/pull heuristic constants.
//
//   - Alpha: the first switch to pull happens when the frontier's edges
//     exceed edgesUnexplored/Alpha.
//   - Beta1: after pull has been used once, switch to pull again when the
//     frontier exceeds n/Beta1.
//   - Beta2: switch from pull back to push when a shrinking frontier is at
//     most n/Beta2.
type Tuning struct {
	Alpha float64 `yaml:"alpha"`
	Beta1 float64 `yaml:"beta1"`
	Beta2 float64 `yaml:"beta2"`
}

// DefaultTuning returns α=8, β1=8, β2=512.
func DefaultTuning() Tuning {
	return Tuning{Alpha: DefaultAlpha, Beta1: DefaultBeta1, Beta2: DefaultBeta2}
}

// Validate requires every constant to be strictly positive.
func (t Tuning) Validate() error {
	if !(t.Alpha > 0) || !(t.Beta1 > 0) || !(t.Beta2 > 0) {
		return fmt.Errorf("%w: tuning constants must be > 0 (alpha=%g beta1=%g beta2=%g)",
			ErrOptionViolation, t.Alpha, t.Beta1, t.Beta2)
	}

	return nil
}
