package cloud

import (
	"math"

	"github.com/golang/geo/r3"
)

const ellipseStep = 0.05

// Ellipse fills s with an elliptic cylinder: rings of semi-axes 0.5 and 1 stacked along Z
// from -1 (inclusive) to 1 (exclusive). Useful as a demo or test cloud.
func Ellipse(s *Store) error {
	for i := 0; ; i++ {
		z := -1.0 + float64(i)*ellipseStep
		if z >= 1.0 {
			break
		}
		for j := 0; ; j++ {
			a := float64(j) * ellipseStep
			if a >= 2*math.Pi {
				break
			}
			if _, err := s.InsertPoint(r3.Vector{X: 0.5 * math.Cos(a), Y: math.Sin(a), Z: z}); err != nil {
				return err
			}
		}
	}
	return nil
}
