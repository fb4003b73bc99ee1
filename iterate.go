package geodesic

import "math"

// iterate calls step until the change it reports is below tol or maxSteps
// calls have been made. It returns the number of calls and whether tol
// was reached. Callers use the state left by the last step either way.
func iterate(tol float64, maxSteps int, step func() (delta float64)) (int, bool) {
	for n := 1; n <= maxSteps; n++ {
		if math.Abs(step()) < tol {
			return n, true
		}
	}
	return maxSteps, false
}
