package counting

import (
	"roadcam/detection"
)

// CountNearby estimates how many detections in current are the same
// physical object as one in previous: for each previous detection it takes
// the first unmatched current detection (in slice order) whose centroid
// lies within maxSeparation pixels, inclusive. A matched current detection
// is consumed and cannot match a second previous detection, so the result
// never exceeds min(len(previous), len(current)).
//
// This is greedy first-match, not optimal assignment. Ties go to slice
// order rather than minimum distance, which is fine at the low object
// densities seen near the counting band and avoids dragging in a Hungarian
// solver.
func CountNearby(previous, current []detection.Detection, maxSeparation float64) int {
	if len(previous) == 0 || len(current) == 0 {
		return 0
	}

	matched := make([]bool, len(current))
	count := 0
	for _, prev := range previous {
		for i, cur := range current {
			if matched[i] {
				continue
			}
			if detection.CentroidDistance(prev, cur) <= maxSeparation {
				matched[i] = true
				count++
				break
			}
		}
	}
	return count
}
