package counting

import (
	"roadcam/detection"
)

// FilterCandidates selects the detections whose centroid falls inside the
// counting band, gated by the frame sampling stride. A detection becomes a
// candidate only when the frame number is a multiple of frameSkip; on every
// other frame the candidate set is empty regardless of geometry, so a large
// stride can let fast objects transit uncounted. That is the accepted
// precision/performance trade-off of frame skipping.
//
// The returned increment is the number of candidates: each one adds exactly
// 1 to the running count before deduplication.
func FilterCandidates(detections []detection.Detection, region Region, frameNumber, frameSkip int) ([]detection.Detection, int) {
	if frameNumber%frameSkip != 0 {
		return nil, 0
	}

	var candidates []detection.Detection
	for _, d := range detections {
		if region.Contains(d.Centroid()) {
			candidates = append(candidates, d)
		}
	}
	return candidates, len(candidates)
}
