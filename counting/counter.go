package counting

import (
	"roadcam/detection"
)

// FrameResult is the outcome of counting one frame.
type FrameResult struct {
	FrameNumber int
	Candidates  []detection.Detection
	Increment   int // candidates found this frame
	Overlap     int // candidates already counted on the previous frame
	Count       int // running total after this frame
}

// Counter accumulates vehicle crossings over a stream of per-frame
// detections. It is owned by exactly one processing loop and is not safe
// for concurrent use; the loop's strictly sequential frame handling is the
// synchronization.
type Counter struct {
	region        Region
	frameSkip     int
	maxSeparation float64

	frameNumber int
	previous    []detection.Detection
	count       int
}

// NewCounter builds a counter for one video run. frameSkip must be >= 1
// and maxSeparation > 0; the configuration loader enforces both.
func NewCounter(region Region, frameSkip int, maxSeparation float64) *Counter {
	return &Counter{
		region:        region,
		frameSkip:     frameSkip,
		maxSeparation: maxSeparation,
	}
}

// Process counts one frame's detections and advances the counter state.
//
// The increment is the number of in-band candidates on a sampled frame;
// the overlap is how many of those were already present (within
// maxSeparation of a previous candidate) on the immediately preceding
// frame. The running count moves by increment minus overlap, which keeps a
// slow object at one count while it sits inside the band. The count can go
// negative under detector noise; it is reported as-is, never clamped.
//
// The previous-candidate set is replaced on every frame, sampled or not.
func (c *Counter) Process(detections []detection.Detection) FrameResult {
	c.frameNumber++

	candidates, increment := FilterCandidates(detections, c.region, c.frameNumber, c.frameSkip)
	overlap := CountNearby(c.previous, candidates, c.maxSeparation)
	c.count += increment - overlap
	c.previous = candidates

	return FrameResult{
		FrameNumber: c.frameNumber,
		Candidates:  candidates,
		Increment:   increment,
		Overlap:     overlap,
		Count:       c.count,
	}
}

// Count returns the current running total.
func (c *Counter) Count() int {
	return c.count
}

// FrameNumber returns the number of frames processed so far.
func (c *Counter) FrameNumber() int {
	return c.frameNumber
}
