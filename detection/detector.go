package detection

import (
	"gocv.io/x/gocv"
)

// Detector is the detection oracle: it turns a decoded frame into a set of
// bounding boxes. The counting core only depends on this contract, so tests
// can swap in a deterministic fake and the detection backend can change
// without touching the counter.
type Detector interface {
	Detect(frame gocv.Mat) ([]Detection, error)
	Close() error
}
