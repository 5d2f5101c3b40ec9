package counting

import "image"

// Region is the horizontal counting band, expressed as two pixel depths in
// frame coordinates. Crossings are counted while an object's centroid sits
// between StartDepth and EndDepth (inclusive).
//
// StartDepth < EndDepth is not enforced: an inverted band never contains a
// centroid, so the counter simply stays flat.
type Region struct {
	StartDepth int
	EndDepth   int
}

// Contains reports whether the point's y coordinate falls inside the band.
// Both bounds are inclusive.
func (r Region) Contains(p image.Point) bool {
	return r.StartDepth <= p.Y && p.Y <= r.EndDepth
}
