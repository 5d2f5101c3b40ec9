package detection

import (
	"image"
	"math"
)

// Detection is one bounding box reported by a detector for a single frame.
// Coordinates are pixels with the origin at the top-left of the frame.
// Detections are ephemeral: produced fresh each frame and never mutated.
type Detection struct {
	X      int
	Y      int
	Width  int
	Height int
}

// FromRect converts an image.Rectangle (gocv's native detection shape) into
// a Detection.
func FromRect(r image.Rectangle) Detection {
	return Detection{
		X:      r.Min.X,
		Y:      r.Min.Y,
		Width:  r.Dx(),
		Height: r.Dy(),
	}
}

// Rect returns the detection as an image.Rectangle for drawing.
func (d Detection) Rect() image.Rectangle {
	return image.Rect(d.X, d.Y, d.X+d.Width, d.Y+d.Height)
}

// Centroid returns the integer midpoint of the box. The y component uses
// the box height (the historical counter derived it from the width; that
// was a bug, not a feature, and is corrected here).
func (d Detection) Centroid() image.Point {
	return image.Point{X: d.X + d.Width/2, Y: d.Y + d.Height/2}
}

// CentroidDistance returns the Euclidean distance between the centroids of
// two detections.
func CentroidDistance(a, b Detection) float64 {
	ca, cb := a.Centroid(), b.Centroid()
	dx := float64(cb.X - ca.X)
	dy := float64(cb.Y - ca.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
