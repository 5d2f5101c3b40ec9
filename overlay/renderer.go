package overlay

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"roadcam/counting"
	"roadcam/detection"
)

// Drawing palette, kept from the original deployment so recorded footage
// stays comparable: green band lines, yellow boxes, red centroid dots,
// blue count text.
var (
	bandColor     = color.RGBA{R: 0, G: 255, B: 0, A: 0}
	boxColor      = color.RGBA{R: 0, G: 255, B: 255, A: 0}
	centroidColor = color.RGBA{R: 255, G: 0, B: 0, A: 0}
	textColor     = color.RGBA{R: 0, G: 0, B: 255, A: 0}
)

const (
	lineThickness  = 2
	boxThickness   = 2
	centroidRadius = 5
	textScale      = 1.0
	textThickness  = 2
)

// countTextPosition is where the running count is painted.
var countTextPosition = image.Point{X: 50, Y: 50}

// Renderer paints counting annotations onto frames. It is purely a
// presentation concern: every detection is drawn whether or not it became
// a candidate, and drawing never feeds back into the count.
type Renderer struct{}

// NewRenderer creates a frame annotation renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Annotate draws the counting band, every detection with its centroid
// marker, and the running count onto the frame in place.
func (r *Renderer) Annotate(img *gocv.Mat, region counting.Region, detections []detection.Detection, count int) {
	r.DrawBand(img, region)
	r.DrawDetections(img, detections)
	r.DrawCount(img, count)
}

// DrawBand draws the two horizontal counting lines across the full frame
// width.
func (r *Renderer) DrawBand(img *gocv.Mat, region counting.Region) {
	width := img.Cols()
	gocv.Line(img, image.Pt(0, region.StartDepth), image.Pt(width, region.StartDepth), bandColor, lineThickness)
	gocv.Line(img, image.Pt(0, region.EndDepth), image.Pt(width, region.EndDepth), bandColor, lineThickness)
}

// DrawDetections draws a bounding box and a filled centroid dot for each
// detection.
func (r *Renderer) DrawDetections(img *gocv.Mat, detections []detection.Detection) {
	for _, d := range detections {
		gocv.Rectangle(img, d.Rect(), boxColor, boxThickness)
		gocv.Circle(img, d.Centroid(), centroidRadius, centroidColor, -1)
	}
}

// DrawCount paints the running count in the top-left corner.
func (r *Renderer) DrawCount(img *gocv.Mat, count int) {
	gocv.PutText(img, fmt.Sprintf("%d", count), countTextPosition, gocv.FontHersheySimplex, textScale, textColor, textThickness)
}
