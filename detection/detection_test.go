package detection

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCentroidUsesHeightForY(t *testing.T) {
	d := Detection{X: 10, Y: 145, Width: 20, Height: 40}
	assert.Equal(t, image.Point{X: 20, Y: 165}, d.Centroid())
}

func TestCentroidOddDimensionsTruncate(t *testing.T) {
	d := Detection{X: 0, Y: 0, Width: 11, Height: 21}
	assert.Equal(t, image.Point{X: 5, Y: 10}, d.Centroid())
}

func TestCentroidDistance(t *testing.T) {
	a := Detection{X: 0, Y: 0, Width: 10, Height: 10} // centroid (5,5)
	b := Detection{X: 3, Y: 4, Width: 10, Height: 10} // centroid (8,9)

	assert.InDelta(t, 5.0, CentroidDistance(a, b), 1e-9)
	assert.InDelta(t, 5.0, CentroidDistance(b, a), 1e-9)
	assert.Zero(t, CentroidDistance(a, a))
}

func TestFromRectRoundTrip(t *testing.T) {
	r := image.Rect(10, 20, 50, 80)
	d := FromRect(r)

	assert.Equal(t, Detection{X: 10, Y: 20, Width: 40, Height: 60}, d)
	assert.Equal(t, r, d.Rect())
}
