package counting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roadcam/detection"
)

func TestFilterCandidatesEmptyInput(t *testing.T) {
	region := Region{StartDepth: 100, EndDepth: 200}

	for _, frame := range []int{1, 2, 3, 10, 99} {
		for _, skip := range []int{1, 2, 5} {
			candidates, increment := FilterCandidates(nil, region, frame, skip)
			assert.Empty(t, candidates)
			assert.Equal(t, 0, increment)
		}
	}
}

func TestFilterCandidatesSamplingGate(t *testing.T) {
	region := Region{StartDepth: 100, EndDepth: 200}
	// Centroid (20, 155): inside the band.
	inBand := detection.Detection{X: 10, Y: 145, Width: 20, Height: 20}

	// Unsampled frames never yield candidates, no matter the geometry.
	candidates, increment := FilterCandidates([]detection.Detection{inBand}, region, 3, 2)
	assert.Empty(t, candidates)
	assert.Equal(t, 0, increment)

	candidates, increment = FilterCandidates([]detection.Detection{inBand}, region, 4, 2)
	assert.Equal(t, []detection.Detection{inBand}, candidates)
	assert.Equal(t, 1, increment)
}

func TestFilterCandidatesBandBoundaryInclusive(t *testing.T) {
	region := Region{StartDepth: 100, EndDepth: 200}

	cases := []struct {
		name string
		det  detection.Detection
		want int
	}{
		{"centroid exactly on start depth", detection.Detection{X: 0, Y: 90, Width: 10, Height: 20}, 1},  // centroid y = 100
		{"centroid exactly on end depth", detection.Detection{X: 0, Y: 190, Width: 10, Height: 20}, 1},   // centroid y = 200
		{"one pixel above the band", detection.Detection{X: 0, Y: 89, Width: 10, Height: 20}, 0},         // centroid y = 99
		{"one pixel below the band", detection.Detection{X: 0, Y: 191, Width: 10, Height: 20}, 0},        // centroid y = 201
		{"deep inside the band", detection.Detection{X: 300, Y: 140, Width: 40, Height: 20}, 1},          // centroid y = 150
		{"x position is irrelevant", detection.Detection{X: -5000, Y: 140, Width: 40, Height: 20}, 1},    // centroid y = 150
		{"tall box centred outside", detection.Detection{X: 0, Y: 200, Width: 10, Height: 20}, 0},        // centroid y = 210
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, increment := FilterCandidates([]detection.Detection{tc.det}, region, 10, 1)
			assert.Equal(t, tc.want, increment)
		})
	}
}

func TestFilterCandidatesInvertedBandIsEmpty(t *testing.T) {
	// Degenerate configuration, not an error: nothing can satisfy both bounds.
	region := Region{StartDepth: 200, EndDepth: 100}
	det := detection.Detection{X: 0, Y: 140, Width: 10, Height: 20} // centroid y = 150

	candidates, increment := FilterCandidates([]detection.Detection{det}, region, 1, 1)
	assert.Empty(t, candidates)
	assert.Equal(t, 0, increment)
}

func TestFilterCandidatesMixedFrame(t *testing.T) {
	region := Region{StartDepth: 100, EndDepth: 200}
	in1 := detection.Detection{X: 10, Y: 145, Width: 20, Height: 20}  // centroid y = 155
	out := detection.Detection{X: 50, Y: 10, Width: 20, Height: 20}   // centroid y = 20
	in2 := detection.Detection{X: 400, Y: 170, Width: 30, Height: 30} // centroid y = 185

	candidates, increment := FilterCandidates([]detection.Detection{in1, out, in2}, region, 6, 3)
	assert.Equal(t, 2, increment)
	assert.Equal(t, []detection.Detection{in1, in2}, candidates)
}

// Scenario: region [100, 200], frameSkip 1, a single detection whose
// centroid lands inside the band is counted on its frame.
func TestFilterCandidatesSingleVehicleInBand(t *testing.T) {
	region := Region{StartDepth: 100, EndDepth: 200}
	det := detection.Detection{X: 10, Y: 145, Width: 20, Height: 20}

	candidates, increment := FilterCandidates([]detection.Detection{det}, region, 1, 1)
	assert.Equal(t, 1, increment)
	assert.Equal(t, []detection.Detection{det}, candidates)
}
