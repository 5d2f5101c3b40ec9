package detection

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// Cascade detection parameters. Tuned for roadside vehicle footage; a
// smaller minimum size mostly yields classifier noise.
const (
	cascadeScaleFactor  = 1.05
	cascadeMinNeighbors = 5
	cascadeMinSize      = 30
)

// CascadeDetector detects vehicles with an OpenCV Haar cascade classifier.
// It is not safe for concurrent use; the processing loop is the only caller.
type CascadeDetector struct {
	classifier gocv.CascadeClassifier
	modelPath  string
}

// NewCascadeDetector loads a trained cascade from the given XML model file.
func NewCascadeDetector(modelPath string) (*CascadeDetector, error) {
	classifier := gocv.NewCascadeClassifier()
	if !classifier.Load(modelPath) {
		classifier.Close()
		return nil, fmt.Errorf("failed to load cascade model from %s", modelPath)
	}
	return &CascadeDetector{classifier: classifier, modelPath: modelPath}, nil
}

// Detect runs the cascade over a grayscale copy of the frame and returns
// the matched bounding boxes.
func (cd *CascadeDetector) Detect(frame gocv.Mat) ([]Detection, error) {
	if frame.Empty() {
		return nil, fmt.Errorf("empty frame passed to cascade detector")
	}

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(frame, &gray, gocv.ColorBGRToGray)

	rects := cd.classifier.DetectMultiScaleWithParams(
		gray,
		cascadeScaleFactor,
		cascadeMinNeighbors,
		0,
		image.Pt(cascadeMinSize, cascadeMinSize),
		image.Pt(0, 0),
	)

	detections := make([]Detection, 0, len(rects))
	for _, r := range rects {
		detections = append(detections, FromRect(r))
	}
	return detections, nil
}

// Close releases the classifier.
func (cd *CascadeDetector) Close() error {
	return cd.classifier.Close()
}

// ModelPath returns the path the classifier was loaded from.
func (cd *CascadeDetector) ModelPath() string {
	return cd.modelPath
}
