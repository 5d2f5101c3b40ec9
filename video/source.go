package video

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Source produces decoded frames. Read returns false at end-of-data or on
// a failed decode; both terminate the stream gracefully, never as an
// error.
type Source interface {
	Read(img *gocv.Mat) bool
	Close() error
}

// FileSource reads frames from a video file (or anything OpenCV's capture
// layer accepts, such as an RTSP URL).
type FileSource struct {
	capture *gocv.VideoCapture
	path    string
}

// OpenFileSource opens a capture on path and applies the configured frame
// rate.
func OpenFileSource(path string, fps float64) (*FileSource, error) {
	capture, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open video source %s: %w", path, err)
	}
	capture.Set(gocv.VideoCaptureFPS, fps)
	return &FileSource{capture: capture, path: path}, nil
}

// Read decodes the next frame into img.
func (fs *FileSource) Read(img *gocv.Mat) bool {
	return fs.capture.Read(img)
}

// Close releases the underlying capture.
func (fs *FileSource) Close() error {
	return fs.capture.Close()
}

// Path returns the source path the capture was opened with.
func (fs *FileSource) Path() string {
	return fs.path
}
