package video

import (
	"io"
	"log"

	"github.com/google/uuid"
	"gocv.io/x/gocv"

	"roadcam/counting"
)

// FrameSink receives each frame's annotated image and counting result.
// Sinks are presentation collaborators: they must not mutate the frame or
// feed anything back into the counter.
type FrameSink interface {
	Record(frame *gocv.Mat, result counting.FrameResult)
}

// CountLog appends one line per frame in the historical format, stamped by
// the stdlib logger. Each run carries a uuid so multiple runs appended to
// the same file can be separated later.
type CountLog struct {
	logger *log.Logger
	runID  uuid.UUID
}

// NewCountLog creates a count log writing to w and records the run header.
func NewCountLog(w io.Writer) *CountLog {
	cl := &CountLog{
		logger: log.New(w, "", log.LstdFlags),
		runID:  uuid.New(),
	}
	cl.logger.Printf("[INFO] Run %s started", cl.runID)
	return cl
}

// RunID returns this run's identifier.
func (cl *CountLog) RunID() uuid.UUID {
	return cl.runID
}

// Record writes the per-frame count line.
func (cl *CountLog) Record(_ *gocv.Mat, result counting.FrameResult) {
	cl.logger.Printf("[INFO] Frame %d: Car count is %d", result.FrameNumber, result.Count)
}

// Finish writes the run trailer with the final count.
func (cl *CountLog) Finish(frames, count int) {
	cl.logger.Printf("[INFO] Run %s finished: %d frames, final count %d", cl.runID, frames, count)
}
