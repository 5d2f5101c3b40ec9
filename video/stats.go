package video

import (
	"time"
)

// PipelineStats tracks per-stage performance of the frame loop. The loop
// is the only writer and reader, so no locking is needed.
type PipelineStats struct {
	frameCount     int64
	lastReportTime time.Time

	readTimeTotal   time.Duration
	detectTimeTotal time.Duration
	countTimeTotal  time.Duration
	readCount       int64
	detectCount     int64
	countCount      int64
}

// StatsReport is one reporting window's worth of pipeline metrics.
type StatsReport struct {
	FPS       float64
	AvgRead   time.Duration
	AvgDetect time.Duration
	AvgCount  time.Duration
	Frames    int64
}

// NewPipelineStats creates a pipeline statistics tracker.
func NewPipelineStats() *PipelineStats {
	return &PipelineStats{lastReportTime: time.Now()}
}

// UpdateRead records one frame read.
func (ps *PipelineStats) UpdateRead(duration time.Duration) {
	ps.frameCount++
	ps.readTimeTotal += duration
	ps.readCount++
}

// UpdateDetect records one detector invocation.
func (ps *PipelineStats) UpdateDetect(duration time.Duration) {
	ps.detectTimeTotal += duration
	ps.detectCount++
}

// UpdateCount records one counting pass.
func (ps *PipelineStats) UpdateCount(duration time.Duration) {
	ps.countTimeTotal += duration
	ps.countCount++
}

// Report returns metrics for the window since the last report and resets
// the counters.
func (ps *PipelineStats) Report() StatsReport {
	now := time.Now()
	window := now.Sub(ps.lastReportTime).Seconds()
	if window <= 0 {
		window = 1.0
	}

	report := StatsReport{
		FPS:    float64(ps.frameCount) / window,
		Frames: ps.frameCount,
	}
	if ps.readCount > 0 {
		report.AvgRead = ps.readTimeTotal / time.Duration(ps.readCount)
	}
	if ps.detectCount > 0 {
		report.AvgDetect = ps.detectTimeTotal / time.Duration(ps.detectCount)
	}
	if ps.countCount > 0 {
		report.AvgCount = ps.countTimeTotal / time.Duration(ps.countCount)
	}

	ps.frameCount = 0
	ps.readTimeTotal = 0
	ps.detectTimeTotal = 0
	ps.countTimeTotal = 0
	ps.readCount = 0
	ps.detectCount = 0
	ps.countCount = 0
	ps.lastReportTime = now

	return report
}
