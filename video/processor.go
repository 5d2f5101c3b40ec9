package video

import (
	"context"
	"time"

	"gocv.io/x/gocv"

	"roadcam/counting"
	"roadcam/detection"
	"roadcam/overlay"
)

// perfReportInterval is how often the loop emits a pipeline stats line.
const perfReportInterval = 15 * time.Second

// Processor runs the per-frame counting loop: read, detect, count,
// annotate, record. Processing is strictly sequential: each frame
// completes all stages before the next read, so the counter needs no
// locking. Cancellation is cooperative, checked once per frame boundary;
// a failed read is end-of-data, not an error.
type Processor struct {
	source   Source
	detector detection.Detector
	counter  *counting.Counter
	region   counting.Region
	renderer *overlay.Renderer
	sinks    []FrameSink
	stats    *PipelineStats
}

// NewProcessor wires a processing loop. renderer may be nil to skip frame
// annotation (headless counting).
func NewProcessor(source Source, detector detection.Detector, counter *counting.Counter, region counting.Region, renderer *overlay.Renderer, sinks ...FrameSink) *Processor {
	return &Processor{
		source:   source,
		detector: detector,
		counter:  counter,
		region:   region,
		renderer: renderer,
		sinks:    sinks,
		stats:    NewPipelineStats(),
	}
}

// Run processes frames until the source is exhausted or ctx is cancelled.
// It returns the final counting result of the last processed frame.
func (p *Processor) Run(ctx context.Context) counting.FrameResult {
	img := gocv.NewMat()
	defer img.Close()

	var last counting.FrameResult
	lastReport := time.Now()

	for {
		select {
		case <-ctx.Done():
			Logf("[INFO] Stop requested, finishing after frame %d", p.counter.FrameNumber())
			return last
		default:
		}

		readStart := time.Now()
		if ok := p.source.Read(&img); !ok || img.Empty() {
			Logf("[INFO] End of stream after frame %d", p.counter.FrameNumber())
			return last
		}
		p.stats.UpdateRead(time.Since(readStart))

		detectStart := time.Now()
		detections, err := p.detector.Detect(img)
		if err != nil {
			// A failed detection leaves the frame uncounted but the
			// bookkeeping still advances, same as an empty frame.
			Logf("[ERROR] Detection failed on frame %d: %v", p.counter.FrameNumber()+1, err)
			detections = nil
		}
		p.stats.UpdateDetect(time.Since(detectStart))

		countStart := time.Now()
		last = p.counter.Process(detections)
		p.stats.UpdateCount(time.Since(countStart))

		if p.renderer != nil {
			p.renderer.Annotate(&img, p.region, detections, last.Count)
		}
		for _, sink := range p.sinks {
			sink.Record(&img, last)
		}

		if time.Since(lastReport) >= perfReportInterval {
			report := p.stats.Report()
			Logf("[STATS] %.1f fps | read %v | detect %v | count %v",
				report.FPS, report.AvgRead, report.AvgDetect, report.AvgCount)
			lastReport = time.Now()
		}
	}
}
