package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"roadcam/config"
	"roadcam/counting"
	"roadcam/detection"
	"roadcam/overlay"
	"roadcam/stream"
	"roadcam/video"
)

var (
	configPath   = flag.String("config", "config.json", "Path to the JSON configuration file")
	videoPath    = flag.String("video", "", "Video file or stream URL (overrides videoPath from config)")
	listenAddr   = flag.String("preview", "", "MJPEG preview bind address, e.g. :8080 (overrides listenAddr from config)")
	countLogPath = flag.String("count-log", "", "Count log file path (overrides countLogPath from config)")
	headless     = flag.Bool("headless", false, "Disable frame annotation and preview (counting only)")
)

// statusMsg prints a timestamped, component-tagged status line.
func statusMsg(component, format string, v ...interface{}) {
	fmt.Printf("[%s][%s] %s\n", time.Now().Format("15:04:05.000"), component, fmt.Sprintf(format, v...))
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *videoPath != "" {
		cfg.VideoPath = *videoPath
	}
	if *listenAddr != "" {
		cfg.ListenAddr = *listenAddr
	}
	if *countLogPath != "" {
		cfg.CountLogPath = *countLogPath
	}
	if *headless {
		cfg.ListenAddr = ""
	}

	statusMsg("CONFIG", "Loaded %s: band [%d, %d], frameSkip %d, separation %.1fpx",
		*configPath, cfg.StartROILineDepth, cfg.EndROILineDepth, cfg.FrameSkip, cfg.CentroidSeparation)

	if err := run(cfg, *headless); err != nil {
		statusMsg("ERROR", "%v", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, headless bool) error {
	detector, err := detection.NewCascadeDetector(cfg.ModelPath)
	if err != nil {
		return err
	}
	defer detector.Close()
	statusMsg("DETECT", "Cascade model loaded from %s", cfg.ModelPath)

	source, err := video.OpenFileSource(cfg.VideoPath, cfg.VideoFPS)
	if err != nil {
		return err
	}
	defer source.Close()
	statusMsg("CAPTURE", "Opened %s at %.0f fps", cfg.VideoPath, cfg.VideoFPS)

	countWriter, closeLog, err := openCountLog(cfg.CountLogPath)
	if err != nil {
		return err
	}
	defer closeLog()
	countLog := video.NewCountLog(countWriter)
	statusMsg("COUNT", "Run %s", countLog.RunID())

	region := counting.Region{StartDepth: cfg.StartROILineDepth, EndDepth: cfg.EndROILineDepth}
	counter := counting.NewCounter(region, cfg.FrameSkip, cfg.CentroidSeparation)

	var renderer *overlay.Renderer
	sinks := []video.FrameSink{countLog}

	if !headless {
		renderer = overlay.NewRenderer()
	}
	var previewErrs <-chan error
	if cfg.ListenAddr != "" {
		preview := stream.NewServer(cfg.ListenAddr)
		previewErrs = preview.Start()
		defer preview.Close()
		sinks = append(sinks, preview)
		statusMsg("PREVIEW", "Serving MJPEG preview on http://%s/preview", cfg.ListenAddr)
	}

	// Cooperative shutdown: the loop finishes the current frame's
	// bookkeeping before exiting.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigChan:
			statusMsg("SIGNAL", "Received %v, stopping after current frame", sig)
			cancel()
		case err, ok := <-previewErrs:
			if ok && err != nil {
				statusMsg("ERROR", "%v", err)
				cancel()
			}
		case <-ctx.Done():
		}
	}()

	processor := video.NewProcessor(source, detector, counter, region, renderer, sinks...)
	final := processor.Run(ctx)

	countLog.Finish(final.FrameNumber, final.Count)
	statusMsg("COUNT", "Final count after %d frames: %d", final.FrameNumber, final.Count)
	return nil
}

// openCountLog opens (appending, creating directories as needed) the count
// log file, or falls back to stdout when no path is configured.
func openCountLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("could not create count log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open count log %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}
