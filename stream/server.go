package stream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/hybridgroup/mjpeg"
	"gocv.io/x/gocv"

	"roadcam/counting"
)

// Server exposes the annotated frame stream as MJPEG over HTTP, standing
// in for the original's on-screen preview window. It implements
// video.FrameSink, so it plugs into the processing loop like any other
// sink; a frame that fails to encode is dropped from the preview without
// disturbing the count.
type Server struct {
	stream *mjpeg.Stream
	server *http.Server
	addr   string
}

// NewServer creates a preview server bound to addr (e.g. ":8080"). The
// stream is served at /preview.
func NewServer(addr string) *Server {
	stream := mjpeg.NewStream()
	mux := http.NewServeMux()
	mux.Handle("/preview", stream)

	return &Server{
		stream: stream,
		server: &http.Server{Addr: addr, Handler: mux},
		addr:   addr,
	}
}

// Addr returns the configured bind address.
func (s *Server) Addr() string {
	return s.addr
}

// Start begins serving in a background goroutine. Listen errors after
// startup are reported through errc.
func (s *Server) Start() <-chan error {
	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- fmt.Errorf("preview server failed: %w", err)
		}
		close(errc)
	}()
	return errc
}

// Record encodes the annotated frame as JPEG and pushes it to connected
// preview clients.
func (s *Server) Record(frame *gocv.Mat, _ counting.FrameResult) {
	if frame == nil || frame.Empty() {
		return
	}
	buf, err := gocv.IMEncode(gocv.JPEGFileExt, *frame)
	if err != nil {
		return
	}
	defer buf.Close()
	s.stream.UpdateJPEG(buf.GetBytes())
}

// Close shuts the HTTP server down, giving in-flight preview requests a
// moment to finish.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}
