// Package server serves the barcode form. Every button on the page is a
// submit control, so adding sets and barcodes is a round trip that re-renders
// the form with the posted values intact.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/goliatone/go-barcodeform/pkg/orchestrator"
	"github.com/goliatone/go-barcodeform/pkg/renderers/vanilla"
)

const (
	defaultAddr          = ":8080"
	defaultGrace         = 5 * time.Second
	defaultMaxUpload     = 1 << 20
	defaultDownloadName  = "barcodes.yaml"
	yamlContentType      = "application/yaml"
	unprocessableMessage = "fix the highlighted fields and submit again"
)

// Option configures a Server.
type Option func(*Server)

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	return func(s *Server) {
		if addr != "" {
			s.addr = addr
		}
	}
}

// WithLogger sets the request and lifecycle logger.
func WithLogger(logger hclog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithOrchestrator replaces the default render pipeline.
func WithOrchestrator(orch *orchestrator.Orchestrator) Option {
	return func(s *Server) {
		if orch != nil {
			s.orch = orch
		}
	}
}

// WithRenderer names the renderer used for pages. Empty uses the
// orchestrator default.
func WithRenderer(name string) Option {
	return func(s *Server) {
		s.renderer = name
	}
}

// WithMismatches sets the mismatch allowance written for constant sets.
func WithMismatches(n int) Option {
	return func(s *Server) {
		if n >= 0 {
			s.mismatches = n
		}
	}
}

// WithShutdownGrace bounds how long in-flight requests may run after the
// context passed to ListenAndServe is cancelled.
func WithShutdownGrace(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.grace = d
		}
	}
}

// WithMaxUploadBytes caps the size of an uploaded barcodes file.
func WithMaxUploadBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxUpload = n
		}
	}
}

// WithAssets replaces the files served under /assets/.
func WithAssets(files fs.FS) Option {
	return func(s *Server) {
		if files != nil {
			s.assets = files
		}
	}
}

// Server handles the form page, health checks, and static assets.
type Server struct {
	addr       string
	logger     hclog.Logger
	orch       *orchestrator.Orchestrator
	renderer   string
	mismatches int
	grace      time.Duration
	maxUpload  int64
	assets     fs.FS
}

// New constructs a Server with the vanilla renderer and embedded stylesheet.
func New(options ...Option) *Server {
	s := &Server{
		addr:      defaultAddr,
		grace:     defaultGrace,
		maxUpload: defaultMaxUpload,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.logger == nil {
		s.logger = hclog.NewNullLogger()
	}
	if s.orch == nil {
		s.orch = orchestrator.New(orchestrator.WithLogger(s.logger.Named("orchestrator")))
	}
	if s.assets == nil {
		s.assets = vanilla.AssetsFS()
	}
	return s
}

// Handler returns the routes wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.FS(s.assets))))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/", s.formHandler())
	return s.logRequests(mux)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("listening", "addr", s.addr, "renderer", s.renderer)

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.grace)
	defer cancel()

	s.logger.Info("shutting down", "grace", s.grace)
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"bytes", rec.bytes,
			"duration", time.Since(start),
		)
	})
}
