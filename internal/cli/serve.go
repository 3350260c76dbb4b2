package cli

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/linechart/pkg/buildinfo"
	"github.com/matzehuels/linechart/pkg/cache"
	"github.com/matzehuels/linechart/pkg/config"
	"github.com/matzehuels/linechart/pkg/errors"
	lcio "github.com/matzehuels/linechart/pkg/io"
	"github.com/matzehuels/linechart/pkg/observability"
	"github.com/matzehuels/linechart/pkg/pipeline"
)

const (
	// maxRequestBytes bounds the body of a render request.
	maxRequestBytes = 8 << 20

	// serveKeyPrefix separates server artifacts from CLI artifacts in a
	// shared cache directory.
	serveKeyPrefix = "serve:"

	shutdownTimeout = 5 * time.Second
)

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatText: "text/plain; charset=utf-8",
}

// serveCommand creates the HTTP server command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve chart renders over HTTP",
		Long: `Serve chart renders over HTTP.

  POST /render?format=svg   body: {"labels": [...], "values": [...], "config": {...},
                                   "width": 800, "height": 400, "kind": "float64"}
  GET  /healthz

Caller errors answer 400 with {"code": ..., "message": ...}.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newCache(noCache)
			if err != nil {
				return err
			}
			runner := pipeline.NewRunner(store, cache.NewScopedKeyer(nil, serveKeyPrefix), c.Logger)
			defer runner.Close()

			if noCache {
				printWarning("Artifact cache disabled")
			}
			return runServer(cmd.Context(), addr, newServer(runner, c.Logger))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	return cmd
}

// runServer serves until ctx is done, then shuts down gracefully.
func runServer(ctx context.Context, addr string, s *server) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	prog := newProgress(s.logger)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	printSuccess("Serving on %s", StyleLink.Render("http://"+ln.Addr().String()))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	prog.done("Server stopped")
	return nil
}

// =============================================================================
// Server
// =============================================================================

type server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

func newServer(runner *pipeline.Runner, logger *log.Logger) *server {
	return &server{runner: runner, logger: logger}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Post("/render", s.handleRender)
	return r
}

// observe reports each request to the server hooks and attaches a
// request-scoped logger to the context.
func (s *server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		hooks := observability.Server()
		hooks.OnRequest(ctx, r.Method, r.URL.Path)

		start := time.Now()
		logger := s.logger.With("request_id", middleware.GetReqID(ctx))
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(withLogger(ctx, logger)))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(ctx, r.Method, r.URL.Path, status, time.Since(start))
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}

// renderRequest is the body of POST /render.
type renderRequest struct {
	lcio.Document
	Config json.RawMessage `json:"config,omitempty"`
	Width  float64         `json:"width,omitempty"`
	Height float64         `json:"height,omitempty"`
	Kind   string          `json:"kind,omitempty"`
	Sort   bool            `json:"sort,omitempty"`
}

// options converts the request into pipeline options for one format.
func (req renderRequest) options(format string) (pipeline.Options, error) {
	table, err := req.Table()
	if err != nil {
		return pipeline.Options{}, err
	}
	if req.Sort {
		if table, err = lcio.SortNatural(table); err != nil {
			return pipeline.Options{}, err
		}
	}

	file := &config.File{}
	if len(req.Config) > 0 {
		if file, err = config.Parse(req.Config, config.FormatJSON); err != nil {
			return pipeline.Options{}, err
		}
	}

	return pipeline.Options{
		Table:      table,
		SortLabels: req.Sort,
		Config:     file,
		Kind:       req.Kind,
		Width:      req.Width,
		Height:     req.Height,
		Formats:    []string{format},
	}, nil
}

func (s *server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		writeError(w, err)
		return
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	dec.UseNumber()
	dec.DisallowUnknownFields()
	var req renderRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}

	opts, err := req.options(format)
	if err != nil {
		writeError(w, err)
		return
	}
	opts.Logger = loggerFromContext(r.Context())

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		opts.Logger.Warn("render failed", "format", format, "error", err)
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	if result.CacheInfo.RenderHit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// errorBody is the JSON shape of an error response.
type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// writeError answers caller errors with 400 and everything else with 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := errorBody{Code: errors.ErrCodeInternal, Message: "internal error"}
	if errors.IsCallerError(err) {
		status = http.StatusBadRequest
		body = errorBody{Code: errors.GetCode(err), Message: errors.UserMessage(err)}
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
