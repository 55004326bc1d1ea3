package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/aretw0/homey-mcp/internal/logging"
	"github.com/aretw0/homey-mcp/pkg/registry"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxBodyBytes bounds the argument document of one invocation.
const maxBodyBytes = 1 << 20

// Invoker runs one operation and always returns a result.
type Invoker interface {
	Invoke(ctx context.Context, name string, args map[string]any) registry.Result
	Catalog() *registry.Catalog
}

// Server serves the operation catalog as a JSON API.
type Server struct {
	invoker   Invoker
	version   string
	connected func() bool
	gatherer  prometheus.Gatherer
	streams   *StreamManager
	logger    *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithVersion sets the version reported in the OpenAPI document.
func WithVersion(v string) Option {
	return func(s *Server) { s.version = v }
}

// WithConnectivity reports whether the backend session is established.
func WithConnectivity(connected func() bool) Option {
	return func(s *Server) { s.connected = connected }
}

// WithGatherer exposes the given registry on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) { s.gatherer = g }
}

// WithStreams shares an event stream manager, usually one fed by dispatcher hooks.
func WithStreams(sm *StreamManager) Option {
	return func(s *Server) { s.streams = sm }
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// NewHandler creates the HTTP handler for the catalog.
func NewHandler(invoker Invoker, opts ...Option) http.Handler {
	s := &Server{
		invoker:   invoker,
		version:   "dev",
		connected: func() bool { return true },
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.streams == nil {
		s.streams = NewStreamManager(s.logger)
	}

	r := chi.NewRouter()
	r.Get("/operations", s.ListOperations)
	r.Post("/operations/{name}", s.InvokeOperation)
	r.Get("/openapi.json", s.GetOpenAPI)
	r.Get("/healthz", s.GetHealth)
	r.Get("/events", s.SubscribeEvents)
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ListOperations handles GET /operations.
func (s *Server) ListOperations(w http.ResponseWriter, r *http.Request) {
	type operation struct {
		Name        string         `json:"name"`
		Description string         `json:"description"`
		InputSchema map[string]any `json:"inputSchema"`
	}
	descs := s.invoker.Catalog().List()
	out := make([]operation, 0, len(descs))
	for _, d := range descs {
		out = append(out, operation{d.Name, d.Description, d.Schema.JSONSchema()})
	}
	s.writeJSON(w, http.StatusOK, out)
}

// InvokeOperation handles POST /operations/{name}. The body is the argument
// object; an empty body means no arguments. Invocation failures are
// reported with 200 and isError, like any other result.
func (s *Server) InvokeOperation(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var args map[string]any
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&args); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("InvokeOperation: invalid request body", "operation", name, "error", err)
		return
	}

	res := s.invoker.Invoke(r.Context(), name, args)
	s.writeJSON(w, http.StatusOK, res)
}

// GetOpenAPI handles GET /openapi.json.
func (s *Server) GetOpenAPI(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, BuildOpenAPI(s.invoker.Catalog(), s.version))
}

// GetHealth handles GET /healthz. A bridge without a backend session is
// alive but degraded.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	if !s.connected() {
		s.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}
