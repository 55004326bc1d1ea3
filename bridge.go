package homeymcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aretw0/homey-mcp/internal/config"
	"github.com/aretw0/homey-mcp/internal/logging"
	"github.com/aretw0/homey-mcp/pkg/adapters/homeyapi"
	httpAdapter "github.com/aretw0/homey-mcp/pkg/adapters/http"
	mcpAdapter "github.com/aretw0/homey-mcp/pkg/adapters/mcp"
	"github.com/aretw0/homey-mcp/pkg/homey"
	"github.com/aretw0/homey-mcp/pkg/observability"
	"github.com/aretw0/homey-mcp/pkg/ports"
	"github.com/aretw0/homey-mcp/pkg/registry"
	"github.com/prometheus/client_golang/prometheus"
)

// Bridge wires the catalog, the dispatcher and the backend session.
type Bridge struct {
	session     *ports.Session
	dispatcher  *registry.Dispatcher
	metrics     *observability.Metrics
	registry    *prometheus.Registry
	streams     *httpAdapter.StreamManager
	hooks       registry.Hooks
	dispatchOps []registry.Option
	logger      *slog.Logger
}

// Option defines a functional option for configuring the Bridge.
type Option func(*Bridge)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bridge) {
		b.logger = logger
	}
}

// WithHooks registers extra observability hooks, run after the built-in ones.
func WithHooks(h registry.Hooks) Option {
	return func(b *Bridge) {
		b.hooks = h
	}
}

// WithRegistry collects metrics into reg instead of a private registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(b *Bridge) {
		b.registry = reg
	}
}

// WithoutValidation hands raw arguments to handlers.
func WithoutValidation() Option {
	return func(b *Bridge) {
		b.dispatchOps = append(b.dispatchOps, registry.WithoutValidation())
	}
}

// New creates a Bridge with an unset session. Call Connect to attach a controller.
func New(opts ...Option) (*Bridge, error) {
	b := &Bridge{
		session: ports.NewSession(),
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.registry == nil {
		b.registry = prometheus.NewRegistry()
	}

	metrics, err := observability.NewMetrics(b.registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	b.metrics = metrics
	b.streams = httpAdapter.NewStreamManager(b.logger)

	dispatchOpts := append([]registry.Option{
		registry.WithLogger(b.logger),
		registry.WithHooks(observability.ChainHooks(metrics.Hooks(), b.streams.Hooks(), b.hooks)),
	}, b.dispatchOps...)
	b.dispatcher = registry.NewDispatcher(homey.NewCatalog(b.logger), b.session, dispatchOpts...)
	return b, nil
}

// Connect establishes the backend session once. On error the bridge keeps
// serving in degraded mode.
func (b *Bridge) Connect(ctx context.Context, dial ports.DialFunc) error {
	return b.session.Establish(ctx, dial)
}

// ConnectBackend attaches an already-connected backend.
func (b *Bridge) ConnectBackend(ctx context.Context, backend ports.Backend) error {
	return b.Connect(ctx, func(context.Context) (ports.Backend, error) {
		return backend, nil
	})
}

// Connected reports whether a controller is attached.
func (b *Bridge) Connected() bool {
	return b.session.Connected()
}

// Backend returns the connected controller, or nil while degraded.
func (b *Bridge) Backend() ports.Backend {
	return b.session.Backend()
}

// Invoke runs one operation. It never returns a Go error.
func (b *Bridge) Invoke(ctx context.Context, name string, args map[string]any) registry.Result {
	return b.dispatcher.Invoke(ctx, name, args)
}

// Catalog returns the operation catalog.
func (b *Bridge) Catalog() *registry.Catalog {
	return b.dispatcher.Catalog()
}

// Dispatcher returns the dispatcher shared by every transport.
func (b *Bridge) Dispatcher() *registry.Dispatcher {
	return b.dispatcher
}

// Gatherer exposes the metrics registry.
func (b *Bridge) Gatherer() prometheus.Gatherer {
	return b.registry
}

// MCPServer builds the MCP transport over the dispatcher.
func (b *Bridge) MCPServer() *mcpAdapter.Server {
	return mcpAdapter.NewServer(b.dispatcher, Version, b.logger)
}

// HTTPHandler builds the JSON API over the dispatcher.
func (b *Bridge) HTTPHandler() http.Handler {
	return httpAdapter.NewHandler(b.dispatcher,
		httpAdapter.WithVersion(Version),
		httpAdapter.WithConnectivity(b.Connected),
		httpAdapter.WithGatherer(b.registry),
		httpAdapter.WithStreams(b.streams),
		httpAdapter.WithLogger(b.logger),
	)
}

// HomeyDialer builds a dialer for the controller named by cfg. A local
// address wins over the cloud id.
func HomeyDialer(cfg config.Config, logger *slog.Logger) (ports.DialFunc, error) {
	baseURL, err := homeyapi.BaseURL(cfg.Address, cfg.HomeyID)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = logging.NewNop()
	}
	opts := []homeyapi.Option{
		homeyapi.WithLogger(logger),
		homeyapi.WithUserAgent("homey-mcp/" + Version),
		homeyapi.WithTimeout(cfg.RequestTimeout),
	}
	if !cfg.AdvancedFlows {
		opts = append(opts, homeyapi.WithoutAdvancedFlows())
	}

	dial := homeyapi.Dial(baseURL, cfg.Token, opts...)
	return func(ctx context.Context) (ports.Backend, error) {
		if cfg.ConnectTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
			defer cancel()
		}
		c, err := dial(ctx)
		if err != nil {
			return nil, err
		}
		return c, nil
	}, nil
}
