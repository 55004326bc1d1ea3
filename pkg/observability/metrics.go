package observability

import (
	"context"

	"github.com/aretw0/homey-mcp/pkg/registry"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records invocation counts and latencies per operation.
type Metrics struct {
	invocations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	inFlight    prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		invocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "homey_mcp_invocations_total",
				Help: "Total number of operation invocations",
			},
			[]string{"operation", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "homey_mcp_invocation_duration_seconds",
				Help:    "Duration of operation invocations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "homey_mcp_invocations_in_flight",
			Help: "Invocations currently running",
		}),
	}
	for _, c := range []prometheus.Collector{m.invocations, m.duration, m.inFlight} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns dispatcher hooks that feed the collectors.
func (m *Metrics) Hooks() registry.Hooks {
	return registry.Hooks{
		OnInvoke: func(ctx context.Context, operation string, args registry.Args) {
			m.inFlight.Inc()
		},
		OnComplete: func(ctx context.Context, e registry.InvocationEvent) {
			m.inFlight.Dec()
			outcome := "success"
			if e.IsError {
				outcome = "error"
			}
			m.invocations.WithLabelValues(e.Operation, outcome).Inc()
			m.duration.WithLabelValues(e.Operation).Observe(e.Duration.Seconds())
		},
	}
}

// ChainHooks fans every callback out to each hook set in order.
func ChainHooks(hooks ...registry.Hooks) registry.Hooks {
	return registry.Hooks{
		OnInvoke: func(ctx context.Context, operation string, args registry.Args) {
			for _, h := range hooks {
				if h.OnInvoke != nil {
					h.OnInvoke(ctx, operation, args)
				}
			}
		},
		OnComplete: func(ctx context.Context, e registry.InvocationEvent) {
			for _, h := range hooks {
				if h.OnComplete != nil {
					h.OnComplete(ctx, e)
				}
			}
		},
	}
}
