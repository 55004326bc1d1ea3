package homeymcp_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	homeymcp "github.com/aretw0/homey-mcp"
	"github.com/aretw0/homey-mcp/internal/config"
	"github.com/aretw0/homey-mcp/pkg/adapters/homeyapi"
	"github.com/aretw0/homey-mcp/pkg/adapters/memory"
	"github.com/aretw0/homey-mcp/pkg/homey"
	"github.com/aretw0/homey-mcp/pkg/ports"
	"github.com/aretw0/homey-mcp/pkg/registry"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBridge_DegradedUntilConnected(t *testing.T) {
	bridge, err := homeymcp.New()
	require.NoError(t, err)

	assert.False(t, bridge.Connected())
	assert.Equal(t, 13, bridge.Catalog().Len(), "the catalog is served even without a controller")

	res := bridge.Invoke(context.Background(), homey.OpListDevices, nil)
	assert.True(t, res.IsError)
	assert.Equal(t, "Error: "+registry.NotConnectedMessage, res.Message())

	require.NoError(t, bridge.ConnectBackend(context.Background(), memory.NewDemo()))
	assert.True(t, bridge.Connected())

	res = bridge.Invoke(context.Background(), homey.OpListDevices, nil)
	assert.False(t, res.IsError, res.Message())
}

func TestBridge_ConnectOnce(t *testing.T) {
	bridge, err := homeymcp.New()
	require.NoError(t, err)

	require.NoError(t, bridge.ConnectBackend(context.Background(), memory.NewDemo()))
	assert.ErrorIs(t, bridge.ConnectBackend(context.Background(), memory.NewDemo()), ports.ErrAlreadyConnected)
}

func TestBridge_FailedDialStaysDegraded(t *testing.T) {
	bridge, err := homeymcp.New()
	require.NoError(t, err)

	boom := errors.New("connection refused")
	err = bridge.Connect(context.Background(), func(context.Context) (ports.Backend, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.False(t, bridge.Connected())
}

func TestBridge_HooksAndMetrics(t *testing.T) {
	var seen []string
	bridge, err := homeymcp.New(homeymcp.WithHooks(registry.Hooks{
		OnComplete: func(ctx context.Context, e registry.InvocationEvent) {
			seen = append(seen, e.Operation)
		},
	}))
	require.NoError(t, err)
	require.NoError(t, bridge.ConnectBackend(context.Background(), memory.NewDemo()))

	bridge.Invoke(context.Background(), homey.OpListZones, nil)
	bridge.Invoke(context.Background(), "missing", nil)

	assert.Equal(t, []string{homey.OpListZones, "missing"}, seen)

	count, err := testutil.GatherAndCount(bridge.Gatherer(), "homey_mcp_invocations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestBridge_HTTPHandler(t *testing.T) {
	bridge, err := homeymcp.New()
	require.NoError(t, err)
	h := bridge.HTTPHandler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	require.NoError(t, bridge.ConnectBackend(context.Background(), memory.NewDemo()))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBridge_MCPServerTools(t *testing.T) {
	bridge, err := homeymcp.New()
	require.NoError(t, err)
	assert.Len(t, bridge.MCPServer().Tools(), 13)
}

func TestHomeyDialer(t *testing.T) {
	_, err := homeymcp.HomeyDialer(config.Config{Token: "t"}, nil)
	assert.ErrorIs(t, err, homeyapi.ErrNoAddress)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"homeyVersion":"12.0.0","homeyModelId":"homey5q"}`))
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.Token = "secret"
	cfg.Address = srv.URL

	dial, err := homeymcp.HomeyDialer(cfg, nil)
	require.NoError(t, err)

	bridge, err := homeymcp.New()
	require.NoError(t, err)
	require.NoError(t, bridge.Connect(context.Background(), dial))
	assert.True(t, bridge.Connected())

	cfg.Token = "wrong"
	dial, err = homeymcp.HomeyDialer(cfg, nil)
	require.NoError(t, err)
	other, err := homeymcp.New()
	require.NoError(t, err)
	assert.Error(t, other.Connect(context.Background(), dial))
	assert.False(t, other.Connected())
}
