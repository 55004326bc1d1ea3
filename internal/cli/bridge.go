package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	homeymcp "github.com/aretw0/homey-mcp"
	"github.com/aretw0/homey-mcp/internal/config"
	"github.com/aretw0/homey-mcp/internal/logging"
	"github.com/aretw0/homey-mcp/pkg/adapters/memory"
	"github.com/aretw0/homey-mcp/pkg/ports"
)

// StartOptions are the global flags shared by every command.
type StartOptions struct {
	ConfigPath string
	Demo       bool
	LogLevel   string // overrides config when not empty
	Stderr     io.Writer
	Getenv     func(string) string

	// Dial replaces the Homey Web API dialer. Tests only.
	Dial ports.DialFunc
}

// CreateBridge loads configuration and connects the bridge.
//
// A missing token is fatal and returned as an error. A controller that
// cannot be reached is not: the bridge is returned unconnected and every
// invocation reports the missing connection.
func CreateBridge(ctx context.Context, opts StartOptions) (*homeymcp.Bridge, *slog.Logger, error) {
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	cfg, err := config.Load(opts.ConfigPath, opts.Getenv)
	if err != nil {
		return nil, nil, err
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.NewWithWriter(opts.Stderr, level)

	bridge, err := homeymcp.New(homeymcp.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}

	if opts.Demo {
		logger.Info("demo mode: serving the in-memory controller")
		if err := bridge.ConnectBackend(ctx, memory.NewDemo()); err != nil {
			return nil, nil, err
		}
		return bridge, logger, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w (set it in the environment or the config file, or use --demo)", err)
	}
	logger.Debug("configuration loaded", "config", fmt.Sprintf("%+v", cfg.Redacted()))

	dial := opts.Dial
	if dial == nil {
		dial, err = homeymcp.HomeyDialer(cfg, logger)
	}
	if err == nil {
		err = bridge.Connect(ctx, dial)
	}
	if err != nil {
		logger.Error("could not connect to Homey, serving in degraded mode", "error", err)
	}
	return bridge, logger, nil
}
