package homeyapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/aretw0/homey-mcp/pkg/domain"
	"github.com/aretw0/homey-mcp/pkg/ports"
)

var (
	_ ports.Backend            = (*Client)(nil)
	_ ports.AdvancedFlowSource = (*Client)(nil)
)

// API paths.
const (
	pathDevices       = "/api/manager/devices/device/"
	pathZones         = "/api/manager/zones/zone/"
	pathFlows         = "/api/manager/flow/flow/"
	pathAdvancedFlows = "/api/manager/flow/advancedflow/"
	pathLogs          = "/api/manager/insights/log"
)

func listInto[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var out []T
	err := c.get(ctx, path, func(r io.Reader) error {
		var err error
		out, err = decodeCollection[T](r)
		return err
	})
	return out, err
}

// GetDevices lists devices in the controller's order.
func (c *Client) GetDevices(ctx context.Context) ([]domain.Device, error) {
	return listInto[domain.Device](ctx, c, pathDevices)
}

// GetDevice fetches one device.
func (c *Client) GetDevice(ctx context.Context, id string) (domain.Device, error) {
	var d domain.Device
	err := c.get(ctx, pathDevices+url.PathEscape(id), jsonInto(&d))
	if err != nil {
		return domain.Device{}, fmt.Errorf("device %s: %w", id, err)
	}
	return d, nil
}

// SetCapabilityValue writes one capability value.
func (c *Client) SetCapabilityValue(ctx context.Context, deviceID, capabilityID string, value any) error {
	path := pathDevices + url.PathEscape(deviceID) + "/capability/" + url.PathEscape(capabilityID)
	if err := c.send(ctx, http.MethodPut, path, map[string]any{"value": value}); err != nil {
		return fmt.Errorf("set %s on %s: %w", capabilityID, deviceID, err)
	}
	return nil
}

// GetZones lists zones.
func (c *Client) GetZones(ctx context.Context) ([]domain.Zone, error) {
	return listInto[domain.Zone](ctx, c, pathZones)
}

// GetFlows lists standard flows.
func (c *Client) GetFlows(ctx context.Context) ([]domain.Flow, error) {
	return listInto[domain.Flow](ctx, c, pathFlows)
}

// TriggerFlow runs a standard flow.
func (c *Client) TriggerFlow(ctx context.Context, id string) error {
	if err := c.send(ctx, http.MethodPost, pathFlows+url.PathEscape(id)+"/trigger", struct{}{}); err != nil {
		return fmt.Errorf("flow %s: %w", id, err)
	}
	return nil
}

// GetLogs lists the insights logs.
func (c *Client) GetLogs(ctx context.Context) ([]domain.LogEntry, error) {
	return listInto[domain.LogEntry](ctx, c, pathLogs)
}

// AdvancedFlows returns the advanced-flow manager, or nil when disabled.
func (c *Client) AdvancedFlows() ports.AdvancedFlowManager {
	if !c.advanced {
		return nil
	}
	return &advancedFlows{client: c}
}

type advancedFlows struct {
	client *Client
}

func (a *advancedFlows) GetAdvancedFlows(ctx context.Context) ([]domain.AdvancedFlow, error) {
	return listInto[domain.AdvancedFlow](ctx, a.client, pathAdvancedFlows)
}

func (a *advancedFlows) TriggerAdvancedFlow(ctx context.Context, id string) error {
	if err := a.client.send(ctx, http.MethodPost, pathAdvancedFlows+url.PathEscape(id)+"/trigger", struct{}{}); err != nil {
		return fmt.Errorf("advanced flow %s: %w", id, err)
	}
	return nil
}
