/*
Package homeymcp exposes a Homey home-automation controller to tool-calling
agents over the Model Context Protocol (MCP).

The bridge publishes a fixed catalog of operations (list devices, set a
capability, switch the lights of a zone, trigger flows, ...). Every
invocation goes through one Dispatcher which checks the backend session,
resolves the operation by exact name, validates arguments against the
operation's schema and converts any handler failure into an error result.
Nothing escapes an invocation as a Go error or panic.

# Usage

	bridge, err := homeymcp.New(homeymcp.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}

	dial, err := homeymcp.HomeyDialer(cfg, logger)
	if err == nil {
		err = bridge.Connect(ctx, dial)
	}
	if err != nil {
		// Degraded: tools/list works, every call reports "Not connected".
		logger.Warn("controller unavailable", "err", err)
	}

	_ = bridge.MCPServer().ServeStdio()

# Transports

  - MCP over stdio (default) or SSE, see pkg/adapters/mcp.
  - A JSON API with an OpenAPI document and Prometheus metrics, see pkg/adapters/http.

Operations and their handlers live in pkg/homey; the Homey Web API client in
pkg/adapters/homeyapi; an in-memory controller for tests and demos in
pkg/adapters/memory.
*/
package homeymcp
