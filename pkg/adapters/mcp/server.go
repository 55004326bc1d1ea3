package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/homey-mcp/pkg/registry"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// CatalogURI is the resource exposing the operation catalog.
const CatalogURI = "homey://operations"

// Invoker runs one operation and always returns a result.
type Invoker interface {
	Invoke(ctx context.Context, name string, args map[string]any) registry.Result
	Catalog() *registry.Catalog
}

// Server exposes the operation catalog as an MCP Server.
type Server struct {
	invoker   Invoker
	mcpServer *server.MCPServer
	logger    *slog.Logger
}

// NewServer creates a new MCP Server instance.
func NewServer(invoker Invoker, version string, logger *slog.Logger) *Server {
	s := &Server{
		invoker: invoker,
		logger:  logger,
		mcpServer: server.NewMCPServer("homey-mcp", version,
			server.WithToolCapabilities(false),
			server.WithResourceCapabilities(false, false),
			server.WithRecovery(),
		),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Tools converts the catalog into MCP tool definitions, in catalog order.
func (s *Server) Tools() []mcp.Tool {
	descs := s.invoker.Catalog().List()
	tools := make([]mcp.Tool, 0, len(descs))
	for _, d := range descs {
		tools = append(tools, toolFor(d))
	}
	return tools
}

func toolFor(d registry.Descriptor) mcp.Tool {
	// A map of strings and slices always marshals.
	raw, _ := json.Marshal(d.Schema.JSONSchema())
	return mcp.NewToolWithRawSchema(d.Name, d.Description, raw)
}

func (s *Server) registerTools() {
	for _, tool := range s.Tools() {
		s.mcpServer.AddTool(tool, s.handle(tool.Name))
	}
}

// handle routes a tools/call to the dispatcher. Failures travel in the
// result's isError flag, never as protocol errors.
func (s *Server) handle(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res := s.invoker.Invoke(ctx, name, request.GetArguments())
		return toCallToolResult(res), nil
	}
}

func toCallToolResult(res registry.Result) *mcp.CallToolResult {
	content := make([]mcp.Content, 0, len(res.Content))
	for _, c := range res.Content {
		content = append(content, mcp.NewTextContent(c.Text))
	}
	return &mcp.CallToolResult{
		Content: content,
		IsError: res.IsError,
	}
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(CatalogURI, "Operation catalog",
		mcp.WithResourceDescription("Names, descriptions and input schemas of every operation"),
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		type entry struct {
			Name        string         `json:"name"`
			Description string         `json:"description"`
			InputSchema map[string]any `json:"inputSchema"`
		}
		var entries []entry
		for _, d := range s.invoker.Catalog().List() {
			entries = append(entries, entry{d.Name, d.Description, d.Schema.JSONSchema()})
		}
		jsonBytes, err := json.Marshal(entries)
		if err != nil {
			return nil, fmt.Errorf("failed to encode catalog: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      CatalogURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
