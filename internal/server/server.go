// Package server is the outward-facing shell: it owns the MCP wire
// surface and feeds parsed invocations into the dispatch core. Capability
// listing and JSON-RPC framing are delegated to mcp-go; every tool call
// is routed through the Dispatcher.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/creativeops/studio-mcp/internal/auth"
	"github.com/creativeops/studio-mcp/internal/config"
	"github.com/creativeops/studio-mcp/internal/dispatch"
	"github.com/creativeops/studio-mcp/internal/registry"
	"github.com/creativeops/studio-mcp/internal/tools"
	"github.com/creativeops/studio-mcp/pkg/types"
)

const (
	serverName    = "AI Creative & Production Studio Suite"
	serverVersion = "1.0.0"
)

// Server wires the registry, guard, and dispatcher behind an MCP transport.
type Server struct {
	cfg        *config.Config
	logger     *slog.Logger
	registry   *registry.Registry
	dispatcher *dispatch.Dispatcher
	mcpServer  *mcpserver.MCPServer
}

// New builds a fully wired Server. A duplicate tool name or any other
// registration failure is returned so the process can refuse to start.
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	creds := auth.Credentials{
		AuthToken:    cfg.AuthToken,
		CallerNumber: cfg.MyNumber,
	}

	reg := registry.New()
	if err := tools.RegisterAll(reg, tools.Catalog(creds)); err != nil {
		return nil, fmt.Errorf("building tool registry: %w", err)
	}

	dispatcher := dispatch.New(
		auth.NewGuard(creds.AuthToken),
		reg,
		dispatch.WithTimeout(cfg.Server.HandlerTimeout),
		dispatch.WithLogger(logger),
	)

	s := &Server{
		cfg:        cfg,
		logger:     logger,
		registry:   reg,
		dispatcher: dispatcher,
		mcpServer: mcpserver.NewMCPServer(serverName, serverVersion,
			mcpserver.WithToolCapabilities(true),
			mcpserver.WithRecovery(),
		),
	}
	s.registerTools()

	return s, nil
}

// registerTools advertises every registry descriptor through the MCP
// server, bridging each call back into the dispatcher.
func (s *Server) registerTools() {
	for _, descriptor := range s.registry.List() {
		s.mcpServer.AddTool(toMCPTool(descriptor), s.bridgeHandler(descriptor.Name))
	}
}

// bridgeHandler adapts an MCP tool call into an Invocation for the named
// tool. The bearer token travels in the request context, placed there by
// the transport.
func (s *Server) bridgeHandler(toolName string) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		inv := types.Invocation{
			ToolName:  toolName,
			Arguments: req.GetArguments(),
			Token:     auth.TokenFromContext(ctx),
		}
		return toCallToolResult(s.dispatcher.Dispatch(ctx, inv)), nil
	}
}

// toMCPTool translates a ToolDescriptor into the mcp-go tool definition.
func toMCPTool(d types.ToolDescriptor) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(d.Description)}
	for _, p := range d.Params {
		propOpts := []mcp.PropertyOption{mcp.Description(p.Description)}
		if p.Required {
			propOpts = append(propOpts, mcp.Required())
		}
		if len(p.Enum) > 0 {
			propOpts = append(propOpts, mcp.Enum(p.Enum...))
		}

		switch p.Type {
		case types.ParamNumber:
			if def, ok := p.Default.(float64); ok {
				propOpts = append(propOpts, mcp.DefaultNumber(def))
			}
			opts = append(opts, mcp.WithNumber(p.Name, propOpts...))
		case types.ParamBoolean:
			if def, ok := p.Default.(bool); ok {
				propOpts = append(propOpts, mcp.DefaultBool(def))
			}
			opts = append(opts, mcp.WithBoolean(p.Name, propOpts...))
		default:
			if def, ok := p.Default.(string); ok {
				propOpts = append(propOpts, mcp.DefaultString(def))
			}
			opts = append(opts, mcp.WithString(p.Name, propOpts...))
		}
	}
	return mcp.NewTool(d.Name, opts...)
}

// toCallToolResult serializes a dispatch Result onto the wire. Failures
// carry the stable kind tag plus the human-readable message and nothing
// else; internal detail never crosses the transport boundary.
func toCallToolResult(result types.Result) *mcp.CallToolResult {
	if !result.OK() {
		return mcp.NewToolResultError(fmt.Sprintf("%s: %s", result.Kind, result.Message))
	}
	switch payload := result.Payload.(type) {
	case string:
		return mcp.NewToolResultText(payload)
	case nil:
		return mcp.NewToolResultText("")
	default:
		b, err := json.Marshal(payload)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("%s: unencodable payload", types.ErrorKindHandlerError))
		}
		return mcp.NewToolResultText(string(b))
	}
}

// Start serves the configured transport until ctx is cancelled or the
// transport fails.
func (s *Server) Start(ctx context.Context) error {
	switch s.cfg.Server.Transport {
	case "stdio":
		return s.serveStdio()
	default:
		return s.serveHTTP(ctx)
	}
}

// serveStdio runs the MCP server over stdin/stdout. A stdio client is the
// deploying operator's own process, so the configured token is injected
// and the dispatcher's auth check passes by construction.
func (s *Server) serveStdio() error {
	s.logger.Info("serving MCP over stdio")
	contextFunc := func(ctx context.Context) context.Context {
		return auth.WithToken(ctx, s.cfg.AuthToken)
	}
	if err := mcpserver.ServeStdio(s.mcpServer, mcpserver.WithStdioContextFunc(contextFunc)); err != nil {
		return fmt.Errorf("stdio server: %w", err)
	}
	return nil
}

// serveHTTP runs the streamable HTTP transport plus a health endpoint.
func (s *Server) serveHTTP(ctx context.Context) error {
	streamable := mcpserver.NewStreamableHTTPServer(s.mcpServer,
		mcpserver.WithHTTPContextFunc(bearerContextFunc),
	)

	mux := http.NewServeMux()
	mux.Handle("/mcp", streamable)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"ok","tools":%d}`, s.registry.Len())
	})

	httpServer := &http.Server{
		Addr:              s.cfg.Server.Addr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving MCP over HTTP",
			slog.String("addr", httpServer.Addr),
			slog.String("endpoint", "/mcp"))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}
}

// bearerContextFunc lifts the Authorization header's bearer token into the
// request context. Authorization itself happens in the dispatcher, so a
// bad or missing token still produces a structured MCP failure rather
// than a transport-level rejection.
func bearerContextFunc(ctx context.Context, r *http.Request) context.Context {
	token, err := auth.ExtractBearer(r.Header.Get("Authorization"))
	if err != nil {
		return ctx
	}
	return auth.WithToken(ctx, token)
}
