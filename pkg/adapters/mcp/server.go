package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/muesli/termenv"

	"github.com/aretw0/starrating"
	"github.com/aretw0/starrating/internal/logging"
	"github.com/aretw0/starrating/internal/presentation/svg"
	"github.com/aretw0/starrating/internal/presentation/tui"
	"github.com/aretw0/starrating/pkg/config"
	"github.com/aretw0/starrating/pkg/domain"
	"github.com/aretw0/starrating/pkg/ports"
	"github.com/aretw0/starrating/pkg/session"
)

// PresetsURI is the resource holding the preset catalog.
const PresetsURI = "starrating://presets"

// WidgetView is the structured result of every widget tool.
type WidgetView struct {
	ID        string               `json:"id" jsonschema_description:"Widget ID to pass to the other tools"`
	Config    domain.Config        `json:"config" jsonschema_description:"Immutable widget configuration"`
	Committed float64              `json:"committed" jsonschema_description:"Rating of the last accepted click"`
	Preview   *float64             `json:"preview,omitempty" jsonschema_description:"Hover preview, absent when the pointer is outside"`
	Displayed float64              `json:"displayed" jsonschema_description:"Preview if set, committed otherwise"`
	Mode      domain.Mode          `json:"mode" jsonschema_description:"read_only, idle or hovering"`
	Row       string               `json:"row" jsonschema_description:"Text rendering of the displayed rating"`
	SVG       string               `json:"svg,omitempty" jsonschema_description:"SVG rendering, only when requested"`
	Changes   *domain.SnapshotDiff `json:"changes,omitempty" jsonschema_description:"What the call changed"`
}

// PresetList is the structured result of list_presets.
type PresetList struct {
	Presets []domain.Preset `json:"presets"`
}

// Server exposes a widget registry as an MCP Server.
type Server struct {
	widgets   *session.Manager
	presets   ports.PresetLoader
	mcpServer *server.MCPServer
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the logger. Never point it at stdout when serving stdio.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithHooks attaches lifecycle hooks to every widget created by the server.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Server) {
		s.hooks = hooks
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(presets ports.PresetLoader, opts ...Option) *Server {
	s := &Server{
		presets:   presets,
		logger:    logging.NewNop(),
		mcpServer: server.NewMCPServer("starrating-mcp", strings.TrimSpace(starrating.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.widgets = session.NewManager(starrating.Factory(
		starrating.WithLifecycleHooks(s.hooks),
		starrating.WithLogger(s.logger),
	), session.WithLogger(s.logger))
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
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
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down MCP server")
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

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	widgetID := mcp.WithString("widget_id", mcp.Required(), mcp.Description("ID returned by create_widget"))
	starIndex := mcp.WithNumber("star_index", mcp.Required(), mcp.Description("0-based star under the pointer"))
	fraction := mcp.WithNumber("fraction", mcp.Description("Horizontal position within the star, 0 (left edge) to 1 (right edge). Defaults to 1"))

	// TOOL: create_widget
	s.mcpServer.AddTool(mcp.NewTool("create_widget",
		mcp.WithDescription("Create a star rating widget from a preset and/or config props."),
		mcp.WithString("preset", mcp.Description("Preset ID (see list_presets). Defaults to the stock configuration")),
		mcp.WithString("props", mcp.Description(`JSON object of config keys, e.g. {"stars_length": 10, "half_rating": true}`)),
		mcp.WithOutputSchema[WidgetView](),
	), mcp.NewStructuredToolHandler(s.handleCreateWidget))

	// TOOL: pointer_move
	s.mcpServer.AddTool(mcp.NewTool("pointer_move",
		mcp.WithDescription("Move the pointer over a star. Shows a preview rating; never commits."),
		widgetID, starIndex, fraction,
		mcp.WithOutputSchema[WidgetView](),
	), mcp.NewStructuredToolHandler(s.handlePointerMove))

	// TOOL: pointer_leave
	s.mcpServer.AddTool(mcp.NewTool("pointer_leave",
		mcp.WithDescription("Move the pointer out of the row. Drops the preview rating."),
		widgetID,
		mcp.WithOutputSchema[WidgetView](),
	), mcp.NewStructuredToolHandler(s.handlePointerLeave))

	// TOOL: click
	s.mcpServer.AddTool(mcp.NewTool("click",
		mcp.WithDescription("Click a star. Commits its rating, or clears the rating when it is already committed."),
		widgetID, starIndex, fraction,
		mcp.WithOutputSchema[WidgetView](),
	), mcp.NewStructuredToolHandler(s.handleClick))

	// TOOL: get_widget
	s.mcpServer.AddTool(mcp.NewTool("get_widget",
		mcp.WithDescription("Get the current state of a widget."),
		widgetID,
		mcp.WithBoolean("svg", mcp.Description("Include an SVG rendering")),
		mcp.WithOutputSchema[WidgetView](),
	), mcp.NewStructuredToolHandler(s.handleGetWidget))

	// TOOL: list_presets
	s.mcpServer.AddTool(mcp.NewTool("list_presets",
		mcp.WithDescription("List the preset configurations."),
		mcp.WithOutputSchema[PresetList](),
	), mcp.NewStructuredToolHandler(s.handleListPresets))
}

// Handler methods for structured tools

func (s *Server) handleCreateWidget(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (WidgetView, error) {
	cfg := domain.DefaultConfig()
	if id, _ := args["preset"].(string); id != "" {
		p, err := s.presets.GetPreset(ctx, id)
		if err != nil {
			return WidgetView{}, err
		}
		cfg = p.Config
	}

	if raw, _ := args["props"].(string); raw != "" {
		var props map[string]any
		if err := json.Unmarshal([]byte(raw), &props); err != nil {
			return WidgetView{}, fmt.Errorf("props must be a JSON object: %w", err)
		}
		var err error
		if cfg, err = config.Decode(props, cfg); err != nil {
			return WidgetView{}, err
		}
	}

	id, err := s.widgets.Create(ctx, cfg)
	if err != nil {
		return WidgetView{}, err
	}
	return s.view(ctx, id, false)
}

func (s *Server) handlePointerMove(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (WidgetView, error) {
	sample, err := sampleArg(args)
	if err != nil {
		return WidgetView{}, err
	}
	return s.apply(ctx, args, func(w ports.Widget) { w.OnPointerMove(sample) })
}

func (s *Server) handlePointerLeave(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (WidgetView, error) {
	return s.apply(ctx, args, func(w ports.Widget) { w.OnPointerLeave() })
}

func (s *Server) handleClick(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (WidgetView, error) {
	sample, err := sampleArg(args)
	if err != nil {
		return WidgetView{}, err
	}
	return s.apply(ctx, args, func(w ports.Widget) { w.OnClick(sample) })
}

func (s *Server) handleGetWidget(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (WidgetView, error) {
	id, _ := args["widget_id"].(string)
	withSVG, _ := args["svg"].(bool)
	return s.view(ctx, id, withSVG)
}

func (s *Server) handleListPresets(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (PresetList, error) {
	presets, err := s.presets.ListPresets(ctx)
	if err != nil {
		return PresetList{}, fmt.Errorf("list presets failed: %w", err)
	}
	return PresetList{Presets: presets}, nil
}

func (s *Server) apply(ctx context.Context, args map[string]interface{}, fn func(ports.Widget)) (WidgetView, error) {
	id, _ := args["widget_id"].(string)

	var view WidgetView
	err := s.widgets.WithLock(ctx, id, func(ctx context.Context, w ports.Widget) error {
		before := w.Snapshot()
		fn(w)
		after := w.Snapshot()

		view = toView(id, w, false)
		view.Changes = domain.Diff(id, &before, &after)
		return nil
	})
	return view, err
}

func (s *Server) view(ctx context.Context, id string, withSVG bool) (WidgetView, error) {
	var view WidgetView
	err := s.widgets.WithLock(ctx, id, func(ctx context.Context, w ports.Widget) error {
		view = toView(id, w, withSVG)
		return nil
	})
	return view, err
}

func toView(id string, w ports.Widget, withSVG bool) WidgetView {
	snap := w.Snapshot()
	frame := w.Frame()
	v := WidgetView{
		ID:        id,
		Config:    w.Config(),
		Committed: snap.Committed,
		Preview:   snap.Preview,
		Displayed: frame.Displayed,
		Mode:      snap.Mode,
		Row:       tui.Line(frame, termenv.Ascii),
	}
	if withSVG {
		v.SVG = svg.String(frame)
	}
	return v
}

func sampleArg(args map[string]interface{}) (domain.PointerSample, error) {
	star, ok := args["star_index"].(float64)
	if !ok {
		return domain.PointerSample{}, errors.New("star_index is required")
	}
	if star != math.Trunc(star) || star < math.MinInt32 || star > math.MaxInt32 {
		return domain.PointerSample{}, fmt.Errorf("star_index must be an integer, got %v", star)
	}
	fraction := 1.0
	if f, ok := args["fraction"].(float64); ok {
		fraction = f
	}
	return domain.At(int(star), fraction), nil
}

func (s *Server) registerResources() {
	// EXPOSE: starrating://presets
	s.mcpServer.AddResource(mcp.NewResource(PresetsURI, "Preset Catalog",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		presets, err := s.presets.ListPresets(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list presets: %w", err)
		}
		jsonBytes, _ := json.Marshal(presets)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      PresetsURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
