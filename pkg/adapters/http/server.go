package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/starrating"
	"github.com/aretw0/starrating/internal/logging"
	"github.com/aretw0/starrating/internal/presentation/raster"
	"github.com/aretw0/starrating/internal/presentation/svg"
	"github.com/aretw0/starrating/internal/presentation/tui"
	"github.com/aretw0/starrating/pkg/config"
	"github.com/aretw0/starrating/pkg/domain"
	"github.com/aretw0/starrating/pkg/observability"
	"github.com/aretw0/starrating/pkg/ports"
	"github.com/aretw0/starrating/pkg/session"
)

// Server implements ServerInterface on top of a widget registry.
type Server struct {
	Widgets *session.Manager
	Presets ports.PresetLoader
	Streams *StreamManager
	Metrics *observability.Metrics

	registry *prometheus.Registry
	logger   *slog.Logger
}

// Ensure Server implements ServerInterface
var _ ServerInterface = (*Server)(nil)

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the logger used by handlers and widgets.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRegistry registers widget metrics on reg instead of a private registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = reg
	}
}

// NewServer creates a Server serving the given preset catalog.
func NewServer(presets ports.PresetLoader, opts ...Option) *Server {
	s := &Server{
		Presets: presets,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}

	s.Streams = NewStreamManager(s.logger)
	s.Metrics = observability.NewMetrics(s.registry)
	hooks := s.Metrics.Hooks().
		Merge(s.Streams.Hooks()).
		Merge(observability.LoggingHooks(s.logger))

	s.Widgets = session.NewManager(starrating.Factory(
		starrating.WithLifecycleHooks(hooks),
		starrating.WithLogger(s.logger),
	), session.WithLogger(s.logger))
	return s
}

// NewHandler creates a new HTTP handler serving the given preset catalog.
func NewHandler(presets ports.PresetLoader, opts ...Option) http.Handler {
	return NewServer(presets, opts...).Handler()
}

// Handler returns the routed handler, including /metrics and the API docs.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	// Swagger UI
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		spec, err := rawSpec()
		if err != nil {
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			s.logger.Error("Failed to load OpenAPI spec", "error", err)
			return
		}
		w.Write(spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	handler := HandlerFromMux(s, r)
	return enableCORS(handler)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>starrating API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	}

	writeJSON(w, s.logger, http.StatusOK, map[string]string{
		"app":         "starrating-http",
		"version":     strings.TrimSpace(starrating.Version),
		"api_version": apiVersion,
	})
}

// ListPresets handles the GET /presets request.
func (s *Server) ListPresets(w http.ResponseWriter, r *http.Request) {
	presets, err := s.Presets.ListPresets(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("List presets error: %v", err), http.StatusInternalServerError)
		s.logger.Error("ListPresets failed", "error", err)
		return
	}
	writeJSON(w, s.logger, http.StatusOK, presets)
}

// CreateWidget handles the POST /widgets request.
func (s *Server) CreateWidget(w http.ResponseWriter, r *http.Request) {
	var body CreateWidgetRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			s.logger.Warn("CreateWidget: Invalid request body", "error", err)
			return
		}
	}

	cfg, err := s.resolveConfig(r.Context(), body)
	if err != nil {
		s.fail(w, "CreateWidget", err)
		return
	}

	id, err := s.Widgets.Create(r.Context(), cfg)
	if err != nil {
		s.fail(w, "CreateWidget", err)
		return
	}
	s.logger.Info("Widget created", "widget_id", id)

	s.respond(w, r, id, http.StatusCreated)
}

func (s *Server) resolveConfig(ctx context.Context, body CreateWidgetRequest) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	if body.Preset != nil && *body.Preset != "" {
		p, err := s.Presets.GetPreset(ctx, *body.Preset)
		if err != nil {
			return cfg, err
		}
		cfg = p.Config
	}
	if body.Props != nil {
		return config.Decode(*body.Props, cfg)
	}
	return cfg, nil
}

// GetWidget handles the GET /widgets/{id} request.
func (s *Server) GetWidget(w http.ResponseWriter, r *http.Request, id string) {
	s.respond(w, r, id, http.StatusOK)
}

// DeleteWidget handles the DELETE /widgets/{id} request.
func (s *Server) DeleteWidget(w http.ResponseWriter, r *http.Request, id string) {
	if err := s.Widgets.Delete(r.Context(), id); err != nil {
		s.fail(w, "DeleteWidget", err)
		return
	}
	s.Streams.Close(id)
	s.logger.Info("Widget deleted", "widget_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// PointerMove handles the POST /widgets/{id}/pointer-move request.
func (s *Server) PointerMove(w http.ResponseWriter, r *http.Request, id string) {
	sample, ok := s.decodeSample(w, r, "PointerMove")
	if !ok {
		return
	}
	s.apply(w, r, id, func(wd ports.Widget) { wd.OnPointerMove(sample) })
}

// PointerLeave handles the POST /widgets/{id}/pointer-leave request.
func (s *Server) PointerLeave(w http.ResponseWriter, r *http.Request, id string) {
	s.apply(w, r, id, func(wd ports.Widget) { wd.OnPointerLeave() })
}

// Click handles the POST /widgets/{id}/click request.
func (s *Server) Click(w http.ResponseWriter, r *http.Request, id string) {
	sample, ok := s.decodeSample(w, r, "Click")
	if !ok {
		return
	}
	s.apply(w, r, id, func(wd ports.Widget) { wd.OnClick(sample) })
}

func (s *Server) decodeSample(w http.ResponseWriter, r *http.Request, op string) (domain.PointerSample, bool) {
	var body PointerSample
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn(op+": Invalid request body", "error", err)
		return domain.PointerSample{}, false
	}
	return domain.At(body.StarIndex, body.Fraction), true
}

// apply runs fn under the widget lock and responds with the new state and its diff.
func (s *Server) apply(w http.ResponseWriter, r *http.Request, id string, fn func(ports.Widget)) {
	var view Widget
	err := s.Widgets.WithLock(r.Context(), id, func(ctx context.Context, wd ports.Widget) error {
		before := wd.Snapshot()
		fn(wd)
		after := wd.Snapshot()

		view = toView(id, wd)
		view.Changes = domain.Diff(id, &before, &after)
		return nil
	})
	if err != nil {
		s.fail(w, "Apply", err)
		return
	}
	writeJSON(w, s.logger, http.StatusOK, view)
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, id string, status int) {
	var view Widget
	err := s.Widgets.WithLock(r.Context(), id, func(ctx context.Context, wd ports.Widget) error {
		view = toView(id, wd)
		return nil
	})
	if err != nil {
		s.fail(w, "GetWidget", err)
		return
	}
	writeJSON(w, s.logger, status, view)
}

// RenderWidget handles the GET /widgets/{id}/render request.
func (s *Server) RenderWidget(w http.ResponseWriter, r *http.Request, id string, params RenderWidgetParams) {
	format := RenderWidgetParamsFormatSvg
	if params.Format != nil {
		format = *params.Format
	}

	var frame domain.Frame
	err := s.Widgets.WithLock(r.Context(), id, func(ctx context.Context, wd ports.Widget) error {
		frame = wd.Frame()
		return nil
	})
	if err != nil {
		s.fail(w, "RenderWidget", err)
		return
	}

	switch format {
	case RenderWidgetParamsFormatSvg:
		w.Header().Set("Content-Type", "image/svg+xml")
		if err := svg.Render(w, frame); err != nil {
			s.logger.Error("RenderWidget: svg write failed", "error", err)
		}
	case RenderWidgetParamsFormatText:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, tui.Line(frame, termenv.Ascii))
	case RenderWidgetParamsFormatPng:
		var opts []raster.Option
		if params.Scale != nil {
			opts = append(opts, raster.WithScale(*params.Scale))
		}
		canvas, err := raster.Draw(frame, opts...)
		if err != nil {
			http.Error(w, fmt.Sprintf("Render error: %v", err), http.StatusBadRequest)
			return
		}
		defer canvas.Close()
		w.Header().Set("Content-Type", "image/png")
		if err := canvas.EncodePNG(w); err != nil {
			s.logger.Error("RenderWidget: png encode failed", "error", err)
		}
	default:
		http.Error(w, fmt.Sprintf("Unknown format: %s", format), http.StatusBadRequest)
	}
}

// SubscribeWidgetEvents handles the GET /widgets/{id}/events request (SSE).
func (s *Server) SubscribeWidgetEvents(w http.ResponseWriter, r *http.Request, id string, params SubscribeWidgetEventsParams) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.logger.Error("SubscribeWidgetEvents: Streaming not supported")
		return
	}

	// Parse 'types' filter
	watch := map[domain.EventType]bool{domain.EventCommit: true}
	if params.Types != nil && *params.Types != "" {
		watch = make(map[domain.EventType]bool)
		for _, t := range strings.Split(*params.Types, ",") {
			watch[domain.EventType(strings.TrimSpace(t))] = true
		}
	}

	// Under the widget lock a concurrent DELETE either fails this lookup or
	// closes the new subscription.
	var (
		ch     <-chan domain.RatingEvent
		cancel func()
	)
	err := s.Widgets.WithLock(r.Context(), id, func(ctx context.Context, _ ports.Widget) error {
		ch, cancel = s.Streams.Subscribe(id)
		return nil
	})
	if err != nil {
		s.fail(w, "SubscribeWidgetEvents", err)
		return
	}
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()
	s.logger.Info("SSE: Subscribed to widget events", "widget_id", id)

	for {
		select {
		case <-r.Context().Done():
			s.logger.Info("SSE Client Disconnected", "widget_id", id)
			return
		case e, ok := <-ch:
			if !ok {
				// Widget deleted
				fmt.Fprintf(w, "event: closed\ndata: %s\n\n", id)
				flusher.Flush()
				return
			}
			if !watch[e.Type] {
				continue
			}
			data, err := json.Marshal(e)
			if err != nil {
				s.logger.Error("SSE: event encode failed", "error", err)
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", e.Type, data)
			flusher.Flush()
		}
	}
}

// -- Helpers --

func toView(id string, wd ports.Widget) Widget {
	snap := wd.Snapshot()
	frame := wd.Frame()
	return Widget{
		Id:        id,
		Config:    wd.Config(),
		Committed: snap.Committed,
		Preview:   snap.Preview,
		Displayed: frame.Displayed,
		Mode:      snap.Mode,
		Fills:     frame.Fills,
	}
}

func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrWidgetNotFound), errors.Is(err, domain.ErrPresetNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidConfig):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		http.Error(w, fmt.Sprintf("%s error: %v", op, err), http.StatusInternalServerError)
		s.logger.Error(op+" failed", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "error", err)
	}
}
