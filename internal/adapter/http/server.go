// Package http exposes operational endpoints and the JSON effects API.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pellucidar/impactmap/internal/domain"
	"github.com/pellucidar/impactmap/internal/observability"
	"github.com/pellucidar/impactmap/internal/render"
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes health, readiness, metrics, and the effects API.
type Server struct {
	httpServer *http.Server
	catalog    domain.Catalog // nil when catalog lookups are disabled
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer creates an HTTP server with operational routes plus
// /api/v1/effects and /api/v1/scene. catalog may be nil; requests that
// reference a catalog object then fall back to their manual parameters.
func NewServer(addr string, ready ReadinessChecker, catalog domain.Catalog, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		catalog: catalog,
		metrics: metrics,
		logger:  logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /api/v1/effects", s.handleEffects)
	mux.HandleFunc("GET /api/v1/scene", s.handleScene)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

// effectsResponse is the JSON body of /api/v1/effects.
type effectsResponse struct {
	Parameters domain.BodyParameters `json:"parameters"`
	Source     string                `json:"source"`
	ObjectName string                `json:"object_name,omitempty"`
	ObjectID   string                `json:"object_id,omitempty"`
	SizeClass  domain.SizeClass      `json:"size_class"`
	EventType  domain.EventType      `json:"event_type"`
	Effects    domain.EffectsResult  `json:"effects"`
}

func (s *Server) handleEffects(w http.ResponseWriter, r *http.Request) {
	resp, ok := s.computeEffects(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// sceneResponse is the JSON body of /api/v1/scene: the effects summary
// plus the scene graph for the requested viewport.
type sceneResponse struct {
	effectsResponse
	Center domain.Geo   `json:"center"`
	Bounds geoBounds    `json:"bounds"`
	Scene  render.Scene `json:"scene"`
}

// geoBounds is the lat/lon box covering the outermost ring.
type geoBounds struct {
	Min domain.Geo `json:"min"`
	Max domain.Geo `json:"max"`
}

func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	resp, ok := s.computeEffects(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	center := domain.Geo{
		Lat: floatParam(q.Get("lat"), 0),
		Lon: floatParam(q.Get("lon"), 0),
	}
	viewport := render.Viewport{
		Width:  floatParam(q.Get("width"), 800),
		Height: floatParam(q.Get("height"), 600),
	}
	if viewport.Width <= 0 || viewport.Height <= 0 {
		writeError(w, http.StatusBadRequest, "width and height must be positive")
		return
	}

	state := render.Apply(render.NewViewState(), render.SetData{Center: center, Effects: resp.Effects})
	if z := floatParam(q.Get("zoom"), 1); z > 0 {
		state.Zoom = clampZoom(z)
	}

	start := time.Now()
	scene := render.BuildScene(state, viewport, render.DefaultTheme)
	s.metrics.SceneBuildDuration.Observe(time.Since(start).Seconds())

	minB, maxB := render.BoundingBox(center, resp.Effects.MaxRadiusKm())
	writeJSON(w, http.StatusOK, sceneResponse{
		effectsResponse: resp,
		Center:          center,
		Bounds:          geoBounds{Min: minB, Max: maxB},
		Scene:           scene,
	})
}

// computeEffects parses the shared effects query parameters, optionally
// resolves a catalog object, and runs the model. Writes the error
// response itself and returns ok=false on failure.
func (s *Server) computeEffects(w http.ResponseWriter, r *http.Request) (effectsResponse, bool) {
	q := r.URL.Query()

	manual := domain.BodyParameters{
		DiameterM:   floatParam(q.Get("diameter_m"), 100),
		VelocityKmS: floatParam(q.Get("velocity_km_s"), 19),
		DensityKgM3: floatParam(q.Get("density_kg_m3"), 3000),
		AngleDeg:    floatParam(q.Get("angle_deg"), 45),
	}

	resolved := domain.ResolvedParameters{BodyParameters: manual, Source: domain.SourceManual}
	if id := q.Get("neo_id"); id != "" {
		resolved = domain.ResolveFromCatalog(r.Context(), manual, id, s.catalog, s.logger)
	}

	if err := resolved.BodyParameters.Validate(); err != nil {
		s.metrics.EffectsErrors.Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return effectsResponse{}, false
	}

	effects := domain.ComputeEffects(resolved.BodyParameters)
	s.metrics.EffectsComputed.Inc()

	return effectsResponse{
		Parameters: resolved.BodyParameters,
		Source:     string(resolved.Source),
		ObjectName: resolved.ObjectName,
		ObjectID:   resolved.ObjectID,
		SizeClass:  domain.ClassifySize(resolved.BodyParameters.DiameterM),
		EventType:  domain.ClassifyEventType(resolved.BodyParameters.DiameterM, resolved.BodyParameters.AngleDeg),
		Effects:    effects,
	}, true
}

func floatParam(s string, def float64) float64 {
	if s == "" {
		return def
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return def
}

func clampZoom(z float64) float64 {
	if z < render.ZoomMin {
		return render.ZoomMin
	}
	if z > render.ZoomMax {
		return render.ZoomMax
	}
	return z
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
