// Package server exposes topology inference over HTTP.
//
// Routes:
//
//	GET /healthz                       liveness probe
//	GET /api/v1/devices                known devices (enumerable sources only)
//	GET /api/v1/devices/{device}/root  backbone root for a device
//	GET /api/v1/devices/{device}/tree  full tree from the device's backbone root
//
// Every request carries an X-Request-Id (client-supplied or generated) and
// each tree request builds with its own run-scoped tree, so concurrent
// requests never share traversal state.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nettopo/topograph/pkg/render"
	"github.com/nettopo/topograph/pkg/source"
	"github.com/nettopo/topograph/pkg/topology"
)

// Server serves topology trees inferred from an adjacency source.
type Server struct {
	src    source.Source
	logger *log.Logger
}

// New creates a server over src. A nil logger falls back to log.Default.
func New(src source.Source, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{src: src, logger: logger}
}

// Router builds the chi router with all routes and middleware registered.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/devices", s.handleDevices)
		r.Get("/devices/{device}/root", s.handleRoot)
		r.Get("/devices/{device}/tree", s.handleTree)
	})
	return r
}

// =============================================================================
// Middleware
// =============================================================================

// requestID ensures every request/response pair carries an X-Request-Id.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}

// logRequests logs method, path, and elapsed time at debug level.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).Round(time.Millisecond))
	})
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDevices(w http.ResponseWriter, r *http.Request) {
	e, ok := s.src.(source.Enumerator)
	if !ok {
		writeError(w, http.StatusNotImplemented, "source cannot enumerate devices")
		return
	}
	devices, err := e.Devices(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"devices": devices})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	device := chi.URLParam(r, "device")

	root, err := topology.FindRoot(r.Context(), s.src, device)
	if err != nil {
		s.writeLookupError(w, err)
		return
	}
	if root == "" {
		writeError(w, http.StatusUnprocessableEntity, "no backbone device reachable from "+device)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"device": device, "root": root})
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	device := chi.URLParam(r, "device")

	root, err := topology.FindRoot(r.Context(), s.src, device)
	if err != nil {
		s.writeLookupError(w, err)
		return
	}
	if root == "" {
		writeError(w, http.StatusUnprocessableEntity, "no backbone device reachable from "+device)
		return
	}

	tree, err := topology.NewBuilder(s.src).Build(r.Context(), root)
	if err != nil {
		s.writeLookupError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"device": device,
		"root":   root,
		"tree":   render.FromTree(tree, root),
	})
}

// writeLookupError maps unknown-device lookups to 404 and everything else
// to 500.
func (s *Server) writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, source.ErrUnknownDevice) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	s.logger.Error("lookup failed", "err", err)
	writeError(w, http.StatusInternalServerError, err.Error())
}

// =============================================================================
// JSON helpers
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
