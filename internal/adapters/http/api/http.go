// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/insertion/internal/adapters/source"
	service "github.com/okian/insertion/internal/app"
	"github.com/okian/insertion/internal/projection"
	"github.com/okian/insertion/internal/views"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// ViewNames lists the views that can be built.
	ViewNames() []string
	// BuildView retrieves the view's datasets and builds it.
	BuildView(ctx context.Context, name string) (views.View, error)
	// Table builds a view and returns one of its tables.
	Table(ctx context.Context, view, table string) (projection.TableSpec, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler *HealthHandler
	statsHandler  *StatsHandler
	viewsHandler  *ViewsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler: NewHealthHandler(),
		statsHandler:  NewStatsHandler(statsProvider),
		viewsHandler:  NewViewsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.Handle("/metrics", s.healthHandler.MetricsHandler())
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("GET /api/views", MetricsMiddleware(s.viewsHandler.HandleList, "views"))
	mux.HandleFunc("GET /api/views/{name}", MetricsMiddleware(s.viewsHandler.HandleView, "view"))
	mux.HandleFunc("GET /api/views/{name}/tables/{file}", MetricsMiddleware(s.viewsHandler.HandleTableExport, "table_export"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// transportMessage prefixes every retrieval failure shown to users.
const transportMessage = "Erreur chargement données/graphes: "

// writeBuildError translates view build failures. A retrieval failure
// replaces the whole page with a single message.
func writeBuildError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, views.ErrUnknownView), errors.Is(err, service.ErrUnknownTable):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, source.ErrTransport):
		writeJSON(w, http.StatusBadGateway, errorResponse{Code: "transport_error", Message: transportMessage + err.Error()})
	case errors.Is(err, service.ErrNotStarted):
		writeError(w, http.StatusServiceUnavailable, "unavailable", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, "timeout", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
