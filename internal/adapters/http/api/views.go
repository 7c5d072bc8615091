package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/okian/insertion/internal/adapters/export"
)

const xlsxSuffix = ".xlsx"

// ViewsHandler serves built views and their table exports.
type ViewsHandler struct {
	deps Dependencies
}

// NewViewsHandler creates a new views handler.
func NewViewsHandler(deps Dependencies) *ViewsHandler {
	return &ViewsHandler{deps: deps}
}

type viewsResponse struct {
	Views []string `json:"views"`
}

// HandleList handles GET /api/views requests.
func (h *ViewsHandler) HandleList(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, viewsResponse{Views: h.deps.ViewNames()})
}

// HandleView handles GET /api/views/{name} requests.
func (h *ViewsHandler) HandleView(w http.ResponseWriter, r *http.Request) {
	v, err := h.deps.BuildView(r.Context(), r.PathValue("name"))
	if err != nil {
		writeBuildError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// HandleTableExport handles GET /api/views/{name}/tables/{table}.xlsx requests.
func (h *ViewsHandler) HandleTableExport(w http.ResponseWriter, r *http.Request) {
	file := r.PathValue("file")
	table, ok := strings.CutSuffix(file, xlsxSuffix)
	if !ok || table == "" {
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: expected {table}%s", ErrBadRequest, xlsxSuffix))
		return
	}

	spec, err := h.deps.Table(r.Context(), r.PathValue("name"), table)
	if err != nil {
		writeBuildError(w, err)
		return
	}

	// Headers are written only once the workbook is complete.
	var buf bytes.Buffer
	if err := export.WriteTable(&buf, spec); err != nil {
		writeError(w, http.StatusInternalServerError, "export_error", fmt.Errorf("%w: %w", ErrExport, err))
		return
	}
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
