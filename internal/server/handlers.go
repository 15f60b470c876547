package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/aryannaik/arcade-search/internal/index"
	"github.com/aryannaik/arcade-search/internal/logger"
	"github.com/aryannaik/arcade-search/internal/metrics"
	"github.com/aryannaik/arcade-search/internal/paginate"
	"github.com/aryannaik/arcade-search/internal/render"
	"github.com/aryannaik/arcade-search/internal/search"
)

type Handlers struct {
	store        *index.Store
	renderer     *render.Renderer
	pageSize     int
	previewLimit int
}

func NewHandlers(store *index.Store, renderer *render.Renderer, pageSize, previewLimit int) *Handlers {
	if pageSize <= 0 {
		pageSize = paginate.DefaultPageSize
	}
	if previewLimit <= 0 {
		previewLimit = search.PreviewLimit
	}
	return &Handlers{
		store:        store,
		renderer:     renderer,
		pageSize:     pageSize,
		previewLimit: previewLimit,
	}
}

// searchWindow runs query and cuts out the requested page. A load failure is
// returned untouched so each surface decides how to show it.
func (h *Handlers) searchWindow(r *http.Request, surface string) (string, paginate.Window[search.Result], error) {
	query := r.URL.Query().Get("q")
	page := parsePage(r.URL.Query().Get("page"))

	idx, err := h.store.Load(r.Context())
	if err != nil {
		return query, paginate.Paginate[search.Result](nil, 1, h.pageSize), err
	}

	results := search.Search(query, idx)
	if strings.TrimSpace(query) != "" {
		metrics.ObserveSearch(surface, len(results))
	}
	return query, paginate.Paginate(results, page, h.pageSize), nil
}

// HandleSearchPage renders the full search page for ?q=&page=.
func (h *Handlers) HandleSearchPage(w http.ResponseWriter, r *http.Request) {
	query, window, err := h.searchWindow(r, "page")
	status := http.StatusOK
	if err != nil {
		logger.FromContext(r.Context()).Warn("Search page without content", zap.Error(err))
		status = http.StatusServiceUnavailable
	}

	h.writeHTML(w, r, status, func(buf *bytes.Buffer) error {
		return h.renderer.SearchPage(buf, h.renderer.SearchData(query, window, err != nil))
	})
}

// HandleSearchResults renders only the results list and pagination bar.
func (h *Handlers) HandleSearchResults(w http.ResponseWriter, r *http.Request) {
	query, window, err := h.searchWindow(r, "page")
	status := http.StatusOK
	if err != nil {
		logger.FromContext(r.Context()).Warn("Search results without content", zap.Error(err))
		status = http.StatusServiceUnavailable
	}

	h.writeHTML(w, r, status, func(buf *bytes.Buffer) error {
		return h.renderer.Results(buf, h.renderer.SearchData(query, window, err != nil))
	})
}

// HandleAPISearch returns one page of results as JSON.
func (h *Handlers) HandleAPISearch(w http.ResponseWriter, r *http.Request) {
	query, window, err := h.searchWindow(r, "api")
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "content_unavailable", "search content is unavailable")
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Query:      query,
		Page:       window.Page,
		PageSize:   window.PageSize,
		TotalItems: window.TotalItems,
		TotalPages: window.TotalPages,
		Results:    h.toResultDTOs(window.Items),
		Controls:   window.Controls,
	})
}

// HandlePreview renders the header dropdown for ?q=. An empty query yields
// 204 so the caller hides the dropdown. ?format=json returns JSON instead.
func (h *Handlers) HandlePreview(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if strings.TrimSpace(query) == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	idx, err := h.store.Load(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Warn("Preview without content", zap.Error(err))
		w.WriteHeader(http.StatusNoContent)
		return
	}

	all := search.Search(query, idx)
	metrics.ObserveSearch("preview", len(all))
	top := search.Top(all, h.previewLimit)

	if r.URL.Query().Get("format") == "json" {
		writeJSON(w, http.StatusOK, map[string]any{
			"query":   query,
			"results": h.toResultDTOs(top),
			"total":   len(all),
		})
		return
	}

	h.writeHTML(w, r, http.StatusOK, func(buf *bytes.Buffer) error {
		return h.renderer.Preview(buf, render.PreviewData{Query: query, Results: top})
	})
}

// HandleGames renders the games listing with every page number shown.
// ?category= and ?tag= filter the list.
func (h *Handlers) HandleGames(w http.ResponseWriter, r *http.Request) {
	idx, err := h.store.Load(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Warn("Games listing without content", zap.Error(err))
		http.Error(w, "Failed to load games. Please try again later.", http.StatusServiceUnavailable)
		return
	}

	q := r.URL.Query()
	data := render.GamesData{Category: q.Get("category"), Tag: q.Get("tag")}

	games := idx.Games()
	switch {
	case data.Category != "":
		games = idx.GamesByCategory(data.Category)
		data.Heading = "Category: " + data.Category
	case data.Tag != "":
		games = idx.GamesByTag(data.Tag)
		data.Heading = "Tag: " + data.Tag
	}
	data.Window = paginate.PaginateMode(games, parsePage(q.Get("page")), h.pageSize, paginate.Full)

	h.writeHTML(w, r, http.StatusOK, func(buf *bytes.Buffer) error {
		return h.renderer.Games(buf, data)
	})
}

type healthResponse struct {
	Status     string `json:"status"`
	IndexCount int    `json:"indexCount"`
	LoadedAt   string `json:"loadedAt,omitempty"`
}

// HandleHealth reports whether the content index can be loaded.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	idx, err := h.store.Load(r.Context())
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "content_unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:     "ok",
		IndexCount: idx.Count(),
		LoadedAt:   idx.LoadedAt().UTC().Format(time.RFC3339),
	})
}

func (h *Handlers) toResultDTOs(results []search.Result) []resultDTO {
	out := make([]resultDTO, 0, len(results))
	base := h.renderer.Site().BaseURL
	for _, res := range results {
		out = append(out, resultDTO{
			Type:    string(res.Kind),
			Title:   res.Label(),
			Label:   search.Label(res.Record),
			Slug:    res.Slug(),
			URL:     search.Link(base, res.Record),
			Snippet: search.Snippet(res.Record),
			Score:   res.Score,
		})
	}
	return out
}

// writeHTML renders into a buffer first so a template error never leaves a
// half-written page behind.
func (h *Handlers) writeHTML(w http.ResponseWriter, r *http.Request, status int, fn func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		logger.FromContext(r.Context()).Error("Render failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func parsePage(s string) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return 1
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
