package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/aryannaik/arcade-search/internal/index"
	"github.com/aryannaik/arcade-search/internal/render"
)

const base = "/bros-unblocked/"

func writeContent(t *testing.T, games int) string {
	t.Helper()

	doc := index.Document{Pages: []index.Page{{Title: "About", Content: "all about kart games", Slug: "about"}}, Categories: []index.Category{}}
	for i := 0; i < games; i++ {
		doc.Games = append(doc.Games, index.Game{
			Title:       fmt.Sprintf("Kart %02d", i),
			Description: "racing",
			Tags:        []string{"kart"},
			Slug:        fmt.Sprintf("kart-%02d", i),
			Category:    "racing",
		})
	}

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "content.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestRouter(t *testing.T, contentPath string) http.Handler {
	t.Helper()
	renderer, err := render.New(render.Site{Name: "Bros Unblocked", BaseURL: base})
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	store := index.NewStore(index.NewSource(contentPath, ""), zap.NewNop())
	return NewRouter(store, renderer, Options{BaseURL: base, PageSize: 10, PreviewLimit: 5}, zap.NewNop())
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestAPISearch_Pagination(t *testing.T) {
	h := newTestRouter(t, writeContent(t, 22))

	rr := get(t, h, base+"api/search?q=kart&page=2")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}

	var resp searchResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	// 22 games plus the About page make 23 results.
	if resp.TotalItems != 23 || resp.TotalPages != 3 || resp.Page != 2 {
		t.Fatalf("unexpected paging: %+v", resp)
	}
	if len(resp.Results) != 10 {
		t.Fatalf("results = %d, want 10", len(resp.Results))
	}
	if resp.Results[0].Title != "Kart 10" || resp.Results[0].Score != 13 {
		t.Errorf("first result = %+v", resp.Results[0])
	}
	if resp.Results[0].URL != base+"games/kart-10/" {
		t.Errorf("url = %q", resp.Results[0].URL)
	}
	if len(resp.Controls) != 5 {
		t.Errorf("controls = %+v", resp.Controls)
	}
}

func TestAPISearch_ClampsPage(t *testing.T) {
	h := newTestRouter(t, writeContent(t, 22))

	rr := get(t, h, base+"api/search?q=kart&page=99")
	var resp searchResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Page != 3 || len(resp.Results) != 3 {
		t.Errorf("page = %d, results = %d; want 3, 3", resp.Page, len(resp.Results))
	}
	if last := resp.Results[len(resp.Results)-1]; last.Type != "page" || last.Score != 5 {
		t.Errorf("last result = %+v, want the About page with score 5", last)
	}
}

func TestAPISearch_ContentUnavailable(t *testing.T) {
	h := newTestRouter(t, filepath.Join(t.TempDir(), "missing.json"))

	rr := get(t, h, base+"api/search?q=kart")
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}
	var resp errorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != "content_unavailable" {
		t.Errorf("code = %q", resp.Code)
	}
}

func TestSearchPage(t *testing.T) {
	h := newTestRouter(t, writeContent(t, 3))

	rr := get(t, h, base+"search/?q=kart")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "🎮 Kart 00") || !strings.Contains(body, `value="kart"`) {
		t.Errorf("search page missing results or query:\n%s", body)
	}
}

func TestSearchPage_ErrorBanner(t *testing.T) {
	h := newTestRouter(t, filepath.Join(t.TempDir(), "missing.json"))

	rr := get(t, h, base+"search/?q=kart")
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Failed to load search content") {
		t.Error("expected inline error banner")
	}
}

func TestSearchResultsFragment(t *testing.T) {
	h := newTestRouter(t, writeContent(t, 30))

	rr := get(t, h, base+"search/results?q=kart&page=3")
	body := rr.Body.String()
	if !strings.Contains(body, `id="searchResults"`) || !strings.Contains(body, `id="pagination"`) {
		t.Fatalf("fragment must carry results and pagination:\n%s", body)
	}
	if !strings.Contains(body, `<span class="current">3</span>`) {
		t.Error("fragment should mark page 3 as current")
	}
	if strings.Contains(body, "<html") {
		t.Error("fragment must not include the page layout")
	}
}

func TestPreview(t *testing.T) {
	h := newTestRouter(t, writeContent(t, 12))

	rr := get(t, h, base+"api/preview?q=kart")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if got := strings.Count(rr.Body.String(), "search-result "); got != 5 {
		t.Errorf("preview entries = %d, want 5", got)
	}

	rr = get(t, h, base+"api/preview?q=kart&format=json")
	var resp struct {
		Results []resultDTO `json:"results"`
		Total   int         `json:"total"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Results) != 5 || resp.Total != 13 {
		t.Errorf("json preview = %d results, total %d", len(resp.Results), resp.Total)
	}

	rr = get(t, h, base+"api/preview?q=%20%20")
	if rr.Code != http.StatusNoContent || rr.Body.Len() != 0 {
		t.Errorf("blank query: status = %d, body = %q", rr.Code, rr.Body.String())
	}
}

func TestGamesListing(t *testing.T) {
	h := newTestRouter(t, writeContent(t, 25))

	rr := get(t, h, base+"games/?category=Racing&page=3")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Kart 24") || strings.Contains(body, "Kart 19") {
		t.Errorf("page 3 should list only games 20..24")
	}
	if !strings.Contains(body, "Category: Racing") {
		t.Error("heading should name the category")
	}
}

func TestHealth(t *testing.T) {
	h := newTestRouter(t, writeContent(t, 2))

	rr := get(t, h, "/healthz")
	var resp healthResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rr.Code != http.StatusOK || resp.Status != "ok" || resp.IndexCount != 3 {
		t.Errorf("health = %d %+v", rr.Code, resp)
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}

func TestParsePage(t *testing.T) {
	tests := map[string]int{"": 1, "abc": 1, "3": 3, "-2": -2}
	for in, want := range tests {
		if got := parsePage(in); got != want {
			t.Errorf("parsePage(%q) = %d, want %d", in, got, want)
		}
	}
}
