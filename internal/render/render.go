// Package render turns computed search windows into HTML. It holds no search
// or pagination logic of its own.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/aryannaik/arcade-search/internal/index"
	"github.com/aryannaik/arcade-search/internal/paginate"
	"github.com/aryannaik/arcade-search/internal/search"
)

//go:embed templates/*
var templateFS embed.FS

// Site carries the values shared by every page.
type Site struct {
	Name    string
	BaseURL string
	// DebounceMS is the dropdown delay handed to the browser script.
	DebounceMS int
}

// SearchData is the view model for the search page and its fragments. Blank
// is set when Query has no searchable text.
type SearchData struct {
	Site        Site
	Title       string
	Query       string
	Blank       bool
	Window      paginate.Window[search.Result]
	Unavailable bool
}

// PreviewData is the view model for the header dropdown.
type PreviewData struct {
	Query   string
	Results []search.Result
}

// GamesData is the view model for the games listing page.
type GamesData struct {
	Site     Site
	Title    string
	Heading  string
	Category string
	Tag      string
	Window   paginate.Window[index.Game]
}

// PageURL returns the listing URL for page n, keeping the active filters.
func (d GamesData) PageURL(n int) string {
	v := url.Values{}
	if d.Category != "" {
		v.Set("category", d.Category)
	}
	if d.Tag != "" {
		v.Set("tag", d.Tag)
	}
	v.Set("page", strconv.Itoa(n))
	return d.Site.BaseURL + "games/?" + v.Encode()
}

// Renderer executes the embedded templates.
type Renderer struct {
	site   Site
	search *template.Template
	games  *template.Template
}

// New parses the embedded templates for site.
func New(site Site) (*Renderer, error) {
	funcs := template.FuncMap{
		"label":   search.Label,
		"snippet": search.Snippet,
		"link": func(r index.Record) string {
			return search.Link(site.BaseURL, r)
		},
		"gameLink": func(g index.Game) string {
			return search.Link(site.BaseURL, index.GameRecord(g))
		},
		"truncate": search.Truncate,
		"pageURL": func(query string, page int) string {
			return site.BaseURL + "search/?q=" + url.QueryEscape(query) + "&page=" + strconv.Itoa(page)
		},
	}

	base, err := template.New("base").Funcs(funcs).ParseFS(templateFS,
		"templates/layout.gohtml", "templates/results.gohtml", "templates/dropdown.gohtml")
	if err != nil {
		return nil, fmt.Errorf("parse base templates: %w", err)
	}

	searchTmpl, err := template.Must(base.Clone()).ParseFS(templateFS, "templates/search.gohtml")
	if err != nil {
		return nil, fmt.Errorf("parse search template: %w", err)
	}
	gamesTmpl, err := template.Must(base.Clone()).ParseFS(templateFS, "templates/games.gohtml")
	if err != nil {
		return nil, fmt.Errorf("parse games template: %w", err)
	}

	return &Renderer{site: site, search: searchTmpl, games: gamesTmpl}, nil
}

// Site returns the site values the renderer was built with.
func (r *Renderer) Site() Site { return r.site }

// SearchData assembles the view model for query and window.
func (r *Renderer) SearchData(query string, window paginate.Window[search.Result], unavailable bool) SearchData {
	blank := strings.TrimSpace(query) == ""
	title := r.site.Name
	if !blank {
		title = `Search: "` + query + `" | ` + r.site.Name
	}
	return SearchData{
		Site:        r.site,
		Title:       title,
		Query:       query,
		Blank:       blank,
		Window:      window,
		Unavailable: unavailable,
	}
}

// SearchPage writes the full search page.
func (r *Renderer) SearchPage(w io.Writer, data SearchData) error {
	return r.search.ExecuteTemplate(w, "layout", data)
}

// Results writes the results list and pagination bar as one fragment, so a
// client replaces both together on page change.
func (r *Renderer) Results(w io.Writer, data SearchData) error {
	return r.search.ExecuteTemplate(w, "fragment", data)
}

// Preview writes the header dropdown contents.
func (r *Renderer) Preview(w io.Writer, data PreviewData) error {
	return r.search.ExecuteTemplate(w, "dropdown", data)
}

// Games writes the games listing page.
func (r *Renderer) Games(w io.Writer, data GamesData) error {
	data.Site = r.site
	if data.Title == "" {
		data.Title = "All Games | " + r.site.Name
	}
	if data.Heading == "" {
		data.Heading = "All Games"
	}
	return r.games.ExecuteTemplate(w, "layout", data)
}
