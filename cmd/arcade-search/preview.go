package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aryannaik/arcade-search/internal/config"
	"github.com/aryannaik/arcade-search/internal/index"
	"github.com/aryannaik/arcade-search/internal/search"
	"github.com/aryannaik/arcade-search/internal/widget"
)

// runPreview types query into a header widget and prints what the dropdown
// would show once the debounce settles.
func runPreview(query string, idx *index.Index, cfg config.Config) error {
	if strings.TrimSpace(query) == "" {
		fmt.Println(noDataStyle.Render("No results found"))
		return nil
	}

	rendered := make(chan widget.View, 1)
	w := widget.New(func(q string) []search.Result { return searchIndex(q, idx) }, widget.Options{
		BaseURL:   cfg.Site.BaseURL,
		Limit:     cfg.Search.PreviewLimit,
		Debouncer: widget.NewDebouncer(time.Duration(cfg.Search.DebounceMS) * time.Millisecond),
		OnRender: func(v widget.View) {
			if v.State != widget.Rendered {
				return
			}
			select {
			case rendered <- v:
			default:
			}
		},
	})

	w.Keystroke(query)
	view := <-rendered
	target, _ := w.Enter(query)

	if flagSearchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Query   string          `json:"query"`
			Results []search.Result `json:"results"`
			More    string          `json:"more"`
		}{view.Query, view.Results, target})
	}

	if len(view.Results) == 0 {
		fmt.Println(noDataStyle.Render("No results found"))
		return nil
	}
	for _, r := range view.Results {
		fmt.Println("  " + search.Label(r.Record) + "  " + urlStyle.Render(search.Link(cfg.Site.BaseURL, r.Record)))
	}
	fmt.Println(metaStyle.Render("See all results: " + target))
	return nil
}
