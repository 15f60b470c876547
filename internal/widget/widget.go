// Package widget implements the header search box: debounced live preview of
// the top results, dismissal on Escape or outside clicks, and Enter-to-search.
package widget

import (
	"net/url"
	"strings"
	"sync"

	"github.com/aryannaik/arcade-search/internal/search"
)

// State is the dropdown lifecycle state.
type State int

const (
	Idle State = iota
	Debouncing
	Rendered
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Debouncing:
		return "debouncing"
	case Rendered:
		return "rendered"
	default:
		return "unknown"
	}
}

// View is what the dropdown shows after a transition. In Idle the dropdown is
// cleared and hidden; in Rendered an empty Results means "no results".
type View struct {
	State   State
	Query   string
	Results []search.Result
}

// SearchFunc runs a query and returns the full ranking.
type SearchFunc func(query string) []search.Result

// Options configures a Widget.
type Options struct {
	// BaseURL prefixes the search page link, e.g. "/bros-unblocked/".
	BaseURL string
	// Limit caps the preview; defaults to search.PreviewLimit.
	Limit int
	// Debouncer defaults to NewDebouncer(DefaultDelay).
	Debouncer *Debouncer
	// OnRender receives the dropdown contents each time it is shown or cleared.
	OnRender func(View)
}

// Widget is the header search state machine. It is safe for concurrent use;
// debounced searches run on the timer goroutine.
type Widget struct {
	mu       sync.Mutex
	state    State
	query    string
	results  []search.Result
	search   SearchFunc
	debounce *Debouncer
	baseURL  string
	limit    int
	onRender func(View)
}

// New returns an idle widget.
func New(fn SearchFunc, opts Options) *Widget {
	if opts.Limit <= 0 {
		opts.Limit = search.PreviewLimit
	}
	if opts.Debouncer == nil {
		opts.Debouncer = NewDebouncer(DefaultDelay)
	}
	if opts.OnRender == nil {
		opts.OnRender = func(View) {}
	}
	return &Widget{
		search:   fn,
		debounce: opts.Debouncer,
		baseURL:  opts.BaseURL,
		limit:    opts.Limit,
		onRender: opts.OnRender,
	}
}

// Keystroke records the new input value. An empty value closes the dropdown;
// anything else restarts the debounce timer.
func (w *Widget) Keystroke(value string) {
	if strings.TrimSpace(value) == "" {
		w.close()
		return
	}

	w.mu.Lock()
	w.state = Debouncing
	w.query = value
	w.mu.Unlock()

	w.debounce.Trigger(func() { w.fire(value) })
}

func (w *Widget) fire(value string) {
	results := search.Top(w.search(value), w.limit)

	w.mu.Lock()
	if w.state != Debouncing || w.query != value {
		w.mu.Unlock()
		return
	}
	w.state = Rendered
	w.results = results
	view := w.viewLocked()
	w.mu.Unlock()

	w.onRender(view)
}

// Escape closes the dropdown.
func (w *Widget) Escape() { w.close() }

// ClickOutside closes the dropdown.
func (w *Widget) ClickOutside() { w.close() }

// Enter returns the search page URL for value, bypassing the debounce.
// ok is false when the trimmed value is empty and nothing should happen.
func (w *Widget) Enter(value string) (target string, ok bool) {
	q := strings.TrimSpace(value)
	if q == "" {
		return "", false
	}
	w.debounce.Stop()
	return SearchPageURL(w.baseURL, q), true
}

// State returns the current state.
func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// View returns the current dropdown contents.
func (w *Widget) View() View {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.viewLocked()
}

func (w *Widget) viewLocked() View {
	return View{State: w.state, Query: w.query, Results: w.results}
}

func (w *Widget) close() {
	w.debounce.Stop()

	w.mu.Lock()
	w.state = Idle
	w.query = ""
	w.results = nil
	view := w.viewLocked()
	w.mu.Unlock()

	w.onRender(view)
}

// SearchPageURL returns base + "search/?q=" + the escaped query. Spaces are
// encoded as %20 so links match the ones the static site emits.
func SearchPageURL(base, query string) string {
	return base + "search/?q=" + strings.ReplaceAll(url.QueryEscape(query), "+", "%20")
}
