package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aryannaik/arcade-search/internal/paginate"
	"github.com/aryannaik/arcade-search/internal/search"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Background(lipgloss.Color("235")).
			Padding(0, 1).
			Margin(0, 0, 1, 0)

	resultStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Margin(0, 0, 0, 2)

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))

	currentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	noDataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			Margin(1, 0)

	errStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))
)

func printSearchWindow(query, base string, w paginate.Window[search.Result]) {
	fmt.Println(titleStyle.Render(fmt.Sprintf("Search: %q", query)))

	if w.Empty() {
		fmt.Println(noDataStyle.Render("No results found. Try a different search term!"))
		return
	}

	for _, r := range w.Items {
		body := search.Label(r.Record) + "\n" +
			search.Truncate(search.Snippet(r.Record), 100) + "\n" +
			urlStyle.Render(search.Link(base, r.Record)) + "  " +
			metaStyle.Render("score "+strconv.Itoa(r.Score))
		fmt.Println(resultStyle.Render(body))
	}

	fmt.Println(metaStyle.Render(fmt.Sprintf("Showing %d-%d of %d", w.Start+1, w.End, w.TotalItems)))
	if w.TotalPages > 1 {
		fmt.Println(formatControls(w.Controls))
	}
}

// formatControls renders the pagination bar as text, e.g. "← 1 2 [3] 4 5 … 9 →".
func formatControls(controls []paginate.Control) string {
	parts := make([]string, 0, len(controls))
	for _, c := range controls {
		switch c.Kind {
		case paginate.Previous:
			parts = append(parts, "← Previous")
		case paginate.Next:
			parts = append(parts, "Next →")
		case paginate.Current:
			parts = append(parts, currentStyle.Render("["+strconv.Itoa(c.Page)+"]"))
		case paginate.Ellipsis:
			parts = append(parts, "...")
		default:
			parts = append(parts, strconv.Itoa(c.Page))
		}
	}
	return strings.Join(parts, " ")
}

func printErr(msg string) {
	fmt.Fprintln(os.Stderr, errStyle.Render("  ✗  "+msg))
}
