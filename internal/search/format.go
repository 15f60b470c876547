package search

import (
	"regexp"
	"strings"

	"github.com/aryannaik/arcade-search/internal/index"
)

var kindEmoji = map[index.Kind]string{
	index.KindGame:     "🎮",
	index.KindPage:     "📄",
	index.KindCategory: "🏷️",
}

// Label returns the display line for a result, e.g. "🎮 Bros Adventure".
func Label(r index.Record) string {
	emoji, ok := kindEmoji[r.Kind]
	if !ok {
		emoji = "📌"
	}
	title := r.Label()
	if title == "" {
		title = "Untitled"
	}
	return emoji + " " + title
}

// Link builds the site URL for a record under base, which must end in "/".
// Records without a slug link to "#".
func Link(base string, r index.Record) string {
	slug := r.Slug()
	if slug == "" {
		return "#"
	}
	switch r.Kind {
	case index.KindGame:
		return base + "games/" + slug + "/"
	case index.KindPage:
		return base + slug + "/"
	case index.KindCategory:
		return base + "category/" + slug + "/"
	default:
		return "#"
	}
}

// Snippet returns the text shown under a result card.
func Snippet(r index.Record) string {
	if s := r.Summary(); s != "" {
		return s
	}
	return "No description available"
}

// Truncate cuts s to n bytes on a rune boundary and appends "...".
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !isRuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

func isRuneStart(b byte) bool { return b&0xC0 != 0x80 }

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s and collapses every run of non-alphanumerics to "-".
func Slugify(s string) string {
	return nonSlug.ReplaceAllString(strings.ToLower(s), "-")
}
