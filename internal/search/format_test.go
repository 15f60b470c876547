package search

import (
	"testing"

	"github.com/aryannaik/arcade-search/internal/index"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		rec  index.Record
		want string
	}{
		{index.GameRecord(index.Game{Title: "Bros Adventure"}), "🎮 Bros Adventure"},
		{index.PageRecord(index.Page{Title: "About"}), "📄 About"},
		{index.CategoryRecord(index.Category{Name: "Racing"}), "🏷️ Racing"},
		{index.PageRecord(index.Page{}), "📄 Untitled"},
		{index.Record{Kind: "video"}, "📌 Untitled"},
	}
	for _, tc := range tests {
		if got := Label(tc.rec); got != tc.want {
			t.Errorf("Label() = %q, want %q", got, tc.want)
		}
	}
}

func TestLink(t *testing.T) {
	const base = "/bros-unblocked/"
	tests := []struct {
		rec  index.Record
		want string
	}{
		{index.GameRecord(index.Game{Slug: "bros-adv"}), "/bros-unblocked/games/bros-adv/"},
		{index.PageRecord(index.Page{Slug: "about"}), "/bros-unblocked/about/"},
		{index.CategoryRecord(index.Category{Slug: "racing"}), "/bros-unblocked/category/racing/"},
		{index.GameRecord(index.Game{}), "#"},
		{index.Record{Kind: "video"}, "#"},
	}
	for _, tc := range tests {
		if got := Link(base, tc.rec); got != tc.want {
			t.Errorf("Link() = %q, want %q", got, tc.want)
		}
	}
}

func TestSnippet(t *testing.T) {
	if got := Snippet(index.PageRecord(index.Page{Content: "hello"})); got != "hello" {
		t.Errorf("Snippet(page) = %q", got)
	}
	if got := Snippet(index.GameRecord(index.Game{})); got != "No description available" {
		t.Errorf("Snippet(empty) = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate(short) = %q", got)
	}
	if got := Truncate("abcdefghij", 4); got != "abcd..." {
		t.Errorf("Truncate(abcdefghij, 4) = %q", got)
	}
	// "é" is two bytes; cutting inside it backs up to the rune start.
	if got := Truncate("aé", 2); got != "a..." {
		t.Errorf("Truncate(aé, 2) = %q", got)
	}
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Bros Adventure": "bros-adventure",
		"Kart: Chaos 2!": "kart-chaos-2-",
		"already-a-slug": "already-a-slug",
		"":               "",
	}
	for in, want := range tests {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
