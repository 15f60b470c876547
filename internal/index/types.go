package index

import "strings"

// Kind tags a Record with the content list it came from.
type Kind string

const (
	KindGame     Kind = "game"
	KindPage     Kind = "page"
	KindCategory Kind = "category"
)

// Game is one entry of the games list.
type Game struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Slug        string   `json:"slug"`
	Category    string   `json:"category,omitempty"`
	Image       string   `json:"image,omitempty"`
}

// Page is one entry of the pages list.
type Page struct {
	Title   string `json:"title"`
	Content string `json:"content,omitempty"`
	Slug    string `json:"slug"`
}

// Category is one entry of the categories list.
type Category struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Slug        string `json:"slug"`
}

// Record is a tagged variant over Game, Page and Category. Exactly one of the
// pointer fields is set, matching Kind.
type Record struct {
	Kind     Kind      `json:"type"`
	Game     *Game     `json:"game,omitempty"`
	Page     *Page     `json:"page,omitempty"`
	Category *Category `json:"category,omitempty"`
}

// GameRecord wraps g as a Record.
func GameRecord(g Game) Record { return Record{Kind: KindGame, Game: &g} }

// PageRecord wraps p as a Record.
func PageRecord(p Page) Record { return Record{Kind: KindPage, Page: &p} }

// CategoryRecord wraps c as a Record.
func CategoryRecord(c Category) Record { return Record{Kind: KindCategory, Category: &c} }

// Label returns the primary label: title for games and pages, name for categories.
func (r Record) Label() string {
	switch r.Kind {
	case KindGame:
		if r.Game != nil {
			return r.Game.Title
		}
	case KindPage:
		if r.Page != nil {
			return r.Page.Title
		}
	case KindCategory:
		if r.Category != nil {
			return r.Category.Name
		}
	}
	return ""
}

// Slug returns the URL-safe identifier used to build links.
func (r Record) Slug() string {
	switch r.Kind {
	case KindGame:
		if r.Game != nil {
			return r.Game.Slug
		}
	case KindPage:
		if r.Page != nil {
			return r.Page.Slug
		}
	case KindCategory:
		if r.Category != nil {
			return r.Category.Slug
		}
	}
	return ""
}

// Summary returns the descriptive text shown under a result: the description
// for games and categories, the content for pages.
func (r Record) Summary() string {
	switch r.Kind {
	case KindGame:
		if r.Game != nil {
			return r.Game.Description
		}
	case KindPage:
		if r.Page != nil {
			return r.Page.Content
		}
	case KindCategory:
		if r.Category != nil {
			return r.Category.Description
		}
	}
	return ""
}

// Valid reports whether the record has a non-empty label and slug.
func (r Record) Valid() bool {
	return strings.TrimSpace(r.Label()) != "" && strings.TrimSpace(r.Slug()) != ""
}

// Document is the decoded content.json shape. All three lists are required;
// a nil list means the key was absent from the document.
type Document struct {
	Games      []Game     `json:"games"`
	Pages      []Page     `json:"pages"`
	Categories []Category `json:"categories"`
}
