package index

import (
	"strings"
	"time"
)

// Index is an immutable snapshot of the content index. Records are held in
// games, pages, categories order; malformed records are dropped at build time.
type Index struct {
	records  []Record
	games    []Game
	skipped  []error
	loadedAt time.Time
}

// New builds an Index from a decoded Document.
func New(doc Document) *Index {
	idx := &Index{
		records:  make([]Record, 0, len(doc.Games)+len(doc.Pages)+len(doc.Categories)),
		loadedAt: time.Now(),
	}

	for i, g := range doc.Games {
		idx.add(GameRecord(g), i)
	}
	for i, p := range doc.Pages {
		idx.add(PageRecord(p), i)
	}
	for i, c := range doc.Categories {
		idx.add(CategoryRecord(c), i)
	}

	return idx
}

func (idx *Index) add(r Record, pos int) {
	if !r.Valid() {
		idx.skipped = append(idx.skipped, &RecordError{Kind: r.Kind, Position: pos})
		return
	}
	idx.records = append(idx.records, r)
	if r.Kind == KindGame {
		idx.games = append(idx.games, *r.Game)
	}
}

// Records returns every searchable record in games, pages, categories order.
// The returned slice must not be modified.
func (idx *Index) Records() []Record {
	if idx == nil {
		return nil
	}
	return idx.records
}

// Games returns the valid games in index order.
func (idx *Index) Games() []Game {
	if idx == nil {
		return nil
	}
	return idx.games
}

// Count returns the number of searchable records.
func (idx *Index) Count() int {
	if idx == nil {
		return 0
	}
	return len(idx.records)
}

// Skipped returns one RecordError per record dropped at build time.
func (idx *Index) Skipped() []error {
	if idx == nil {
		return nil
	}
	return idx.skipped
}

// LoadedAt returns when the snapshot was built.
func (idx *Index) LoadedAt() time.Time {
	if idx == nil {
		return time.Time{}
	}
	return idx.loadedAt
}

// GamesByCategory returns games whose category equals slug, ignoring case.
func (idx *Index) GamesByCategory(slug string) []Game {
	var out []Game
	for _, g := range idx.Games() {
		if g.Category != "" && strings.EqualFold(g.Category, slug) {
			out = append(out, g)
		}
	}
	return out
}

// GamesByTag returns games carrying tag exactly.
func (idx *Index) GamesByTag(tag string) []Game {
	var out []Game
	for _, g := range idx.Games() {
		for _, t := range g.Tags {
			if t == tag {
				out = append(out, g)
				break
			}
		}
	}
	return out
}
