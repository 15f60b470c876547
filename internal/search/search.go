package search

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/aryannaik/arcade-search/internal/index"
)

// Field weights. A field contributes its weight once when the lowercased
// query is a substring of the lowercased field value.
const (
	TitleWeight       = 10
	DescriptionWeight = 5
	TagWeight         = 3
)

// PreviewLimit is the number of results shown in the header dropdown.
const PreviewLimit = 5

// Result is a record annotated with its score for one query.
type Result struct {
	index.Record
	Score int `json:"score"`
	// Position is the record's ordinal in games, pages, categories order.
	Position int `json:"-"`
}

// Search scores every record in idx against query and returns matches ordered
// by descending score. Ties keep index order. An empty query or nil index
// yields an empty slice.
func Search(query string, idx *index.Index) []Result {
	if strings.TrimSpace(query) == "" || idx == nil {
		return []Result{}
	}

	m := newMatcher(query)
	results := make([]Result, 0)
	for i, rec := range idx.Records() {
		score := m.score(rec)
		if score == 0 {
			continue
		}
		results = append(results, Result{Record: rec, Score: score, Position: i})
	}

	SortResults(results)
	return results
}

// SortResults sorts by score descending, then by index position ascending.
func SortResults(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score == results[j].Score {
			return results[i].Position < results[j].Position
		}
		return results[i].Score > results[j].Score
	})
}

// Top returns at most n results from an existing ranking.
func Top(results []Result, n int) []Result {
	if n >= 0 && len(results) > n {
		return results[:n]
	}
	return results
}

type matcher struct {
	lower cases.Caser
	query string
}

func newMatcher(query string) *matcher {
	lower := cases.Lower(language.Und)
	return &matcher{lower: lower, query: lower.String(query)}
}

func (m *matcher) contains(field string) bool {
	if field == "" {
		return false
	}
	return strings.Contains(m.lower.String(field), m.query)
}

func (m *matcher) weight(field string, w int) int {
	if m.contains(field) {
		return w
	}
	return 0
}

func (m *matcher) score(rec index.Record) int {
	switch rec.Kind {
	case index.KindGame:
		g := rec.Game
		score := m.weight(g.Title, TitleWeight) + m.weight(g.Description, DescriptionWeight)
		for _, tag := range g.Tags {
			if m.contains(tag) {
				score += TagWeight
				break
			}
		}
		return score
	case index.KindPage:
		p := rec.Page
		return m.weight(p.Title, TitleWeight) + m.weight(p.Content, DescriptionWeight)
	case index.KindCategory:
		c := rec.Category
		return m.weight(c.Name, TitleWeight) + m.weight(c.Description, DescriptionWeight)
	default:
		return 0
	}
}
