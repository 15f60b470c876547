package main

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/aryannaik/arcade-search/internal/config"
	"github.com/aryannaik/arcade-search/internal/index"
	"github.com/aryannaik/arcade-search/internal/metrics"
	"github.com/aryannaik/arcade-search/internal/search"
)

func previewIndex() *index.Index {
	return index.New(index.Document{
		Games: []index.Game{
			{Title: "Bros Adventure", Description: "fun platformer", Tags: []string{"platform"}, Slug: "bros-adv"},
			{Title: "Kart Racer", Description: "race karts", Slug: "kart-racer"},
		},
		Pages:      []index.Page{},
		Categories: []index.Category{},
	})
}

func TestRunPreview_SearchesOnce(t *testing.T) {
	orig := searchIndex
	t.Cleanup(func() { searchIndex = orig })

	calls := 0
	searchIndex = func(query string, idx *index.Index) []search.Result {
		calls++
		return orig(query, idx)
	}

	cfg := config.Config{}
	cfg.ApplyDefaults()
	cfg.Search.DebounceMS = 1

	before := testutil.ToFloat64(metrics.SearchQueriesTotal.WithLabelValues("cli"))
	if err := runPreview("bros", previewIndex(), cfg); err != nil {
		t.Fatalf("runPreview: %v", err)
	}
	after := testutil.ToFloat64(metrics.SearchQueriesTotal.WithLabelValues("cli"))

	if calls != 1 {
		t.Errorf("search ran %d times, want 1", calls)
	}
	if after-before != 1 {
		t.Errorf("cli search metric delta = %f, want 1", after-before)
	}
}

func TestRunPreview_BlankQuery(t *testing.T) {
	orig := searchIndex
	t.Cleanup(func() { searchIndex = orig })

	searchIndex = func(string, *index.Index) []search.Result {
		t.Error("blank query must not search")
		return nil
	}

	cfg := config.Config{}
	cfg.ApplyDefaults()
	if err := runPreview("   ", previewIndex(), cfg); err != nil {
		t.Fatalf("runPreview: %v", err)
	}
}
