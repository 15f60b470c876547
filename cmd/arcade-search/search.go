package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aryannaik/arcade-search/internal/index"
	"github.com/aryannaik/arcade-search/internal/metrics"
	"github.com/aryannaik/arcade-search/internal/paginate"
	"github.com/aryannaik/arcade-search/internal/search"
)

var (
	flagSearchPage    int
	flagSearchJSON    bool
	flagSearchPreview bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the content index from the terminal",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&flagSearchPage, "page", 1, "Results page to show")
	searchCmd.Flags().BoolVar(&flagSearchJSON, "json", false, "Print the page as JSON")
	searchCmd.Flags().BoolVar(&flagSearchPreview, "preview", false, "Show only the dropdown preview (top results)")
	rootCmd.AddCommand(searchCmd)
}

// searchIndex runs one CLI search and records it.
var searchIndex = func(query string, idx *index.Index) []search.Result {
	results := search.Search(query, idx)
	metrics.ObserveSearch("cli", len(results))
	return results
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, env, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(env, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	store := index.NewStore(index.NewSource(cfg.Content.Source, cfg.Content.Build), log)
	idx, err := store.Load(cmd.Context())
	if err != nil {
		printErr("Failed to load search content. Please try again later.")
		return err
	}

	query := strings.Join(args, " ")
	if flagSearchPreview {
		return runPreview(query, idx, cfg)
	}

	results := searchIndex(query, idx)
	window := paginate.Paginate(results, flagSearchPage, cfg.Search.PageSize)

	if flagSearchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(window)
	}

	printSearchWindow(query, cfg.Site.BaseURL, window)
	return nil
}
