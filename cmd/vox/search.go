package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voxformat/vox-go/internal/cache"
	"github.com/voxformat/vox-go/internal/library"
)

var (
	searchLibraryDir string
	indexLibraryDir  string
)

var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search a voice library for matching voices",
	Long: `Search a voice library for matching voices.

Matches the query case-insensitively against voice names, descriptions
and tags. Uses the library's index.json if present; otherwise the
directory is scanned on the fly.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the voice library index",
	Long: `Rebuild the voice library index.

Scans the library directory for .vox archives and writes index.json.
Archives unchanged since the last run are served from the manifest
cache instead of being re-read.`,
	RunE: runIndex,
}

func init() {
	searchCmd.Flags().StringVar(&searchLibraryDir, "library", "", "Library directory (defaults to configured library.directory)")
	indexCmd.Flags().StringVar(&indexLibraryDir, "library", "", "Library directory (defaults to configured library.directory)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]
	dir := libraryDir(searchLibraryDir)

	entries, err := libraryEntries(cmd.Context(), dir)
	if err != nil {
		return err
	}

	matches := library.Search(entries, query)
	if len(matches) == 0 {
		fmt.Printf("No voices found matching %q\n", query)
		return nil
	}

	fmt.Printf("Found %d voice(s) matching %q:\n\n", len(matches), query)

	rows := make([][]string, 0, len(matches))
	for _, entry := range matches {
		ageRange := ""
		if len(entry.AgeRange) == 2 {
			ageRange = fmt.Sprintf("%d-%d", entry.AgeRange[0], entry.AgeRange[1])
		}
		rows = append(rows, []string{
			entry.Name,
			entry.File,
			truncate(entry.Description, 50),
			strings.Join(entry.Tags, ", "),
			entry.Language,
			ageRange,
		})
	}
	fmt.Println(renderTable(
		[]string{"Name", "File", "Description", "Tags", "Language", "Age Range"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
	))
	return nil
}

func runIndex(cmd *cobra.Command, args []string) error {
	dir := libraryDir(indexLibraryDir)

	index, err := buildIndex(cmd.Context(), dir, true)
	if err != nil {
		return err
	}
	fmt.Println()

	indexPath := filepath.Join(dir, cfg.Library.IndexFile)
	if err := library.WriteIndex(index, indexPath); err != nil {
		return err
	}

	fmt.Printf("Indexed %d voice(s) into %s\n", index.TotalVoices, indexPath)
	return nil
}

func libraryDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return cfg.Library.Directory
}

// libraryEntries loads the persisted index when available, falling back
// to a fresh directory scan.
func libraryEntries(ctx context.Context, dir string) ([]library.Entry, error) {
	indexPath := filepath.Join(dir, cfg.Library.IndexFile)
	if index, err := library.LoadIndex(indexPath); err == nil {
		log.Debug().Str("index", indexPath).Msg("using persisted library index")
		return index.Voices, nil
	}

	index, err := buildIndex(ctx, dir, false)
	if err != nil {
		return nil, err
	}
	return index.Voices, nil
}

func buildIndex(ctx context.Context, dir string, showProgress bool) (*library.Index, error) {
	opts := library.IndexerOptions{Logger: log, ShowProgress: showProgress}
	if cfg.Cache.Enabled {
		store, err := cache.Open(cache.Options{Directory: cfg.Cache.Directory})
		if err != nil {
			log.Warn().Err(err).Msg("manifest cache unavailable, indexing without it")
		} else {
			defer store.Close()
			opts.Store = store
		}
	}

	return library.NewIndexer(opts).Build(ctx, dir)
}
