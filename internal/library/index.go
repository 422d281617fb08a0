// Package library maintains a searchable index over a directory of
// .vox archives. The index is a JSON file holding one entry per voice
// with the fields the search path needs, so queries never have to open
// the archives themselves.
package library

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/voxformat/vox-go/internal/cache"
	"github.com/voxformat/vox-go/internal/utils"
	"github.com/voxformat/vox-go/pkg/voxfile"
)

// Entry is one voice in the library index
type Entry struct {
	Name        string   `json:"name"`
	File        string   `json:"file"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
	Language    string   `json:"language,omitempty"`
	AgeRange    []int    `json:"age_range,omitempty"`
}

// Index is the persisted form of a scanned library
type Index struct {
	GeneratedAt time.Time `json:"generated_at"`
	Directory   string    `json:"directory"`
	TotalVoices int       `json:"total_voices"`
	Voices      []Entry   `json:"voices"`
}

// Indexer scans a directory of .vox archives and builds an Index.
// An optional cache store lets unchanged archives skip the full read.
type Indexer struct {
	store    *cache.Store
	log      *utils.Logger
	progress bool
}

// IndexerOptions configures an Indexer
type IndexerOptions struct {
	Store        *cache.Store // nil disables caching
	Logger       *utils.Logger
	ShowProgress bool // render a progress bar during Build
}

// NewIndexer creates an Indexer
func NewIndexer(opts IndexerOptions) *Indexer {
	log := opts.Logger
	if log == nil {
		log = utils.NewDefaultLogger()
	}
	return &Indexer{
		store:    opts.Store,
		log:      log.WithComponent("indexer"),
		progress: opts.ShowProgress,
	}
}

// Build scans dir for .vox archives and returns an index. Archives that
// cannot be read are skipped with a warning rather than aborting the
// whole scan. Entries are ordered by file path.
func (ix *Indexer) Build(ctx context.Context, dir string) (*Index, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.vox"))
	if err != nil {
		return nil, fmt.Errorf("scan library directory: %w", err)
	}
	sort.Strings(paths)

	index := &Index{
		GeneratedAt: time.Now().UTC(),
		Directory:   dir,
		Voices:      make([]Entry, 0, len(paths)),
	}

	var bar *progressbar.ProgressBar
	if ix.progress {
		bar = utils.NewProgressBar(len(paths), utils.DescIndexing)
		defer bar.Finish()
	}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entry, err := ix.entryFor(ctx, path)
		if err != nil {
			ix.log.Warn().Str("file", path).Err(err).Msg("skipping unreadable archive")
		} else {
			index.Voices = append(index.Voices, entry)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	index.TotalVoices = len(index.Voices)
	return index, nil
}

func (ix *Indexer) entryFor(ctx context.Context, path string) (Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Entry{}, err
	}

	var key string
	if ix.store != nil {
		key = cache.EntryKey(path, info.Size(), info.ModTime())
		if data, err := ix.store.Get(ctx, key); err == nil {
			var entry Entry
			if err := json.Unmarshal(data, &entry); err == nil {
				ix.log.Debug().Str("file", path).Msg("index entry served from cache")
				return entry, nil
			}
		} else if !errors.Is(err, cache.ErrMiss) {
			ix.log.Debug().Str("file", path).Err(err).Msg("cache lookup failed")
		}
	}

	f, err := voxfile.ReadFile(path)
	if err != nil {
		return Entry{}, err
	}
	entry := entryFromManifest(filepath.Base(path), f.Manifest)

	if ix.store != nil {
		if data, err := json.Marshal(entry); err == nil {
			if err := ix.store.Set(ctx, key, data); err != nil {
				ix.log.Debug().Str("file", path).Err(err).Msg("cache store failed")
			}
		}
	}

	return entry, nil
}

func entryFromManifest(file string, m *voxfile.Manifest) Entry {
	entry := Entry{
		Name:        m.Voice.Name,
		File:        file,
		Description: m.Voice.Description,
		Tags:        m.Voice.Tags,
		AgeRange:    m.Voice.AgeRange,
	}
	if m.Voice.Language != nil {
		entry.Language = *m.Voice.Language
	}
	return entry
}

// WriteIndex persists an index as pretty-printed JSON
func WriteIndex(index *Index, path string) error {
	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadIndex reads a previously written index file
func LoadIndex(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var index Index
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("parse index %s: %w", path, err)
	}
	return &index, nil
}
