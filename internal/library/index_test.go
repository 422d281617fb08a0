package library

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxformat/vox-go/internal/cache"
	"github.com/voxformat/vox-go/internal/utils"
	"github.com/voxformat/vox-go/pkg/voxfile"
)

func quietLogger() *utils.Logger {
	return utils.NewLogger(utils.LoggerOptions{Level: "error", Format: "json", Output: &bytes.Buffer{}})
}

func writeArchive(t *testing.T, dir, name string, m *voxfile.Manifest) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, voxfile.WriteFile(&voxfile.File{Manifest: m}, path))
	return path
}

func testManifest(name, description string) *voxfile.Manifest {
	return &voxfile.Manifest{
		VoxVersion: "0.1.0",
		ID:         "ad7aa7d7-570d-4f9e-99da-1bd14b99cc78",
		Created:    "2026-02-13T12:00:00Z",
		Voice: voxfile.Voice{
			Name:        name,
			Description: description,
		},
	}
}

func TestIndexer_Build(t *testing.T) {
	dir := t.TempDir()

	m1 := testManifest("Narrator", "A warm, clear narrator voice for audiobooks.")
	m1.Voice.Tags = []string{"warm"}
	lang := "en-US"
	m1.Voice.Language = &lang
	m1.Voice.AgeRange = []int{30, 50}
	writeArchive(t, dir, "narrator.vox", m1)
	writeArchive(t, dir, "villain.vox", testManifest("Villain", "Gravelly antagonist with menacing undertones."))

	ix := NewIndexer(IndexerOptions{Logger: quietLogger()})
	index, err := ix.Build(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, dir, index.Directory)
	assert.Equal(t, 2, index.TotalVoices)
	require.Len(t, index.Voices, 2)

	// Entries ordered by file path.
	assert.Equal(t, "narrator.vox", index.Voices[0].File)
	assert.Equal(t, "Narrator", index.Voices[0].Name)
	assert.Equal(t, "en-US", index.Voices[0].Language)
	assert.Equal(t, []int{30, 50}, index.Voices[0].AgeRange)
	assert.Equal(t, "villain.vox", index.Voices[1].File)
}

func TestIndexer_Build_SkipsUnreadableArchives(t *testing.T) {
	dir := t.TempDir()
	writeArchive(t, dir, "good.vox", testManifest("Narrator", "A warm, clear narrator voice for audiobooks."))
	require.NoError(t, writeBrokenArchive(filepath.Join(dir, "broken.vox")))

	ix := NewIndexer(IndexerOptions{Logger: quietLogger()})
	index, err := ix.Build(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 1, index.TotalVoices)
	assert.Equal(t, "good.vox", index.Voices[0].File)
}

func writeBrokenArchive(path string) error {
	return writeRaw(path, []byte("definitely not a zip"))
}

func writeRaw(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

func TestIndexer_Build_WithProgress(t *testing.T) {
	dir := t.TempDir()
	writeArchive(t, dir, "narrator.vox", testManifest("Narrator", "A warm, clear narrator voice for audiobooks."))
	require.NoError(t, writeBrokenArchive(filepath.Join(dir, "broken.vox")))

	ix := NewIndexer(IndexerOptions{Logger: quietLogger(), ShowProgress: true})
	index, err := ix.Build(context.Background(), dir)
	require.NoError(t, err)

	// Progress rendering must not change what gets indexed, including
	// when entries are skipped.
	assert.Equal(t, 1, index.TotalVoices)
	assert.Equal(t, "narrator.vox", index.Voices[0].File)
}

func TestIndexer_Build_UsesCache(t *testing.T) {
	dir := t.TempDir()
	writeArchive(t, dir, "narrator.vox", testManifest("Narrator", "A warm, clear narrator voice for audiobooks."))

	store, err := cache.Open(cache.Options{InMemory: true})
	require.NoError(t, err)
	defer store.Close()

	ix := NewIndexer(IndexerOptions{Store: store, Logger: quietLogger()})
	ctx := context.Background()

	first, err := ix.Build(ctx, dir)
	require.NoError(t, err)

	// Second build of an unchanged directory is served from cache and
	// must be identical.
	second, err := ix.Build(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, first.Voices, second.Voices)
}

func TestWriteAndLoadIndex(t *testing.T) {
	dir := t.TempDir()
	writeArchive(t, dir, "narrator.vox", testManifest("Narrator", "A warm, clear narrator voice for audiobooks."))

	ix := NewIndexer(IndexerOptions{Logger: quietLogger()})
	index, err := ix.Build(context.Background(), dir)
	require.NoError(t, err)

	path := filepath.Join(dir, "index.json")
	require.NoError(t, WriteIndex(index, path))

	loaded, err := LoadIndex(path)
	require.NoError(t, err)
	assert.Equal(t, index.TotalVoices, loaded.TotalVoices)
	assert.Equal(t, index.Voices, loaded.Voices)
}

func TestLoadIndex_Errors(t *testing.T) {
	_, err := LoadIndex(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, writeRaw(path, []byte("{not json")))
	_, err = LoadIndex(path)
	assert.Error(t, err)
}
