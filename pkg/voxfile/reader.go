package voxfile

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/flate"
	"github.com/rs/zerolog"
)

const (
	manifestName = "manifest.json"
	referenceDir = "reference/"
	extensionDir = "embeddings/"
)

// log is a no-op until SetLogger installs a real logger. The only
// events of interest are skipped assets, logged at debug level.
var log = zerolog.Nop()

// SetLogger installs the logger used by the reader and writer.
func SetLogger(l zerolog.Logger) {
	log = l
}

// ReadFile opens a .vox archive on disk and parses it into a File.
// Returns ErrInvalidArchive when the path cannot be opened as a ZIP
// container, ErrManifestNotFound when no manifest.json exists at the
// archive root, and ErrInvalidManifest when the manifest cannot be
// decoded.
func ReadFile(filePath string) (*File, error) {
	zr, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidArchive, filePath, err)
	}
	defer zr.Close()

	registerDecompressor(&zr.Reader)
	return readArchive(&zr.Reader)
}

// Read parses a .vox archive from an in-memory byte slice. Error
// semantics match ReadFile.
func Read(data []byte) (*File, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArchive, err)
	}

	registerDecompressor(zr)
	return readArchive(zr)
}

func registerDecompressor(zr *zip.Reader) {
	zr.RegisterDecompressor(zip.Deflate, func(r io.Reader) io.ReadCloser {
		return flate.NewReader(r)
	})
}

func readArchive(zr *zip.Reader) (*File, error) {
	manifest, err := readManifest(zr)
	if err != nil {
		return nil, err
	}

	f := &File{Manifest: manifest}
	if refs := readReferenceAudio(zr, manifest); len(refs) > 0 {
		f.ReferenceAudio = refs
	}
	if exts := readExtensionFiles(zr); len(exts) > 0 {
		f.ExtensionFiles = exts
	}
	return f, nil
}

func readManifest(zr *zip.Reader) (*Manifest, error) {
	entry := findEntry(zr, manifestName)
	if entry == nil {
		return nil, ErrManifestNotFound
	}

	data, err := readEntry(entry)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: manifest.json is not valid UTF-8", ErrInvalidManifest)
	}
	return DecodeManifest(data)
}

// readReferenceAudio collects reference audio in two passes. Entries the
// manifest references are read first and keyed by basename; missing
// referenced files are skipped, never an error. A scan of reference/
// then picks up unreferenced files, but a scanned basename never
// overwrites a manifest-referenced one.
func readReferenceAudio(zr *zip.Reader, manifest *Manifest) map[string][]byte {
	assets := make(map[string][]byte)

	for _, audio := range manifest.ReferenceAudio {
		if strings.TrimSpace(audio.File) == "" {
			continue
		}
		entry := findEntry(zr, audio.File)
		if entry == nil {
			log.Debug().Str("file", audio.File).Msg("referenced audio not present in archive, skipping")
			continue
		}
		data, err := readEntry(entry)
		if err != nil {
			log.Debug().Str("file", audio.File).Err(err).Msg("referenced audio unreadable, skipping")
			continue
		}
		assets[path.Base(audio.File)] = data
	}

	for _, entry := range zr.File {
		if !strings.HasPrefix(entry.Name, referenceDir) || isDir(entry) {
			continue
		}
		name := path.Base(entry.Name)
		if _, ok := assets[name]; ok {
			continue
		}
		data, err := readEntry(entry)
		if err != nil {
			log.Debug().Str("file", entry.Name).Err(err).Msg("reference entry unreadable, skipping")
			continue
		}
		assets[name] = data
	}

	return assets
}

// readExtensionFiles collects everything under embeddings/, keyed by
// full archive-relative path so provider namespaces stay apart.
func readExtensionFiles(zr *zip.Reader) map[string][]byte {
	files := make(map[string][]byte)

	for _, entry := range zr.File {
		if !strings.HasPrefix(entry.Name, extensionDir) || isDir(entry) {
			continue
		}
		data, err := readEntry(entry)
		if err != nil {
			log.Debug().Str("file", entry.Name).Err(err).Msg("extension entry unreadable, skipping")
			continue
		}
		files[entry.Name] = data
	}

	return files
}

func findEntry(zr *zip.Reader, name string) *zip.File {
	for _, entry := range zr.File {
		if entry.Name == name {
			return entry
		}
	}
	return nil
}

func readEntry(entry *zip.File) ([]byte, error) {
	rc, err := entry.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func isDir(entry *zip.File) bool {
	return strings.HasSuffix(entry.Name, "/") || entry.FileInfo().IsDir()
}
