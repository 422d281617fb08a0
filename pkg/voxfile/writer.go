package voxfile

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"sort"

	"github.com/klauspost/compress/flate"
)

// zipMagic is the ZIP local-file-header signature every well-formed
// archive starts with.
var zipMagic = []byte{'P', 'K', 0x03, 0x04}

// WriteFile serializes a File into a .vox archive at dest. All entries
// use deflate compression. After the archive is closed the file's first
// four bytes are checked against the ZIP signature, so a truncated
// flush surfaces as an error rather than a corrupt archive. Every
// failure wraps ErrWriteFailed.
func WriteFile(f *File, dest string) error {
	if err := writeArchive(f, dest); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if err := verifyZipMagic(dest); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	log.Debug().Str("dest", dest).Msg("vox archive written")
	return nil
}

func writeArchive(f *File, dest string) (err error) {
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	zw := zip.NewWriter(out)
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.DefaultCompression)
	})

	data, err := f.Manifest.Encode()
	if err != nil {
		return err
	}
	if err := writeEntry(zw, manifestName, data); err != nil {
		return err
	}

	// Asset maps are written in sorted key order so two writes of the
	// same File produce the same entry sequence.
	for _, name := range sortedKeys(f.ReferenceAudio) {
		// Flattened to basename: the reader re-keys by basename on the
		// read side, so nothing nested survives a round trip anyway.
		if err := writeEntry(zw, referenceDir+path.Base(name), f.ReferenceAudio[name]); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(f.ExtensionFiles) {
		if err := writeEntry(zw, name, f.ExtensionFiles[name]); err != nil {
			return err
		}
	}

	return zw.Close()
}

func writeEntry(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("create entry %s: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write entry %s: %w", name, err)
	}
	return nil
}

func verifyZipMagic(dest string) error {
	in, err := os.Open(dest)
	if err != nil {
		return err
	}
	defer in.Close()

	header := make([]byte, len(zipMagic))
	if _, err := io.ReadFull(in, header); err != nil {
		return fmt.Errorf("read archive header: %w", err)
	}
	if !bytes.Equal(header, zipMagic) {
		return fmt.Errorf("output file %s does not start with the ZIP signature", dest)
	}
	return nil
}

func sortedKeys(m map[string][]byte) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
