package voxfile

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func f64ptr(f float64) *float64 { return &f }

// validManifest returns a minimal manifest that passes validation.
func validManifest() *Manifest {
	return &Manifest{
		VoxVersion: "0.1.0",
		ID:         "ad7aa7d7-570d-4f9e-99da-1bd14b99cc78",
		Created:    "2026-02-13T12:00:00Z",
		Voice: Voice{
			Name:        "Narrator",
			Description: "A warm, clear narrator voice for audiobooks.",
		},
	}
}

// buildZip assembles an in-memory ZIP archive from name/content pairs.
func buildZip(t *testing.T, entries map[string][]byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, data := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
