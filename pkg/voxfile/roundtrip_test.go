package voxfile

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The archive round trip is lossless except for one documented mapping:
// reference audio keys collapse to basenames, because the writer places
// every clip at reference/<basename> and the reader keys by basename.
func TestArchiveRoundTrip(t *testing.T) {
	m := validManifest()
	m.Voice.Tags = []string{"warm", "clear"}
	m.Prosody = &Prosody{
		PitchBase: strptr("low"),
		Rate:      strptr("moderate"),
	}
	m.ReferenceAudio = []ReferenceAudio{
		{File: "reference/sample.wav", Transcript: "Hello.", DurationSeconds: f64ptr(3.5)},
	}
	m.Provenance = &Provenance{
		Method:  strptr("designed"),
		License: strptr("CC0-1.0"),
	}
	m.Extensions = map[string]any{
		"qwen3-tts": map[string]any{"embedding": "embeddings/qwen3-tts/voice.safetensors"},
	}

	original := &File{
		Manifest: m,
		ReferenceAudio: map[string][]byte{
			"sample.wav": []byte("RIFF-sample"),
		},
		ExtensionFiles: map[string][]byte{
			"embeddings/qwen3-tts/voice.safetensors": []byte("tensor-bytes"),
		},
	}

	dest := filepath.Join(t.TempDir(), "voice.vox")
	require.NoError(t, WriteFile(original, dest))

	got, err := ReadFile(dest)
	require.NoError(t, err)

	if diff := cmp.Diff(original.Manifest, got.Manifest); diff != "" {
		t.Fatalf("manifest changed across archive round trip (-wrote +read):\n%s", diff)
	}
	assert.Equal(t, original.ReferenceAudio, got.ReferenceAudio)
	assert.Equal(t, original.ExtensionFiles, got.ExtensionFiles)
}

func TestArchiveRoundTrip_BasenameCollapse(t *testing.T) {
	// A nested reference key goes in as nested/dir/clip.wav and comes
	// back keyed clip.wav. The bytes survive, the directory does not.
	original := &File{
		Manifest: validManifest(),
		ReferenceAudio: map[string][]byte{
			"nested/dir/clip.wav": []byte("RIFF-nested"),
		},
	}

	dest := filepath.Join(t.TempDir(), "voice.vox")
	require.NoError(t, WriteFile(original, dest))

	got, err := ReadFile(dest)
	require.NoError(t, err)

	require.NotNil(t, got.ReferenceAudio)
	assert.NotContains(t, got.ReferenceAudio, "nested/dir/clip.wav")
	assert.Equal(t, []byte("RIFF-nested"), got.ReferenceAudio["clip.wav"])
}

func TestArchiveRoundTrip_EmptyAssetMapsReadBackAsNil(t *testing.T) {
	original := &File{
		Manifest:       validManifest(),
		ReferenceAudio: map[string][]byte{},
		ExtensionFiles: map[string][]byte{},
	}

	dest := filepath.Join(t.TempDir(), "voice.vox")
	require.NoError(t, WriteFile(original, dest))

	got, err := ReadFile(dest)
	require.NoError(t, err)
	assert.Nil(t, got.ReferenceAudio)
	assert.Nil(t, got.ExtensionFiles)
}
