package voicespec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load_FileNotFound(t *testing.T) {
	loader := NewLoader()

	spec, err := loader.Load("/nonexistent/path/voice.yaml")

	assert.Nil(t, spec)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoader_Load_ValidYAML(t *testing.T) {
	loader := NewLoader()

	yamlContent := `
name: Narrator
description: A warm, clear narrator voice for audiobooks.
language: en-US
gender: neutral
age_range: [30, 50]
tags:
  - warm
  - clear
prosody:
  pitch_base: low
  rate: moderate
provenance:
  method: designed
  license: CC0-1.0
`

	tmpDir := t.TempDir()
	specPath := filepath.Join(tmpDir, "voice.yaml")
	require.NoError(t, os.WriteFile(specPath, []byte(yamlContent), 0644))

	spec, err := loader.Load(specPath)

	require.NoError(t, err)
	assert.Equal(t, "Narrator", spec.Name)
	assert.Equal(t, "en-US", spec.Language)
	assert.Equal(t, "neutral", spec.Gender)
	assert.Equal(t, []int{30, 50}, spec.AgeRange)
	assert.Equal(t, []string{"warm", "clear"}, spec.Tags)
	require.NotNil(t, spec.Prosody)
	assert.Equal(t, "low", spec.Prosody.PitchBase)
	require.NotNil(t, spec.Provenance)
	assert.Equal(t, "designed", spec.Provenance.Method)
}

func TestLoader_Load_ValidJSON(t *testing.T) {
	loader := NewLoader()

	jsonContent := `{
		"name": "Villain",
		"description": "Gravelly antagonist with menacing undertones.",
		"tags": ["dark"]
	}`

	tmpDir := t.TempDir()
	specPath := filepath.Join(tmpDir, "voice.json")
	require.NoError(t, os.WriteFile(specPath, []byte(jsonContent), 0644))

	spec, err := loader.Load(specPath)

	require.NoError(t, err)
	assert.Equal(t, "Villain", spec.Name)
	assert.Equal(t, []string{"dark"}, spec.Tags)
}

func TestLoader_Load_InvalidFormat(t *testing.T) {
	loader := NewLoader()

	tmpDir := t.TempDir()
	specPath := filepath.Join(tmpDir, "voice.json")
	require.NoError(t, os.WriteFile(specPath, []byte("{not json"), 0644))

	spec, err := loader.Load(specPath)
	assert.Nil(t, spec)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestLoader_Load_UnsupportedExtension(t *testing.T) {
	loader := NewLoader()

	tmpDir := t.TempDir()
	specPath := filepath.Join(tmpDir, "voice.toml")
	require.NoError(t, os.WriteFile(specPath, []byte("name = \"x\""), 0644))

	spec, err := loader.Load(specPath)
	assert.Nil(t, spec)
	assert.ErrorIs(t, err, ErrUnsupportedExt)
}

func TestLoader_Load_MissingRequiredFields(t *testing.T) {
	loader := NewLoader()

	spec, err := loader.LoadFromBytes([]byte(`description: only a description here`), ".yaml")
	assert.Nil(t, spec)
	assert.ErrorIs(t, err, ErrMissingName)

	spec, err = loader.LoadFromBytes([]byte(`name: Nameless`), ".yaml")
	assert.Nil(t, spec)
	assert.ErrorIs(t, err, ErrMissingDescription)
}

func TestSpec_Manifest(t *testing.T) {
	spec := &Spec{
		Name:        "Narrator",
		Description: "A warm, clear narrator voice for audiobooks.",
		Language:    "en-GB",
		Gender:      "female",
		AgeRange:    []int{40, 60},
		Tags:        []string{"warm"},
		Prosody:     &ProsodySpec{PitchBase: "low"},
		Provenance:  &ProvenanceSpec{Method: "designed"},
	}

	m := spec.Manifest("0.1.0", "ad7aa7d7-570d-4f9e-99da-1bd14b99cc78", "2026-02-13T12:00:00Z")

	assert.Equal(t, "0.1.0", m.VoxVersion)
	assert.Equal(t, "Narrator", m.Voice.Name)
	require.NotNil(t, m.Voice.Language)
	assert.Equal(t, "en-GB", *m.Voice.Language)
	require.NotNil(t, m.Prosody)
	assert.Equal(t, "low", *m.Prosody.PitchBase)
	assert.Nil(t, m.Prosody.Rate)
	require.NotNil(t, m.Provenance)
	assert.Equal(t, "designed", *m.Provenance.Method)
	assert.Nil(t, m.Character)
}

func TestSpec_Manifest_EmptyOptionalsStayAbsent(t *testing.T) {
	spec := &Spec{Name: "N", Description: "Ten chars!!"}

	m := spec.Manifest("0.1.0", "ad7aa7d7-570d-4f9e-99da-1bd14b99cc78", "2026-02-13T12:00:00Z")

	assert.Nil(t, m.Voice.Language)
	assert.Nil(t, m.Voice.Gender)
	assert.Nil(t, m.Prosody)
	assert.Nil(t, m.Provenance)
}
