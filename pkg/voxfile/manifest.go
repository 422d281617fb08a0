package voxfile

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Struct fields below are declared in lexicographic JSON-key order.
// encoding/json emits struct fields in declaration order and sorts map
// keys, so Encode output is canonical at every nesting level.

// Manifest is the root metadata structure of a .vox archive, the decoded
// contents of its manifest.json. Optional sections are pointers so that
// an absent section stays distinct from a present-but-empty one.
type Manifest struct {
	Character      *Character       `json:"character,omitempty"`
	Created        string           `json:"created"`
	Extensions     map[string]any   `json:"extensions,omitempty"`
	ID             string           `json:"id"`
	Prosody        *Prosody         `json:"prosody,omitempty"`
	Provenance     *Provenance      `json:"provenance,omitempty"`
	ReferenceAudio []ReferenceAudio `json:"reference_audio,omitempty"`
	Voice          Voice            `json:"voice"`
	VoxVersion     string           `json:"vox_version"`
}

// Voice is the core identity block: display name, natural language
// description and optional attributes. The description doubles as the
// prompt for voice design engines and must be at least 10 characters.
type Voice struct {
	AgeRange    []int    `json:"age_range,omitempty"`
	Description string   `json:"description"`
	Gender      *string  `json:"gender,omitempty"`
	Language    *string  `json:"language,omitempty"`
	Name        string   `json:"name"`
	Tags        []string `json:"tags,omitempty"`
}

// Prosody holds qualitative descriptors of speaking style. Values are
// free text rather than numbers to stay engine-agnostic.
type Prosody struct {
	EmotionDefault *string `json:"emotion_default,omitempty"`
	Energy         *string `json:"energy,omitempty"`
	PitchBase      *string `json:"pitch_base,omitempty"`
	PitchRange     *string `json:"pitch_range,omitempty"`
	Rate           *string `json:"rate,omitempty"`
}

// ReferenceAudio describes one audio clip bundled under reference/ in
// the archive. File is the archive-relative path; Transcript may be
// empty but is always emitted.
type ReferenceAudio struct {
	Context         *string  `json:"context,omitempty"`
	DurationSeconds *float64 `json:"duration_seconds,omitempty"`
	File            string   `json:"file"`
	Language        *string  `json:"language,omitempty"`
	Transcript      string   `json:"transcript"`
}

// Character provides narrative context for screenplay-aware casting.
type Character struct {
	EmotionalRange []string          `json:"emotional_range,omitempty"`
	Relationships  map[string]string `json:"relationships,omitempty"`
	Role           *string           `json:"role,omitempty"`
	Source         *Source           `json:"source,omitempty"`
}

// Source links a character back to its script or screenplay.
type Source struct {
	File   *string `json:"file,omitempty"`
	Format *string `json:"format,omitempty"`
	Work   *string `json:"work,omitempty"`
}

// Provenance documents how a voice was created and under what consent
// and license terms. Method is "designed", "cloned", "preset" or
// "hybrid" by convention, not enforced as an enum.
type Provenance struct {
	Consent *string `json:"consent,omitempty"`
	Engine  *string `json:"engine,omitempty"`
	License *string `json:"license,omitempty"`
	Method  *string `json:"method,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

// DecodeManifest parses JSON text into a Manifest. Unknown keys are
// ignored at every nesting level for forward compatibility. Numbers in
// the extensions tree are kept as json.Number so opaque payloads
// re-encode without reformatting.
func DecodeManifest(data []byte) (*Manifest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after manifest object", ErrInvalidManifest)
	}
	return &m, nil
}

// Encode produces the canonical JSON encoding of the manifest: 2-space
// indentation, lexicographic key order, absent fields omitted, HTML
// escaping disabled. Two encodes of the same manifest are byte-identical.
func (m *Manifest) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	// Encoder appends a newline after the top-level value.
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
