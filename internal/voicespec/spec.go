// Package voicespec loads declarative voice specifications used by the
// create command. A spec describes the voice-identity fields of a
// manifest-to-be; identifiers and timestamps are generated at creation
// time, not written in the spec.
//
// Specs can be written in YAML or JSON:
//
//	name: Narrator
//	description: A warm, clear narrator voice for audiobooks.
//	language: en-US
//	gender: neutral
//	age_range: [30, 50]
//	tags: [warm, clear]
//	prosody:
//	  pitch_base: low
//	  rate: moderate
//	provenance:
//	  method: designed
//	  license: CC0-1.0
package voicespec

import (
	"fmt"

	"github.com/voxformat/vox-go/pkg/voxfile"
)

// Spec is a declarative description of a voice identity
type Spec struct {
	Name        string          `yaml:"name" json:"name"`
	Description string          `yaml:"description" json:"description"`
	Language    string          `yaml:"language,omitempty" json:"language,omitempty"`
	Gender      string          `yaml:"gender,omitempty" json:"gender,omitempty"`
	AgeRange    []int           `yaml:"age_range,omitempty" json:"age_range,omitempty"`
	Tags        []string        `yaml:"tags,omitempty" json:"tags,omitempty"`
	Prosody     *ProsodySpec    `yaml:"prosody,omitempty" json:"prosody,omitempty"`
	Provenance  *ProvenanceSpec `yaml:"provenance,omitempty" json:"provenance,omitempty"`
}

// ProsodySpec mirrors the manifest's prosody section
type ProsodySpec struct {
	PitchBase      string `yaml:"pitch_base,omitempty" json:"pitch_base,omitempty"`
	PitchRange     string `yaml:"pitch_range,omitempty" json:"pitch_range,omitempty"`
	Rate           string `yaml:"rate,omitempty" json:"rate,omitempty"`
	Energy         string `yaml:"energy,omitempty" json:"energy,omitempty"`
	EmotionDefault string `yaml:"emotion_default,omitempty" json:"emotion_default,omitempty"`
}

// ProvenanceSpec mirrors the manifest's provenance section
type ProvenanceSpec struct {
	Method  string `yaml:"method,omitempty" json:"method,omitempty"`
	Engine  string `yaml:"engine,omitempty" json:"engine,omitempty"`
	Consent string `yaml:"consent,omitempty" json:"consent,omitempty"`
	License string `yaml:"license,omitempty" json:"license,omitempty"`
	Notes   string `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// Validate checks the spec's required fields
func (s *Spec) Validate() error {
	if s.Name == "" {
		return ErrMissingName
	}
	if s.Description == "" {
		return ErrMissingDescription
	}
	return nil
}

// Manifest assembles a voxfile.Manifest from the spec plus the
// generated identity fields.
func (s *Spec) Manifest(voxVersion, id, created string) *voxfile.Manifest {
	m := &voxfile.Manifest{
		VoxVersion: voxVersion,
		ID:         id,
		Created:    created,
		Voice: voxfile.Voice{
			Name:        s.Name,
			Description: s.Description,
			AgeRange:    s.AgeRange,
			Tags:        s.Tags,
		},
	}
	if s.Language != "" {
		m.Voice.Language = ptr(s.Language)
	}
	if s.Gender != "" {
		m.Voice.Gender = ptr(s.Gender)
	}
	if s.Prosody != nil {
		m.Prosody = &voxfile.Prosody{
			PitchBase:      optional(s.Prosody.PitchBase),
			PitchRange:     optional(s.Prosody.PitchRange),
			Rate:           optional(s.Prosody.Rate),
			Energy:         optional(s.Prosody.Energy),
			EmotionDefault: optional(s.Prosody.EmotionDefault),
		}
	}
	if s.Provenance != nil {
		m.Provenance = &voxfile.Provenance{
			Method:  optional(s.Provenance.Method),
			Engine:  optional(s.Provenance.Engine),
			Consent: optional(s.Provenance.Consent),
			License: optional(s.Provenance.License),
			Notes:   optional(s.Provenance.Notes),
		}
	}
	return m
}

func ptr(s string) *string { return &s }

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// String implements fmt.Stringer for log output
func (s *Spec) String() string {
	return fmt.Sprintf("voice spec %q", s.Name)
}
