package voxfile

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for archive-level failures
var (
	// ErrInvalidArchive indicates the input is not a readable ZIP container
	ErrInvalidArchive = errors.New("not a valid vox archive")

	// ErrManifestNotFound indicates no manifest.json exists at the archive root
	ErrManifestNotFound = errors.New("manifest.json not found in archive")

	// ErrInvalidManifest indicates manifest.json is present but cannot be decoded
	ErrInvalidManifest = errors.New("cannot decode manifest")

	// ErrWriteFailed indicates archive construction or the post-write check failed
	ErrWriteFailed = errors.New("failed to write vox archive")
)

// ViolationKind discriminates validation rule failures so callers can
// match on kind without parsing messages.
type ViolationKind string

const (
	EmptyRequiredField      ViolationKind = "empty_required_field"
	MalformedID             ViolationKind = "malformed_id"
	MalformedTimestamp      ViolationKind = "malformed_timestamp"
	DescriptionTooShort     ViolationKind = "description_too_short"
	InvalidAgeRange         ViolationKind = "invalid_age_range"
	InvalidGender           ViolationKind = "invalid_gender"
	EmptyReferenceAudioPath ViolationKind = "empty_reference_audio_path"
)

// RuleViolation is a single validation failure: the violated rule's
// kind, the dotted field path it concerns and a human-readable message.
type RuleViolation struct {
	Kind    ViolationKind
	Field   string
	Message string
}

func (v *RuleViolation) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// ValidationErrors aggregates every violation found in permissive mode.
type ValidationErrors struct {
	Violations []*RuleViolation
}

func (e *ValidationErrors) Error() string {
	if len(e.Violations) == 1 {
		return e.Violations[0].Error()
	}
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.Error()
	}
	return fmt.Sprintf("%d validation errors: %s", len(e.Violations), strings.Join(parts, "; "))
}
