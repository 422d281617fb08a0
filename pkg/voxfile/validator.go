package voxfile

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Mode selects how the validator reports failures.
type Mode int

const (
	// Permissive evaluates every rule and aggregates all violations.
	Permissive Mode = iota

	// Strict stops at the first violated rule and returns it alone.
	Strict
)

// MinDescriptionLength is the minimum trimmed length of voice.description.
const MinDescriptionLength = 10

var (
	// UUID v4: version nibble fixed to 4, variant nibble in [89ab].
	// Matched against the lowercased value, so the check is
	// case-insensitive.
	uuidV4Pattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

	// Restricted ISO 8601 shape: no fractional seconds, Z offset only.
	timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`)
)

var validGenders = map[string]bool{
	"male":       true,
	"female":     true,
	"non-binary": true,
	"neutral":    true,
}

// Validate checks a manifest against the format rules. It never mutates
// the manifest and performs no I/O. A nil return means the manifest is
// valid. In Strict mode the return is the first *RuleViolation in rule
// order; in Permissive mode it is a *ValidationErrors carrying every
// violation found.
func Validate(m *Manifest, mode Mode) error {
	var violations []*RuleViolation
	for _, rule := range rules(m) {
		v := rule()
		if v == nil {
			continue
		}
		if mode == Strict {
			return v
		}
		violations = append(violations, v)
	}
	if len(violations) > 0 {
		return &ValidationErrors{Violations: violations}
	}
	return nil
}

// rules returns the rule checks in their fixed evaluation order. The
// order is part of the contract: strict mode must deterministically
// report the same first violation for the same manifest.
func rules(m *Manifest) []func() *RuleViolation {
	checks := []func() *RuleViolation{
		func() *RuleViolation { return checkNonBlank("vox_version", m.VoxVersion) },
		func() *RuleViolation { return checkID(m.ID) },
		func() *RuleViolation { return checkTimestamp(m.Created) },
		func() *RuleViolation { return checkNonBlank("voice.name", m.Voice.Name) },
		func() *RuleViolation { return checkDescription(m.Voice.Description) },
		func() *RuleViolation { return checkAgeRange(m.Voice.AgeRange) },
		func() *RuleViolation { return checkGender(m.Voice.Gender) },
	}
	for i := range m.ReferenceAudio {
		index, entry := i, m.ReferenceAudio[i]
		checks = append(checks, func() *RuleViolation {
			if strings.TrimSpace(entry.File) != "" {
				return nil
			}
			return &RuleViolation{
				Kind:    EmptyReferenceAudioPath,
				Field:   fmt.Sprintf("reference_audio[%d].file", index),
				Message: "file path must not be empty",
			}
		})
	}
	return checks
}

func checkNonBlank(field, value string) *RuleViolation {
	if strings.TrimSpace(value) != "" {
		return nil
	}
	return &RuleViolation{
		Kind:    EmptyRequiredField,
		Field:   field,
		Message: "required field must not be empty",
	}
}

func checkID(id string) *RuleViolation {
	if id != "" && uuidV4Pattern.MatchString(strings.ToLower(id)) {
		return nil
	}
	return &RuleViolation{
		Kind:    MalformedID,
		Field:   "id",
		Message: fmt.Sprintf("%q is not a valid UUID v4", id),
	}
}

func checkTimestamp(created string) *RuleViolation {
	if created != "" && timestampPattern.MatchString(created) {
		return nil
	}
	return &RuleViolation{
		Kind:    MalformedTimestamp,
		Field:   "created",
		Message: fmt.Sprintf("%q is not a timestamp of the form YYYY-MM-DDTHH:MM:SSZ", created),
	}
}

func checkDescription(description string) *RuleViolation {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return checkNonBlank("voice.description", description)
	}
	// Length is counted in characters, not bytes, so multi-byte text
	// is measured the same as ASCII.
	length := utf8.RuneCountInString(trimmed)
	if length >= MinDescriptionLength {
		return nil
	}
	return &RuleViolation{
		Kind:    DescriptionTooShort,
		Field:   "voice.description",
		Message: fmt.Sprintf("description is %d characters, minimum is %d", length, MinDescriptionLength),
	}
}

func checkAgeRange(ageRange []int) *RuleViolation {
	if len(ageRange) != 2 {
		return nil
	}
	if ageRange[0] < ageRange[1] {
		return nil
	}
	return &RuleViolation{
		Kind:    InvalidAgeRange,
		Field:   "voice.age_range",
		Message: fmt.Sprintf("minimum age %d must be less than maximum age %d", ageRange[0], ageRange[1]),
	}
}

func checkGender(gender *string) *RuleViolation {
	if gender == nil || validGenders[*gender] {
		return nil
	}
	return &RuleViolation{
		Kind:    InvalidGender,
		Field:   "voice.gender",
		Message: fmt.Sprintf("%q is not one of male, female, non-binary, neutral", *gender),
	}
}
