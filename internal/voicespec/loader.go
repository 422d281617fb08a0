package voicespec

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for the voicespec package
var (
	// ErrFileNotFound indicates the spec file does not exist
	ErrFileNotFound = errors.New("voice spec file not found")

	// ErrInvalidFormat indicates the spec file is not valid YAML or JSON
	ErrInvalidFormat = errors.New("voice spec must be valid YAML or JSON")

	// ErrUnsupportedExt indicates an unsupported file extension
	ErrUnsupportedExt = errors.New("unsupported file extension (use .yaml, .yml, or .json)")

	// ErrMissingName indicates the spec is missing the required name field
	ErrMissingName = errors.New("voice spec must set a name")

	// ErrMissingDescription indicates the spec is missing the required description field
	ErrMissingDescription = errors.New("voice spec must set a description")
)

// Loader loads and validates voice spec files
type Loader struct{}

// NewLoader creates a new spec loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses a voice spec file from the given path
func (l *Loader) Load(path string) (*Spec, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read voice spec: %w", err)
	}

	return l.LoadFromBytes(data, filepath.Ext(path))
}

// LoadFromBytes parses a voice spec from raw bytes
func (l *Loader) LoadFromBytes(data []byte, ext string) (*Spec, error) {
	ext = strings.ToLower(ext)

	var spec Spec
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &spec); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &spec); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExt, ext)
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}

	return &spec, nil
}
