package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate_AppliesDefaults(t *testing.T) {
	var cfg Config

	err := cfg.Validate()
	require.NoError(t, err)

	assert.Equal(t, DefaultVoxVersion, cfg.Create.VoxVersion)
	assert.Equal(t, DefaultLibraryDir, cfg.Library.Directory)
	assert.Equal(t, DefaultIndexFile, cfg.Library.IndexFile)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
	assert.NotEmpty(t, cfg.Cache.Directory)
}

func TestConfig_Validate_KeepsExplicitValues(t *testing.T) {
	cfg := Config{
		Create:  CreateConfig{VoxVersion: "0.2.0"},
		Library: LibraryConfig{Directory: "/voices", IndexFile: "voices.json"},
		Logging: LoggingConfig{Level: "debug", Format: "json"},
	}

	err := cfg.Validate()
	require.NoError(t, err)

	assert.Equal(t, "0.2.0", cfg.Create.VoxVersion)
	assert.Equal(t, "/voices", cfg.Library.Directory)
	assert.Equal(t, "voices.json", cfg.Library.IndexFile)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	assert.NotEmpty(t, dir)
	assert.Contains(t, dir, ".vox")
}
