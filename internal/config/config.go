package config

// Config represents the application configuration
type Config struct {
	Create  CreateConfig  `mapstructure:"create" yaml:"create"`
	Library LibraryConfig `mapstructure:"library" yaml:"library"`
	Cache   CacheConfig   `mapstructure:"cache" yaml:"cache"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// CreateConfig contains defaults applied when creating new archives
type CreateConfig struct {
	VoxVersion string `mapstructure:"vox_version" yaml:"vox_version"`
}

// LibraryConfig contains voice library settings
type LibraryConfig struct {
	Directory string `mapstructure:"directory" yaml:"directory"`
	IndexFile string `mapstructure:"index_file" yaml:"index_file"`
}

// CacheConfig contains manifest cache settings used by the indexer
type CacheConfig struct {
	Enabled   bool   `mapstructure:"enabled" yaml:"enabled"`
	Directory string `mapstructure:"directory" yaml:"directory"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration and falls back to defaults for
// invalid values
func (c *Config) Validate() error {
	if c.Create.VoxVersion == "" {
		c.Create.VoxVersion = DefaultVoxVersion
	}
	if c.Library.Directory == "" {
		c.Library.Directory = DefaultLibraryDir
	}
	if c.Library.IndexFile == "" {
		c.Library.IndexFile = DefaultIndexFile
	}
	if c.Cache.Directory == "" {
		c.Cache.Directory = DefaultCacheDir()
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}
