// Package config provides configuration management for fileorganizer.
//
// Configuration is loaded from multiple sources with the following precedence:
// 1. Command-line flags (highest priority)
// 2. Environment variables
// 3. Configuration file
// 4. Default values (lowest priority)
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Source: %s\n", cfg.Source)
package config

import (
	"time"
)

// Config represents the complete application configuration.
//
// Invariants:
// - Source must be non-empty
// - Organize.Workers must be > 0
// - Organize.MaxProbes must be > 0
// - Organize.DuplicatePolicy must be move or delete
// - Watch.Debounce must be > 0.
type Config struct {
	// Source is the directory tree to organize
	Source string `yaml:"source"`

	// Dest is where category directories are created.
	// Empty means organize in place under Source.
	Dest string `yaml:"dest"`

	// Organize settings
	Organize OrganizeConfig `yaml:"organize"`

	// Watch settings
	Watch WatchConfig `yaml:"watch"`

	// Report settings
	Report ReportConfig `yaml:"report"`

	// Storage settings
	Storage StorageConfig `yaml:"storage"`

	// Logging settings
	Logging LoggingConfig `yaml:"logging"`
}

// OrganizeConfig contains file-processing settings.
type OrganizeConfig struct {
	// Number of concurrent file processors
	Workers int `yaml:"workers"`

	// What to do with duplicate content (move, delete)
	DuplicatePolicy string `yaml:"duplicate_policy"`

	// Holding directory name for duplicates, relative to the
	// destination root
	DuplicatesDir string `yaml:"duplicates_dir"`

	// Maximum collision probes per file name
	MaxProbes int `yaml:"max_probes"`
}

// WatchConfig contains watch-mode settings.
type WatchConfig struct {
	// Quiet period a path must hold before it is processed
	Debounce time.Duration `yaml:"debounce"`
}

// ReportConfig contains run-summary output settings.
type ReportConfig struct {
	// Output format (table, json, simple)
	Format string `yaml:"format"`

	// Emit compact JSON instead of indented
	Compact bool `yaml:"compact"`
}

// StorageConfig contains storage-related settings.
type StorageConfig struct {
	// Path to the BoltDB run journal
	JournalPath string `yaml:"journal_path"`

	// Record run outcomes in the journal
	JournalEnabled bool `yaml:"journal_enabled"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Log level (debug, info, warn, error)
	Level string `yaml:"level"`

	// Log output destination (stdout, stderr, file path)
	Output string `yaml:"output"`

	// Log format (text, json)
	Format string `yaml:"format"`
}

// Validate checks if the configuration satisfies all invariants.
//
// Returns an error if any invariant is violated:
//   - No source directory specified
//   - Invalid worker count (must be > 0)
//   - Invalid probe bound (must be > 0)
//   - Invalid duplicate policy
//   - Invalid debounce (must be > 0)
//   - Invalid report format
//   - Invalid log level
//
// Thread-safety: This method is read-only and thread-safe.
func (c *Config) Validate() error {
	if c.Source == "" {
		return ErrNoSource
	}

	if c.Organize.Workers <= 0 {
		return ErrInvalidWorkers
	}
	if c.Organize.MaxProbes <= 0 {
		return ErrInvalidMaxProbes
	}

	validPolicies := map[string]bool{
		"move":   true,
		"delete": true,
	}
	if !validPolicies[c.Organize.DuplicatePolicy] {
		return ErrInvalidDuplicatePolicy
	}

	if c.Watch.Debounce <= 0 {
		return ErrInvalidDebounce
	}

	validFormats := map[string]bool{
		"table":  true,
		"json":   true,
		"simple": true,
	}
	if !validFormats[c.Report.Format] {
		return ErrInvalidReportFormat
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[c.Logging.Format] {
		return ErrInvalidLogFormat
	}

	return nil
}

// Default returns a configuration with sensible default values.
func Default() *Config {
	return &Config{
		Source: ".",
		Organize: OrganizeConfig{
			Workers:         4,
			DuplicatePolicy: "move",
			DuplicatesDir:   "duplicates",
			MaxProbes:       1000,
		},
		Watch: WatchConfig{
			Debounce: 500 * time.Millisecond,
		},
		Report: ReportConfig{
			Format: "table",
		},
		Storage: StorageConfig{
			JournalPath:    defaultJournalPath(),
			JournalEnabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: "stderr",
			Format: "text",
		},
	}
}
