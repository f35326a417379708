package config

import "errors"

// Common errors returned by the config package.
var (
	// ErrNoSource is returned when no source directory is specified.
	ErrNoSource = errors.New("no source directory specified")

	// ErrInvalidWorkers is returned when the worker count is <= 0.
	ErrInvalidWorkers = errors.New("invalid worker count: must be > 0")

	// ErrInvalidMaxProbes is returned when the probe bound is <= 0.
	ErrInvalidMaxProbes = errors.New("invalid max probes: must be > 0")

	// ErrInvalidDuplicatePolicy is returned when the duplicate policy is not recognized.
	ErrInvalidDuplicatePolicy = errors.New("invalid duplicate policy: must be move or delete")

	// ErrInvalidDebounce is returned when the debounce interval is <= 0.
	ErrInvalidDebounce = errors.New("invalid debounce: must be > 0")

	// ErrInvalidReportFormat is returned when the report format is not recognized.
	ErrInvalidReportFormat = errors.New("invalid report format: must be table, json, or simple")

	// ErrInvalidLogLevel is returned when the log level is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level: must be debug, info, warn, or error")

	// ErrInvalidLogFormat is returned when the log format is not recognized.
	ErrInvalidLogFormat = errors.New("invalid log format: must be text or json")

	// ErrConfigNotFound is returned when config file is not found.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidYAML is returned when config file has invalid YAML syntax.
	ErrInvalidYAML = errors.New("invalid YAML syntax in config file")
)
