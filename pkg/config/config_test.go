package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	// Verify defaults are set
	if cfg.Source == "" {
		t.Error("Source is empty")
	}

	if cfg.Organize.Workers <= 0 {
		t.Error("Workers not set")
	}

	if cfg.Organize.DuplicatePolicy == "" {
		t.Error("DuplicatePolicy not set")
	}

	if cfg.Watch.Debounce <= 0 {
		t.Error("Debounce not set")
	}

	if cfg.Logging.Level == "" {
		t.Error("Log level not set")
	}
}

func validConfig() *Config {
	return &Config{
		Source: "/downloads",
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
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "no source",
			mutate:  func(c *Config) { c.Source = "" },
			wantErr: true,
		},
		{
			name:    "invalid workers",
			mutate:  func(c *Config) { c.Organize.Workers = 0 },
			wantErr: true,
		},
		{
			name:    "invalid max probes",
			mutate:  func(c *Config) { c.Organize.MaxProbes = -1 },
			wantErr: true,
		},
		{
			name:    "invalid duplicate policy",
			mutate:  func(c *Config) { c.Organize.DuplicatePolicy = "shred" },
			wantErr: true,
		},
		{
			name:    "invalid debounce",
			mutate:  func(c *Config) { c.Watch.Debounce = 0 },
			wantErr: true,
		},
		{
			name:    "invalid report format",
			mutate:  func(c *Config) { c.Report.Format = "xml" },
			wantErr: true,
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid config file",
			content: `
source: /downloads
dest: /sorted
organize:
  workers: 8
  duplicate_policy: delete
  max_probes: 50
watch:
  debounce: 250ms
report:
  format: json
  compact: true
storage:
  journal_path: /tmp/journal.db
  journal_enabled: true
logging:
  level: debug
  output: stdout
  format: json
`,
			wantErr: false,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Source != "/downloads" {
					t.Errorf("Source = %s, want /downloads", cfg.Source)
				}
				if cfg.Dest != "/sorted" {
					t.Errorf("Dest = %s, want /sorted", cfg.Dest)
				}
				if cfg.Organize.Workers != 8 {
					t.Errorf("Workers = %d, want 8", cfg.Organize.Workers)
				}
				if cfg.Organize.DuplicatePolicy != "delete" {
					t.Errorf("DuplicatePolicy = %s, want delete", cfg.Organize.DuplicatePolicy)
				}
				if cfg.Organize.DuplicatesDir != "duplicates" {
					t.Errorf("DuplicatesDir = %s, want default kept", cfg.Organize.DuplicatesDir)
				}
				if cfg.Watch.Debounce != 250*time.Millisecond {
					t.Errorf("Debounce = %v, want 250ms", cfg.Watch.Debounce)
				}
				if cfg.Report.Format != "json" || !cfg.Report.Compact {
					t.Errorf("Report = %+v, want compact json", cfg.Report)
				}
				if !cfg.Storage.JournalEnabled {
					t.Error("JournalEnabled = false, want true")
				}
				if cfg.Logging.Level != "debug" {
					t.Errorf("LogLevel = %s, want debug", cfg.Logging.Level)
				}
			},
		},
		{
			name:    "invalid yaml",
			content: `invalid: yaml: content: [`,
			wantErr: true,
		},
		{
			name:    "non-existent file",
			content: "", // Will not create file
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var filePath string

			if tt.name != "non-existent file" {
				filePath = filepath.Join(tmpDir, tt.name+".yaml")
				if err := os.WriteFile(filePath, []byte(tt.content), 0600); err != nil {
					t.Fatalf("Failed to create test file: %v", err)
				}
			} else {
				filePath = filepath.Join(tmpDir, "nonexistent.yaml")
			}

			loader := NewLoader(filePath)
			cfg, err := loader.Load()

			if tt.wantErr {
				if err == nil {
					t.Error("Load() error = nil, wantErr = true")
				}
				return
			}

			if err != nil {
				t.Errorf("Load() error = %v, wantErr = false", err)
				return
			}

			if cfg == nil {
				t.Error("Load() returned nil config")
				return
			}

			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	// Test default loading (no config file)
	cfg, err := Load()
	if err != nil {
		t.Errorf("Load() error = %v, want nil", err)
	}

	if cfg == nil {
		t.Fatal("Load() returned nil")
	}

	// Should have default values
	if cfg.Source == "" {
		t.Error("Load() returned config with no source")
	}
}

func TestSave(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	cfg := Default()
	cfg.Logging.Level = "debug"

	// Save config
	if err := Save(cfg, configPath); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Verify file exists
	if _, err := os.Stat(configPath); err != nil {
		t.Errorf("Config file not created: %v", err)
	}

	// Load it back and verify
	loadedCfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if loadedCfg.Logging.Level != "debug" {
		t.Errorf("Loaded config LogLevel = %s, want debug", loadedCfg.Logging.Level)
	}
}

func TestEnvVarOverrides(t *testing.T) {
	t.Setenv("FILEORGANIZER_SOURCE", "/env/downloads")
	t.Setenv("FILEORGANIZER_DEST", "/env/sorted")
	t.Setenv("FILEORGANIZER_JOURNAL", "/env/journal.db")
	t.Setenv("FILEORGANIZER_LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Source != "/env/downloads" {
		t.Errorf("Source = %s, want /env/downloads", cfg.Source)
	}

	if cfg.Dest != "/env/sorted" {
		t.Errorf("Dest = %s, want /env/sorted", cfg.Dest)
	}

	if cfg.Storage.JournalPath != "/env/journal.db" {
		t.Errorf("JournalPath = %s, want /env/journal.db", cfg.Storage.JournalPath)
	}
	if !cfg.Storage.JournalEnabled {
		t.Error("JournalEnabled = false, want true when FILEORGANIZER_JOURNAL is set")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("LogLevel = %s, want debug", cfg.Logging.Level)
	}
}

// Benchmark config loading.
func BenchmarkLoad(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := Load()
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkValidate(b *testing.B) {
	cfg := Default()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := cfg.Validate(); err != nil {
			b.Fatal(err)
		}
	}
}
