package config

import (
	"os"
	"path/filepath"
)

// defaultJournalPath returns the default run-journal file path.
//
// Returns: ~/.config/fileorganizer/journal.db.
func defaultJournalPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./journal.db"
	}

	return filepath.Join(homeDir, ".config", "fileorganizer", "journal.db")
}

// defaultConfigPath returns the default configuration file path.
//
// Returns: ~/.config/fileorganizer/config.yaml.
func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./config.yaml"
	}

	return filepath.Join(homeDir, ".config", "fileorganizer", "config.yaml")
}
