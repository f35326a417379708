// Package main provides the fileorganizer CLI application.
//
// File Organizer sorts a directory tree into category/date folders based on
// file extension and modification time, with content-hash duplicate detection.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

// version is set during build time.
var version = "dev"

func main() {
	if err := run(); err != nil {
		if errors.Is(err, errFilesFailed) {
			// The summary already names each failed file.
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the main application logic.
func run() error {
	// Define global flags.
	configPath := flag.String("config", "", "path to configuration file")
	showVersion := flag.Bool("version", false, "show version information")

	// Parse command.
	flag.Parse()

	// Handle version flag.
	if *showVersion {
		fmt.Printf("fileorganizer %s\n", version)
		return nil
	}

	// Get command.
	args := flag.Args()
	if len(args) == 0 {
		return showUsage()
	}

	command := args[0]

	switch command {
	case "run":
		return runOrganizeCommand(*configPath, args[1:], false)
	case "watch":
		return runOrganizeCommand(*configPath, args[1:], true)
	case "runs":
		return runRunsCommand(*configPath, args[1:])
	case "config":
		return runConfigCommand(*configPath, args[1:])
	case "help":
		return showUsage()
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

// runOrganizeCommand runs the run or watch command.
func runOrganizeCommand(configPath string, args []string, watch bool) error {
	// Define organize-specific flags.
	name := "run"
	if watch {
		name = "watch"
	}
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	source := fs.String("source", "", "directory tree to organize")
	dest := fs.String("dest", "", "destination root (default: organize in place)")
	workers := fs.Int("workers", 0, "concurrent file processors")
	policy := fs.String("duplicates", "", "duplicate policy (move, delete)")
	format := fs.String("format", "", "summary format (table, json, simple)")
	compact := fs.Bool("compact", false, "compact JSON output")
	journal := fs.Bool("journal", false, "record run outcomes in the journal")
	debounce := fs.Duration("debounce", 0, "watch-mode quiet period (e.g. 500ms)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cmd := &organizeCommand{
		source:     *source,
		dest:       *dest,
		workers:    *workers,
		policy:     *policy,
		format:     *format,
		compact:    *compact,
		journal:    *journal,
		debounce:   *debounce,
		watch:      watch,
		configPath: configPath,
	}

	return cmd.Execute()
}

// runRunsCommand runs the runs command.
func runRunsCommand(configPath string, args []string) error {
	fs := flag.NewFlagSet("runs", flag.ExitOnError)
	journalPath := fs.String("journal", "", "path to the run journal")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cmd := &runsCommand{
		journalPath: *journalPath,
		configPath:  configPath,
	}

	return cmd.Execute(fs.Args())
}

// runConfigCommand runs the config command.
func runConfigCommand(configPath string, args []string) error {
	cmd := &configCommand{
		configPath: configPath,
	}
	return cmd.Execute(args)
}

// showUsage displays usage information.
func showUsage() error {
	usage := `File Organizer - sort files into category/date folders

Usage:
  fileorganizer [flags] <command> [command flags]

Commands:
  run         Organize the source tree once and exit
  watch       Organize, then keep watching for new files
  runs        Inspect recorded runs (requires the journal)
  config      Configuration management (show, path, reset)
  help        Show this help message

Global Flags:
  -config     Path to configuration file
  -version    Show version information

Run / Watch Command Flags:
  -source     Directory tree to organize
  -dest       Destination root (default: organize in place)
  -workers    Concurrent file processors (default: 4)
  -duplicates Duplicate policy: move or delete (default: move)
  -format     Summary format (table, json, simple)
  -compact    Compact JSON output
  -journal    Record run outcomes in the journal
  -debounce   Watch-mode quiet period (default: 500ms)

Runs Command Flags:
  -journal    Path to the run journal

Examples:
  # Organize ~/Downloads in place
  fileorganizer run -source ~/Downloads

  # Organize into a separate tree with 8 workers
  fileorganizer run -source ~/Downloads -dest ~/Sorted -workers 8

  # Delete duplicates instead of quarantining them
  fileorganizer run -source ~/Downloads -duplicates delete

  # Keep watching for new files until interrupted
  fileorganizer watch -source ~/Downloads

  # Machine-readable summary
  fileorganizer run -source ~/Downloads -format json

  # Record outcomes and inspect them later
  fileorganizer run -source ~/Downloads -journal
  fileorganizer runs
  fileorganizer runs 20260824T103000.000000000

  # Configuration management
  fileorganizer config show
  fileorganizer config reset

Exit codes:
  0  every file reached a terminal state without failures
  1  fatal error (bad flags, unreadable source, bad config)
  2  the pass finished but some files failed; see the summary

Version: %s
`

	fmt.Printf(usage, version)
	return nil
}
