package journal

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/subhdotsol/FileOrganizer/pkg/logger"
)

// Bucket names.
var (
	bucketRuns     = []byte("runs")     // runID -> RunSummary JSON
	bucketOutcomes = []byte("outcomes") // runID -> nested bucket of seq -> Outcome JSON
)

// Config contains journal configuration.
type Config struct {
	// DBPath is the BoltDB file location. Parent directories are
	// created as needed.
	DBPath string

	// Timeout bounds the wait for the database file lock.
	// Default: 1s.
	Timeout time.Duration
}

// boltJournal implements Journal using BoltDB.
type boltJournal struct {
	db     *bolt.DB
	logger logger.Logger

	mu     sync.Mutex
	closed bool
}

// NewBolt creates a BoltDB-backed journal.
//
// Parameters:
//   - cfg: Journal configuration
//   - log: Logger instance
//
// Returns:
//   - Configured Journal
//   - Error if the database cannot be opened or initialized
func NewBolt(cfg Config, log logger.Logger) (Journal, error) {
	// Set default timeout.
	if cfg.Timeout == 0 {
		cfg.Timeout = time.Second
	}

	dir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	db, err := bolt.Open(cfg.DBPath, 0600, &bolt.Options{
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database: %w", err)
	}

	// Initialize buckets.
	if err := db.Update(func(tx *bolt.Tx) error {
		if _, createErr := tx.CreateBucketIfNotExists(bucketRuns); createErr != nil {
			return fmt.Errorf("failed to create runs bucket: %w", createErr)
		}
		if _, createErr := tx.CreateBucketIfNotExists(bucketOutcomes); createErr != nil {
			return fmt.Errorf("failed to create outcomes bucket: %w", createErr)
		}
		return nil
	}); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			log.Error("failed to close journal after initialization error",
				"error", closeErr)
		}
		return nil, err
	}

	log.Info("journal opened", "db_path", cfg.DBPath)

	return &boltJournal{
		db:     db,
		logger: log,
	}, nil
}

// BeginRun implements Journal.BeginRun.
func (j *boltJournal) BeginRun(watch bool) (string, error) {
	if err := j.ensureOpen(); err != nil {
		return "", err
	}

	start := time.Now()
	runID := newRunID(start)

	summary := RunSummary{
		ID:        runID,
		Watch:     watch,
		StartedAt: start,
	}

	err := j.db.Update(func(tx *bolt.Tx) error {
		data, marshalErr := json.Marshal(summary)
		if marshalErr != nil {
			return fmt.Errorf("failed to marshal run summary: %w", marshalErr)
		}

		if putErr := tx.Bucket(bucketRuns).Put([]byte(runID), data); putErr != nil {
			return fmt.Errorf("failed to store run: %w", putErr)
		}

		if _, createErr := tx.Bucket(bucketOutcomes).CreateBucketIfNotExists([]byte(runID)); createErr != nil {
			return fmt.Errorf("failed to create run outcomes bucket: %w", createErr)
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	j.logger.Info("run started", "run_id", runID, "watch", watch)
	return runID, nil
}

// Record implements Journal.Record.
func (j *boltJournal) Record(runID string, outcome Outcome) error {
	if err := j.ensureOpen(); err != nil {
		return err
	}

	if outcome.Timestamp.IsZero() {
		outcome.Timestamp = time.Now()
	}

	return j.db.Update(func(tx *bolt.Tx) error {
		runBucket := tx.Bucket(bucketOutcomes).Bucket([]byte(runID))
		if runBucket == nil {
			return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}

		seq, seqErr := runBucket.NextSequence()
		if seqErr != nil {
			return fmt.Errorf("failed to allocate outcome sequence: %w", seqErr)
		}

		data, marshalErr := json.Marshal(outcome)
		if marshalErr != nil {
			return fmt.Errorf("failed to marshal outcome: %w", marshalErr)
		}

		if putErr := runBucket.Put(itob(seq), data); putErr != nil {
			return fmt.Errorf("failed to store outcome: %w", putErr)
		}

		return nil
	})
}

// FinishRun implements Journal.FinishRun.
func (j *boltJournal) FinishRun(summary RunSummary) error {
	if err := j.ensureOpen(); err != nil {
		return err
	}

	if summary.FinishedAt.IsZero() {
		summary.FinishedAt = time.Now()
	}

	return j.db.Update(func(tx *bolt.Tx) error {
		runs := tx.Bucket(bucketRuns)

		stored := runs.Get([]byte(summary.ID))
		if stored == nil {
			return fmt.Errorf("%w: %s", ErrRunNotFound, summary.ID)
		}

		// Keep the start time BeginRun recorded.
		if summary.StartedAt.IsZero() {
			var existing RunSummary
			if unmarshalErr := json.Unmarshal(stored, &existing); unmarshalErr == nil {
				summary.StartedAt = existing.StartedAt
			}
		}

		data, marshalErr := json.Marshal(summary)
		if marshalErr != nil {
			return fmt.Errorf("failed to marshal run summary: %w", marshalErr)
		}

		if putErr := runs.Put([]byte(summary.ID), data); putErr != nil {
			return fmt.Errorf("failed to update run: %w", putErr)
		}

		return nil
	})
}

// Runs implements Journal.Runs.
func (j *boltJournal) Runs() ([]RunSummary, error) {
	if err := j.ensureOpen(); err != nil {
		return nil, err
	}

	var runs []RunSummary

	err := j.db.View(func(tx *bolt.Tx) error {
		// Run IDs sort chronologically, so a forward cursor walk is
		// already oldest-first.
		return tx.Bucket(bucketRuns).ForEach(func(_, v []byte) error {
			var summary RunSummary
			if unmarshalErr := json.Unmarshal(v, &summary); unmarshalErr != nil {
				return fmt.Errorf("failed to unmarshal run summary: %w", unmarshalErr)
			}
			runs = append(runs, summary)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return runs, nil
}

// Outcomes implements Journal.Outcomes.
func (j *boltJournal) Outcomes(runID string) ([]Outcome, error) {
	if err := j.ensureOpen(); err != nil {
		return nil, err
	}

	var outcomes []Outcome

	err := j.db.View(func(tx *bolt.Tx) error {
		runBucket := tx.Bucket(bucketOutcomes).Bucket([]byte(runID))
		if runBucket == nil {
			return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}

		return runBucket.ForEach(func(_, v []byte) error {
			var outcome Outcome
			if unmarshalErr := json.Unmarshal(v, &outcome); unmarshalErr != nil {
				return fmt.Errorf("failed to unmarshal outcome: %w", unmarshalErr)
			}
			outcomes = append(outcomes, outcome)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return outcomes, nil
}

// Close implements Journal.Close.
func (j *boltJournal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return nil
	}
	j.closed = true

	if err := j.db.Close(); err != nil {
		return fmt.Errorf("failed to close journal database: %w", err)
	}

	j.logger.Info("journal closed")
	return nil
}

// ensureOpen reports ErrJournalClosed after Close.
func (j *boltJournal) ensureOpen() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return ErrJournalClosed
	}
	return nil
}

// itob converts a bucket sequence number to a sortable big-endian key.
func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
