// Package history keeps a log of completed searches in BadgerDB. Records are
// keyed by completion time so that listing newest-first is a reverse prefix
// scan.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/katalvlaran/pathviz/search"
)

const keyPrefix = "run:"

// ErrClosed indicates use of a Store after Close.
var ErrClosed = errors.New("history: store is closed")

// Record is one completed search.
type Record struct {
	RunID      string         `json:"runId"`
	Board      string         `json:"board"`
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Diagonal   bool           `json:"diagonal"`
	Summary    search.Summary `json:"summary"`
	FinishedAt time.Time      `json:"finishedAt"`
}

// Store is a BadgerDB-backed run log. It is safe for concurrent use.
type Store struct {
	db  *badger.DB
	log *slog.Logger
}

// Open opens the store in dir. An empty dir keeps everything in memory.
func Open(dir string, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("history: open %q: %w", dir, err)
	}

	return &Store{db: db, log: log}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s.db.IsClosed() {
		return nil
	}
	return s.db.Close()
}

// Put appends rec. A zero FinishedAt is set to the current time.
func (s *Store) Put(rec Record) error {
	if s.db.IsClosed() {
		return ErrClosed
	}
	if rec.FinishedAt.IsZero() {
		rec.FinishedAt = time.Now()
	}
	value, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("history: encode %s: %w", rec.RunID, err)
	}
	key := recordKey(rec)

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		s.log.Warn("history write failed",
			slog.String("run", rec.RunID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("history: write %s: %w", rec.RunID, err)
	}

	return nil
}

// Recent returns up to limit records, newest first. limit ≤ 0 returns all.
func (s *Store) Recent(limit int) ([]Record, error) {
	if s.db.IsClosed() {
		return nil, ErrClosed
	}
	var out []Record
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		// Reverse iteration must seek past the last key of the prefix.
		for it.Seek([]byte(keyPrefix + "\xff")); it.ValidForPrefix([]byte(keyPrefix)); it.Next() {
			if limit > 0 && len(out) >= limit {
				break
			}
			var rec Record
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return fmt.Errorf("history: decode %s: %w", it.Item().Key(), err)
			}
			out = append(out, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Get returns the record of runID, scanning the log.
func (s *Store) Get(runID string) (Record, bool, error) {
	recs, err := s.Recent(0)
	if err != nil {
		return Record{}, false, err
	}
	for _, r := range recs {
		if r.RunID == runID {
			return r, true, nil
		}
	}
	return Record{}, false, nil
}

// recordKey orders records by completion time; the run id breaks ties.
func recordKey(rec Record) []byte {
	return []byte(fmt.Sprintf("%s%020d:%s", keyPrefix, rec.FinishedAt.UnixNano(), rec.RunID))
}
