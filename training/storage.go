//go:build nnue_training

package training

import (
	"encoding/json"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"
)

// snapshotKey is the single badger key a Store's snapshot lives under —
// the same "one small JSON blob per logical record, keyed by name"
// shape the teacher's internal/storage package uses for preferences and
// stats.
const snapshotKey = "training/snapshot"

// Store persists a Trainer's Snapshot through an embedded badger
// database, the key-value store the teacher uses for its own durable
// state.
type Store struct {
	db *badger.DB
}

// Open opens (creating if needed) a badger database rooted at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("training: open store at %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save persists snap, overwriting any previous snapshot.
func (s *Store) Save(snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("training: marshal snapshot: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(snapshotKey), data)
	})
}

// Restore reads back the most recently saved snapshot. A store that has
// never been saved to returns the zero Snapshot and no error, the same
// default-on-not-found behavior the teacher's LoadPreferences/LoadStats
// use.
func (s *Store) Restore() (Snapshot, error) {
	var snap Snapshot
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(snapshotKey))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snap)
		})
	})
	if err != nil {
		return Snapshot{}, fmt.Errorf("training: restore snapshot: %w", err)
	}
	return snap, nil
}

// HealthReport summarizes what CheckHealth found.
type HealthReport struct {
	HasSnapshot bool
	Epoch       int
	SavedAtUnix int64
}

// CheckHealth reads the current snapshot back and logs its staleness
// through logrus, returning a summary for programmatic callers.
func (s *Store) CheckHealth(nowUnix int64) (HealthReport, error) {
	snap, err := s.Restore()
	if err != nil {
		return HealthReport{}, err
	}
	report := HealthReport{
		HasSnapshot: snap.SavedAtUnix != 0,
		Epoch:       snap.Epoch,
		SavedAtUnix: snap.SavedAtUnix,
	}
	if !report.HasSnapshot {
		logrus.Warn("training: no snapshot found")
		return report, nil
	}
	ageSeconds := nowUnix - snap.SavedAtUnix
	entry := logrus.WithFields(logrus.Fields{
		"epoch":      snap.Epoch,
		"ageSeconds": ageSeconds,
	})
	if ageSeconds > 24*3600 {
		entry.Warn("training: snapshot is more than a day old")
	} else {
		entry.Info("training: snapshot is current")
	}
	return report, nil
}
