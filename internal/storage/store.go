package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"

	"github.com/htmlpg/pvfll-portal/internal/constants"
	"github.com/htmlpg/pvfll-portal/internal/entities"
)

const (
	KeyBoxSnapshot   = "boxes/snapshot"
	KeyInstallReport = "install/last"
)

// Store keeps JSON documents in badger.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) badger database at path.
func Open(path string) (s *Store, err error) {
	if err = os.MkdirAll(path, constants.FilePerm); err != nil {
		return s, fmt.Errorf("Open: %w", err)
	}

	options := badger.DefaultOptions(path).
		WithLogger(NewBadgerLogger()).
		WithMemTableSize(8 << 20)

	db, err := badger.Open(options)
	if err != nil {
		return s, fmt.Errorf("Open: %w", err)
	}

	return &Store{db: db}, nil
}

// OpenInMemory opens a non-persistent store.
func OpenInMemory() (s *Store, err error) {
	options := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(NewBadgerLogger())

	db, err := badger.Open(options)
	if err != nil {
		return s, fmt.Errorf("OpenInMemory: %w", err)
	}

	return &Store{db: db}, nil
}

// Put stores value under key as JSON.
func (s *Store) Put(key string, value any) (err error) {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("Put: %w", err)
	}

	if err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	}); err != nil {
		return fmt.Errorf("Put: %w", err)
	}

	return nil
}

// Get loads value stored under key. Returns found=false when key is missing.
func (s *Store) Get(key string, value any) (found bool, err error) {
	var data []byte
	if err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}

		data, err = item.ValueCopy(nil)
		return err
	}); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("Get: %w", err)
	}

	if err = json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("Get: %w", err)
	}

	return true, nil
}

func (s *Store) Close() (err error) {
	if err = s.db.Close(); err != nil {
		return fmt.Errorf("Close: %w", err)
	}

	return nil
}

// SaveBoxSnapshot persists last known box statuses.
func (s *Store) SaveBoxSnapshot(boxes entities.Boxes) (err error) {
	if err = s.Put(KeyBoxSnapshot, boxes); err != nil {
		return fmt.Errorf("SaveBoxSnapshot: %w", err)
	}

	return nil
}

// LoadBoxSnapshot returns last persisted box statuses.
func (s *Store) LoadBoxSnapshot() (boxes entities.Boxes, found bool, err error) {
	if found, err = s.Get(KeyBoxSnapshot, &boxes); err != nil {
		return boxes, false, fmt.Errorf("LoadBoxSnapshot: %w", err)
	}

	return boxes, found, nil
}

// SaveInstallReport persists the report of the last provisioning run.
func (s *Store) SaveInstallReport(report entities.InstallReport) (err error) {
	if err = s.Put(KeyInstallReport, report); err != nil {
		return fmt.Errorf("SaveInstallReport: %w", err)
	}

	return nil
}

// LoadInstallReport returns the report of the last provisioning run.
func (s *Store) LoadInstallReport() (report entities.InstallReport, found bool, err error) {
	if found, err = s.Get(KeyInstallReport, &report); err != nil {
		return report, false, fmt.Errorf("LoadInstallReport: %w", err)
	}

	return report, found, nil
}
