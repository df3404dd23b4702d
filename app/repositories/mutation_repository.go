package repositories

import (
	"errors"
	"fmt"
	"io"

	"travelthreads/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerMutationRepository implements MutationRepository using BadgerDB
type BadgerMutationRepository struct {
	db *badger.DB
}

// OpenDB opens the Badger store at path. An empty path opens an in-memory
// store that is discarded on Close.
func OpenDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts = opts.
		WithLogger(nil).
		WithNumVersionsToKeep(1).
		WithNumGoroutines(1)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger at %q: %w", path, err)
	}
	return db, nil
}

// NewBadgerMutationRepository creates a new BadgerMutationRepository
func NewBadgerMutationRepository(db *badger.DB) *BadgerMutationRepository {
	return &BadgerMutationRepository{db: db}
}

// OpenMutationRepository opens a store at path and wraps it in a journal.
func OpenMutationRepository(path string) (*BadgerMutationRepository, error) {
	db, err := OpenDB(path)
	if err != nil {
		return nil, err
	}
	return NewBadgerMutationRepository(db), nil
}

// Append stores a mutation under the next sequence number
func (r *BadgerMutationRepository) Append(m *models.Mutation) error {
	m.BeforeCreate()
	if err := m.Validate(); err != nil {
		return fmt.Errorf("invalid mutation: %w", err)
	}

	return r.db.Update(func(txn *badger.Txn) error {
		seq, err := getNextID(txn, MutationSeqKey)
		if err != nil {
			return err
		}

		stored := *m
		stored.Seq = seq
		data, err := marshalEntity(&stored)
		if err != nil {
			return err
		}
		if err := txn.Set(mutationKey(seq), data); err != nil {
			return err
		}
		m.Seq = seq
		return nil
	})
}

// Get retrieves a mutation by sequence number
func (r *BadgerMutationRepository) Get(seq int) (*models.Mutation, error) {
	var m models.Mutation
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(mutationKey(seq))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &m)
		})
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List retrieves mutations after afterSeq in sequence order
func (r *BadgerMutationRepository) List(afterSeq, limit int) ([]*models.Mutation, error) {
	var mutations []*models.Mutation
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(MutationKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(mutationKey(afterSeq + 1)); it.ValidForPrefix(opts.Prefix); it.Next() {
			if limit > 0 && len(mutations) >= limit {
				break
			}
			var m models.Mutation
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &m)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal mutation %s: %w", it.Item().Key(), err)
			}
			mutations = append(mutations, &m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mutations, nil
}

// Backup writes a full dump of the store to w
func (r *BadgerMutationRepository) Backup(w io.Writer) error {
	if _, err := r.db.Backup(w, 0); err != nil {
		return fmt.Errorf("failed to backup journal: %w", err)
	}
	return nil
}

// Restore loads a dump written by Backup. The store should be empty.
func (r *BadgerMutationRepository) Restore(rd io.Reader) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic occurred during restore: %v", p)
		}
	}()
	if err := r.db.Load(rd, 4); err != nil {
		return fmt.Errorf("failed to restore journal: %w", err)
	}
	return nil
}

// Close closes the underlying store
func (r *BadgerMutationRepository) Close() error {
	return r.db.Close()
}
