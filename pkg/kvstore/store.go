package kvstore

import (
	"fmt"
	"path/filepath"

	bolt "go.etcd.io/bbolt"
)

// Column family names. These mirror the column families a validator's
// ledger store partitions its data into.
const (
	CFSlotMeta           = "slot_meta"
	CFRoots              = "roots"
	CFDataShred          = "data_shred"
	CFCodeShred          = "code_shred"
	CFTransactionStatus  = "transaction_status"
	CFTransactionMemos   = "transaction_memos"
	CFAddressSignatures  = "address_signatures"
	CFBlocktime          = "blocktime"
	CFBlockHeight        = "block_height"
	CFRewards            = "rewards"
	CFPerfSamples        = "perf_samples"
	CFProgramCosts       = "program_costs"
	CFBankHash           = "bank_hash"
	CFOptimisticSlots    = "optimistic_slots"
	CFDeadSlots          = "dead_slots"
	CFDuplicateSlots     = "duplicate_slots"
)

// columnFamilies lists every bucket Store pre-creates on open.
var columnFamilies = []string{
	CFSlotMeta,
	CFRoots,
	CFDataShred,
	CFCodeShred,
	CFTransactionStatus,
	CFTransactionMemos,
	CFAddressSignatures,
	CFBlocktime,
	CFBlockHeight,
	CFRewards,
	CFPerfSamples,
	CFProgramCosts,
	CFBankHash,
	CFOptimisticSlots,
	CFDeadSlots,
	CFDuplicateSlots,
}

// Store is a column-family key-value engine backed by bbolt.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if necessary) a Store at dataDir/ledger.db, with
// every column family pre-created.
func Open(dataDir string) (*Store, error) {
	dbPath := filepath.Join(dataDir, "ledger.db")

	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("kvstore: open %s: %w", dbPath, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, cf := range columnFamilies {
			if _, err := tx.CreateBucketIfNotExists([]byte(cf)); err != nil {
				return fmt.Errorf("kvstore: create column family %s: %w", cf, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping starts and immediately discards a read transaction, confirming the
// underlying database handle is still open. It touches no column family.
func (s *Store) Ping() error {
	return s.db.View(func(tx *bolt.Tx) error { return nil })
}

// Get returns the value stored under key in the named column family.
// The returned slice is only valid for the lifetime of the call; callers
// that retain it must copy.
func (s *Store) Get(cf string, key []byte) (value []byte, found bool, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(cf))
		if b == nil {
			return ErrUnknownColumnFamily
		}
		v := b.Get(key)
		if v == nil {
			return nil
		}
		value = append([]byte(nil), v...)
		found = true
		return nil
	})
	return value, found, err
}

// Put writes key/value into the named column family.
func (s *Store) Put(cf string, key, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(cf))
		if b == nil {
			return ErrUnknownColumnFamily
		}
		return b.Put(key, value)
	})
}

// Delete removes key from the named column family. Deleting a missing key
// is not an error.
func (s *Store) Delete(cf string, key []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(cf))
		if b == nil {
			return ErrUnknownColumnFamily
		}
		return b.Delete(key)
	})
}

// DeleteRange removes every key in [start, end) from the named column
// family in a single transaction. Used by cleanup to purge a compacted
// slot's shreds in one shot.
func (s *Store) DeleteRange(cf string, start, end []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(cf))
		if b == nil {
			return ErrUnknownColumnFamily
		}
		c := b.Cursor()
		var keys [][]byte
		for k, _ := c.Seek(start); k != nil && bytesLess(k, end); k, _ = c.Next() {
			keys = append(keys, append([]byte(nil), k...))
		}
		for _, k := range keys {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}

// View runs fn in a read-only transaction, handing it a RawIterator over
// cf. Used by callers — the blockstore reader's missing-shred scan and
// transaction-status lookup — that need to interleave cursor movement with
// application logic across several keys without paying a transaction per
// key.
func (s *Store) View(cf string, fn func(RawIterator) error) error {
	return s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(cf))
		if b == nil {
			return ErrUnknownColumnFamily
		}
		return fn(&boltCursor{c: b.Cursor()})
	})
}

func bytesLess(a, b []byte) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
