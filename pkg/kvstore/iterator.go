package kvstore

import bolt "go.etcd.io/bbolt"

// Direction controls which way an Iterator walks from its seek position.
type Direction int

const (
	// Forward walks keys in ascending order.
	Forward Direction = iota
	// Reverse walks keys in descending order.
	Reverse
)

// RawIterator exposes a bbolt cursor one-to-one: Seek, Valid, Key, Value,
// Next. Unlike Iterator it never copies key/value bytes, so callers must
// not retain slices past the enclosing View call.
type RawIterator interface {
	// Seek positions the cursor at the first key >= target. If target
	// sorts after every key, the cursor is left invalid and Seek returns
	// false.
	Seek(target []byte) bool
	// Valid reports whether the cursor currently sits on a key.
	Valid() bool
	Key() []byte
	Value() []byte
	// Next advances the cursor and reports whether it still sits on a key.
	Next() bool
	// Prev moves the cursor backward and reports whether it still sits on
	// a key.
	Prev() bool
}

type boltCursor struct {
	c     *bolt.Cursor
	k, v  []byte
	valid bool
}

func (b *boltCursor) Seek(target []byte) bool {
	b.k, b.v = b.c.Seek(target)
	b.valid = b.k != nil
	return b.valid
}

func (b *boltCursor) Valid() bool { return b.valid }
func (b *boltCursor) Key() []byte { return b.k }
func (b *boltCursor) Value() []byte { return b.v }

func (b *boltCursor) Next() bool {
	b.k, b.v = b.c.Next()
	b.valid = b.k != nil
	return b.valid
}

func (b *boltCursor) Prev() bool {
	b.k, b.v = b.c.Prev()
	b.valid = b.k != nil
	return b.valid
}

// Entry is a single key/value pair yielded by Iterator, with both slices
// copied out of the transaction so they remain valid after Close.
type Entry struct {
	Key   []byte
	Value []byte
}

// Iterator yields copied key/value pairs from a column family in the
// requested direction, starting at seek (or the first/last key if seek is
// nil). A Forward iterator starts at the first key >= seek; a Reverse
// iterator starts at the last key <= seek.
type Iterator interface {
	Next() bool
	Entry() Entry
	Close() error
	Err() error
}

type dirIterator struct {
	tx    *bolt.Tx
	c     *bolt.Cursor
	dir   Direction
	seek  []byte
	first bool
	cur   Entry
	err   error
}

// Iterator opens a standalone read transaction and returns an Iterator
// over the named column family. Close must be called to release the
// transaction.
func (s *Store) Iterator(cf string, dir Direction, seek []byte) (Iterator, error) {
	tx, err := s.db.Begin(false)
	if err != nil {
		return nil, err
	}
	b := tx.Bucket([]byte(cf))
	if b == nil {
		tx.Rollback()
		return nil, ErrUnknownColumnFamily
	}
	return &dirIterator{tx: tx, c: b.Cursor(), dir: dir, seek: seek, first: true}, nil
}

func (it *dirIterator) Next() bool {
	var k, v []byte
	if it.first {
		it.first = false
		if it.seek != nil {
			k, v = it.c.Seek(it.seek)
			if it.dir == Reverse {
				if k == nil {
					k, v = it.c.Last()
				} else if bytesLess(it.seek, k) {
					k, v = it.c.Prev()
				}
			}
		} else if it.dir == Forward {
			k, v = it.c.First()
		} else {
			k, v = it.c.Last()
		}
	} else if it.dir == Forward {
		k, v = it.c.Next()
	} else {
		k, v = it.c.Prev()
	}
	if k == nil {
		return false
	}
	it.cur = Entry{Key: append([]byte(nil), k...), Value: append([]byte(nil), v...)}
	return true
}

func (it *dirIterator) Entry() Entry { return it.cur }
func (it *dirIterator) Err() error   { return it.err }
func (it *dirIterator) Close() error { return it.tx.Rollback() }
