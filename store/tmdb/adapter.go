/*
Package tmdb adapts a tm-db database to the dorium store interfaces.

This is the persistent counterpart of store.MemStore: the same btree
cache-wrap is layered on top, but writes are flushed through an atomic
tm-db batch, so a whole handler call either lands on disk or not at
all. Backend failures surface as errors.ErrDatabase panics, which the
dispatcher recovers into a regular error response.
*/
package tmdb

import (
	dbm "github.com/tendermint/tm-db"

	"github.com/apeunit/dorium-contracts/errors"
	"github.com/apeunit/dorium-contracts/store"
)

// Store manages contract state persisted in a tm-db backend.
type Store struct {
	db dbm.DB
}

var _ store.CacheableKVStore = Store{}

// NewStore wraps an opened tm-db database.
func NewStore(db dbm.DB) Store {
	return Store{db: db}
}

// NewMemStore returns a store with a throwaway in-memory backend. Use
// this in tests that exercise the persistent code path.
func NewMemStore() Store {
	return NewStore(dbm.NewMemDB())
}

// NewGoLevelDBStore opens (or creates) a leveldb backed store under
// the given directory.
func NewGoLevelDBStore(name, dir string) (Store, error) {
	db, err := dbm.NewGoLevelDB(name, dir)
	if err != nil {
		return Store{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return NewStore(db), nil
}

// Close releases the backend.
func (s Store) Close() error {
	return s.db.Close()
}

// Get returns nil iff key doesn't exist. Panics on nil key or backend
// failure.
func (s Store) Get(key []byte) []byte {
	assertValidKey(key)
	value, err := s.db.Get(key)
	if err != nil {
		panic(errors.Wrap(errors.ErrDatabase, err.Error()))
	}
	return value
}

// Has checks if a key exists. Panics on nil key or backend failure.
func (s Store) Has(key []byte) bool {
	assertValidKey(key)
	ok, err := s.db.Has(key)
	if err != nil {
		panic(errors.Wrap(errors.ErrDatabase, err.Error()))
	}
	return ok
}

// Set sets the key. Panics on nil key or backend failure.
func (s Store) Set(key, value []byte) {
	assertValidKey(key)
	if err := s.db.Set(key, value); err != nil {
		panic(errors.Wrap(errors.ErrDatabase, err.Error()))
	}
}

// Delete deletes the key. Panics on nil key or backend failure.
func (s Store) Delete(key []byte) {
	assertValidKey(key)
	if err := s.db.Delete(key); err != nil {
		panic(errors.Wrap(errors.ErrDatabase, err.Error()))
	}
}

// Iterator over a domain of keys in ascending order. End is exclusive.
func (s Store) Iterator(start, end []byte) store.Iterator {
	it, err := s.db.Iterator(start, end)
	if err != nil {
		panic(errors.Wrap(errors.ErrDatabase, err.Error()))
	}
	return iterator{it}
}

// ReverseIterator over a domain of keys in descending order. End is
// exclusive.
func (s Store) ReverseIterator(start, end []byte) store.Iterator {
	it, err := s.db.ReverseIterator(start, end)
	if err != nil {
		panic(errors.Wrap(errors.ErrDatabase, err.Error()))
	}
	return iterator{it}
}

// CacheWrap returns a scratch-pad whose Write flushes through one
// atomic tm-db batch.
func (s Store) CacheWrap() store.KVCacheWrap {
	return store.NewBTreeCacheWrap(s, newBatch(s.db), nil)
}

func assertValidKey(key []byte) {
	if key == nil {
		panic("nil key is not allowed")
	}
}

// iterator adapts dbm.Iterator to the store.Iterator contract.
type iterator struct {
	it dbm.Iterator
}

var _ store.Iterator = iterator{}

func (i iterator) Valid() bool { return i.it.Valid() }

func (i iterator) Next() {
	i.it.Next()
	if err := i.it.Error(); err != nil {
		panic(errors.Wrap(errors.ErrDatabase, err.Error()))
	}
}

func (i iterator) Key() []byte   { return i.it.Key() }
func (i iterator) Value() []byte { return i.it.Value() }

func (i iterator) Close() {
	_ = i.it.Close()
}

// batch adapts dbm.Batch to the store.Batch contract.
type batch struct {
	db dbm.DB
	b  dbm.Batch
}

var _ store.Batch = (*batch)(nil)

func newBatch(db dbm.DB) *batch {
	return &batch{
		db: db,
		b:  db.NewBatch(),
	}
}

func (b *batch) Set(key, value []byte) {
	if err := b.b.Set(key, value); err != nil {
		panic(errors.Wrap(errors.ErrDatabase, err.Error()))
	}
}

func (b *batch) Delete(key []byte) {
	if err := b.b.Delete(key); err != nil {
		panic(errors.Wrap(errors.ErrDatabase, err.Error()))
	}
}

// Write flushes the batch atomically and prepares a fresh one, so the
// same cache-wrap chain can keep writing.
func (b *batch) Write() {
	if err := b.b.WriteSync(); err != nil {
		panic(errors.Wrap(errors.ErrDatabase, err.Error()))
	}
	_ = b.b.Close()
	b.b = b.db.NewBatch()
}
