package orm

import (
	"fmt"
	"regexp"

	"github.com/tendermint/go-amino"

	"github.com/apeunit/dorium-contracts/errors"
	"github.com/apeunit/dorium-contracts/store"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{4,12}$`).MatchString

// Model is implemented by all objects a bucket can store. Validation
// runs before every write so that only well-formed state is persisted.
type Model interface {
	Validate() error
}

// Bucket is a generic holder that stores data at a given prefix of the
// key value store. Keys are scoped with the bucket name so that
// multiple buckets can share one store without collisions. Values are
// serialized with amino.
type Bucket struct {
	name   string
	prefix []byte
	cdc    *amino.Codec
}

// NewBucket creates a bucket with the given name. The name becomes
// part of every database key and must match [a-z_]{4,12}. An invalid
// name is a programmer error and panics.
func NewBucket(name string) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("illegal bucket: %s", name))
	}
	return Bucket{
		name:   name,
		prefix: append([]byte(name), ':'),
		cdc:    amino.NewCodec(),
	}
}

// Name returns the name of the bucket.
func (b Bucket) Name() string {
	return b.name
}

// DBKey is the full key we store in the db, including the bucket prefix.
// The result never shares a backing array with the prefix, as the store
// may hold on to the key slice.
func (b Bucket) DBKey(key []byte) []byte {
	out := make([]byte, 0, len(b.prefix)+len(key))
	out = append(out, b.prefix...)
	return append(out, key...)
}

// Get loads the object persisted under the given key into dest. It
// returns ErrNotFound when no object is stored under the key.
func (b Bucket) Get(db store.ReadOnlyKVStore, key []byte, dest Model) error {
	bz := db.Get(b.DBKey(key))
	if bz == nil {
		return errors.Wrapf(errors.ErrNotFound, "%s %X", b.name, key)
	}
	if err := b.cdc.UnmarshalBinaryBare(bz, dest); err != nil {
		return errors.Wrap(errors.ErrState, err.Error())
	}
	return nil
}

// Has returns true when an object is stored under the given key.
func (b Bucket) Has(db store.ReadOnlyKVStore, key []byte) bool {
	return db.Has(b.DBKey(key))
}

// Save validates the model and persists it under the given key. An
// existing object under the same key is overwritten.
func (b Bucket) Save(db store.KVStore, key []byte, m Model) error {
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, b.name)
	}
	bz, err := b.cdc.MarshalBinaryBare(m)
	if err != nil {
		return errors.Wrap(errors.ErrState, err.Error())
	}
	db.Set(b.DBKey(key), bz)
	return nil
}

// Create persists the model under the given key and fails with
// ErrDuplicate when the key is already in use.
func (b Bucket) Create(db store.KVStore, key []byte, m Model) error {
	if b.Has(db, key) {
		return errors.Wrapf(errors.ErrDuplicate, "%s %X", b.name, key)
	}
	return b.Save(db, key, m)
}

// Delete removes any object stored under the given key. Deleting an
// absent key is a no-op.
func (b Bucket) Delete(db store.KVStore, key []byte) {
	db.Delete(b.DBKey(key))
}

// Keys returns all keys in the bucket in ascending byte order, with
// the bucket prefix stripped.
func (b Bucket) Keys(db store.ReadOnlyKVStore) [][]byte {
	var keys [][]byte
	start, end := prefixRange(b.prefix)
	iter := db.Iterator(start, end)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		key := iter.Key()[len(b.prefix):]
		cpy := make([]byte, len(key))
		copy(cpy, key)
		keys = append(keys, cpy)
	}
	return keys
}

// Visit walks all objects in the bucket in ascending key order and
// calls fn with the stripped key and the raw stored bytes. A non-nil
// error from fn aborts the walk and is returned as is.
func (b Bucket) Visit(db store.ReadOnlyKVStore, fn func(key, value []byte) error) error {
	return b.VisitPrefix(db, nil, fn)
}

// VisitPrefix walks the objects whose key starts with the given
// prefix, in ascending key order. An empty prefix walks the whole
// bucket.
func (b Bucket) VisitPrefix(db store.ReadOnlyKVStore, keyPrefix []byte, fn func(key, value []byte) error) error {
	start, end := prefixRange(b.DBKey(keyPrefix))
	iter := db.Iterator(start, end)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		if err := fn(iter.Key()[len(b.prefix):], iter.Value()); err != nil {
			return err
		}
	}
	return nil
}

// Parse deserializes raw stored bytes into dest. Use together with
// Visit when iterating over the bucket content.
func (b Bucket) Parse(bz []byte, dest Model) error {
	if err := b.cdc.UnmarshalBinaryBare(bz, dest); err != nil {
		return errors.Wrap(errors.ErrState, err.Error())
	}
	return nil
}

// prefixRange turns a prefix into (start, end) to create a range that
// covers every key with the given prefix. In case of an overflow the
// end is set to nil, which means the iteration is open ended.
func prefixRange(prefix []byte) ([]byte, []byte) {
	if len(prefix) == 0 {
		return nil, nil
	}
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return prefix, end[:i+1]
		}
	}
	return prefix, nil
}
