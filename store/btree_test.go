package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBTreeCacheGetSet does basic sanity checks on our cache
func TestBTreeCacheGetSet(t *testing.T) {
	// devnull is a black hole... just to keep our types proper
	devnull := BTreeCacheable{EmptyKVStore{}}

	// base is the root of our data, we can layer on top and
	// all queries should work
	base := devnull.CacheWrap()

	// make sure the btree is empty at start but returns results
	// that are written to it
	k, v := []byte("french"), []byte("fry")
	assert.Nil(t, base.Get(k))
	assert.False(t, base.Has(k))
	base.Set(k, v)
	assert.Equal(t, v, base.Get(k))
	assert.True(t, base.Has(k))

	// now layer another btree on top and make sure that we get
	// base data
	cache := base.CacheWrap()
	assert.Equal(t, v, cache.Get(k))
	assert.True(t, cache.Has(k))

	// writing more data is only visible in the cache
	k2, v2 := []byte("LA"), []byte("Dodgers")
	assert.Nil(t, cache.Get(k2))
	cache.Set(k2, v2)
	assert.Equal(t, v2, cache.Get(k2))
	assert.Nil(t, base.Get(k2))

	// we can write the cache to the base layer...
	cache.Write()
	assert.Equal(t, v, base.Get(k))
	assert.Equal(t, v2, base.Get(k2))

	// we can discard one
	k3, v3 := []byte("Bayern"), []byte("Munich")
	c2 := base.CacheWrap()
	c2.Set(k3, v3)
	c2.Discard()

	// and commit another
	c3 := base.CacheWrap()
	c3.Delete(k)
	c3.Write()

	// make sure it commits proper
	assert.Nil(t, base.Get(k))
	assert.Equal(t, v2, base.Get(k2))
	assert.Nil(t, base.Get(k3))
}

// TestBTreeCacheIterator makes sure the iterator combines child writes
// with the parent data, respecting overwrites and deletes.
func TestBTreeCacheIterator(t *testing.T) {
	base := MemStore()
	base.Set([]byte("b"), []byte("1"))
	base.Set([]byte("d"), []byte("2"))
	base.Set([]byte("f"), []byte("3"))

	cache := base.CacheWrap()
	cache.Set([]byte("a"), []byte("4"))
	cache.Set([]byte("d"), []byte("5")) // overwrite
	cache.Delete([]byte("f"))

	iter := cache.Iterator(nil, nil)
	defer iter.Close()

	var keys, values []string
	for ; iter.Valid(); iter.Next() {
		keys = append(keys, string(iter.Key()))
		values = append(values, string(iter.Value()))
	}
	assert.Equal(t, []string{"a", "b", "d"}, keys)
	assert.Equal(t, []string{"4", "1", "5"}, values)
}

func TestBTreeCacheIteratorRange(t *testing.T) {
	db := MemStore()
	for i := 0; i < 10; i++ {
		db.Set([]byte(fmt.Sprintf("k%d", i)), []byte{byte(i)})
	}

	iter := db.Iterator([]byte("k2"), []byte("k5"))
	defer iter.Close()

	var keys []string
	for ; iter.Valid(); iter.Next() {
		keys = append(keys, string(iter.Key()))
	}
	// end is exclusive
	assert.Equal(t, []string{"k2", "k3", "k4"}, keys)
}

func TestMemStoreIsolation(t *testing.T) {
	db := MemStore()
	db.Set([]byte("shared"), []byte("before"))

	// a discarded wrap leaves no trace
	wrap := db.CacheWrap()
	wrap.Set([]byte("shared"), []byte("after"))
	wrap.Set([]byte("extra"), []byte("x"))
	wrap.Discard()

	require.Equal(t, []byte("before"), db.Get([]byte("shared")))
	require.Nil(t, db.Get([]byte("extra")))
}

func TestNilKeyPanics(t *testing.T) {
	db := MemStore()
	assert.Panics(t, func() { db.Set(nil, []byte("x")) })
	assert.Panics(t, func() { db.Get(nil) })
	assert.Panics(t, func() { db.Delete(nil) })
}
