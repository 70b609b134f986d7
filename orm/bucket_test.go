package orm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apeunit/dorium-contracts/errors"
	"github.com/apeunit/dorium-contracts/store"
)

type counter struct {
	Count int64 `json:"count"`
}

func (c *counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrState, "negative count")
	}
	return nil
}

func TestBucketName(t *testing.T) {
	assert.Panics(t, func() { NewBucket("l") })
	assert.Panics(t, func() { NewBucket("TOOBIG") })
	assert.Panics(t, func() { NewBucket("itsmuchtoobig") })
	assert.Equal(t, "good", NewBucket("good").Name())
}

func TestBucketRoundtrip(t *testing.T) {
	db := store.MemStore()
	b := NewBucket("cntr")

	var missing counter
	err := b.Get(db, []byte("some"), &missing)
	assert.True(t, errors.ErrNotFound.Is(err))
	assert.False(t, b.Has(db, []byte("some")))

	require.NoError(t, b.Save(db, []byte("some"), &counter{Count: 5}))
	assert.True(t, b.Has(db, []byte("some")))

	var loaded counter
	require.NoError(t, b.Get(db, []byte("some"), &loaded))
	assert.Equal(t, int64(5), loaded.Count)

	// invalid objects never hit the store
	err = b.Save(db, []byte("bad"), &counter{Count: -1})
	assert.True(t, errors.ErrState.Is(err))
	assert.False(t, b.Has(db, []byte("bad")))
}

func TestBucketCreate(t *testing.T) {
	db := store.MemStore()
	b := NewBucket("cntr")

	require.NoError(t, b.Create(db, []byte("one"), &counter{Count: 1}))
	err := b.Create(db, []byte("one"), &counter{Count: 2})
	assert.True(t, errors.ErrDuplicate.Is(err))

	// the original object is untouched
	var loaded counter
	require.NoError(t, b.Get(db, []byte("one"), &loaded))
	assert.Equal(t, int64(1), loaded.Count)
}

func TestBucketIsolation(t *testing.T) {
	db := store.MemStore()
	one := NewBucket("onex")
	two := NewBucket("twox")

	require.NoError(t, one.Save(db, []byte("key"), &counter{Count: 1}))
	require.NoError(t, two.Save(db, []byte("key"), &counter{Count: 2}))

	var a, b counter
	require.NoError(t, one.Get(db, []byte("key"), &a))
	require.NoError(t, two.Get(db, []byte("key"), &b))
	assert.Equal(t, int64(1), a.Count)
	assert.Equal(t, int64(2), b.Count)

	one.Delete(db, []byte("key"))
	assert.False(t, one.Has(db, []byte("key")))
	assert.True(t, two.Has(db, []byte("key")))
}

func TestBucketKeysSorted(t *testing.T) {
	db := store.MemStore()
	b := NewBucket("cntr")

	for i, key := range []string{"lazy", "assign", "zen"} {
		require.NoError(t, b.Save(db, []byte(key), &counter{Count: int64(i)}))
	}

	keys := b.Keys(db)
	require.Len(t, keys, 3)
	assert.Equal(t, []byte("assign"), keys[0])
	assert.Equal(t, []byte("lazy"), keys[1])
	assert.Equal(t, []byte("zen"), keys[2])
}

func TestBucketVisit(t *testing.T) {
	db := store.MemStore()
	b := NewBucket("cntr")

	require.NoError(t, b.Save(db, []byte("b"), &counter{Count: 2}))
	require.NoError(t, b.Save(db, []byte("a"), &counter{Count: 1}))

	var got []int64
	err := b.Visit(db, func(key, value []byte) error {
		var c counter
		if err := b.Parse(value, &c); err != nil {
			return err
		}
		got = append(got, c.Count)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, got)
}

func TestBucketVisitPrefix(t *testing.T) {
	db := store.MemStore()
	b := NewBucket("cntr")

	for i, key := range []string{"alpha", "alto", "beta"} {
		require.NoError(t, b.Save(db, []byte(key), &counter{Count: int64(i)}))
	}

	collect := func(prefix []byte) [][]byte {
		var keys [][]byte
		err := b.VisitPrefix(db, prefix, func(key, value []byte) error {
			cpy := make([]byte, len(key))
			copy(cpy, key)
			keys = append(keys, cpy)
			return nil
		})
		require.NoError(t, err)
		return keys
	}

	assert.Equal(t, [][]byte{[]byte("alpha"), []byte("alto")}, collect([]byte("al")))
	assert.Equal(t, [][]byte{[]byte("beta")}, collect([]byte("beta")))
	assert.Empty(t, collect([]byte("zen")))
	// nil walks the whole bucket
	assert.Len(t, collect(nil), 3)
}

func TestPrefixRange(t *testing.T) {
	cases := map[string]struct {
		prefix []byte
		start  []byte
		end    []byte
	}{
		"normal":               {[]byte{1, 3, 4}, []byte{1, 3, 4}, []byte{1, 3, 5}},
		"empty":                {nil, nil, nil},
		"trailing 255":         {[]byte{1, 3, 255}, []byte{1, 3, 255}, []byte{1, 4}},
		"only 255s overflows":  {[]byte{255, 255}, []byte{255, 255}, nil},
		"255 in the middle ok": {[]byte{1, 255, 7}, []byte{1, 255, 7}, []byte{1, 255, 8}},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			start, end := prefixRange(tc.prefix)
			assert.Equal(t, tc.start, start)
			assert.Equal(t, tc.end, end)
		})
	}
}
