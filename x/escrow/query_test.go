package escrow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apeunit/dorium-contracts"
	"github.com/apeunit/dorium-contracts/asset"
	"github.com/apeunit/dorium-contracts/errors"
)

func TestRawQuery(t *testing.T) {
	e := newTestEnv(ReturnToSource)
	for _, id := range []string{"alpha", "alto", "beta"} {
		e.mustCreate(t, e.createMsg(id, nativeCredit(t, asset.NewCoin(1, "tokens"))))
	}
	q := rawQuerier{bucket: NewBucket()}

	models, err := q.Query(e.db, dorium.KeyQueryMod, []byte("alto"))
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, NewBucket().DBKey([]byte("alto")), models[0].Key)

	models, err = q.Query(e.db, dorium.KeyQueryMod, []byte("ghost"))
	require.NoError(t, err)
	assert.Empty(t, models)

	_, err = q.Query(e.db, "range", nil)
	assert.True(t, errors.ErrInput.Is(err))
}

func TestRawQueryPrefixScoped(t *testing.T) {
	e := newTestEnv(ReturnToSource)
	for _, id := range []string{"alpha", "alto", "beta"} {
		e.mustCreate(t, e.createMsg(id, nativeCredit(t, asset.NewCoin(1, "tokens"))))
	}
	q := rawQuerier{bucket: NewBucket()}

	// data narrows the result set to ids with that prefix
	models, err := q.Query(e.db, dorium.PrefixQueryMod, []byte("al"))
	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.Equal(t, NewBucket().DBKey([]byte("alpha")), models[0].Key)
	assert.Equal(t, NewBucket().DBKey([]byte("alto")), models[1].Key)

	models, err = q.Query(e.db, dorium.PrefixQueryMod, nil)
	require.NoError(t, err)
	assert.Len(t, models, 3)

	models, err = q.Query(e.db, dorium.PrefixQueryMod, []byte("zen"))
	require.NoError(t, err)
	assert.Empty(t, models)
}
