package exchange

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apeunit/dorium-contracts"
	"github.com/apeunit/dorium-contracts/doriumtest"
	"github.com/apeunit/dorium-contracts/errors"
	"github.com/apeunit/dorium-contracts/store"
	"github.com/apeunit/dorium-contracts/x/bank"
)

type testEnv struct {
	db        dorium.KVStore
	auth      *doriumtest.CtxAuth
	swap      SwapHandler
	setTokens SetTokensHandler
	query     Querier

	owner      dorium.Address
	valueToken dorium.Address
	sobzToken  dorium.Address
}

func newTestEnv(t testing.TB) *testEnv {
	t.Helper()

	auth := &doriumtest.CtxAuth{Key: "auth"}
	bucket := NewBucket()
	e := &testEnv{
		db:        store.MemStore(),
		auth:      auth,
		swap:      SwapHandler{auth, bucket},
		setTokens: SetTokensHandler{auth, bucket},
		query:     NewQuerier(),

		owner:      doriumtest.NewAddress(),
		valueToken: doriumtest.NewAddress(),
		sobzToken:  doriumtest.NewAddress(),
	}

	state := &State{
		Owner:      e.owner,
		ValueToken: e.valueToken,
		SobzToken:  e.sobzToken,
	}
	require.NoError(t, bucket.Save(e.db, stateKey, state))
	return e
}

func (e *testEnv) ctx(signers ...dorium.Address) dorium.Context {
	return e.auth.SetSigners(context.Background(), signers...)
}

func TestSwap(t *testing.T) {
	e := newTestEnv(t)
	caller := doriumtest.NewAddress()

	res, err := e.swap.Deliver(e.ctx(caller), e.db, &doriumtest.Tx{Msg: &SwapMsg{Amount: 100}})
	require.NoError(t, err)

	require.Len(t, res.Instructions, 2)
	burn, ok := res.Instructions[0].(*bank.BurnToken)
	require.True(t, ok)
	assert.Equal(t, e.sobzToken, burn.Issuer)
	assert.Equal(t, int64(100), burn.Amount)

	send, ok := res.Instructions[1].(*bank.SendToken)
	require.True(t, ok)
	assert.Equal(t, e.valueToken, send.Issuer)
	assert.Equal(t, caller, send.Destination)
	assert.Equal(t, int64(100), send.Amount)

	total, err := e.query.GetExchangedTotal(e.db)
	require.NoError(t, err)
	assert.Equal(t, int64(100), total)
}

func TestSwapAccumulates(t *testing.T) {
	e := newTestEnv(t)
	caller := doriumtest.NewAddress()

	for _, amount := range []int64{100, 25, 1} {
		_, err := e.swap.Deliver(e.ctx(caller), e.db, &doriumtest.Tx{Msg: &SwapMsg{Amount: amount}})
		require.NoError(t, err)
	}

	total, err := e.query.GetExchangedTotal(e.db)
	require.NoError(t, err)
	assert.Equal(t, int64(126), total)
}

func TestSwapValidation(t *testing.T) {
	e := newTestEnv(t)
	caller := doriumtest.NewAddress()

	_, err := e.swap.Deliver(e.ctx(caller), e.db, &doriumtest.Tx{Msg: &SwapMsg{Amount: 0}})
	assert.True(t, errors.ErrAmount.Is(err))

	_, err = e.swap.Deliver(e.ctx(), e.db, &doriumtest.Tx{Msg: &SwapMsg{Amount: 5}})
	assert.True(t, errors.ErrUnauthorized.Is(err))
}

func TestSwapUninitialized(t *testing.T) {
	auth := &doriumtest.CtxAuth{Key: "auth"}
	swap := SwapHandler{auth, NewBucket()}
	db := store.MemStore()

	ctx := auth.SetSigners(context.Background(), doriumtest.NewAddress())
	_, err := swap.Deliver(ctx, db, &doriumtest.Tx{Msg: &SwapMsg{Amount: 5}})
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestSetTokens(t *testing.T) {
	e := newTestEnv(t)
	newValue := doriumtest.NewAddress()
	newSobz := doriumtest.NewAddress()

	msg := &SetTokensMsg{ValueToken: newValue, SobzToken: newSobz}
	_, err := e.setTokens.Deliver(e.ctx(e.owner), e.db, &doriumtest.Tx{Msg: msg})
	require.NoError(t, err)

	state, err := e.query.GetState(e.db)
	require.NoError(t, err)
	assert.Equal(t, newValue, state.ValueToken)
	assert.Equal(t, newSobz, state.SobzToken)

	// counter survives the change
	assert.Equal(t, int64(0), state.Exchanged)
}

func TestSetTokensOnlyByOwner(t *testing.T) {
	e := newTestEnv(t)
	msg := &SetTokensMsg{
		ValueToken: doriumtest.NewAddress(),
		SobzToken:  doriumtest.NewAddress(),
	}
	stranger := doriumtest.NewAddress()
	_, err := e.setTokens.Deliver(e.ctx(stranger), e.db, &doriumtest.Tx{Msg: msg})
	assert.True(t, errors.ErrUnauthorized.Is(err))
}
