package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/apeunit/dorium-contracts"
	"github.com/apeunit/dorium-contracts/asset"
	"github.com/apeunit/dorium-contracts/doriumtest"
	"github.com/apeunit/dorium-contracts/errors"
	"github.com/apeunit/dorium-contracts/store"
	"github.com/apeunit/dorium-contracts/x/escrow"
)

func newDispatcher(auth *doriumtest.CtxAuth) *Dispatcher {
	router := NewRouter()
	escrow.RegisterRoutes(router, auth, escrow.ReturnToSource)

	queries := NewQueryRouter()
	escrow.RegisterQuery(queries)

	return NewDispatcher(store.MemStore(), router, queries, log.NewNopLogger())
}

func createTx(id string, source, proposer, validator dorium.Address) dorium.Tx {
	return &doriumtest.Tx{Msg: &escrow.CreateMsg{
		EscrowID:    []byte(id),
		URL:         "https://dorium.vote/proposals/" + id,
		Description: "a thing the community wants",
		Validators:  []dorium.Address{validator},
		Proposer:    proposer,
		Source:      source,
		Credit:      asset.Credit{Native: asset.Coins{asset.NewCoinp(100, "tokens")}},
	}}
}

func TestDispatcherDeliverCommits(t *testing.T) {
	auth := &doriumtest.CtxAuth{Key: "auth"}
	d := newDispatcher(auth)

	source := doriumtest.NewAddress()
	proposer := doriumtest.NewAddress()
	validator := doriumtest.NewAddress()
	ctx := auth.SetSigners(context.Background(), source)

	res, err := d.Deliver(ctx, createTx("lazy", source, proposer, validator))
	require.NoError(t, err)
	assert.Equal(t, []byte("lazy"), res.Data)

	models, err := d.Query("escrows", dorium.KeyQueryMod, []byte("lazy"))
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.NotEmpty(t, models[0].Value)
}

func TestDispatcherDeliverDiscardsOnError(t *testing.T) {
	auth := &doriumtest.CtxAuth{Key: "auth"}
	d := newDispatcher(auth)

	source := doriumtest.NewAddress()
	proposer := doriumtest.NewAddress()
	validator := doriumtest.NewAddress()
	ctx := auth.SetSigners(context.Background(), source)

	_, err := d.Deliver(ctx, createTx("lazy", source, proposer, validator))
	require.NoError(t, err)

	// second create with the same id fails and must not modify state
	_, err = d.Deliver(ctx, createTx("lazy", source, proposer, validator))
	assert.True(t, errors.ErrDuplicate.Is(err))

	models, err := d.Query("escrows", dorium.PrefixQueryMod, nil)
	require.NoError(t, err)
	assert.Len(t, models, 1)
}

func TestDispatcherCheckNeverPersists(t *testing.T) {
	auth := &doriumtest.CtxAuth{Key: "auth"}
	d := newDispatcher(auth)

	source := doriumtest.NewAddress()
	proposer := doriumtest.NewAddress()
	validator := doriumtest.NewAddress()
	ctx := auth.SetSigners(context.Background(), source)

	res, err := d.Check(ctx, createTx("lazy", source, proposer, validator))
	require.NoError(t, err)
	assert.True(t, res.GasAllocated > 0)

	models, err := d.Query("escrows", dorium.PrefixQueryMod, nil)
	require.NoError(t, err)
	assert.Empty(t, models)
}

func TestDispatcherUnknownPaths(t *testing.T) {
	auth := &doriumtest.CtxAuth{Key: "auth"}
	d := newDispatcher(auth)

	ctx := context.Background()
	tx := &doriumtest.Tx{Msg: &doriumtest.Msg{RoutePath: "missing/path"}}
	_, err := d.Deliver(ctx, tx)
	assert.True(t, errors.ErrNotFound.Is(err))

	_, err = d.Query("missing", dorium.KeyQueryMod, nil)
	assert.True(t, errors.ErrNotFound.Is(err))
}
