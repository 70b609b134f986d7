package x

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apeunit/dorium-contracts"
	"github.com/apeunit/dorium-contracts/doriumtest"
)

func TestAuth(t *testing.T) {
	a := doriumtest.NewAddress()
	b := doriumtest.NewAddress()
	c := doriumtest.NewAddress()

	ctx := context.Background()
	auth := &doriumtest.Auth{Signers: []dorium.Address{a, b}}

	assert.True(t, auth.HasAddress(ctx, a))
	assert.False(t, auth.HasAddress(ctx, c))
	assert.Equal(t, a, MainSigner(ctx, auth))

	assert.True(t, HasAllAddresses(ctx, auth, []dorium.Address{a, b}))
	assert.False(t, HasAllAddresses(ctx, auth, []dorium.Address{a, c}))
	assert.True(t, HasNAddresses(ctx, auth, []dorium.Address{a, c}, 1))
	assert.False(t, HasNAddresses(ctx, auth, []dorium.Address{a, c}, 2))
}

func TestChainAuth(t *testing.T) {
	a := doriumtest.NewAddress()
	b := doriumtest.NewAddress()

	ctx := context.Background()
	chain := ChainAuth(
		&doriumtest.Auth{Signer: a},
		&doriumtest.Auth{Signer: b},
	)

	assert.True(t, chain.HasAddress(ctx, a))
	assert.True(t, chain.HasAddress(ctx, b))
	assert.Equal(t, a, MainSigner(ctx, chain))
	assert.Len(t, chain.GetAddresses(ctx), 2)

	empty := ChainAuth()
	assert.Nil(t, MainSigner(ctx, empty))
}
