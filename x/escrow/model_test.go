package escrow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apeunit/dorium-contracts"
	"github.com/apeunit/dorium-contracts/asset"
	"github.com/apeunit/dorium-contracts/doriumtest"
	"github.com/apeunit/dorium-contracts/errors"
)

func TestStatus(t *testing.T) {
	assert.False(t, StatusOpened.Locked())
	assert.True(t, StatusCompleted.Locked())
	assert.True(t, StatusCanceled.Locked())

	assert.Equal(t, "opened", StatusOpened.String())
	assert.Equal(t, "completed", StatusCompleted.String())
	assert.Equal(t, "canceled", StatusCanceled.String())

	assert.NoError(t, StatusOpened.Validate())
	assert.True(t, errors.ErrState.Is(Status(7).Validate()))
}

func validEscrow() *Escrow {
	return &Escrow{
		ID:          []byte("lazy"),
		URL:         "https://dorium.vote/proposals/lazy",
		Description: "a thing the community wants",
		Validators:  []dorium.Address{doriumtest.NewAddress()},
		Proposer:    doriumtest.NewAddress(),
		Source:      doriumtest.NewAddress(),
		Balance: asset.Balance{
			Native: asset.Coins{asset.NewCoinp(100, "tokens")},
		},
		Status: StatusOpened,
	}
}

func TestEscrowValidate(t *testing.T) {
	assert.NoError(t, validEscrow().Validate())

	noValidators := validEscrow()
	noValidators.Validators = nil
	assert.True(t, errors.ErrEmpty.Is(noValidators.Validate()))

	badBalance := validEscrow()
	badBalance.Balance.Native = asset.Coins{asset.NewCoinp(0, "tokens")}
	assert.True(t, errors.ErrState.Is(badBalance.Validate()))

	badStatus := validEscrow()
	badStatus.Status = Status(9)
	assert.True(t, errors.ErrState.Is(badStatus.Validate()))
}

func TestWhitelist(t *testing.T) {
	issuer := doriumtest.NewAddress()
	e := validEscrow()

	assert.False(t, e.InWhitelist(issuer))
	e.AddToWhitelist(issuer)
	assert.True(t, e.InWhitelist(issuer))

	// adding twice keeps a single entry
	e.AddToWhitelist(issuer)
	assert.Len(t, e.Whitelist, 1)
}
