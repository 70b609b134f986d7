package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apeunit/dorium-contracts"
	"github.com/apeunit/dorium-contracts/asset"
	"github.com/apeunit/dorium-contracts/doriumtest"
	"github.com/apeunit/dorium-contracts/errors"
)

func TestInstructionValidation(t *testing.T) {
	dest := doriumtest.NewAddress()
	issuer := doriumtest.NewAddress()

	cases := map[string]struct {
		instr   dorium.Instruction
		wantErr *errors.Error
	}{
		"valid native send": {
			&SendNative{Destination: dest, Amount: asset.Coins{asset.NewCoinp(1, "atom")}},
			nil,
		},
		"native send without amount": {
			&SendNative{Destination: dest},
			errors.ErrEmpty,
		},
		"native send without destination": {
			&SendNative{Amount: asset.Coins{asset.NewCoinp(1, "atom")}},
			errors.ErrInput,
		},
		"valid token send": {
			&SendToken{Issuer: issuer, Destination: dest, Amount: 5},
			nil,
		},
		"token send of nothing": {
			&SendToken{Issuer: issuer, Destination: dest, Amount: 0},
			errors.ErrAmount,
		},
		"valid burn": {
			&BurnToken{Issuer: issuer, Amount: 5},
			nil,
		},
		"negative burn": {
			&BurnToken{Issuer: issuer, Amount: -5},
			errors.ErrAmount,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.instr.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err), "got %+v", err)
			}
		})
	}
}

func TestReleaseBalance(t *testing.T) {
	dest := doriumtest.NewAddress()
	fooToken := doriumtest.NewAddress()
	barToken := doriumtest.NewAddress()

	var balance asset.Balance
	var err error
	coins, err := asset.NewNativeCredit(
		asset.NewCoin(100, "fee"),
		asset.NewCoin(500, "stake"),
	)
	require.NoError(t, err)
	balance, err = balance.Add(coins)
	require.NoError(t, err)
	balance, err = balance.Add(asset.NewTokenCredit(fooToken, 12))
	require.NoError(t, err)
	balance, err = balance.Add(asset.NewTokenCredit(barToken, 7))
	require.NoError(t, err)

	instrs := ReleaseBalance(dest, balance)
	require.Len(t, instrs, 3)

	send, ok := instrs[0].(*SendNative)
	require.True(t, ok)
	assert.Equal(t, dest, send.Destination)
	assert.True(t, send.Amount.Equals(asset.Coins{
		asset.NewCoinp(100, "fee"),
		asset.NewCoinp(500, "stake"),
	}))

	first, ok := instrs[1].(*SendToken)
	require.True(t, ok)
	assert.Equal(t, fooToken, first.Issuer)
	assert.Equal(t, int64(12), first.Amount)

	second, ok := instrs[2].(*SendToken)
	require.True(t, ok)
	assert.Equal(t, barToken, second.Issuer)
	assert.Equal(t, int64(7), second.Amount)
}

func TestReleaseBalanceEmpty(t *testing.T) {
	assert.Nil(t, ReleaseBalance(doriumtest.NewAddress(), asset.Balance{}))
}

func TestBurnBalance(t *testing.T) {
	issuer := doriumtest.NewAddress()

	balance, err := asset.Balance{}.Add(asset.NewTokenCredit(issuer, 100))
	require.NoError(t, err)

	instrs := BurnBalance(balance)
	require.Len(t, instrs, 1)
	burn, ok := instrs[0].(*BurnToken)
	require.True(t, ok)
	assert.Equal(t, issuer, burn.Issuer)
	assert.Equal(t, int64(100), burn.Amount)
}
