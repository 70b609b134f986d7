package exchange

import (
	"github.com/tendermint/go-amino"

	"github.com/apeunit/dorium-contracts"
	"github.com/apeunit/dorium-contracts/asset"
	"github.com/apeunit/dorium-contracts/errors"
)

const (
	pathSwapMsg      = "exchange/swap"
	pathSetTokensMsg = "exchange/set_tokens"
)

var cdc = amino.NewCodec()

var (
	_ dorium.Msg = (*SwapMsg)(nil)
	_ dorium.Msg = (*SetTokensMsg)(nil)
)

// SwapMsg swaps the given amount of sobz tokens, already received by
// the contract, for the same amount of value tokens.
type SwapMsg struct {
	Amount int64 `json:"amount"`
}

func (SwapMsg) Path() string {
	return pathSwapMsg
}

// Validate makes sure that this is sensible
func (m *SwapMsg) Validate() error {
	if m.Amount <= 0 {
		return errors.Wrapf(errors.ErrAmount, "amount: %d", m.Amount)
	}
	if m.Amount > asset.MaxAmount {
		return errors.Wrapf(errors.ErrOverflow, "amount: %d", m.Amount)
	}
	return nil
}

// SetTokensMsg changes the token addresses the exchange operates on.
// Only the owner may do this.
type SetTokensMsg struct {
	ValueToken dorium.Address `json:"value_token"`
	SobzToken  dorium.Address `json:"sobz_token"`
}

func (SetTokensMsg) Path() string {
	return pathSetTokensMsg
}

// Validate makes sure that this is sensible
func (m *SetTokensMsg) Validate() error {
	if err := m.ValueToken.Validate(); err != nil {
		return errors.Wrap(err, "value token")
	}
	if err := m.SobzToken.Validate(); err != nil {
		return errors.Wrap(err, "sobz token")
	}
	if m.ValueToken.Equals(m.SobzToken) {
		return errors.Wrap(errors.ErrInput, "value and sobz token are the same")
	}
	return nil
}

//--------- Serialization --------

func (m *SwapMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *SwapMsg) Unmarshal(bz []byte) error {
	return cdc.UnmarshalBinaryBare(bz, m)
}

func (m *SetTokensMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *SetTokensMsg) Unmarshal(bz []byte) error {
	return cdc.UnmarshalBinaryBare(bz, m)
}
