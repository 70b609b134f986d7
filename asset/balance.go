package asset

import (
	"github.com/apeunit/dorium-contracts"
	"github.com/apeunit/dorium-contracts/errors"
)

// Balance holds the native and tokenized funds of an escrow. Each
// asset identity appears at most once and amounts are never negative.
// Entries keep the order in which the identities were first credited,
// so that disposing of a balance produces the same instructions no
// matter how the merge calls were interleaved.
type Balance struct {
	Native Coins  `json:"native"`
	Tokens Tokens `json:"tokens"`
}

// Clone returns a copy that can be safely modified
func (b Balance) Clone() Balance {
	return Balance{
		Native: b.Native.Clone(),
		Tokens: b.Tokens.Clone(),
	}
}

// IsEmpty returns true when no funds are recorded at all.
func (b Balance) IsEmpty() bool {
	return b.Native.IsEmpty() && b.Tokens.IsEmpty()
}

// Add merges a credit into the balance, summing per asset identity.
func (b Balance) Add(c Credit) (Balance, error) {
	var err error
	res := b
	for _, coin := range c.Native {
		res.Native, err = res.Native.Add(*coin)
		if err != nil {
			return Balance{}, err
		}
	}
	if c.Token != nil {
		res.Tokens, err = res.Tokens.Add(*c.Token)
		if err != nil {
			return Balance{}, err
		}
	}
	return res, nil
}

// Equals returns true if both balances contain the same assets in the
// same order.
func (b Balance) Equals(o Balance) bool {
	return b.Native.Equals(o.Native) && b.Tokens.Equals(o.Tokens)
}

// Validate ensures all entries are well-formed and unique.
func (b Balance) Validate() error {
	if err := b.Native.Validate(); err != nil {
		return err
	}
	return b.Tokens.Validate()
}

// Credit is a single incoming payment: either a set of native coins or
// one token amount, never both. This mirrors how funds arrive at the
// contract, native funds attached to the request and token funds
// reported by the issuing token contract.
type Credit struct {
	Native Coins  `json:"native,omitempty"`
	Token  *Token `json:"token,omitempty"`
}

// NewNativeCredit builds a credit carrying native coins.
func NewNativeCredit(coins ...Coin) (Credit, error) {
	cs, err := CombineCoins(coins...)
	if err != nil {
		return Credit{}, err
	}
	return Credit{Native: cs}, nil
}

// NewTokenCredit builds a credit carrying a single token amount.
func NewTokenCredit(issuer dorium.Address, amount int64) Credit {
	return Credit{Token: NewTokenp(issuer, amount)}
}

// IsZero returns true when the credit carries no value at all.
func (c Credit) IsZero() bool {
	if c.Token != nil && !c.Token.IsZero() {
		return false
	}
	return c.Native.IsZero()
}

// IsToken returns true when this credit carries a tokenized asset.
func (c Credit) IsToken() bool {
	return c.Token != nil
}

// Validate ensures the credit is well-formed and carries exactly one
// kind of funds.
func (c Credit) Validate() error {
	if c.Token != nil {
		if !c.Native.IsEmpty() {
			return errors.Wrap(errors.ErrState, "credit carries both native and token funds")
		}
		return c.Token.Validate()
	}
	return c.Native.Validate()
}
