package asset

import (
	"fmt"

	"github.com/apeunit/dorium-contracts"
	"github.com/apeunit/dorium-contracts/errors"
)

// Token is an amount of a tokenized asset. The identity of the asset
// is the address of the issuing token contract.
type Token struct {
	Issuer dorium.Address `json:"issuer"`
	Amount int64          `json:"amount"`
}

// NewToken creates a new token amount for the given issuer.
func NewToken(issuer dorium.Address, amount int64) Token {
	return Token{
		Issuer: issuer,
		Amount: amount,
	}
}

// NewTokenp returns a pointer to a new token.
func NewTokenp(issuer dorium.Address, amount int64) *Token {
	t := NewToken(issuer, amount)
	return &t
}

// IsZero returns true when the amount is zero.
func (t Token) IsZero() bool {
	return t.Amount == 0
}

// Equals returns true when both issuer and amount match.
func (t Token) Equals(o Token) bool {
	return t.Issuer.Equals(o.Issuer) && t.Amount == o.Amount
}

// Clone provides an independent copy of a token pointer
func (t *Token) Clone() *Token {
	return &Token{
		Issuer: t.Issuer.Clone(),
		Amount: t.Amount,
	}
}

// Add combines two amounts of the same token. This method fails on an
// issuer mismatch or when the result would overflow.
func (t Token) Add(o Token) (Token, error) {
	if !t.Issuer.Equals(o.Issuer) {
		return Token{}, errors.Wrapf(errors.ErrType, "adding %s to %s", o.Issuer, t.Issuer)
	}
	sum := t.Amount + o.Amount
	if sum < 0 || sum > MaxAmount {
		return Token{}, errors.Wrapf(errors.ErrOverflow, "%s amount", t.Issuer)
	}
	return Token{Issuer: t.Issuer, Amount: sum}, nil
}

// Validate ensures the token is well-formed.
func (t Token) Validate() error {
	if err := t.Issuer.Validate(); err != nil {
		return errors.Wrap(err, "issuer")
	}
	if t.Amount < 0 {
		return errors.Wrapf(errors.ErrAmount, "negative amount: %d", t.Amount)
	}
	if t.Amount > MaxAmount {
		return errors.Wrapf(errors.ErrOverflow, "amount: %d", t.Amount)
	}
	return nil
}

// String provides a human readable representation of the token
func (t Token) String() string {
	return fmt.Sprintf("%d from %s", t.Amount, t.Issuer)
}

// Tokens is an ordered collection of token amounts, one entry per
// issuer, in first-added order.
type Tokens []*Token

// Clone returns a copy that can be safely modified
func (ts Tokens) Clone() Tokens {
	if ts == nil {
		return nil
	}
	res := make(Tokens, len(ts))
	for i, t := range ts {
		res[i] = t.Clone()
	}
	return res
}

// Add merges a single token into the collection, summing amounts per
// issuer and appending unknown issuers at the end. Zero amounts are
// ignored. The receiver is never modified.
func (ts Tokens) Add(t Token) (Tokens, error) {
	if t.IsZero() {
		return ts, nil
	}
	for i, have := range ts {
		if have.Issuer.Equals(t.Issuer) {
			sum, err := have.Add(t)
			if err != nil {
				return nil, err
			}
			res := ts.Clone()
			res[i] = &sum
			return res, nil
		}
	}
	return append(ts.Clone(), &t), nil
}

// IsEmpty returns if nothing is in the collection
func (ts Tokens) IsEmpty() bool {
	return len(ts) == 0
}

// Equals returns true if both collections contain the same tokens in
// the same order.
func (ts Tokens) Equals(o Tokens) bool {
	if len(ts) != len(o) {
		return false
	}
	for i := range ts {
		if !ts[i].Equals(*o[i]) {
			return false
		}
	}
	return true
}

// Validate requires that each token is valid in its own right, that no
// issuer appears twice and that no zero entries are stored.
func (ts Tokens) Validate() error {
	for i, t := range ts {
		if err := t.Validate(); err != nil {
			return errors.Wrap(err, "token")
		}
		if t.IsZero() {
			return errors.Wrap(errors.ErrState, "zero token entry")
		}
		for _, prev := range ts[:i] {
			if prev.Issuer.Equals(t.Issuer) {
				return errors.Wrapf(errors.ErrState, "duplicate issuer: %s", t.Issuer)
			}
		}
	}
	return nil
}
