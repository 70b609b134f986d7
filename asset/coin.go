package asset

import (
	"fmt"
	"regexp"

	"github.com/apeunit/dorium-contracts/errors"
)

// IsDenom is the RegExp to ensure valid native denominations
var IsDenom = regexp.MustCompile(`^[a-z]{2,16}$`).MatchString

// MaxAmount is the largest amount we accept for a single asset entry.
// Amounts are conceptually unsigned; the int64 representation leaves
// plenty of headroom for overflow checks.
const MaxAmount int64 = 999999999999999 // 10^15-1

// Coin is an amount of a single native denomination.
type Coin struct {
	Amount int64  `json:"amount"`
	Denom  string `json:"denom"`
}

// NewCoin creates a new coin object
func NewCoin(amount int64, denom string) Coin {
	return Coin{
		Amount: amount,
		Denom:  denom,
	}
}

// NewCoinp returns a pointer to a new coin.
func NewCoinp(amount int64, denom string) *Coin {
	c := NewCoin(amount, denom)
	return &c
}

// ID returns the identity of the coin, its denomination.
func (c Coin) ID() string {
	return c.Denom
}

// IsZero returns true when the amount is zero.
func (c Coin) IsZero() bool {
	return c.Amount == 0
}

// Equals returns true when both denom and amount match.
func (c Coin) Equals(o Coin) bool {
	return c.Denom == o.Denom && c.Amount == o.Amount
}

// Clone provides an independent copy of a coin pointer
func (c *Coin) Clone() *Coin {
	return &Coin{
		Denom:  c.Denom,
		Amount: c.Amount,
	}
}

// Add combines two coins of the same denomination. This method fails
// on a denomination mismatch or when the result would overflow the
// maximum amount.
func (c Coin) Add(o Coin) (Coin, error) {
	if c.Denom != o.Denom {
		return Coin{}, errors.Wrapf(errors.ErrType, "adding %s to %s", o.Denom, c.Denom)
	}
	sum := c.Amount + o.Amount
	if sum < 0 || sum > MaxAmount {
		return Coin{}, errors.Wrapf(errors.ErrOverflow, "%s amount", c.Denom)
	}
	return Coin{Denom: c.Denom, Amount: sum}, nil
}

// Validate ensures the coin is well-formed: known denomination format
// and a non-negative amount within bounds.
func (c Coin) Validate() error {
	if !IsDenom(c.Denom) {
		return errors.Wrapf(errors.ErrInput, "invalid denomination: %s", c.Denom)
	}
	if c.Amount < 0 {
		return errors.Wrapf(errors.ErrAmount, "negative amount: %d", c.Amount)
	}
	if c.Amount > MaxAmount {
		return errors.Wrapf(errors.ErrOverflow, "amount: %d", c.Amount)
	}
	return nil
}

// String provides a human readable representation of the coin
func (c Coin) String() string {
	return fmt.Sprintf("%d %s", c.Amount, c.Denom)
}

// Coins is an ordered collection of native coins, one entry per
// denomination. Unlike a sorted coin set, the order of entries is the
// order in which the denominations were first added. Settlement relies
// on this to emit deterministic transfer instructions.
type Coins []*Coin

// Clone returns a copy that can be safely modified
func (cs Coins) Clone() Coins {
	if cs == nil {
		return nil
	}
	res := make(Coins, len(cs))
	for i, c := range cs {
		res[i] = c.Clone()
	}
	return res
}

// Add merges a single coin into the collection, summing amounts per
// denomination and appending unknown denominations at the end. Zero
// value coins are ignored. The receiver is never modified.
func (cs Coins) Add(c Coin) (Coins, error) {
	if c.IsZero() {
		return cs, nil
	}
	for i, have := range cs {
		if have.Denom == c.Denom {
			sum, err := have.Add(c)
			if err != nil {
				return nil, err
			}
			res := cs.Clone()
			res[i] = &sum
			return res, nil
		}
	}
	return append(cs.Clone(), &c), nil
}

// Combine merges all coins of o into a copy of cs.
func (cs Coins) Combine(o Coins) (Coins, error) {
	res := cs.Clone()
	for _, c := range o {
		var err error
		res, err = res.Add(*c)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// IsEmpty returns if nothing is in the collection
func (cs Coins) IsEmpty() bool {
	return len(cs) == 0
}

// IsZero returns true when every entry carries a zero amount.
func (cs Coins) IsZero() bool {
	for _, c := range cs {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

// Equals returns true if both collections contain the same coins in
// the same order.
func (cs Coins) Equals(o Coins) bool {
	if len(cs) != len(o) {
		return false
	}
	for i := range cs {
		if !cs[i].Equals(*o[i]) {
			return false
		}
	}
	return true
}

// Validate requires that each coin is valid in its own right, that no
// denomination appears twice and that no zero entries are stored.
func (cs Coins) Validate() error {
	seen := make(map[string]struct{}, len(cs))
	for _, c := range cs {
		if err := c.Validate(); err != nil {
			return errors.Wrap(err, "coin")
		}
		if c.IsZero() {
			return errors.Wrap(errors.ErrState, "zero coin entry")
		}
		if _, ok := seen[c.Denom]; ok {
			return errors.Wrapf(errors.ErrState, "duplicate denomination: %s", c.Denom)
		}
		seen[c.Denom] = struct{}{}
	}
	return nil
}

// CombineCoins creates a Coins collection containing all given coins.
func CombineCoins(cs ...Coin) (Coins, error) {
	var err error
	coins := make(Coins, 0, len(cs))
	for _, c := range cs {
		coins, err = coins.Add(c)
		if err != nil {
			return nil, err
		}
	}
	if err := coins.Validate(); err != nil {
		return nil, err
	}
	return coins, nil
}
