package bank

import (
	"github.com/apeunit/dorium-contracts"
	"github.com/apeunit/dorium-contracts/asset"
	"github.com/apeunit/dorium-contracts/errors"
)

var (
	_ dorium.Instruction = (*SendNative)(nil)
	_ dorium.Instruction = (*SendToken)(nil)
	_ dorium.Instruction = (*BurnToken)(nil)
)

// SendNative instructs the host to pay out native coins to the
// destination address. All coins travel in a single instruction so a
// payout touches each recipient at most once.
type SendNative struct {
	Destination dorium.Address `json:"destination"`
	Amount      asset.Coins    `json:"amount"`
}

func (s *SendNative) Validate() error {
	if err := s.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if s.Amount.IsEmpty() {
		return errors.Wrap(errors.ErrEmpty, "amount")
	}
	return s.Amount.Validate()
}

// SendToken instructs the host to call the issuing token contract and
// transfer the given amount to the destination address.
type SendToken struct {
	Issuer      dorium.Address `json:"issuer"`
	Destination dorium.Address `json:"destination"`
	Amount      int64          `json:"amount"`
}

func (s *SendToken) Validate() error {
	if err := s.Issuer.Validate(); err != nil {
		return errors.Wrap(err, "issuer")
	}
	if err := s.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if s.Amount <= 0 {
		return errors.Wrapf(errors.ErrAmount, "amount: %d", s.Amount)
	}
	return nil
}

// BurnToken instructs the host to call the issuing token contract and
// destroy the given amount held by the contract.
type BurnToken struct {
	Issuer dorium.Address `json:"issuer"`
	Amount int64          `json:"amount"`
}

func (b *BurnToken) Validate() error {
	if err := b.Issuer.Validate(); err != nil {
		return errors.Wrap(err, "issuer")
	}
	if b.Amount <= 0 {
		return errors.Wrapf(errors.ErrAmount, "amount: %d", b.Amount)
	}
	return nil
}

// ReleaseBalance converts a full balance into payment instructions
// towards a single destination. Native coins travel in one instruction,
// every token amount in its own, in balance order.
func ReleaseBalance(destination dorium.Address, balance asset.Balance) []dorium.Instruction {
	var out []dorium.Instruction
	if !balance.Native.IsEmpty() {
		out = append(out, &SendNative{
			Destination: destination,
			Amount:      balance.Native.Clone(),
		})
	}
	for _, tok := range balance.Tokens {
		out = append(out, &SendToken{
			Issuer:      tok.Issuer.Clone(),
			Destination: destination,
			Amount:      tok.Amount,
		})
	}
	return out
}

// BurnBalance converts the token part of a balance into burn
// instructions. Native coins cannot be burned by the host, callers
// must route them elsewhere.
func BurnBalance(balance asset.Balance) []dorium.Instruction {
	var out []dorium.Instruction
	for _, tok := range balance.Tokens {
		out = append(out, &BurnToken{
			Issuer: tok.Issuer.Clone(),
			Amount: tok.Amount,
		})
	}
	return out
}
