package exchange

import (
	"github.com/apeunit/dorium-contracts"
	"github.com/apeunit/dorium-contracts/asset"
	"github.com/apeunit/dorium-contracts/errors"
	"github.com/apeunit/dorium-contracts/orm"
)

// stateKey addresses the singleton state record in the bucket.
var stateKey = []byte("state")

// State is the singleton configuration and counter of the exchange.
type State struct {
	// Owner may change the token addresses.
	Owner dorium.Address `json:"owner"`
	// Exchanged is the total amount of sobz ever swapped for value.
	Exchanged int64 `json:"exchanged"`
	// ValueToken is the issuer of the tokens paid out.
	ValueToken dorium.Address `json:"value_token"`
	// SobzToken is the issuer of the tokens taken in and burned.
	SobzToken dorium.Address `json:"sobz_token"`
}

var _ orm.Model = (*State)(nil)

// Validate ensures the state is valid
func (s *State) Validate() error {
	if err := s.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if err := s.ValueToken.Validate(); err != nil {
		return errors.Wrap(err, "value token")
	}
	if err := s.SobzToken.Validate(); err != nil {
		return errors.Wrap(err, "sobz token")
	}
	if s.ValueToken.Equals(s.SobzToken) {
		return errors.Wrap(errors.ErrState, "value and sobz token are the same")
	}
	if s.Exchanged < 0 {
		return errors.Wrapf(errors.ErrAmount, "exchanged: %d", s.Exchanged)
	}
	if s.Exchanged > asset.MaxAmount {
		return errors.Wrapf(errors.ErrOverflow, "exchanged: %d", s.Exchanged)
	}
	return nil
}

// NewBucket returns a bucket holding the exchange singleton.
func NewBucket() orm.Bucket {
	return orm.NewBucket("exchange")
}

// loadState reads the singleton. ErrNotFound means the exchange was
// never initialized.
func loadState(bucket orm.Bucket, db dorium.ReadOnlyKVStore) (*State, error) {
	var state State
	if err := bucket.Get(db, stateKey, &state); err != nil {
		return nil, errors.Wrap(err, "exchange state")
	}
	return &state, nil
}
