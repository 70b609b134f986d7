package exchange

import (
	"github.com/apeunit/dorium-contracts"
	"github.com/apeunit/dorium-contracts/errors"
)

// Initializer fulfils the dorium.Initializer interface to load data
// from the genesis file
type Initializer struct{}

var _ dorium.Initializer = (*Initializer)(nil)

// FromGenesis will parse the initial exchange setup from genesis and
// save it to the database. Without an "exchange" option the module
// stays uninitialized and every swap fails with ErrNotFound.
func (Initializer) FromGenesis(opts dorium.Options, db dorium.KVStore) error {
	var genesis struct {
		Owner      dorium.Address `json:"owner"`
		ValueToken dorium.Address `json:"value_token"`
		SobzToken  dorium.Address `json:"sobz_token"`
	}
	if err := opts.ReadOptions("exchange", &genesis); err != nil {
		return errors.Wrap(err, "cannot read exchange options")
	}
	if genesis.Owner == nil && genesis.ValueToken == nil && genesis.SobzToken == nil {
		return nil
	}

	state := State{
		Owner:      genesis.Owner,
		Exchanged:  0,
		ValueToken: genesis.ValueToken,
		SobzToken:  genesis.SobzToken,
	}
	bucket := NewBucket()
	if err := bucket.Save(db, stateKey, &state); err != nil {
		return errors.Wrap(err, "cannot store state")
	}
	return nil
}
