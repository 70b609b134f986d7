package exchange

import (
	"github.com/apeunit/dorium-contracts"
	"github.com/apeunit/dorium-contracts/asset"
	"github.com/apeunit/dorium-contracts/errors"
	"github.com/apeunit/dorium-contracts/orm"
	"github.com/apeunit/dorium-contracts/x"
	"github.com/apeunit/dorium-contracts/x/bank"
)

const (
	swapCost      int64 = 100
	setTokensCost int64 = 50
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r dorium.Registry, auth x.Authenticator) {
	bucket := NewBucket()

	r.Handle(pathSwapMsg, SwapHandler{auth, bucket})
	r.Handle(pathSetTokensMsg, SetTokensHandler{auth, bucket})
}

// SwapHandler swaps received sobz tokens for value tokens.
type SwapHandler struct {
	auth   x.Authenticator
	bucket orm.Bucket
}

var _ dorium.Handler = SwapHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h SwapHandler) Check(ctx dorium.Context, db dorium.KVStore, tx dorium.Tx) (*dorium.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &dorium.CheckResult{GasAllocated: swapCost}, nil
}

// Deliver burns the received sobz and pays the same amount of value
// tokens out to the caller.
func (h SwapHandler) Deliver(ctx dorium.Context, db dorium.KVStore, tx dorium.Tx) (*dorium.DeliverResult, error) {
	msg, state, caller, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	sum := state.Exchanged + msg.Amount
	if sum < 0 || sum > asset.MaxAmount {
		return nil, errors.Wrap(errors.ErrOverflow, "exchanged total")
	}
	state.Exchanged = sum
	if err := h.bucket.Save(db, stateKey, state); err != nil {
		return nil, errors.Wrap(err, "cannot store state")
	}

	instructions := []dorium.Instruction{
		&bank.BurnToken{Issuer: state.SobzToken.Clone(), Amount: msg.Amount},
		&bank.SendToken{Issuer: state.ValueToken.Clone(), Destination: caller, Amount: msg.Amount},
	}
	return &dorium.DeliverResult{Instructions: instructions}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h SwapHandler) validate(ctx dorium.Context, db dorium.KVStore, tx dorium.Tx) (*SwapMsg, *State, dorium.Address, error) {
	msg, err := loadMsg(tx)
	if err != nil {
		return nil, nil, nil, err
	}
	swapMsg, ok := msg.(*SwapMsg)
	if !ok {
		return nil, nil, nil, errors.Wrapf(errors.ErrMsg, "invalid type: %T", msg)
	}

	state, err := loadState(h.bucket, db)
	if err != nil {
		return nil, nil, nil, err
	}
	caller := x.MainSigner(ctx, h.auth)
	if caller == nil {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "no caller")
	}
	return swapMsg, state, caller, nil
}

// SetTokensHandler changes the token addresses of the exchange.
type SetTokensHandler struct {
	auth   x.Authenticator
	bucket orm.Bucket
}

var _ dorium.Handler = SetTokensHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h SetTokensHandler) Check(ctx dorium.Context, db dorium.KVStore, tx dorium.Tx) (*dorium.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &dorium.CheckResult{GasAllocated: setTokensCost}, nil
}

// Deliver stores the new token addresses.
func (h SetTokensHandler) Deliver(ctx dorium.Context, db dorium.KVStore, tx dorium.Tx) (*dorium.DeliverResult, error) {
	msg, state, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	state.ValueToken = msg.ValueToken.Clone()
	state.SobzToken = msg.SobzToken.Clone()
	if err := h.bucket.Save(db, stateKey, state); err != nil {
		return nil, errors.Wrap(err, "cannot store state")
	}
	return &dorium.DeliverResult{}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h SetTokensHandler) validate(ctx dorium.Context, db dorium.KVStore, tx dorium.Tx) (*SetTokensMsg, *State, error) {
	msg, err := loadMsg(tx)
	if err != nil {
		return nil, nil, err
	}
	setMsg, ok := msg.(*SetTokensMsg)
	if !ok {
		return nil, nil, errors.Wrapf(errors.ErrMsg, "invalid type: %T", msg)
	}

	state, err := loadState(h.bucket, db)
	if err != nil {
		return nil, nil, err
	}
	// only the owner may change the tokens
	if !h.auth.HasAddress(ctx, state.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "not the owner")
	}
	return setMsg, state, nil
}

// loadMsg extracts the message from the transaction and runs its
// stateless validation.
func loadMsg(tx dorium.Tx) (dorium.Msg, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	return msg, nil
}
