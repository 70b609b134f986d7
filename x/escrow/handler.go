package escrow

import (
	"github.com/apeunit/dorium-contracts"
	"github.com/apeunit/dorium-contracts/asset"
	"github.com/apeunit/dorium-contracts/errors"
	"github.com/apeunit/dorium-contracts/orm"
	"github.com/apeunit/dorium-contracts/x"
	"github.com/apeunit/dorium-contracts/x/bank"
)

const (
	// pay escrow cost up-front
	createEscrowCost     int64 = 300
	topUpEscrowCost      int64 = 100
	decideEscrowCost     int64 = 0
	updateValidatorsCost int64 = 50
)

// RefundPolicy decides what happens to the funds of a refunded escrow.
type RefundPolicy int32

const (
	// ReturnToSource pays the full balance back to the source.
	ReturnToSource RefundPolicy = 0
	// BurnTokens destroys the token part of the balance and returns
	// only the native part to the source.
	BurnTokens RefundPolicy = 1
)

// Validate returns an error for values outside the known set.
func (p RefundPolicy) Validate() error {
	switch p {
	case ReturnToSource, BurnTokens:
		return nil
	default:
		return errors.Wrapf(errors.ErrState, "refund policy %d", p)
	}
}

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r dorium.Registry, auth x.Authenticator, policy RefundPolicy) {
	bucket := NewBucket()

	r.Handle(pathCreateMsg, CreateHandler{auth, bucket})
	r.Handle(pathTopUpMsg, TopUpHandler{auth, bucket})
	r.Handle(pathApproveMsg, ApproveHandler{auth, bucket})
	r.Handle(pathRefundMsg, RefundHandler{auth, bucket, policy})
	r.Handle(pathUpdateValidatorsMsg, UpdateValidatorsHandler{auth, bucket})
}

// CreateHandler opens new escrows.
type CreateHandler struct {
	auth   x.Authenticator
	bucket orm.Bucket
}

var _ dorium.Handler = CreateHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h CreateHandler) Check(ctx dorium.Context, db dorium.KVStore, tx dorium.Tx) (*dorium.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &dorium.CheckResult{GasAllocated: createEscrowCost}, nil
}

// Deliver stores a new escrow holding the opening credit if all
// preconditions are met.
func (h CreateHandler) Deliver(ctx dorium.Context, db dorium.KVStore, tx dorium.Tx) (*dorium.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// apply a default for source
	source := msg.Source
	if source == nil {
		source = x.MainSigner(ctx, h.auth)
	}
	if source == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no source")
	}

	balance, err := asset.Balance{}.Add(msg.Credit)
	if err != nil {
		return nil, err
	}

	escrow := &Escrow{
		ID:          msg.EscrowID,
		URL:         msg.URL,
		Description: msg.Description,
		Validators:  msg.Validators,
		Proposer:    msg.Proposer,
		Source:      source,
		Balance:     balance,
		Whitelist:   msg.Whitelist,
		Status:      StatusOpened,
	}
	// the opening credit admits its own issuer
	if msg.Credit.IsToken() {
		escrow.AddToWhitelist(msg.Credit.Token.Issuer)
	}

	if err := h.bucket.Create(db, msg.EscrowID, escrow); err != nil {
		return nil, errors.Wrap(err, "cannot store escrow")
	}
	return &dorium.DeliverResult{Data: msg.EscrowID}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h CreateHandler) validate(ctx dorium.Context, db dorium.KVStore, tx dorium.Tx) (*CreateMsg, error) {
	msg, err := loadMsg(tx)
	if err != nil {
		return nil, err
	}
	createMsg, ok := msg.(*CreateMsg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrMsg, "invalid type: %T", msg)
	}

	// Source must authorize this (if not set, defaults to MainSigner).
	if createMsg.Source != nil {
		if !h.auth.HasAddress(ctx, createMsg.Source) {
			return nil, errors.ErrUnauthorized
		}
	}
	return createMsg, nil
}

// TopUpHandler adds funds to open escrows.
type TopUpHandler struct {
	auth   x.Authenticator
	bucket orm.Bucket
}

var _ dorium.Handler = TopUpHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h TopUpHandler) Check(ctx dorium.Context, db dorium.KVStore, tx dorium.Tx) (*dorium.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &dorium.CheckResult{GasAllocated: topUpEscrowCost}, nil
}

// Deliver merges the credit into the escrow balance. Anyone may top
// up, token credits must come from a whitelisted issuer.
func (h TopUpHandler) Deliver(ctx dorium.Context, db dorium.KVStore, tx dorium.Tx) (*dorium.DeliverResult, error) {
	msg, escrow, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	escrow.Balance, err = escrow.Balance.Add(msg.Credit)
	if err != nil {
		return nil, err
	}
	if err := h.bucket.Save(db, msg.EscrowID, escrow); err != nil {
		return nil, errors.Wrap(err, "cannot store escrow")
	}
	return &dorium.DeliverResult{Data: msg.EscrowID}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h TopUpHandler) validate(ctx dorium.Context, db dorium.KVStore, tx dorium.Tx) (*TopUpMsg, *Escrow, error) {
	msg, err := loadMsg(tx)
	if err != nil {
		return nil, nil, err
	}
	topUpMsg, ok := msg.(*TopUpMsg)
	if !ok {
		return nil, nil, errors.Wrapf(errors.ErrMsg, "invalid type: %T", msg)
	}

	escrow, err := loadOpenEscrow(h.bucket, db, topUpMsg.EscrowID)
	if err != nil {
		return nil, nil, err
	}
	if topUpMsg.Credit.IsToken() {
		issuer := topUpMsg.Credit.Token.Issuer
		if !escrow.InWhitelist(issuer) {
			return nil, nil, errors.Wrapf(ErrNotInWhitelist, "issuer %s", issuer)
		}
	}
	return topUpMsg, escrow, nil
}

// ApproveHandler settles escrows in favor of the proposer.
type ApproveHandler struct {
	auth   x.Authenticator
	bucket orm.Bucket
}

var _ dorium.Handler = ApproveHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h ApproveHandler) Check(ctx dorium.Context, db dorium.KVStore, tx dorium.Tx) (*dorium.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &dorium.CheckResult{GasAllocated: decideEscrowCost}, nil
}

// Deliver pays the full balance out to the proposer and locks the
// escrow. The record stays around for queries.
func (h ApproveHandler) Deliver(ctx dorium.Context, db dorium.KVStore, tx dorium.Tx) (*dorium.DeliverResult, error) {
	msg, escrow, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	instructions := bank.ReleaseBalance(escrow.Proposer, escrow.Balance)
	escrow.Status = StatusCompleted
	if err := h.bucket.Save(db, msg.EscrowID, escrow); err != nil {
		return nil, errors.Wrap(err, "cannot store escrow")
	}
	return &dorium.DeliverResult{
		Data:         msg.EscrowID,
		Instructions: instructions,
	}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h ApproveHandler) validate(ctx dorium.Context, db dorium.KVStore, tx dorium.Tx) (*ApproveMsg, *Escrow, error) {
	msg, err := loadMsg(tx)
	if err != nil {
		return nil, nil, err
	}
	approveMsg, ok := msg.(*ApproveMsg)
	if !ok {
		return nil, nil, errors.Wrapf(errors.ErrMsg, "invalid type: %T", msg)
	}

	// validator membership is checked before the settlement status
	escrow, err := loadEscrow(h.bucket, db, approveMsg.EscrowID)
	if err != nil {
		return nil, nil, err
	}
	if !x.HasNAddresses(ctx, h.auth, escrow.Validators, 1) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "not a validator")
	}
	if err := rejectLocked(escrow, approveMsg.EscrowID); err != nil {
		return nil, nil, err
	}
	if escrow.Balance.IsEmpty() {
		return nil, nil, errors.Wrapf(ErrEmptyBalance, "escrow %X", approveMsg.EscrowID)
	}
	return approveMsg, escrow, nil
}

// RefundHandler settles escrows against the proposer.
type RefundHandler struct {
	auth   x.Authenticator
	bucket orm.Bucket
	policy RefundPolicy
}

var _ dorium.Handler = RefundHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h RefundHandler) Check(ctx dorium.Context, db dorium.KVStore, tx dorium.Tx) (*dorium.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &dorium.CheckResult{GasAllocated: decideEscrowCost}, nil
}

// Deliver disposes of the balance according to the refund policy and
// locks the escrow. The record stays around for queries.
func (h RefundHandler) Deliver(ctx dorium.Context, db dorium.KVStore, tx dorium.Tx) (*dorium.DeliverResult, error) {
	msg, escrow, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	var instructions []dorium.Instruction
	switch h.policy {
	case BurnTokens:
		if !escrow.Balance.Native.IsEmpty() {
			instructions = append(instructions, &bank.SendNative{
				Destination: escrow.Source.Clone(),
				Amount:      escrow.Balance.Native.Clone(),
			})
		}
		instructions = append(instructions, bank.BurnBalance(escrow.Balance)...)
	default:
		instructions = bank.ReleaseBalance(escrow.Source, escrow.Balance)
	}

	escrow.Status = StatusCanceled
	if err := h.bucket.Save(db, msg.EscrowID, escrow); err != nil {
		return nil, errors.Wrap(err, "cannot store escrow")
	}
	return &dorium.DeliverResult{
		Data:         msg.EscrowID,
		Instructions: instructions,
	}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h RefundHandler) validate(ctx dorium.Context, db dorium.KVStore, tx dorium.Tx) (*RefundMsg, *Escrow, error) {
	msg, err := loadMsg(tx)
	if err != nil {
		return nil, nil, err
	}
	refundMsg, ok := msg.(*RefundMsg)
	if !ok {
		return nil, nil, errors.Wrapf(errors.ErrMsg, "invalid type: %T", msg)
	}

	escrow, err := loadEscrow(h.bucket, db, refundMsg.EscrowID)
	if err != nil {
		return nil, nil, err
	}
	if !x.HasNAddresses(ctx, h.auth, escrow.Validators, 1) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "not a validator")
	}
	if err := rejectLocked(escrow, refundMsg.EscrowID); err != nil {
		return nil, nil, err
	}
	return refundMsg, escrow, nil
}

// UpdateValidatorsHandler changes the validator set of open escrows.
type UpdateValidatorsHandler struct {
	auth   x.Authenticator
	bucket orm.Bucket
}

var _ dorium.Handler = UpdateValidatorsHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h UpdateValidatorsHandler) Check(ctx dorium.Context, db dorium.KVStore, tx dorium.Tx) (*dorium.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &dorium.CheckResult{GasAllocated: updateValidatorsCost}, nil
}

// Deliver applies the validator set changes. Removals happen before
// additions, removing an unknown validator or adding a known one is an
// error and the resulting set must not be empty.
func (h UpdateValidatorsHandler) Deliver(ctx dorium.Context, db dorium.KVStore, tx dorium.Tx) (*dorium.DeliverResult, error) {
	msg, escrow, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	validators := escrow.Validators
	for _, r := range msg.Remove {
		at := -1
		for i, v := range validators {
			if v.Equals(r) {
				at = i
				break
			}
		}
		if at == -1 {
			return nil, errors.Wrapf(errors.ErrNotFound, "validator %s", r)
		}
		validators = append(validators[:at], validators[at+1:]...)
	}
	for _, a := range msg.Add {
		for _, v := range validators {
			if v.Equals(a) {
				return nil, errors.Wrapf(errors.ErrDuplicate, "validator %s", a)
			}
		}
		validators = append(validators, a.Clone())
	}
	if len(validators) == 0 {
		return nil, errors.Wrap(errors.ErrState, "validator set empty")
	}

	escrow.Validators = validators
	if err := h.bucket.Save(db, msg.EscrowID, escrow); err != nil {
		return nil, errors.Wrap(err, "cannot store escrow")
	}
	return &dorium.DeliverResult{Data: msg.EscrowID}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h UpdateValidatorsHandler) validate(ctx dorium.Context, db dorium.KVStore, tx dorium.Tx) (*UpdateValidatorsMsg, *Escrow, error) {
	msg, err := loadMsg(tx)
	if err != nil {
		return nil, nil, err
	}
	updateMsg, ok := msg.(*UpdateValidatorsMsg)
	if !ok {
		return nil, nil, errors.Wrapf(errors.ErrMsg, "invalid type: %T", msg)
	}

	escrow, err := loadEscrow(h.bucket, db, updateMsg.EscrowID)
	if err != nil {
		return nil, nil, err
	}
	// only the source may change the validator set
	if !h.auth.HasAddress(ctx, escrow.Source) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "not the source")
	}
	if err := rejectLocked(escrow, updateMsg.EscrowID); err != nil {
		return nil, nil, err
	}
	return updateMsg, escrow, nil
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

// loadEscrow loads an escrow in any state.
func loadEscrow(bucket orm.Bucket, db dorium.KVStore, id []byte) (*Escrow, error) {
	var escrow Escrow
	if err := bucket.Get(db, id, &escrow); err != nil {
		return nil, err
	}
	return &escrow, nil
}

// rejectLocked returns an error for decided escrows.
func rejectLocked(escrow *Escrow, id []byte) error {
	if escrow.Status.Locked() {
		return errors.Wrapf(ErrEscrowLocked, "escrow %X is %s", id, escrow.Status)
	}
	return nil
}

// loadOpenEscrow loads an escrow and rejects decided ones.
func loadOpenEscrow(bucket orm.Bucket, db dorium.KVStore, id []byte) (*Escrow, error) {
	escrow, err := loadEscrow(bucket, db, id)
	if err != nil {
		return nil, err
	}
	if err := rejectLocked(escrow, id); err != nil {
		return nil, err
	}
	return escrow, nil
}
