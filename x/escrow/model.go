package escrow

import (
	"fmt"

	"github.com/apeunit/dorium-contracts"
	"github.com/apeunit/dorium-contracts/asset"
	"github.com/apeunit/dorium-contracts/errors"
	"github.com/apeunit/dorium-contracts/orm"
)

const (
	minIDLength = 3
	maxIDLength = 20

	maxURLSize         = 256
	maxDescriptionSize = 1024
)

// Status describes where an escrow is in its lifecycle.
type Status int32

const (
	// StatusOpened accepts top ups and decisions.
	StatusOpened Status = 0
	// StatusCompleted means the balance was paid out to the proposer.
	StatusCompleted Status = 1
	// StatusCanceled means the balance was refunded or burned.
	StatusCanceled Status = 2
)

// Locked returns true once the escrow reached a final state. A locked
// escrow stays readable but rejects any state change.
func (s Status) Locked() bool {
	return s != StatusOpened
}

func (s Status) String() string {
	switch s {
	case StatusOpened:
		return "opened"
	case StatusCompleted:
		return "completed"
	case StatusCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("invalid(%d)", s)
	}
}

// Validate returns an error for values outside the known set.
func (s Status) Validate() error {
	switch s {
	case StatusOpened, StatusCompleted, StatusCanceled:
		return nil
	default:
		return errors.Wrapf(errors.ErrState, "status %d", s)
	}
}

// Escrow is the persistent record of a single proposal escrow.
type Escrow struct {
	// ID is the client chosen identifier, also the bucket key.
	ID []byte `json:"id"`
	// URL points at the proposal this escrow funds.
	URL string `json:"url"`
	// Description is a human readable summary of the proposal.
	Description string `json:"description"`
	// Validators may approve or refund this escrow.
	Validators []dorium.Address `json:"validators"`
	// Proposer receives the balance on approval.
	Proposer dorium.Address `json:"proposer"`
	// Source funded the escrow first and receives refunds.
	Source dorium.Address `json:"source"`
	// Balance holds all funds collected so far.
	Balance asset.Balance `json:"balance"`
	// Whitelist are the token issuers this escrow accepts.
	Whitelist []dorium.Address `json:"whitelist"`
	// Status tracks the lifecycle.
	Status Status `json:"status"`
}

var _ orm.Model = (*Escrow)(nil)

// Validate ensures the escrow is valid
func (e *Escrow) Validate() error {
	if err := validateID(e.ID); err != nil {
		return err
	}
	if e.URL == "" {
		return errors.Wrap(errors.ErrEmpty, "url")
	}
	if len(e.URL) > maxURLSize {
		return errors.Wrapf(errors.ErrInput, "url longer than %d", maxURLSize)
	}
	if e.Description == "" {
		return errors.Wrap(errors.ErrEmpty, "description")
	}
	if len(e.Description) > maxDescriptionSize {
		return errors.Wrapf(errors.ErrInput, "description longer than %d", maxDescriptionSize)
	}
	if len(e.Validators) == 0 {
		return errors.Wrap(errors.ErrEmpty, "validators")
	}
	for _, v := range e.Validators {
		if err := v.Validate(); err != nil {
			return errors.Wrap(err, "validator")
		}
	}
	if err := e.Proposer.Validate(); err != nil {
		return errors.Wrap(err, "proposer")
	}
	if err := e.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := e.Balance.Validate(); err != nil {
		return errors.Wrap(err, "balance")
	}
	for _, w := range e.Whitelist {
		if err := w.Validate(); err != nil {
			return errors.Wrap(err, "whitelist")
		}
	}
	return e.Status.Validate()
}

// HasValidator returns true when the given address belongs to the
// validator set of this escrow.
func (e *Escrow) HasValidator(addr dorium.Address) bool {
	for _, v := range e.Validators {
		if v.Equals(addr) {
			return true
		}
	}
	return false
}

// InWhitelist returns true when token credits from the given issuer
// are accepted.
func (e *Escrow) InWhitelist(issuer dorium.Address) bool {
	for _, w := range e.Whitelist {
		if w.Equals(issuer) {
			return true
		}
	}
	return false
}

// AddToWhitelist admits an issuer, ignoring duplicates.
func (e *Escrow) AddToWhitelist(issuer dorium.Address) {
	if e.InWhitelist(issuer) {
		return
	}
	e.Whitelist = append(e.Whitelist, issuer.Clone())
}

func validateID(id []byte) error {
	if len(id) < minIDLength || len(id) > maxIDLength {
		return errors.Wrapf(errors.ErrInput, "id length %d", len(id))
	}
	return nil
}

// NewBucket returns a bucket to store and enumerate escrows.
func NewBucket() orm.Bucket {
	return orm.NewBucket("escrow")
}
