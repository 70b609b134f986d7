package escrow

import (
	"github.com/tendermint/go-amino"

	"github.com/apeunit/dorium-contracts"
	"github.com/apeunit/dorium-contracts/asset"
	"github.com/apeunit/dorium-contracts/errors"
)

const (
	pathCreateMsg           = "escrow/create"
	pathTopUpMsg            = "escrow/topup"
	pathApproveMsg          = "escrow/approve"
	pathRefundMsg           = "escrow/refund"
	pathUpdateValidatorsMsg = "escrow/update_validators"
)

var cdc = amino.NewCodec()

var (
	_ dorium.Msg = (*CreateMsg)(nil)
	_ dorium.Msg = (*TopUpMsg)(nil)
	_ dorium.Msg = (*ApproveMsg)(nil)
	_ dorium.Msg = (*RefundMsg)(nil)
	_ dorium.Msg = (*UpdateValidatorsMsg)(nil)
)

// CreateMsg opens a new escrow under a client chosen id. The attached
// credit becomes the opening balance and its token issuer, if any, is
// admitted to the whitelist automatically.
type CreateMsg struct {
	EscrowID    []byte           `json:"escrow_id"`
	URL         string           `json:"url"`
	Description string           `json:"description"`
	Validators  []dorium.Address `json:"validators"`
	Proposer    dorium.Address   `json:"proposer"`
	// Source is the funding party. Defaults to the main signer.
	Source    dorium.Address   `json:"source,omitempty"`
	Whitelist []dorium.Address `json:"whitelist,omitempty"`
	Credit    asset.Credit     `json:"credit"`
}

func (CreateMsg) Path() string {
	return pathCreateMsg
}

// Validate makes sure that this is sensible
func (m *CreateMsg) Validate() error {
	if err := validateID(m.EscrowID); err != nil {
		return err
	}
	if m.URL == "" {
		return errors.Wrap(errors.ErrEmpty, "url")
	}
	if m.Description == "" {
		return errors.Wrap(errors.ErrEmpty, "description")
	}
	if len(m.Validators) == 0 {
		return errors.Wrap(errors.ErrEmpty, "validators")
	}
	for _, v := range m.Validators {
		if err := v.Validate(); err != nil {
			return errors.Wrap(err, "validator")
		}
	}
	if err := m.Proposer.Validate(); err != nil {
		return errors.Wrap(err, "proposer")
	}
	if m.Source != nil {
		if err := m.Source.Validate(); err != nil {
			return errors.Wrap(err, "source")
		}
	}
	for _, w := range m.Whitelist {
		if err := w.Validate(); err != nil {
			return errors.Wrap(err, "whitelist")
		}
	}
	if m.Credit.IsZero() {
		return errors.Wrap(ErrEmptyBalance, "opening credit")
	}
	return m.Credit.Validate()
}

// TopUpMsg adds funds to an open escrow. Anyone can top up, but token
// credits must come from a whitelisted issuer.
type TopUpMsg struct {
	EscrowID []byte       `json:"escrow_id"`
	Credit   asset.Credit `json:"credit"`
}

func (TopUpMsg) Path() string {
	return pathTopUpMsg
}

// Validate makes sure that this is sensible
func (m *TopUpMsg) Validate() error {
	if err := validateID(m.EscrowID); err != nil {
		return err
	}
	if m.Credit.IsZero() {
		return errors.Wrap(ErrEmptyBalance, "credit")
	}
	return m.Credit.Validate()
}

// ApproveMsg settles an escrow in favor of the proposer. Only a
// validator of the escrow may approve.
type ApproveMsg struct {
	EscrowID []byte `json:"escrow_id"`
}

func (ApproveMsg) Path() string {
	return pathApproveMsg
}

// Validate makes sure that this is sensible
func (m *ApproveMsg) Validate() error {
	return validateID(m.EscrowID)
}

// RefundMsg settles an escrow against the proposer. Only a validator
// of the escrow may refund. What happens to the funds depends on the
// refund policy the handler was set up with.
type RefundMsg struct {
	EscrowID []byte `json:"escrow_id"`
}

func (RefundMsg) Path() string {
	return pathRefundMsg
}

// Validate makes sure that this is sensible
func (m *RefundMsg) Validate() error {
	return validateID(m.EscrowID)
}

// UpdateValidatorsMsg changes the validator set of an open escrow.
// Only the source may do this and the resulting set must not be empty.
type UpdateValidatorsMsg struct {
	EscrowID []byte           `json:"escrow_id"`
	Add      []dorium.Address `json:"add,omitempty"`
	Remove   []dorium.Address `json:"remove,omitempty"`
}

func (UpdateValidatorsMsg) Path() string {
	return pathUpdateValidatorsMsg
}

// Validate makes sure any included items are valid addresses and there
// is at least one change
func (m *UpdateValidatorsMsg) Validate() error {
	if err := validateID(m.EscrowID); err != nil {
		return err
	}
	if len(m.Add) == 0 && len(m.Remove) == 0 {
		return errors.Wrap(errors.ErrEmpty, "no changes")
	}
	for _, a := range m.Add {
		if err := a.Validate(); err != nil {
			return errors.Wrap(err, "add")
		}
	}
	for _, r := range m.Remove {
		if err := r.Validate(); err != nil {
			return errors.Wrap(err, "remove")
		}
	}
	return nil
}

//--------- Serialization --------

func (m *CreateMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *CreateMsg) Unmarshal(bz []byte) error {
	return cdc.UnmarshalBinaryBare(bz, m)
}

func (m *TopUpMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *TopUpMsg) Unmarshal(bz []byte) error {
	return cdc.UnmarshalBinaryBare(bz, m)
}

func (m *ApproveMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *ApproveMsg) Unmarshal(bz []byte) error {
	return cdc.UnmarshalBinaryBare(bz, m)
}

func (m *RefundMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *RefundMsg) Unmarshal(bz []byte) error {
	return cdc.UnmarshalBinaryBare(bz, m)
}

func (m *UpdateValidatorsMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *UpdateValidatorsMsg) Unmarshal(bz []byte) error {
	return cdc.UnmarshalBinaryBare(bz, m)
}
