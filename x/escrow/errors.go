package escrow

import "github.com/apeunit/dorium-contracts/errors"

// Error codes 1010-1020 are reserved for this package.
var (
	// ErrEmptyBalance is raised when an operation requires funds but
	// none are present or provided.
	ErrEmptyBalance = errors.Register(1010, "empty balance")

	// ErrEscrowLocked is raised when a decided escrow is asked to
	// change again.
	ErrEscrowLocked = errors.Register(1011, "escrow locked")

	// ErrNotInWhitelist is raised when a token credit arrives from an
	// issuer the escrow does not accept.
	ErrNotInWhitelist = errors.Register(1012, "token not in whitelist")
)
