package dorium

// Instruction is an order for the external asset ledger, produced by a
// handler and executed by the host after the call committed. The
// contract only constructs instructions, it never moves funds itself.
//
// Concrete instruction types live in x/bank.
type Instruction interface {
	Validate() error
}

// DeliverResult captures any non-error handler result to make sure
// people use error for error cases.
type DeliverResult struct {
	// Data is a machine-parseable return value, like the id of a
	// created entity.
	Data []byte
	// Log is a human-readable informational string.
	Log string
	// Instructions are the asset ledger orders emitted by this call.
	// They must only be executed once the store write committed.
	Instructions []Instruction
	// GasUsed is the units of work consumed by this call.
	GasUsed int64
}

// CheckResult captures any non-error result of a pre-execution check.
type CheckResult struct {
	// Data is a machine-parseable return value.
	Data []byte
	// Log is a human-readable informational string.
	Log string
	// GasAllocated is the maximum units of work we allow this tx to
	// perform.
	GasAllocated int64
}

// NewCheck sets the gas allocated and the log message but no more
// info. These are the most common info needed to be set by a Handler.
func NewCheck(gasAllocated int64, log string) *CheckResult {
	return &CheckResult{
		GasAllocated: gasAllocated,
		Log:          log,
	}
}
