package app

import (
	"github.com/apeunit/dorium-contracts"
	"github.com/apeunit/dorium-contracts/errors"
)

// Recovery is a decorator to recover from panics in transactions,
// so we can log them as errors
type Recovery struct{}

var _ dorium.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (r Recovery) Check(ctx dorium.Context, store dorium.KVStore, tx dorium.Tx, next dorium.Checker) (res *dorium.CheckResult, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = normalizePanic(p)
		}
	}()
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx dorium.Context, store dorium.KVStore, tx dorium.Tx, next dorium.Deliverer) (res *dorium.DeliverResult, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = normalizePanic(p)
		}
	}()
	return next.Deliver(ctx, store, tx)
}

// normalizePanic turns a panic value into an error, keeping the error
// code when the panic carried a coded error. Store backends panic with
// ErrDatabase and those must stay recognizable to the host.
func normalizePanic(p interface{}) error {
	if err, ok := p.(error); ok {
		return errors.Wrap(err, "recovered panic")
	}
	return errors.Wrapf(errors.ErrPanic, "%v", p)
}
