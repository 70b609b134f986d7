package app

import (
	"time"

	"github.com/apeunit/dorium-contracts"
)

// Logging is a decorator to log messages as they pass through
type Logging struct{}

var _ dorium.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> error, success -> debug
func (r Logging) Check(ctx dorium.Context, store dorium.KVStore, tx dorium.Tx, next dorium.Checker) (*dorium.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, start, dorium.GetPath(tx), resLog, err, true)
	return res, err
}

// Deliver logs error -> error, success -> info
func (r Logging) Deliver(ctx dorium.Context, store dorium.KVStore, tx dorium.Tx, next dorium.Deliverer) (*dorium.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, start, dorium.GetPath(tx), resLog, err, false)
	return res, err
}

// logDuration writes information about the time and result to the logger
func logDuration(ctx dorium.Context, start time.Time, path, msg string, err error, lowPrio bool) {
	delta := time.Since(start)
	logger := dorium.GetLogger(ctx).With("path", path, "duration", delta/time.Microsecond)

	if err != nil {
		logger.With("err", err).Error(msg)
		return
	}
	if lowPrio {
		logger.Debug(msg)
	} else {
		logger.Info(msg)
	}
}
