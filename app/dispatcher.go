package app

import (
	"github.com/tendermint/tendermint/libs/log"

	"github.com/apeunit/dorium-contracts"
	"github.com/apeunit/dorium-contracts/errors"
)

// Dispatcher is the single entry point the host talks to. Every call
// runs on a cache wrap of the backing store, so a failing handler
// leaves no partial writes behind.
type Dispatcher struct {
	db      dorium.CacheableKVStore
	handler dorium.Handler
	queries *QueryRouter
	logger  log.Logger
}

// NewDispatcher wraps the router with the standard decorator stack and
// binds it to the given store.
func NewDispatcher(db dorium.CacheableKVStore, router *Router, queries *QueryRouter, logger log.Logger) *Dispatcher {
	handler := ChainDecorators(
		NewLogging(),
		NewRecovery(),
	).WithHandler(router)

	return &Dispatcher{
		db:      db,
		handler: handler,
		queries: queries,
		logger:  logger,
	}
}

// Check runs the transaction against a scratch pad that is always
// discarded. It reports validity and the gas allocation only.
func (d *Dispatcher) Check(ctx dorium.Context, tx dorium.Tx) (*dorium.CheckResult, error) {
	ctx = dorium.WithLogger(ctx, d.logger)
	cache := d.db.CacheWrap()
	defer cache.Discard()
	return d.handler.Check(ctx, cache, tx)
}

// Deliver executes the transaction. All writes commit together when
// the handler succeeds and are dropped together when it fails.
func (d *Dispatcher) Deliver(ctx dorium.Context, tx dorium.Tx) (*dorium.DeliverResult, error) {
	ctx = dorium.WithLogger(ctx, d.logger)
	cache := d.db.CacheWrap()
	res, err := d.handler.Deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	cache.Write()
	return res, nil
}

// Query answers a read only question against the committed state.
func (d *Dispatcher) Query(path, mod string, data []byte) ([]dorium.Model, error) {
	h := d.queries.Handler(path)
	if h == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "no query handler for path: %s", path)
	}
	return h.Query(d.db, mod, data)
}

// InitGenesis feeds the genesis options to the given initializer. The
// writes commit only when the whole initialization succeeds.
func (d *Dispatcher) InitGenesis(opts dorium.Options, ini dorium.Initializer) error {
	cache := d.db.CacheWrap()
	if err := ini.FromGenesis(opts, cache); err != nil {
		cache.Discard()
		return err
	}
	cache.Write()
	return nil
}
