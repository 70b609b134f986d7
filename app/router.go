package app

import (
	"fmt"
	"regexp"

	"github.com/apeunit/dorium-contracts"
	"github.com/apeunit/dorium-contracts/errors"
)

var isPath = regexp.MustCompile(`^[a-z0-9_]+/[a-z0-9_]+$`).MatchString

// Router maps message paths to handlers.
type Router struct {
	handlers map[string]dorium.Handler
}

var _ dorium.Registry = (*Router)(nil)
var _ dorium.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes
func NewRouter() *Router {
	return &Router{
		handlers: make(map[string]dorium.Handler),
	}
}

// Handle adds a new route. Paths look like "extension/action" and a
// duplicate registration is a programmer error that panics.
func (r *Router) Handle(path string, h dorium.Handler) {
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %s", path))
	}
	if _, ok := r.handlers[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.handlers[path] = h
}

// Handler returns the registered Handler for this path. If no path is
// found, returns a noSuchPathHandler.
func (r *Router) Handler(path string) dorium.Handler {
	h, ok := r.handlers[path]
	if !ok {
		return noSuchPathHandler{path}
	}
	return h
}

// Check routes the transaction to the handler registered under its
// message path.
func (r *Router) Check(ctx dorium.Context, db dorium.KVStore, tx dorium.Tx) (*dorium.CheckResult, error) {
	return r.Handler(dorium.GetPath(tx)).Check(ctx, db, tx)
}

// Deliver routes the transaction to the handler registered under its
// message path.
func (r *Router) Deliver(ctx dorium.Context, db dorium.KVStore, tx dorium.Tx) (*dorium.DeliverResult, error) {
	return r.Handler(dorium.GetPath(tx)).Deliver(ctx, db, tx)
}

// noSuchPathHandler always returns ErrNotFound, paired with the
// message path that could not be routed.
type noSuchPathHandler struct {
	path string
}

var _ dorium.Handler = noSuchPathHandler{}

func (h noSuchPathHandler) Check(ctx dorium.Context, db dorium.KVStore, tx dorium.Tx) (*dorium.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path: %s", h.path)
}

func (h noSuchPathHandler) Deliver(ctx dorium.Context, db dorium.KVStore, tx dorium.Tx) (*dorium.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path: %s", h.path)
}
