package app

import (
	"fmt"

	"github.com/apeunit/dorium-contracts"
)

// QueryRouter maps query paths to read only handlers.
type QueryRouter struct {
	handlers map[string]dorium.QueryHandler
}

var _ dorium.QueryRouter = (*QueryRouter)(nil)

// NewQueryRouter initializes a query router with no routes
func NewQueryRouter() *QueryRouter {
	return &QueryRouter{
		handlers: make(map[string]dorium.QueryHandler),
	}
}

// Register adds a new query route. A duplicate registration is a
// programmer error that panics.
func (r *QueryRouter) Register(path string, h dorium.QueryHandler) {
	if _, ok := r.handlers[path]; ok {
		panic(fmt.Sprintf("re-registering query route: %s", path))
	}
	r.handlers[path] = h
}

// Handler returns the registered QueryHandler for this path, or nil.
func (r *QueryRouter) Handler(path string) dorium.QueryHandler {
	return r.handlers[path]
}
