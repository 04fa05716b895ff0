package app

import (
	"regexp"

	"github.com/custos-chain/custos"
	"github.com/custos-chain/custos/errors"
)

// isPath defines the valid characters of a routing path
var isPath = regexp.MustCompile(`^[a-zA-Z0-9_/]+$`).MatchString

// Router allows us to register many handlers with different paths and
// then direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
type Router struct {
	routes map[string]custos.Handler
}

var _ custos.Registry = (*Router)(nil)
var _ custos.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]custos.Handler),
	}
}

// Handle adds a new Handler for the given path. Panics on duplicate
// path or invalid path name, as this is a programming error.
func (r *Router) Handle(path string, h custos.Handler) {
	if !isPath(path) {
		panic("invalid path: " + path)
	}
	if _, ok := r.routes[path]; ok {
		panic("re-registering route: " + path)
	}
	r.routes[path] = h
}

// Handler returns the registered Handler for this path. If no path is
// found, returns a noSuchPath Handler. Always returns a non-nil
// Handler.
func (r *Router) Handler(path string) custos.Handler {
	h, ok := r.routes[path]
	if !ok {
		return noSuchPathHandler{path: path}
	}
	return h
}

// Check dispatches to the proper handler based on path
func (r *Router) Check(ctx custos.Context, store custos.KVStore, tx custos.Tx) (*custos.CheckResult, error) {
	return r.Handler(custos.GetPath(tx)).Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on path
func (r *Router) Deliver(ctx custos.Context, store custos.KVStore, tx custos.Tx) (*custos.DeliverResult, error) {
	return r.Handler(custos.GetPath(tx)).Deliver(ctx, store, tx)
}

// noSuchPathHandler always returns ErrNotFound
type noSuchPathHandler struct {
	path string
}

var _ custos.Handler = noSuchPathHandler{}

func (h noSuchPathHandler) Check(custos.Context, custos.KVStore, custos.Tx) (*custos.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for path %q", h.path)
}

func (h noSuchPathHandler) Deliver(custos.Context, custos.KVStore, custos.Tx) (*custos.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for path %q", h.path)
}
