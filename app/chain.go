package app

import (
	"github.com/custos-chain/custos"
)

// Decorators holds a chain of decorators, not yet bound to a handler.
type Decorators struct {
	chain []custos.Decorator
}

// ChainDecorators takes a chain of decorators, to be executed from
// first to last, wrapping the handler set later.
func ChainDecorators(chain ...custos.Decorator) Decorators {
	return Decorators{chain: chain}
}

// Chain appends more decorators to the end of the existing chain.
func (d Decorators) Chain(chain ...custos.Decorator) Decorators {
	return Decorators{chain: append(d.chain, chain...)}
}

// WithHandler binds the chain to the given handler and returns it as
// one combined handler.
func (d Decorators) WithHandler(h custos.Handler) custos.Handler {
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = decoratedHandler{d: d.chain[i], next: h}
	}
	return h
}

// decoratedHandler lets a decorator and the handler below it act as
// one handler.
type decoratedHandler struct {
	d    custos.Decorator
	next custos.Handler
}

var _ custos.Handler = decoratedHandler{}

// Check passes the handler into the decorator as the next checker
func (h decoratedHandler) Check(ctx custos.Context, store custos.KVStore, tx custos.Tx) (*custos.CheckResult, error) {
	return h.d.Check(ctx, store, tx, h.next)
}

// Deliver passes the handler into the decorator as the next deliverer
func (h decoratedHandler) Deliver(ctx custos.Context, store custos.KVStore, tx custos.Tx) (*custos.DeliverResult, error) {
	return h.d.Deliver(ctx, store, tx, h.next)
}
