package utils

import (
	"github.com/custos-chain/custos"
	"github.com/custos-chain/custos/errors"
)

// Savepoint will isolate all data inside of the call it wraps, and
// only complete the writes when the call returns without an error.
// This makes every transition all or nothing: a failure anywhere in
// the handler leaves no partial mutation behind.
type Savepoint struct {
	onCheck   bool
	onDeliver bool
}

var _ custos.Decorator = Savepoint{}

// NewSavepoint creates a Savepoint decorator that can be activated on
// check, deliver or both.
func NewSavepoint() Savepoint {
	return Savepoint{}
}

// OnCheck returns a savepoint that is active on checks
func (s Savepoint) OnCheck() Savepoint {
	return Savepoint{onCheck: true, onDeliver: s.onDeliver}
}

// OnDeliver returns a savepoint that is active on deliver
func (s Savepoint) OnDeliver() Savepoint {
	return Savepoint{onCheck: s.onCheck, onDeliver: true}
}

// Check wraps the call in a cache layer when active, flushing it only
// on success.
func (s Savepoint) Check(ctx custos.Context, store custos.KVStore, tx custos.Tx, next custos.Checker) (*custos.CheckResult, error) {
	if !s.onCheck {
		return next.Check(ctx, store, tx)
	}
	cstore, ok := store.(custos.CacheableKVStore)
	if !ok {
		return nil, errors.Wrap(errors.ErrType, "store cannot be cache wrapped")
	}
	cache := cstore.CacheWrap()
	res, err := next.Check(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return res, err
	}
	cache.Write()
	return res, nil
}

// Deliver wraps the call in a cache layer when active, flushing it
// only on success.
func (s Savepoint) Deliver(ctx custos.Context, store custos.KVStore, tx custos.Tx, next custos.Deliverer) (*custos.DeliverResult, error) {
	if !s.onDeliver {
		return next.Deliver(ctx, store, tx)
	}
	cstore, ok := store.(custos.CacheableKVStore)
	if !ok {
		return nil, errors.Wrap(errors.ErrType, "store cannot be cache wrapped")
	}
	cache := cstore.CacheWrap()
	res, err := next.Deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return res, err
	}
	cache.Write()
	return res, nil
}
