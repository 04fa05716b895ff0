package sigs

import (
	"context"

	"github.com/custos-chain/custos"
	"github.com/custos-chain/custos/errors"
	"github.com/custos-chain/custos/x"
)

type contextKey int

const contextKeySigners contextKey = iota

// withSigners stores the signer conditions in the context
func withSigners(ctx custos.Context, signers []custos.Condition) custos.Context {
	return context.WithValue(ctx, contextKeySigners, signers)
}

// Authenticate implements x.Authenticator and reveals the conditions
// that the Decorator verified on this transaction.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns the signer conditions stored by the Decorator
func (a Authenticate) GetConditions(ctx custos.Context) []custos.Condition {
	val, _ := ctx.Value(contextKeySigners).([]custos.Condition)
	return val
}

// HasAddress returns true iff any verified signer matches this address
func (a Authenticate) HasAddress(ctx custos.Context, addr custos.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}

// Decorator verifies the signatures and adds them to the context.
// It requires at least one signature on every transaction it handles.
type Decorator struct {
	allowMissingSigs bool
}

var _ custos.Decorator = Decorator{}

// NewDecorator returns a signature verifying decorator
func NewDecorator() Decorator {
	return Decorator{}
}

// AllowMissingSigs allows us to pass along items with no signatures
func (d Decorator) AllowMissingSigs() Decorator {
	d.allowMissingSigs = true
	return d
}

// Check verifies signatures before calling down the stack
func (d Decorator) Check(ctx custos.Context, store custos.KVStore, tx custos.Tx, next custos.Checker) (*custos.CheckResult, error) {
	var err error
	if ctx, err = d.authenticate(ctx, store, tx); err != nil {
		return nil, err
	}
	return next.Check(ctx, store, tx)
}

// Deliver verifies signatures before calling down the stack
func (d Decorator) Deliver(ctx custos.Context, store custos.KVStore, tx custos.Tx, next custos.Deliverer) (*custos.DeliverResult, error) {
	var err error
	if ctx, err = d.authenticate(ctx, store, tx); err != nil {
		return nil, err
	}
	return next.Deliver(ctx, store, tx)
}

func (d Decorator) authenticate(ctx custos.Context, store custos.KVStore, tx custos.Tx) (custos.Context, error) {
	stx, ok := tx.(SignedTx)
	if !ok {
		if d.allowMissingSigs {
			return ctx, nil
		}
		return nil, errors.Wrap(errors.ErrType, "transaction does not carry signatures")
	}

	chainID := custos.GetChainID(ctx)
	signers, err := VerifyTxSignatures(store, stx, chainID)
	if err != nil {
		return nil, errors.Wrap(err, "cannot verify signatures")
	}
	if len(signers) == 0 && !d.allowMissingSigs {
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return withSigners(ctx, signers), nil
}
