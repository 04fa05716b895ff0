package custostest

import (
	"context"

	"github.com/custos-chain/custos"
)

// Auth is a mock implementing x.Authenticator interface. It
// authenticates the fixed set of conditions regardless of the context.
type Auth struct {
	// Signer is returned by GetConditions. Set either Signer or
	// Signers, never both.
	Signer custos.Condition
	// Signers is returned by GetConditions when set.
	Signers []custos.Condition
}

func (a *Auth) GetConditions(custos.Context) []custos.Condition {
	if a.Signer != nil {
		if len(a.Signers) > 0 {
			panic("invalid auth mock configuration, both signer and signers set")
		}
		return []custos.Condition{a.Signer}
	}
	return a.Signers
}

func (a *Auth) HasAddress(ctx custos.Context, addr custos.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}

// CtxAuth is a mock implementing x.Authenticator interface. It uses
// the context to store conditions, so that tests control the
// authentication through the context alone.
type CtxAuth struct {
	// Key under which conditions are stored in the context.
	Key string
}

type ctxAuthKey string

// SetConditions returns a context with the given conditions attached.
func (a *CtxAuth) SetConditions(ctx custos.Context, conds ...custos.Condition) custos.Context {
	return context.WithValue(ctx, ctxAuthKey(a.Key), conds)
}

func (a *CtxAuth) GetConditions(ctx custos.Context) []custos.Condition {
	val := ctx.Value(ctxAuthKey(a.Key))
	if val == nil {
		return nil
	}
	conds, ok := val.([]custos.Condition)
	if !ok {
		panic("invalid conditions stored in the context")
	}
	return conds
}

func (a *CtxAuth) HasAddress(ctx custos.Context, addr custos.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
