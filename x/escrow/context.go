package escrow

import (
	"context"

	"github.com/custos-chain/custos"
	"github.com/custos-chain/custos/x"
)

type contextKey int

const contextKeyAuthority contextKey = iota

// withRecordAuthority adds the escrow record condition to the
// context. It is set for the duration of one delegated call, so the
// target program sees the record as an authenticated signer.
func withRecordAuthority(ctx custos.Context, cond custos.Condition) custos.Context {
	val, _ := ctx.Value(contextKeyAuthority).([]custos.Condition)
	return context.WithValue(ctx, contextKeyAuthority, append(val, cond))
}

// Authenticate gets/sets the escrow record conditions on the context.
// Chain it in front of the target programs' authenticator so that a
// delegated call can act on behalf of a record's derived address.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns the record conditions set on the context.
func (a Authenticate) GetConditions(ctx custos.Context) []custos.Condition {
	val, _ := ctx.Value(contextKeyAuthority).([]custos.Condition)
	return val
}

// HasAddress returns true iff the address belongs to one of the
// record conditions set on the context.
func (a Authenticate) HasAddress(ctx custos.Context, addr custos.Address) bool {
	for _, cond := range a.GetConditions(ctx) {
		if addr.Equals(cond.Address()) {
			return true
		}
	}
	return false
}
