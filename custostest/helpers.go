package custostest

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/custos-chain/custos"
	"github.com/custos-chain/custos/crypto"
)

// condCnt is used to power the condition generator and ensure
// condition uniqueness.
var condCnt uint64

// NewCondition returns a new, unique condition. Each call returns a
// different value.
func NewCondition() custos.Condition {
	raw := atomic.AddUint64(&condCnt, 1)
	data := []byte{
		byte(raw),
		byte(raw >> 8),
		byte(raw >> 16),
		byte(raw >> 24),
	}
	return custos.NewCondition("test", "seq", data)
}

// NewKey returns a newly generated ed25519 private key.
func NewKey() crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// Context returns a context as a transition would see it: background,
// with a chain id, a block height and the given block time set.
func Context(now time.Time) custos.Context {
	ctx := context.Background()
	ctx = custos.WithChainID(ctx, "testchain-1")
	ctx = custos.WithHeight(ctx, 100)
	return custos.WithBlockTime(ctx, now)
}
