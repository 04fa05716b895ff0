package app

import (
	"context"
	"testing"

	"github.com/custos-chain/custos"
	"github.com/custos-chain/custos/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// taggingDecorator appends its tag to the result log on the way out.
type taggingDecorator struct {
	tag string
}

var _ custos.Decorator = taggingDecorator{}

func (d taggingDecorator) Check(ctx custos.Context, store custos.KVStore, tx custos.Tx, next custos.Checker) (*custos.CheckResult, error) {
	res, err := next.Check(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	res.Log = res.Log + d.tag
	return res, nil
}

func (d taggingDecorator) Deliver(ctx custos.Context, store custos.KVStore, tx custos.Tx, next custos.Deliverer) (*custos.DeliverResult, error) {
	res, err := next.Deliver(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	res.Log = res.Log + d.tag
	return res, nil
}

func TestChainDecorators(t *testing.T) {
	stack := ChainDecorators(
		taggingDecorator{tag: "a"},
		taggingDecorator{tag: "b"},
	).Chain(
		taggingDecorator{tag: "c"},
	).WithHandler(&countingHandler{})

	db := store.MemStore()
	ctx := context.Background()

	cres, err := stack.Check(ctx, db, nil)
	require.NoError(t, err)
	// the innermost decorator annotates first
	assert.Equal(t, "cba", cres.Log)

	dres, err := stack.Deliver(ctx, db, nil)
	require.NoError(t, err)
	assert.Equal(t, "cba", dres.Log)
}
