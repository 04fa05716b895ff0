package app

import (
	"context"
	"testing"

	"github.com/custos-chain/custos"
	"github.com/custos-chain/custos/custostest"
	"github.com/custos-chain/custos/errors"
	"github.com/custos-chain/custos/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingHandler records how often it was called.
type countingHandler struct {
	checked   int
	delivered int
}

var _ custos.Handler = (*countingHandler)(nil)

func (h *countingHandler) Check(custos.Context, custos.KVStore, custos.Tx) (*custos.CheckResult, error) {
	h.checked++
	return &custos.CheckResult{}, nil
}

func (h *countingHandler) Deliver(custos.Context, custos.KVStore, custos.Tx) (*custos.DeliverResult, error) {
	h.delivered++
	return &custos.DeliverResult{}, nil
}

func TestRouter(t *testing.T) {
	r := NewRouter()
	h := &countingHandler{}
	r.Handle("some/path", h)

	db := store.MemStore()
	ctx := context.Background()

	tx := &custostest.Tx{Msg: &custostest.Msg{RoutePath: "some/path"}}
	_, err := r.Check(ctx, db, tx)
	require.NoError(t, err)
	_, err = r.Deliver(ctx, db, tx)
	require.NoError(t, err)
	assert.Equal(t, 1, h.checked)
	assert.Equal(t, 1, h.delivered)

	// an unknown path is rejected
	miss := &custostest.Tx{Msg: &custostest.Msg{RoutePath: "other/path"}}
	_, err = r.Check(ctx, db, miss)
	assert.True(t, errors.ErrNotFound.Is(err))
	_, err = r.Deliver(ctx, db, miss)
	assert.True(t, errors.ErrNotFound.Is(err))

	assert.Panics(t, func() { r.Handle("some/path", h) })
	assert.Panics(t, func() { r.Handle("invalid path!", h) })
}

func TestProgramRouter(t *testing.T) {
	r := NewProgramRouter()
	addr := custostest.NewCondition().Address()

	var called int
	r.RegisterProgram(addr, programFunc(func(ctx custos.Context, db custos.KVStore, payload []byte, accounts []custos.Address) error {
		called++
		return nil
	}))

	db := store.MemStore()
	ctx := context.Background()

	err := r.Execute(ctx, db, addr, []byte{1}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, called)

	// an unknown target is rejected
	err = r.Execute(ctx, db, custostest.NewCondition().Address(), []byte{1}, nil)
	assert.True(t, errors.ErrNotFound.Is(err))

	assert.Panics(t, func() { r.RegisterProgram(addr, nil) })
	assert.Panics(t, func() { r.RegisterProgram(custos.Address{0x01}, nil) })
}

// programFunc adapts an ordinary function to the Program interface.
type programFunc func(custos.Context, custos.KVStore, []byte, []custos.Address) error

func (f programFunc) Execute(ctx custos.Context, db custos.KVStore, payload []byte, accounts []custos.Address) error {
	return f(ctx, db, payload, accounts)
}
