package utils

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/custos-chain/custos"
	"github.com/custos-chain/custos/custostest"
	"github.com/custos-chain/custos/errors"
	"github.com/custos-chain/custos/store"
	"github.com/go-kit/kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticHandler returns the configured error without touching the
// store.
type staticHandler struct {
	err error
}

var _ custos.Handler = staticHandler{}

func (h staticHandler) Check(custos.Context, custos.KVStore, custos.Tx) (*custos.CheckResult, error) {
	return &custos.CheckResult{}, h.err
}

func (h staticHandler) Deliver(custos.Context, custos.KVStore, custos.Tx) (*custos.DeliverResult, error) {
	return &custos.DeliverResult{}, h.err
}

func TestLoggingReportsOutcome(t *testing.T) {
	var buf bytes.Buffer
	ctx := custos.WithLogger(context.Background(), log.NewLogfmtLogger(&buf))
	db := store.MemStore()
	tx := &custostest.Tx{Msg: &custostest.Msg{RoutePath: "some/path"}}

	_, err := NewLogging().Deliver(ctx, db, tx, staticHandler{})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "call=deliver")
	assert.Contains(t, buf.String(), "path=some/path")
	assert.NotContains(t, buf.String(), "err=")

	buf.Reset()
	fail := errors.Wrap(errors.ErrState, "broken")
	_, err = NewLogging().Check(ctx, db, tx, staticHandler{err: fail})
	require.Error(t, err)
	assert.Contains(t, buf.String(), "call=check")
	assert.True(t, strings.Contains(buf.String(), "err="), "missing error in %q", buf.String())
}
