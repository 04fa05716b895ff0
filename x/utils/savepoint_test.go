package utils

import (
	"context"
	"testing"

	"github.com/custos-chain/custos"
	"github.com/custos-chain/custos/errors"
	"github.com/custos-chain/custos/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writingHandler writes the given key/value pair and then returns the
// configured error.
type writingHandler struct {
	key, value []byte
	err        error
}

var _ custos.Handler = writingHandler{}

func (h writingHandler) Check(ctx custos.Context, db custos.KVStore, tx custos.Tx) (*custos.CheckResult, error) {
	db.Set(h.key, h.value)
	return &custos.CheckResult{}, h.err
}

func (h writingHandler) Deliver(ctx custos.Context, db custos.KVStore, tx custos.Tx) (*custos.DeliverResult, error) {
	db.Set(h.key, h.value)
	return &custos.DeliverResult{}, h.err
}

func TestSavepoint(t *testing.T) {
	key := []byte("mykey")
	value := []byte("myvalue")
	fail := errors.Wrap(errors.ErrState, "handler failed")

	cases := map[string]struct {
		save      Savepoint
		handler   writingHandler
		deliver   bool
		wantErr   error
		wantWrite bool
	}{
		"check rollback on error": {
			save:      NewSavepoint().OnCheck(),
			handler:   writingHandler{key: key, value: value, err: fail},
			wantErr:   fail,
			wantWrite: false,
		},
		"check commit on success": {
			save:      NewSavepoint().OnCheck(),
			handler:   writingHandler{key: key, value: value},
			wantWrite: true,
		},
		"deliver rollback on error": {
			save:      NewSavepoint().OnDeliver(),
			handler:   writingHandler{key: key, value: value, err: fail},
			deliver:   true,
			wantErr:   fail,
			wantWrite: false,
		},
		"deliver commit on success": {
			save:      NewSavepoint().OnDeliver(),
			handler:   writingHandler{key: key, value: value},
			deliver:   true,
			wantWrite: true,
		},
		"inactive savepoint writes through even on error": {
			save:      NewSavepoint().OnCheck(),
			handler:   writingHandler{key: key, value: value, err: fail},
			deliver:   true,
			wantErr:   fail,
			wantWrite: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctx := context.Background()

			var err error
			if tc.deliver {
				_, err = tc.save.Deliver(ctx, db, nil, tc.handler)
			} else {
				_, err = tc.save.Check(ctx, db, nil, tc.handler)
			}

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tc.wantErr, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.wantWrite, db.Has(key))
		})
	}
}
