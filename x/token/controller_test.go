package token

import (
	"testing"

	"github.com/custos-chain/custos/custostest"
	"github.com/custos-chain/custos/errors"
	"github.com/custos-chain/custos/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAccount(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()

	owner := custostest.NewCondition().Address()
	acct := custostest.NewCondition().Address()

	require.NoError(t, ctrl.CreateAccount(db, acct, owner, "CUS"))

	account, err := ctrl.GetAccount(db, acct)
	require.NoError(t, err)
	assert.Equal(t, owner, account.OwnerAddress())
	assert.Equal(t, "CUS", account.Mint)
	assert.Equal(t, uint64(0), account.Balance)

	// a second create at the same address must fail
	err = ctrl.CreateAccount(db, acct, owner, "CUS")
	assert.True(t, errors.ErrDuplicate.Is(err))
}

func TestIssueAndBalance(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()

	owner := custostest.NewCondition().Address()
	acct := custostest.NewCondition().Address()
	require.NoError(t, ctrl.CreateAccount(db, acct, owner, "CUS"))

	require.NoError(t, ctrl.Issue(db, acct, 1000))
	balance, err := ctrl.Balance(db, acct)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), balance)

	mint, err := ctrl.MintOf(db, acct)
	require.NoError(t, err)
	assert.Equal(t, "CUS", mint)

	// issuing to a missing account fails
	err = ctrl.Issue(db, custostest.NewCondition().Address(), 5)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestTransfer(t *testing.T) {
	alice := custostest.NewCondition().Address()
	bob := custostest.NewCondition().Address()

	cases := map[string]struct {
		srcMint     string
		srcBalance  uint64
		dstMint     string
		dstBalance  uint64
		amount      uint64
		wantErr     *errors.Error
		wantSrcLeft uint64
		wantDstLeft uint64
	}{
		"happy path": {
			srcMint: "CUS", srcBalance: 100,
			dstMint: "CUS", dstBalance: 10,
			amount:      30,
			wantSrcLeft: 70, wantDstLeft: 40,
		},
		"zero amount moves nothing": {
			srcMint: "CUS", srcBalance: 100,
			dstMint: "CUS", dstBalance: 10,
			amount:      0,
			wantSrcLeft: 100, wantDstLeft: 10,
		},
		"full balance": {
			srcMint: "CUS", srcBalance: 100,
			dstMint: "CUS", dstBalance: 0,
			amount:      100,
			wantSrcLeft: 0, wantDstLeft: 100,
		},
		"mint mismatch": {
			srcMint: "CUS", srcBalance: 100,
			dstMint: "ALT", dstBalance: 0,
			amount:  30,
			wantErr: ErrMintMismatch,
		},
		"insufficient funds": {
			srcMint: "CUS", srcBalance: 10,
			dstMint: "CUS", dstBalance: 0,
			amount:  30,
			wantErr: ErrInsufficientFunds,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController()

			src := custostest.NewCondition().Address()
			dst := custostest.NewCondition().Address()
			require.NoError(t, ctrl.CreateAccount(db, src, alice, tc.srcMint))
			require.NoError(t, ctrl.CreateAccount(db, dst, bob, tc.dstMint))
			require.NoError(t, ctrl.Issue(db, src, tc.srcBalance))
			if tc.dstBalance != 0 {
				require.NoError(t, ctrl.Issue(db, dst, tc.dstBalance))
			}

			err := ctrl.Transfer(db, src, dst, tc.amount)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
				return
			}
			require.NoError(t, err)

			srcLeft, err := ctrl.Balance(db, src)
			require.NoError(t, err)
			assert.Equal(t, tc.wantSrcLeft, srcLeft)
			dstLeft, err := ctrl.Balance(db, dst)
			require.NoError(t, err)
			assert.Equal(t, tc.wantDstLeft, dstLeft)
		})
	}
}

func TestTransferToSelf(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()

	owner := custostest.NewCondition().Address()
	acct := custostest.NewCondition().Address()
	require.NoError(t, ctrl.CreateAccount(db, acct, owner, "CUS"))
	require.NoError(t, ctrl.Issue(db, acct, 100))

	// a self transfer must not change the balance
	require.NoError(t, ctrl.Transfer(db, acct, acct, 30))
	balance, err := ctrl.Balance(db, acct)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), balance)

	// and it still validates the balance
	err = ctrl.Transfer(db, acct, acct, 200)
	assert.True(t, ErrInsufficientFunds.Is(err))
	balance, err = ctrl.Balance(db, acct)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), balance)
}

func TestTransferMissingAccounts(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()

	owner := custostest.NewCondition().Address()
	acct := custostest.NewCondition().Address()
	require.NoError(t, ctrl.CreateAccount(db, acct, owner, "CUS"))

	missing := custostest.NewCondition().Address()

	err := ctrl.Transfer(db, missing, acct, 1)
	assert.True(t, errors.ErrNotFound.Is(err))

	err = ctrl.Transfer(db, acct, missing, 1)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestCloseAccount(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()

	owner := custostest.NewCondition().Address()
	acct := custostest.NewCondition().Address()
	require.NoError(t, ctrl.CreateAccount(db, acct, owner, "CUS"))
	require.NoError(t, ctrl.Issue(db, acct, 42))

	// closing drops the record together with any remaining balance
	require.NoError(t, ctrl.CloseAccount(db, acct))

	_, err := ctrl.GetAccount(db, acct)
	assert.True(t, errors.ErrNotFound.Is(err))

	err = ctrl.CloseAccount(db, acct)
	assert.True(t, errors.ErrNotFound.Is(err))
}
