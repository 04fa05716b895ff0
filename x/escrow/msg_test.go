package escrow

import (
	"testing"

	"github.com/custos-chain/custos"
	"github.com/custos-chain/custos/custostest"
	"github.com/custos-chain/custos/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMsgValidate(t *testing.T) {
	addr := func() custos.Address { return custostest.NewCondition().Address() }
	source := addr()

	cases := map[string]struct {
		msg     custos.Msg
		wantErr *errors.Error
	}{
		"valid deposit": {
			msg: &DepositMsg{Seed: 1, Amount: 100, Expiration: 1234567890, FeeRate: 100, Source: source, Mint: "CUS"},
		},
		"deposit zero amount": {
			msg:     &DepositMsg{Seed: 1, Amount: 0, Expiration: 1234567890, FeeRate: 5, Source: source, Mint: "CUS"},
			wantErr: errors.ErrAmount,
		},
		"deposit fee rate out of range": {
			msg:     &DepositMsg{Seed: 1, Amount: 100, Expiration: 1234567890, FeeRate: 101, Source: source, Mint: "CUS"},
			wantErr: errors.ErrInput,
		},
		"deposit negative expiration": {
			msg:     &DepositMsg{Seed: 1, Amount: 100, Expiration: -1, FeeRate: 5, Source: source, Mint: "CUS"},
			wantErr: errors.ErrState,
		},
		"deposit missing source": {
			msg:     &DepositMsg{Seed: 1, Amount: 100, Expiration: 1234567890, FeeRate: 5, Mint: "CUS"},
			wantErr: errors.ErrInput,
		},
		"deposit missing mint": {
			msg:     &DepositMsg{Seed: 1, Amount: 100, Expiration: 1234567890, FeeRate: 5, Source: source},
			wantErr: errors.ErrEmpty,
		},
		"valid withdraw": {
			msg: &WithdrawMsg{Seed: 1, Escrow: addr(), Vault: addr(), Destination: addr()},
		},
		"withdraw short vault": {
			msg:     &WithdrawMsg{Seed: 1, Escrow: addr(), Vault: []byte{1}, Destination: addr()},
			wantErr: errors.ErrInput,
		},
		"valid cancel": {
			msg: &CancelMsg{Seed: 1, Escrow: addr(), Vault: addr(), Destination: addr()},
		},
		"cancel missing destination": {
			msg:     &CancelMsg{Seed: 1, Escrow: addr(), Vault: addr()},
			wantErr: errors.ErrInput,
		},
		"valid external action": {
			msg: &ExternalActionMsg{Seed: 1, Target: addr(), Payload: []byte{1}, Accounts: [][]byte{addr(), addr(), addr()}},
		},
		"external action empty payload": {
			msg:     &ExternalActionMsg{Seed: 1, Target: addr(), Accounts: [][]byte{addr(), addr(), addr()}},
			wantErr: errors.ErrInput,
		},
		"external action too few accounts": {
			msg:     &ExternalActionMsg{Seed: 1, Target: addr(), Payload: []byte{1}, Accounts: [][]byte{addr(), addr()}},
			wantErr: errors.ErrInput,
		},
		"external action malformed account": {
			msg:     &ExternalActionMsg{Seed: 1, Target: addr(), Payload: []byte{1}, Accounts: [][]byte{addr(), addr(), {1, 2}}},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
			}
		})
	}
}

func TestMsgPaths(t *testing.T) {
	assert.Equal(t, "escrow/deposit", (&DepositMsg{}).Path())
	assert.Equal(t, "escrow/withdraw", (&WithdrawMsg{}).Path())
	assert.Equal(t, "escrow/cancel", (&CancelMsg{}).Path())
	assert.Equal(t, "escrow/external_action", (&ExternalActionMsg{}).Path())
}
