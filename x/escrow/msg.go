package escrow

import (
	"github.com/custos-chain/custos"
	"github.com/custos-chain/custos/errors"
	"github.com/gogo/protobuf/proto"
)

// Message paths, used by the router
const (
	pathDepositMsg        = "escrow/deposit"
	pathWithdrawMsg       = "escrow/withdraw"
	pathCancelMsg         = "escrow/cancel"
	pathExternalActionMsg = "escrow/external_action"
)

// minExternalAccounts is the smallest account list a delegated call
// can carry: a debit side, a credit side and the authorizing record.
const minExternalAccounts = 3

var (
	_ custos.Msg = (*DepositMsg)(nil)
	_ custos.Msg = (*WithdrawMsg)(nil)
	_ custos.Msg = (*CancelMsg)(nil)
	_ custos.Msg = (*ExternalActionMsg)(nil)
)

// DepositMsg creates a new escrow record and vault for the given seed
// and moves the deposit from the signer's source token account into
// the vault.
type DepositMsg struct {
	Seed       uint32          `protobuf:"varint,1,opt,name=seed,proto3" json:"seed,omitempty"`
	Amount     uint64          `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
	Expiration custos.UnixTime `protobuf:"varint,3,opt,name=expiration,proto3" json:"expiration,omitempty"`
	FeeRate    uint32          `protobuf:"varint,4,opt,name=fee_rate,json=feeRate,proto3" json:"fee_rate,omitempty"`
	Source     []byte          `protobuf:"bytes,5,opt,name=source,proto3" json:"source,omitempty"`
	Mint       string          `protobuf:"bytes,6,opt,name=mint,proto3" json:"mint,omitempty"`
}

func (m *DepositMsg) Reset()         { *m = DepositMsg{} }
func (m *DepositMsg) String() string { return proto.CompactTextString(m) }
func (*DepositMsg) ProtoMessage()    {}

// Path returns the routing path for this message
func (*DepositMsg) Path() string { return pathDepositMsg }

// Validate makes sure that this is sensible. Whether the record
// already exists is a stateful check done by the handler.
func (m *DepositMsg) Validate() error {
	if m.Amount == 0 {
		return errors.Wrap(errors.ErrAmount, "deposit amount is zero")
	}
	if m.FeeRate > maxFeeRate {
		return errors.Wrapf(errors.ErrInput, "fee rate %d out of range", m.FeeRate)
	}
	if err := m.Expiration.Validate(); err != nil {
		return errors.Wrap(err, "expiration")
	}
	if err := custos.Address(m.Source).Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if m.Mint == "" {
		return errors.Wrap(errors.ErrEmpty, "mint")
	}
	return nil
}

// WithdrawMsg releases the escrowed tokens, net of the fee, to the
// destination token account and closes the record and vault.
type WithdrawMsg struct {
	Seed        uint32 `protobuf:"varint,1,opt,name=seed,proto3" json:"seed,omitempty"`
	Escrow      []byte `protobuf:"bytes,2,opt,name=escrow,proto3" json:"escrow,omitempty"`
	Vault       []byte `protobuf:"bytes,3,opt,name=vault,proto3" json:"vault,omitempty"`
	Destination []byte `protobuf:"bytes,4,opt,name=destination,proto3" json:"destination,omitempty"`
}

func (m *WithdrawMsg) Reset()         { *m = WithdrawMsg{} }
func (m *WithdrawMsg) String() string { return proto.CompactTextString(m) }
func (*WithdrawMsg) ProtoMessage()    {}

// Path returns the routing path for this message
func (*WithdrawMsg) Path() string { return pathWithdrawMsg }

// Validate makes sure that this is sensible
func (m *WithdrawMsg) Validate() error {
	if err := custos.Address(m.Escrow).Validate(); err != nil {
		return errors.Wrap(err, "escrow")
	}
	if err := custos.Address(m.Vault).Validate(); err != nil {
		return errors.Wrap(err, "vault")
	}
	if err := custos.Address(m.Destination).Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	return nil
}

// CancelMsg returns the full vault balance to the token account the
// deposit was funded from and closes the record and vault. Only the
// record owner may cancel, at any time.
type CancelMsg struct {
	Seed        uint32 `protobuf:"varint,1,opt,name=seed,proto3" json:"seed,omitempty"`
	Escrow      []byte `protobuf:"bytes,2,opt,name=escrow,proto3" json:"escrow,omitempty"`
	Vault       []byte `protobuf:"bytes,3,opt,name=vault,proto3" json:"vault,omitempty"`
	Destination []byte `protobuf:"bytes,4,opt,name=destination,proto3" json:"destination,omitempty"`
}

func (m *CancelMsg) Reset()         { *m = CancelMsg{} }
func (m *CancelMsg) String() string { return proto.CompactTextString(m) }
func (*CancelMsg) ProtoMessage()    {}

// Path returns the routing path for this message
func (*CancelMsg) Path() string { return pathCancelMsg }

// Validate makes sure that this is sensible
func (m *CancelMsg) Validate() error {
	if err := custos.Address(m.Escrow).Validate(); err != nil {
		return errors.Wrap(err, "escrow")
	}
	if err := custos.Address(m.Vault).Validate(); err != nil {
		return errors.Wrap(err, "vault")
	}
	if err := custos.Address(m.Destination).Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	return nil
}

// ExternalActionMsg delegates one call into the target program,
// authorized by the escrow record's condition. The payload is opaque
// to the engine and the target is caller-asserted; the engine keeps
// no allowlist of programs.
type ExternalActionMsg struct {
	Seed     uint32   `protobuf:"varint,1,opt,name=seed,proto3" json:"seed,omitempty"`
	Target   []byte   `protobuf:"bytes,2,opt,name=target,proto3" json:"target,omitempty"`
	Payload  []byte   `protobuf:"bytes,3,opt,name=payload,proto3" json:"payload,omitempty"`
	Accounts [][]byte `protobuf:"bytes,4,rep,name=accounts,proto3" json:"accounts,omitempty"`
}

func (m *ExternalActionMsg) Reset()         { *m = ExternalActionMsg{} }
func (m *ExternalActionMsg) String() string { return proto.CompactTextString(m) }
func (*ExternalActionMsg) ProtoMessage()    {}

// Path returns the routing path for this message
func (*ExternalActionMsg) Path() string { return pathExternalActionMsg }

// Validate makes sure that this is sensible
func (m *ExternalActionMsg) Validate() error {
	if err := custos.Address(m.Target).Validate(); err != nil {
		return errors.Wrap(err, "target")
	}
	if len(m.Payload) == 0 {
		return errors.Wrap(errors.ErrInput, "empty payload")
	}
	if len(m.Accounts) < minExternalAccounts {
		return errors.Wrapf(errors.ErrInput, "expected at least %d accounts, got %d", minExternalAccounts, len(m.Accounts))
	}
	for i, a := range m.Accounts {
		if err := custos.Address(a).Validate(); err != nil {
			return errors.Wrapf(err, "account #%d", i)
		}
	}
	return nil
}

// AccountAddresses returns the typed account list of the message.
func (m *ExternalActionMsg) AccountAddresses() []custos.Address {
	addrs := make([]custos.Address, len(m.Accounts))
	for i, a := range m.Accounts {
		addrs[i] = custos.Address(a)
	}
	return addrs
}
