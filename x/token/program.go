package token

import (
	"encoding/binary"

	"github.com/custos-chain/custos"
	"github.com/custos-chain/custos/errors"
	"github.com/custos-chain/custos/x"
)

// Transfer instruction layout: one op byte followed by the amount as
// 8 bytes little-endian.
const (
	opTransfer byte = 1

	transferPayloadSize = 9
)

// Account order expected by the transfer instruction.
const (
	idxSource = iota
	idxDestination
	idxAuthority

	transferAccountCount
)

// Program executes opaque token instructions on behalf of an
// authenticated authority. It is the standard target of the escrow
// passthrough path: the engine delegates a call here with the vault
// as source and the escrow record condition as authority.
type Program struct {
	auth x.Authenticator
	ctrl Controller
}

var _ custos.Program = Program{}

// NewProgram returns a token program using the given authentication
// source and controller.
func NewProgram(auth x.Authenticator, ctrl Controller) Program {
	return Program{auth: auth, ctrl: ctrl}
}

// Execute decodes and runs one instruction. The authority account
// must be authenticated on the context and own the source account.
func (p Program) Execute(ctx custos.Context, db custos.KVStore, payload []byte, accounts []custos.Address) error {
	if len(payload) != transferPayloadSize {
		return errors.Wrapf(errors.ErrInput, "payload of %d bytes", len(payload))
	}
	if payload[0] != opTransfer {
		return errors.Wrapf(errors.ErrInput, "unknown instruction %d", payload[0])
	}
	if len(accounts) < transferAccountCount {
		return errors.Wrapf(errors.ErrInput, "expected %d accounts, got %d", transferAccountCount, len(accounts))
	}

	amount := binary.LittleEndian.Uint64(payload[1:])
	src := accounts[idxSource]
	dst := accounts[idxDestination]
	authority := accounts[idxAuthority]

	source, err := p.ctrl.GetAccount(db, src)
	if err != nil {
		return errors.Wrap(err, "source")
	}
	if !source.OwnerAddress().Equals(authority) {
		return errors.Wrap(errors.ErrUnauthorized, "authority does not own source account")
	}
	if !p.auth.HasAddress(ctx, authority) {
		return errors.Wrap(errors.ErrUnauthorized, "authority not authenticated")
	}

	return p.ctrl.Transfer(db, src, dst, amount)
}

// TransferPayload encodes a transfer instruction for the given
// amount. Used by callers that drive the program through the
// passthrough path.
func TransferPayload(amount uint64) []byte {
	payload := make([]byte, transferPayloadSize)
	payload[0] = opTransfer
	binary.LittleEndian.PutUint64(payload[1:], amount)
	return payload
}
