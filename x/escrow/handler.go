package escrow

import (
	"fmt"
	"math/bits"

	"github.com/custos-chain/custos"
	"github.com/custos-chain/custos/errors"
	"github.com/custos-chain/custos/x"
	"github.com/custos-chain/custos/x/token"
)

const (
	depositCost        = 300
	withdrawCost       = 200
	cancelCost         = 200
	externalActionCost = 500
)

// Executor dispatches one delegated call into the program registered
// at the target address. Implemented by the application's program
// router.
type Executor interface {
	Execute(ctx custos.Context, db custos.KVStore, target custos.Address, payload []byte, accounts []custos.Address) error
}

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r custos.Registry, auth x.Authenticator, ctrl token.Controller, executor Executor) {
	bucket := NewBucket()
	r.Handle(pathDepositMsg, DepositHandler{auth: auth, bucket: bucket, ctrl: ctrl})
	r.Handle(pathWithdrawMsg, WithdrawHandler{auth: auth, bucket: bucket, ctrl: ctrl})
	r.Handle(pathCancelMsg, CancelHandler{auth: auth, bucket: bucket, ctrl: ctrl})
	r.Handle(pathExternalActionMsg, ExternalActionHandler{auth: auth, bucket: bucket, executor: executor})
}

// loadRecord re-derives the record and vault addresses from the seed,
// checks them against the supplied ones and loads the record. A record
// whose stored bump does not reproduce under re-derivation is treated
// as forged.
func loadRecord(bucket Bucket, db custos.KVStore, seed uint32, escrowAddr, vaultAddr custos.Address) (*Escrow, error) {
	cond := EscrowCondition(seed)
	wantRecord := cond.Address()
	if !wantRecord.Equals(escrowAddr) {
		return nil, errors.Wrapf(ErrAddressMismatch, "record %s does not derive from seed %d", escrowAddr, seed)
	}
	if wantVault := VaultCondition(wantRecord).Address(); !wantVault.Equals(vaultAddr) {
		return nil, errors.Wrapf(ErrAddressMismatch, "vault %s does not derive from record %s", vaultAddr, wantRecord)
	}

	record, err := bucket.GetEscrow(db, wantRecord)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "no active record for seed %d", seed)
	}
	if uint8(record.Bump) != cond.Bump() {
		return nil, errors.Wrap(ErrAddressMismatch, "stored bump does not re-derive")
	}
	return record, nil
}

// DepositHandler creates a record and vault and funds the vault from
// the signer's source token account.
type DepositHandler struct {
	auth   x.Authenticator
	bucket Bucket
	ctrl   token.Controller
}

var _ custos.Handler = DepositHandler{}

// Check just verifies it is properly formed and returns the cost of
// executing it.
func (h DepositHandler) Check(ctx custos.Context, db custos.KVStore, tx custos.Tx) (*custos.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &custos.CheckResult{GasAllocated: depositCost}, nil
}

// Deliver creates the record and vault and moves the deposit in. The
// record address is returned as response data.
func (h DepositHandler) Deliver(ctx custos.Context, db custos.KVStore, tx custos.Tx) (*custos.DeliverResult, error) {
	msg, depositor, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	cond := EscrowCondition(msg.Seed)
	recordAddr := cond.Address()
	vaultAddr := VaultCondition(recordAddr).Address()

	if err := h.ctrl.CreateAccount(db, vaultAddr, recordAddr, msg.Mint); err != nil {
		return nil, errors.Wrap(err, "create vault")
	}
	if err := h.ctrl.Transfer(db, custos.Address(msg.Source), vaultAddr, msg.Amount); err != nil {
		return nil, errors.Wrap(err, "fund vault")
	}

	record := &Escrow{
		Owner:      depositor,
		Source:     msg.Source,
		Amount:     msg.Amount,
		FeeRate:    msg.FeeRate,
		Expiration: msg.Expiration,
		Seed:       msg.Seed,
		Bump:       uint32(cond.Bump()),
	}
	if err := h.bucket.Save(db, recordAddr, record); err != nil {
		return nil, err
	}
	return &custos.DeliverResult{
		Data:    recordAddr,
		Log:     fmt.Sprintf("deposit of %d %s by %s, expires %s", msg.Amount, msg.Mint, depositor, msg.Expiration),
		GasUsed: depositCost,
	}, nil
}

// validate performs the checks common to Check and Deliver. It
// returns the message and the depositor address on success.
func (h DepositHandler) validate(ctx custos.Context, db custos.KVStore, tx custos.Tx) (*DepositMsg, custos.Address, error) {
	var msg DepositMsg
	if err := custos.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}

	depositor := x.MainSigner(ctx, h.auth)
	if depositor == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}

	recordAddr := EscrowCondition(msg.Seed).Address()
	if h.bucket.Has(db, recordAddr) {
		return nil, nil, errors.Wrapf(errors.ErrDuplicate, "seed %d already initialized", msg.Seed)
	}

	source, err := h.ctrl.GetAccount(db, custos.Address(msg.Source))
	if err != nil {
		return nil, nil, errors.Wrap(err, "source")
	}
	if !source.OwnerAddress().Equals(depositor.Address()) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "signer does not own source account")
	}
	if source.Mint != msg.Mint {
		return nil, nil, errors.Wrapf(token.ErrMintMismatch, "source holds %s, not %s", source.Mint, msg.Mint)
	}
	return &msg, depositor.Address(), nil
}

// WithdrawHandler releases the escrowed tokens net of the fee to any
// signer supplying a destination account of the right mint, then
// closes the record and vault. The record does not bind a recipient
// identity; holding a correctly minted account is sufficient.
type WithdrawHandler struct {
	auth   x.Authenticator
	bucket Bucket
	ctrl   token.Controller
}

var _ custos.Handler = WithdrawHandler{}

// Check just verifies it is properly formed and returns the cost of
// executing it.
func (h WithdrawHandler) Check(ctx custos.Context, db custos.KVStore, tx custos.Tx) (*custos.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &custos.CheckResult{GasAllocated: withdrawCost}, nil
}

// Deliver moves the net amount to the destination, drops the withheld
// fee with the vault and deletes the record.
func (h WithdrawHandler) Deliver(ctx custos.Context, db custos.KVStore, tx custos.Tx) (*custos.DeliverResult, error) {
	msg, record, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	net := netAmount(record.Amount, record.FeeRate)
	if err := h.ctrl.Transfer(db, custos.Address(msg.Vault), custos.Address(msg.Destination), net); err != nil {
		return nil, errors.Wrap(err, "release")
	}

	// The withheld fee stays behind and is reclaimed with the vault.
	if err := h.ctrl.CloseAccount(db, custos.Address(msg.Vault)); err != nil {
		return nil, errors.Wrap(err, "close vault")
	}
	if err := h.bucket.Delete(db, custos.Address(msg.Escrow)); err != nil {
		return nil, err
	}
	return &custos.DeliverResult{
		Data:    msg.Destination,
		Log:     fmt.Sprintf("withdraw of %d to %s, %d fee withheld", net, custos.Address(msg.Destination), record.Amount-net),
		GasUsed: withdrawCost,
	}, nil
}

// validate performs the checks common to Check and Deliver.
func (h WithdrawHandler) validate(ctx custos.Context, db custos.KVStore, tx custos.Tx) (*WithdrawMsg, *Escrow, error) {
	var msg WithdrawMsg
	if err := custos.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	if x.MainSigner(ctx, h.auth) == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}

	record, err := loadRecord(h.bucket, db, msg.Seed, custos.Address(msg.Escrow), custos.Address(msg.Vault))
	if err != nil {
		return nil, nil, err
	}
	if custos.IsExpired(ctx, record.Expiration) {
		return nil, nil, errors.Wrapf(errors.ErrExpired, "expired at %s", record.Expiration)
	}

	vaultMint, err := h.ctrl.MintOf(db, custos.Address(msg.Vault))
	if err != nil {
		return nil, nil, errors.Wrap(err, "vault")
	}
	destination, err := h.ctrl.GetAccount(db, custos.Address(msg.Destination))
	if err != nil {
		return nil, nil, errors.Wrap(err, "destination")
	}
	if vaultMint != destination.Mint {
		return nil, nil, errors.Wrapf(token.ErrMintMismatch, "vault holds %s, destination holds %s", vaultMint, destination.Mint)
	}
	// The destination must belong to the signer claiming the funds.
	if !h.auth.HasAddress(ctx, destination.OwnerAddress()) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "destination account is not owned by a signer")
	}
	return &msg, record, nil
}

// CancelHandler returns the full vault balance to the token account
// the deposit came from and closes the record and vault. Only the
// stored owner may cancel, before or after expiration.
type CancelHandler struct {
	auth   x.Authenticator
	bucket Bucket
	ctrl   token.Controller
}

var _ custos.Handler = CancelHandler{}

// Check just verifies it is properly formed and returns the cost of
// executing it.
func (h CancelHandler) Check(ctx custos.Context, db custos.KVStore, tx custos.Tx) (*custos.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &custos.CheckResult{GasAllocated: cancelCost}, nil
}

// Deliver refunds the full vault balance and deletes the record.
func (h CancelHandler) Deliver(ctx custos.Context, db custos.KVStore, tx custos.Tx) (*custos.DeliverResult, error) {
	msg, record, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	balance, err := h.ctrl.Balance(db, custos.Address(msg.Vault))
	if err != nil {
		return nil, errors.Wrap(err, "vault")
	}
	if err := h.ctrl.Transfer(db, custos.Address(msg.Vault), record.SourceAddress(), balance); err != nil {
		return nil, errors.Wrap(err, "refund")
	}
	if err := h.ctrl.CloseAccount(db, custos.Address(msg.Vault)); err != nil {
		return nil, errors.Wrap(err, "close vault")
	}
	if err := h.bucket.Delete(db, custos.Address(msg.Escrow)); err != nil {
		return nil, err
	}
	return &custos.DeliverResult{
		Data:    record.Source,
		Log:     fmt.Sprintf("refund of %d to %s", balance, record.SourceAddress()),
		GasUsed: cancelCost,
	}, nil
}

// validate performs the checks common to Check and Deliver.
func (h CancelHandler) validate(ctx custos.Context, db custos.KVStore, tx custos.Tx) (*CancelMsg, *Escrow, error) {
	var msg CancelMsg
	if err := custos.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}

	record, err := loadRecord(h.bucket, db, msg.Seed, custos.Address(msg.Escrow), custos.Address(msg.Vault))
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, record.OwnerAddress()) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the owner can cancel")
	}
	// The refund goes back to the account the deposit came from.
	if !record.SourceAddress().Equals(custos.Address(msg.Destination)) {
		return nil, nil, errors.Wrap(ErrAddressMismatch, "destination is not the deposit source account")
	}
	return &msg, record, nil
}

// ExternalActionHandler delegates a single call into another program
// using the record's condition as the authorizing identity. The
// record itself stays untouched.
type ExternalActionHandler struct {
	auth     x.Authenticator
	bucket   Bucket
	executor Executor
}

var _ custos.Handler = ExternalActionHandler{}

// Check just verifies it is properly formed and returns the cost of
// executing it. The delegated call itself only runs on Deliver.
func (h ExternalActionHandler) Check(ctx custos.Context, db custos.KVStore, tx custos.Tx) (*custos.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &custos.CheckResult{GasAllocated: externalActionCost}, nil
}

// Deliver dispatches the delegated call with the record condition
// authenticated on the context.
func (h ExternalActionHandler) Deliver(ctx custos.Context, db custos.KVStore, tx custos.Tx) (*custos.DeliverResult, error) {
	msg, record, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	subCtx := withRecordAuthority(ctx, record.Condition())
	if err := h.executor.Execute(subCtx, db, custos.Address(msg.Target), msg.Payload, msg.AccountAddresses()); err != nil {
		return nil, errors.Wrapf(ErrExternalCall, "%v", err)
	}
	return &custos.DeliverResult{
		Log:     fmt.Sprintf("delegated call to %s by %s", custos.Address(msg.Target), record.OwnerAddress()),
		GasUsed: externalActionCost,
	}, nil
}

// validate performs the checks common to Check and Deliver.
func (h ExternalActionHandler) validate(ctx custos.Context, db custos.KVStore, tx custos.Tx) (*ExternalActionMsg, *Escrow, error) {
	var msg ExternalActionMsg
	if err := custos.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}

	recordAddr := EscrowCondition(msg.Seed).Address()
	record, err := loadRecord(h.bucket, db, msg.Seed, recordAddr, VaultCondition(recordAddr).Address())
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, record.OwnerAddress()) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the owner can delegate")
	}
	if custos.IsExpired(ctx, record.Expiration) {
		return nil, nil, errors.Wrapf(errors.ErrExpired, "expired at %s", record.Expiration)
	}
	return &msg, record, nil
}

// netAmount computes amount minus the withheld fee. The fee is the
// floor of amount*feeRate/100, computed in 128 bits so the product
// cannot overflow.
func netAmount(amount uint64, feeRate uint32) uint64 {
	hi, lo := bits.Mul64(amount, uint64(feeRate))
	fee, _ := bits.Div64(hi, lo, 100)
	return amount - fee
}
