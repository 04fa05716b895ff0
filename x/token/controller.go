package token

import (
	"math"

	"github.com/custos-chain/custos"
	"github.com/custos-chain/custos/errors"
	"github.com/custos-chain/custos/orm"
)

// Controller is the functionality needed by other extensions to hold
// and move tokens. This is implemented by BaseController and passed
// in as a dependency, so it can be swapped for an instrumented or
// extended version.
type Controller interface {
	// CreateAccount allocates an empty account for the given mint at
	// the given address.
	CreateAccount(db custos.KVStore, acct, owner custos.Address, mint string) error

	// Transfer moves amount from src to dst. Both accounts must exist
	// and share the same mint. A zero amount performs all validation
	// but moves nothing.
	Transfer(db custos.KVStore, src, dst custos.Address, amount uint64) error

	// Balance returns the current balance of the account.
	Balance(db custos.KVStore, acct custos.Address) (uint64, error)

	// MintOf returns the mint the account is bound to.
	MintOf(db custos.KVStore, acct custos.Address) (string, error)

	// GetAccount loads the full account record, or ErrNotFound.
	GetAccount(db custos.KVStore, acct custos.Address) (*Account, error)

	// CloseAccount removes the account record. Any balance still held
	// is dropped from circulation.
	CloseAccount(db custos.KVStore, acct custos.Address) error

	// Issue credits the account with new tokens. Genesis and test
	// bootstrap only; there is no mint authority model here.
	Issue(db custos.KVStore, acct custos.Address, amount uint64) error
}

// BaseController implements Controller on top of the account bucket.
type BaseController struct {
	bucket orm.Bucket
}

var _ Controller = BaseController{}

// NewController returns a base controller using the default bucket
func NewController() BaseController {
	return BaseController{bucket: NewBucket()}
}

// CreateAccount allocates an empty account, failing when an account
// already lives at that address.
func (c BaseController) CreateAccount(db custos.KVStore, acct, owner custos.Address, mint string) error {
	if c.bucket.Has(db, acct) {
		return errors.Wrapf(errors.ErrDuplicate, "account %s", acct)
	}
	account := &Account{
		Owner: owner,
		Mint:  mint,
	}
	return c.save(db, acct, account)
}

// GetAccount loads the account or fails with ErrNotFound.
func (c BaseController) GetAccount(db custos.KVStore, acct custos.Address) (*Account, error) {
	obj, err := c.bucket.Get(db, acct)
	if err != nil {
		return nil, err
	}
	account := AsAccount(obj)
	if account == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "account %s", acct)
	}
	return account, nil
}

// Balance returns the current balance of the account.
func (c BaseController) Balance(db custos.KVStore, acct custos.Address) (uint64, error) {
	account, err := c.GetAccount(db, acct)
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}

// MintOf returns the mint the account is bound to.
func (c BaseController) MintOf(db custos.KVStore, acct custos.Address) (string, error) {
	account, err := c.GetAccount(db, acct)
	if err != nil {
		return "", err
	}
	return account.Mint, nil
}

// Transfer moves amount from src to dst.
func (c BaseController) Transfer(db custos.KVStore, src, dst custos.Address, amount uint64) error {
	sender, err := c.GetAccount(db, src)
	if err != nil {
		return errors.Wrap(err, "source")
	}

	// A transfer to self validates the balance but moves nothing.
	// Loading the account twice would let the second save undo the
	// debit and create tokens out of thin air.
	if src.Equals(dst) {
		if sender.Balance < amount {
			return errors.Wrapf(ErrInsufficientFunds, "have %d, want %d", sender.Balance, amount)
		}
		return nil
	}

	recipient, err := c.GetAccount(db, dst)
	if err != nil {
		return errors.Wrap(err, "destination")
	}

	if sender.Mint != recipient.Mint {
		return errors.Wrapf(ErrMintMismatch, "%s to %s", sender.Mint, recipient.Mint)
	}
	if sender.Balance < amount {
		return errors.Wrapf(ErrInsufficientFunds, "have %d, want %d", sender.Balance, amount)
	}
	if recipient.Balance > math.MaxUint64-amount {
		return errors.Wrap(errors.ErrOverflow, "destination balance")
	}

	sender.Balance -= amount
	recipient.Balance += amount

	if err := c.save(db, src, sender); err != nil {
		return err
	}
	return c.save(db, dst, recipient)
}

// CloseAccount removes the account record.
func (c BaseController) CloseAccount(db custos.KVStore, acct custos.Address) error {
	if !c.bucket.Has(db, acct) {
		return errors.Wrapf(errors.ErrNotFound, "account %s", acct)
	}
	return c.bucket.Delete(db, acct)
}

// Issue credits the account with new tokens.
func (c BaseController) Issue(db custos.KVStore, acct custos.Address, amount uint64) error {
	account, err := c.GetAccount(db, acct)
	if err != nil {
		return err
	}
	if account.Balance > math.MaxUint64-amount {
		return errors.Wrap(errors.ErrOverflow, "balance")
	}
	account.Balance += amount
	return c.save(db, acct, account)
}

func (c BaseController) save(db custos.KVStore, acct custos.Address, account *Account) error {
	obj := orm.NewSimpleObj(acct, account)
	return c.bucket.Save(db, obj)
}
