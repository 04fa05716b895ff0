package token

import (
	"regexp"

	"github.com/custos-chain/custos"
	"github.com/custos-chain/custos/errors"
	"github.com/custos-chain/custos/orm"
	"github.com/gogo/protobuf/proto"
)

// BucketName is where we store the token accounts
const BucketName = "tok"

// isTicker matches a valid mint ticker
var isTicker = regexp.MustCompile(`^[A-Z]{3,4}$`).MatchString

// Account is a token holding bound to exactly one mint. The owner is
// the address whose authority is required to debit the balance. For a
// vault the owner is a derived address, so no private key can ever
// move the funds.
type Account struct {
	Owner   []byte `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Mint    string `protobuf:"bytes,2,opt,name=mint,proto3" json:"mint,omitempty"`
	Balance uint64 `protobuf:"varint,3,opt,name=balance,proto3" json:"balance,omitempty"`
}

var _ orm.Model = (*Account)(nil)

func (a *Account) Reset()         { *a = Account{} }
func (a *Account) String() string { return proto.CompactTextString(a) }
func (*Account) ProtoMessage()    {}

// Validate ensures the account is sensible
func (a *Account) Validate() error {
	if err := custos.Address(a.Owner).Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if !isTicker(a.Mint) {
		return errors.Wrapf(errors.ErrInput, "invalid mint ticker %q", a.Mint)
	}
	return nil
}

// OwnerAddress returns the typed owner of the account
func (a *Account) OwnerAddress() custos.Address {
	return custos.Address(a.Owner)
}

// NewBucket creates the bucket holding all token accounts, keyed by
// the account address.
func NewBucket() orm.Bucket {
	return orm.NewBucket(BucketName, orm.NewSimpleObj(nil, &Account{}))
}

// AsAccount extracts an *Account value or nil from the object.
// Must be called on a Bucket result that is an *Account, will panic
// on bad type.
func AsAccount(obj orm.Object) *Account {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*Account)
}
