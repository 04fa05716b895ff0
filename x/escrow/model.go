package escrow

import (
	"encoding/binary"
	"math"

	"github.com/custos-chain/custos"
	"github.com/custos-chain/custos/errors"
	"github.com/custos-chain/custos/orm"
	"github.com/gogo/protobuf/proto"
)

// BucketName is where we store the escrow records
const BucketName = "esc"

// maxFeeRate is the upper bound of the integer fee percentage.
const maxFeeRate = 100

// Escrow is the persistent record of one custody agreement. It lives
// at the address derived from its seed and stays immutable from
// creation until it is deleted by a terminal transition.
//
// Amount is the quantity originally deposited. It is kept for audit
// reads and is not decremented by partial vault debits made through
// the passthrough path; the vault balance is the live figure.
type Escrow struct {
	Owner      []byte          `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Source     []byte          `protobuf:"bytes,2,opt,name=source,proto3" json:"source,omitempty"`
	Amount     uint64          `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
	FeeRate    uint32          `protobuf:"varint,4,opt,name=fee_rate,json=feeRate,proto3" json:"fee_rate,omitempty"`
	Expiration custos.UnixTime `protobuf:"varint,5,opt,name=expiration,proto3" json:"expiration,omitempty"`
	Seed       uint32          `protobuf:"varint,6,opt,name=seed,proto3" json:"seed,omitempty"`
	Bump       uint32          `protobuf:"varint,7,opt,name=bump,proto3" json:"bump,omitempty"`
}

var _ orm.Model = (*Escrow)(nil)

func (e *Escrow) Reset()         { *e = Escrow{} }
func (e *Escrow) String() string { return proto.CompactTextString(e) }
func (*Escrow) ProtoMessage()    {}

// Validate ensures the escrow record is sensible
func (e *Escrow) Validate() error {
	if err := custos.Address(e.Owner).Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if err := custos.Address(e.Source).Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if e.Amount == 0 {
		return errors.Wrap(errors.ErrAmount, "amount is zero")
	}
	if e.FeeRate > maxFeeRate {
		return errors.Wrapf(errors.ErrInput, "fee rate %d", e.FeeRate)
	}
	if err := e.Expiration.Validate(); err != nil {
		return errors.Wrap(err, "expiration")
	}
	if e.Bump > math.MaxUint8 {
		return errors.Wrapf(errors.ErrInput, "bump %d", e.Bump)
	}
	return nil
}

// OwnerAddress returns the typed owner of the record
func (e *Escrow) OwnerAddress() custos.Address {
	return custos.Address(e.Owner)
}

// SourceAddress returns the typed token account the deposit was
// funded from. Cancel refunds go back to exactly this account.
func (e *Escrow) SourceAddress() custos.Address {
	return custos.Address(e.Source)
}

// Condition calculates the condition of this record from its stored
// seed. The derived address must match the address the record is
// stored under, and the stored bump must match the re-derived one.
func (e *Escrow) Condition() custos.Condition {
	return EscrowCondition(e.Seed)
}

// EscrowCondition derives the condition of the escrow record for the
// given seed. The data section is the seed as 4 bytes little-endian.
func EscrowCondition(seed uint32) custos.Condition {
	data := make([]byte, 4)
	binary.LittleEndian.PutUint32(data, seed)
	return custos.NewCondition("escrow", "seed", data)
}

// VaultCondition derives the condition of the vault belonging to the
// escrow record at the given address. The vault's token account owner
// is the record's address, so only the engine acting as the record
// can move its funds.
func VaultCondition(escrowAddr custos.Address) custos.Condition {
	return custos.NewCondition("vault", "escrow", escrowAddr)
}

// Bucket is a type-safe wrapper around the generic bucket, keyed by
// the derived record address.
type Bucket struct {
	orm.Bucket
}

// NewBucket creates the bucket holding all escrow records.
func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket(BucketName, orm.NewSimpleObj(nil, &Escrow{})),
	}
}

// GetEscrow loads the record at the given address, or nil if absent.
func (b Bucket) GetEscrow(db custos.KVStore, key custos.Address) (*Escrow, error) {
	obj, err := b.Get(db, key)
	if err != nil {
		return nil, err
	}
	return AsEscrow(obj), nil
}

// Save persists the record under the given address.
func (b Bucket) Save(db custos.KVStore, key custos.Address, e *Escrow) error {
	return b.Bucket.Save(db, orm.NewSimpleObj(key, e))
}

// AsEscrow extracts an *Escrow value or nil from the object.
// Must be called on a Bucket result that is an *Escrow, will panic
// on bad type.
func AsEscrow(obj orm.Object) *Escrow {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*Escrow)
}
