package sigs

import (
	"github.com/custos-chain/custos"
	"github.com/custos-chain/custos/crypto"
	"github.com/custos-chain/custos/errors"
	"github.com/custos-chain/custos/orm"
	"github.com/gogo/protobuf/proto"
)

// BucketName is where we store the signer records
const BucketName = "sigs"

// UserData tracks the signature state of one signer: its public key
// and the sequence expected on the next signature.
type UserData struct {
	Pubkey   []byte `protobuf:"bytes,1,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	Sequence int64  `protobuf:"varint,2,opt,name=sequence,proto3" json:"sequence,omitempty"`
}

var _ orm.Model = (*UserData)(nil)

func (u *UserData) Reset()         { *u = UserData{} }
func (u *UserData) String() string { return proto.CompactTextString(u) }
func (*UserData) ProtoMessage()    {}

// Validate ensures the user data is sensible
func (u *UserData) Validate() error {
	if err := crypto.PublicKey(u.Pubkey).Validate(); err != nil {
		return errors.Wrap(err, "pubkey")
	}
	if u.Sequence < 0 {
		return errors.Wrap(ErrInvalidSequence, "negative sequence")
	}
	return nil
}

// CheckAndIncrementSequence checks if the current Sequence matches
// the expected value. If so, it will increase the sequence by one and
// return nil.
func (u *UserData) CheckAndIncrementSequence(check int64) error {
	if u.Sequence != check {
		return errors.Wrapf(ErrInvalidSequence, "mismatch expected %d, got %d", u.Sequence, check)
	}
	u.Sequence++
	return nil
}

// NewBucket creates the bucket holding all signer records, keyed by
// the signer address.
func NewBucket() orm.Bucket {
	return orm.NewBucket(BucketName, orm.NewSimpleObj(nil, &UserData{}))
}

// AsUser extracts a *UserData value or nil from the object.
func AsUser(obj orm.Object) *UserData {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*UserData)
}

// GetOrCreateUser loads the record for this public key, creating a
// fresh zero-sequence record when the signer was never seen before.
func GetOrCreateUser(db custos.KVStore, bucket orm.Bucket, pub crypto.PublicKey) (*UserData, error) {
	obj, err := bucket.Get(db, pub.Address())
	if err != nil {
		return nil, err
	}
	if user := AsUser(obj); user != nil {
		return user, nil
	}
	return &UserData{Pubkey: pub}, nil
}
