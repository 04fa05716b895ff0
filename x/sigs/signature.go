package sigs

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/custos-chain/custos"
	"github.com/custos-chain/custos/crypto"
	"github.com/custos-chain/custos/errors"
	"github.com/custos-chain/custos/orm"
	"github.com/gogo/protobuf/proto"
)

// SignedTx is an extension to Tx that signatures can be verified
// against.
type SignedTx interface {
	custos.Tx

	// GetSignBytes returns the canonical byte representation of the
	// Msg. Equivalent to serializing the transaction with an empty
	// signature list.
	GetSignBytes() ([]byte, error)

	// GetSignatures returns the signatures authorizing this
	// transaction, in the order they were attached.
	GetSignatures() []*StdSignature
}

// StdSignature represents the signature, the identity of the signer
// (its public key), and a sequence number to prevent replay attacks.
//
// A given signer must submit transactions with the sequence number
// increasing by 1 each time (starting at 0).
type StdSignature struct {
	Sequence  int64  `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty"`
	Pubkey    []byte `protobuf:"bytes,2,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	Signature []byte `protobuf:"bytes,3,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (s *StdSignature) Reset()         { *s = StdSignature{} }
func (s *StdSignature) String() string { return proto.CompactTextString(s) }
func (*StdSignature) ProtoMessage()    {}

// Validate ensures the signature is well formed
func (s *StdSignature) Validate() error {
	if s.Sequence < 0 {
		return errors.Wrap(ErrInvalidSequence, "negative sequence")
	}
	if err := crypto.PublicKey(s.Pubkey).Validate(); err != nil {
		return errors.Wrap(err, "pubkey")
	}
	if len(s.Signature) == 0 {
		return errors.Wrap(errors.ErrEmpty, "signature")
	}
	return nil
}

// BuildSignBytes combines the message with the chain id and sequence
// to form the payload that is actually signed. Binding the chain id
// and sequence into the digest is what makes a committed signature
// worthless on another chain or a second time on this one.
func BuildSignBytes(signBytes []byte, chainID string, seq int64) ([]byte, error) {
	if seq < 0 {
		return nil, errors.Wrap(ErrInvalidSequence, "negative sequence")
	}
	if chainID == "" {
		return nil, errors.Wrap(errors.ErrEmpty, "chain id")
	}

	// encode nonce as 8 byte, big-endian
	nonce := make([]byte, 8)
	binary.BigEndian.PutUint64(nonce, uint64(seq))

	output := sha256.New()
	output.Write(signBytes)
	output.Write([]byte(chainID))
	output.Write(nonce)
	return output.Sum(nil), nil
}

// VerifyTxSignatures checks all the signatures on the tx, which must
// have at least one. It returns a list of the conditions authorized
// by the valid signatures and updates the sequence for every signer.
func VerifyTxSignatures(db custos.KVStore, tx SignedTx, chainID string) ([]custos.Condition, error) {
	bucket := NewBucket()

	raw, err := tx.GetSignBytes()
	if err != nil {
		return nil, errors.Wrap(err, "cannot get sign bytes")
	}

	sigs := tx.GetSignatures()
	if len(sigs) == 0 {
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing signatures")
	}

	signers := make([]custos.Condition, 0, len(sigs))
	for _, sig := range sigs {
		if err := sig.Validate(); err != nil {
			return nil, err
		}
		pub := crypto.PublicKey(sig.Pubkey)

		user, err := GetOrCreateUser(db, bucket, pub)
		if err != nil {
			return nil, err
		}
		if err := user.CheckAndIncrementSequence(sig.Sequence); err != nil {
			return nil, err
		}

		toSign, err := BuildSignBytes(raw, chainID, sig.Sequence)
		if err != nil {
			return nil, err
		}
		if !pub.Verify(toSign, sig.Signature) {
			return nil, errors.Wrap(errors.ErrUnauthorized, "invalid signature")
		}

		obj := orm.NewSimpleObj(pub.Address(), user)
		if err := bucket.Save(db, obj); err != nil {
			return nil, err
		}
		signers = append(signers, pub.Condition())
	}

	return signers, nil
}

// SignTx creates a signature for the given transaction, using the
// current sequence of the signer.
func SignTx(signer crypto.Signer, tx SignedTx, chainID string, seq int64) (*StdSignature, error) {
	raw, err := tx.GetSignBytes()
	if err != nil {
		return nil, errors.Wrap(err, "cannot get sign bytes")
	}
	toSign, err := BuildSignBytes(raw, chainID, seq)
	if err != nil {
		return nil, err
	}
	sig, err := signer.Sign(toSign)
	if err != nil {
		return nil, err
	}
	return &StdSignature{
		Sequence:  seq,
		Pubkey:    signer.PublicKey(),
		Signature: sig,
	}, nil
}
