// Package crypto provides the key material wrappers used to sign
// transactions and to express signers as conditions.
package crypto

import (
	"crypto/rand"

	"github.com/custos-chain/custos"
	"github.com/custos-chain/custos/errors"
	"golang.org/x/crypto/ed25519"
)

// Signer is implemented by anything that can author a signature for
// arbitrary bytes. Typically a private key, but may be backed by an
// external service.
type Signer interface {
	Sign(msg []byte) ([]byte, error)
	PublicKey() PublicKey
}

// PublicKey is an ed25519 public key.
type PublicKey []byte

// Condition encodes this public key as a signature condition. The
// derived address of this condition is the on-ledger identity of the
// key holder.
func (p PublicKey) Condition() custos.Condition {
	return custos.NewCondition("sigs", "ed25519", p)
}

// Address is a shortcut for Condition().Address()
func (p PublicKey) Address() custos.Address {
	return p.Condition().Address()
}

// Verify returns true iff the signature was produced by the matching
// private key over this message.
func (p PublicKey) Verify(msg, sig []byte) bool {
	if len(p) != ed25519.PublicKeySize || len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(p), msg, sig)
}

// Validate returns an error if this is not a possible public key.
func (p PublicKey) Validate() error {
	if len(p) != ed25519.PublicKeySize {
		return errors.Wrapf(errors.ErrInput, "invalid public key length %d", len(p))
	}
	return nil
}

// PrivateKey is an ed25519 private key kept in memory. Useful for
// tests and tooling, production deployments usually keep keys
// elsewhere.
type PrivateKey []byte

var _ Signer = PrivateKey{}

// GenPrivKeyEd25519 returns a random new private key.
func GenPrivKeyEd25519() PrivateKey {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		// random source is broken, there is no way to continue
		panic(err)
	}
	return PrivateKey(priv)
}

// Sign signs the given message with this key.
func (k PrivateKey) Sign(msg []byte) ([]byte, error) {
	if len(k) != ed25519.PrivateKeySize {
		return nil, errors.Wrapf(errors.ErrInput, "invalid private key length %d", len(k))
	}
	return ed25519.Sign(ed25519.PrivateKey(k), msg), nil
}

// PublicKey returns the public half of this key.
func (k PrivateKey) PublicKey() PublicKey {
	return PublicKey(ed25519.PrivateKey(k).Public().(ed25519.PublicKey))
}
