package escrow

import (
	"github.com/custos-chain/custos/errors"
)

var (
	// ErrAddressMismatch is returned when a supplied record or vault
	// address does not match the one re-derived from the seed.
	ErrAddressMismatch = errors.Register(1200, "address mismatch")

	// ErrExternalCall is returned when a delegated call into another
	// program failed.
	ErrExternalCall = errors.Register(1201, "external call failed")
)
