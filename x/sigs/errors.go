package sigs

import (
	"github.com/custos-chain/custos/errors"
)

// sigs reserves 1000-1009
var (
	// ErrInvalidSequence is returned when the sequence of a signature
	// does not match the expected next value for the signer.
	ErrInvalidSequence = errors.Register(1000, "invalid sequence")
)
