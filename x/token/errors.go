package token

import (
	"github.com/custos-chain/custos/errors"
)

// token reserves 1100-1109
var (
	// ErrMintMismatch is returned when two accounts taking part in a
	// transfer are bound to different mints.
	ErrMintMismatch = errors.Register(1100, "mint mismatch")

	// ErrInsufficientFunds is returned when the source account balance
	// is lower than the requested transfer amount.
	ErrInsufficientFunds = errors.Register(1101, "insufficient funds")
)
