package app

import (
	"github.com/custos-chain/custos"
	"github.com/custos-chain/custos/x/sigs"
	"github.com/custos-chain/custos/x/utils"
)

// NewStack wires the standard middleware chain in front of the given
// handler, usually the message Router: request logging, a savepoint
// making every transition all or nothing, and signature verification.
//
// allowUnsigned relaxes the signature requirement for callers that
// authenticate through other means, such as test fixtures driving the
// handlers with a context authenticator.
func NewStack(h custos.Handler, allowUnsigned bool) custos.Handler {
	sd := sigs.NewDecorator()
	if allowUnsigned {
		sd = sd.AllowMissingSigs()
	}
	return ChainDecorators(
		utils.NewLogging(),
		utils.NewSavepoint().OnCheck().OnDeliver(),
		sd,
	).WithHandler(h)
}
