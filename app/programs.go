package app

import (
	"github.com/custos-chain/custos"
	"github.com/custos-chain/custos/errors"
)

// ProgramRouter maps program addresses to the Program registered at
// that address. It is the dispatch point for delegated calls: the
// caller asserts a target address and the router runs whatever lives
// there, or fails with not found.
type ProgramRouter struct {
	programs map[string]custos.Program
}

// NewProgramRouter initializes a program router with no programs
func NewProgramRouter() *ProgramRouter {
	return &ProgramRouter{
		programs: make(map[string]custos.Program),
	}
}

// RegisterProgram adds a program under the given address. Panics on a
// duplicate address, as this is a programming error.
func (r *ProgramRouter) RegisterProgram(addr custos.Address, p custos.Program) {
	if err := addr.Validate(); err != nil {
		panic("invalid program address: " + addr.String())
	}
	key := string(addr)
	if _, ok := r.programs[key]; ok {
		panic("re-registering program: " + addr.String())
	}
	r.programs[key] = p
}

// Execute runs the program registered at the target address with the
// given payload and account list. Authorization context travels on
// ctx.
func (r *ProgramRouter) Execute(ctx custos.Context, db custos.KVStore, target custos.Address, payload []byte, accounts []custos.Address) error {
	p, ok := r.programs[string(target)]
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "no program at %s", target)
	}
	return p.Execute(ctx, db, payload, accounts)
}
