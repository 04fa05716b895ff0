package utils

import (
	"time"

	"github.com/custos-chain/custos"
)

// Logging is a decorator that reports the path, duration and outcome
// of every transaction through the logger carried on the context.
type Logging struct{}

var _ custos.Decorator = Logging{}

// NewLogging creates a logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Check logs the outcome of the check after passing it down the stack
func (l Logging) Check(ctx custos.Context, store custos.KVStore, tx custos.Tx, next custos.Checker) (*custos.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	l.log("check", ctx, tx, start, err)
	return res, err
}

// Deliver logs the outcome of the delivery after passing it down the
// stack
func (l Logging) Deliver(ctx custos.Context, store custos.KVStore, tx custos.Tx, next custos.Deliverer) (*custos.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	l.log("deliver", ctx, tx, start, err)
	return res, err
}

func (l Logging) log(call string, ctx custos.Context, tx custos.Tx, start time.Time, err error) {
	logger := custos.GetLogger(ctx)
	duration := time.Since(start)
	if err != nil {
		_ = logger.Log("call", call, "path", custos.GetPath(tx), "duration", duration, "err", err)
		return
	}
	_ = logger.Log("call", call, "path", custos.GetPath(tx), "duration", duration)
}
