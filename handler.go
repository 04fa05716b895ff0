package custos

import (
	"encoding/json"
)

// Handler is a core engine that can process a few specific messages.
// This could represent "move tokens into escrow" or "release escrow".
type Handler interface {
	Checker
	Deliverer
}

// Checker is a subset of Handler to verify the validity of a
// transaction. It is its own interface to allow better type controls
// in the next arguments in Decorator.
type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer is a subset of Handler to execute a transaction. It is
// its own interface to allow better type controls in the next
// arguments in Decorator.
type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator wraps a Handler to provide common functionality like
// authentication or savepoints, to many Handlers.
type Decorator interface {
	Check(ctx Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// CheckerFunc adapts an ordinary function to the Checker interface.
type CheckerFunc func(Context, KVStore, Tx) (*CheckResult, error)

// Check calls the wrapped function.
func (f CheckerFunc) Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error) {
	return f(ctx, store, tx)
}

// DelivererFunc adapts an ordinary function to the Deliverer
// interface.
type DelivererFunc func(Context, KVStore, Tx) (*DeliverResult, error)

// Deliver calls the wrapped function.
func (f DelivererFunc) Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error) {
	return f(ctx, store, tx)
}

// Registry is an interface to register your handler, the setup side
// of a Router.
type Registry interface {
	Handle(path string, h Handler)
}

// CheckResult captures any non-error response from validating a
// transaction before execution.
type CheckResult struct {
	// Data is a machine-parseable return value, like the id of a
	// created entity.
	Data []byte
	// Log is a human-readable informational string
	Log string
	// GasAllocated is the maximum units of work we allow this tx to
	// perform.
	GasAllocated int64
}

// DeliverResult captures any non-error response from executing a
// transaction.
type DeliverResult struct {
	// Data is a machine-parseable return value, like the id of a
	// created entity.
	Data []byte
	// Log is a human-readable informational string
	Log string
	// GasUsed is the units of work performed by the transition
	GasUsed int64
}

// Options are the app options. Each extension can look up its key and
// parse the json as desired.
type Options map[string]json.RawMessage

// ReadOptions reads the values stored under a given key, and parses
// the json into the given obj. Returns an error if it cannot parse.
// Noop and no error if key is missing.
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	return json.Unmarshal(msg, obj)
}

// Initializer implementations are used to initialize extensions from
// genesis file contents.
type Initializer interface {
	FromGenesis(Options, KVStore) error
}

// Program is a routable unit of third-party logic that the escrow
// engine can delegate a call into. The payload is opaque to the
// engine; accounts is the ordered account list supplied by the
// caller. Authorization context travels on ctx.
type Program interface {
	Execute(ctx Context, store KVStore, payload []byte, accounts []Address) error
}
