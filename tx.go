package custos

import (
	"reflect"

	"github.com/custos-chain/custos/errors"
	"github.com/gogo/protobuf/proto"
)

// Msg is a request for the engine to take an action (make a state
// transition). It is just the request, and must be validated by the
// Handlers. All authentication information is in the wrapping Tx.
type Msg interface {
	proto.Message

	// Validate performs stateless sanity checks on the message
	// content. Stateful checks belong to the handler.
	Validate() error

	// Path returns the message path.
	// This is used by the Router to locate the proper Handler. Msg
	// should be created alongside the Handler that corresponds to it.
	//
	// Must be alphanumeric [0-9A-Za-z_/]+
	Path() string
}

// Marshaller is anything that can be represented in binary.
//
// Marshal may validate the data before serializing it and unless you
// previously validated the struct, errors should be expected.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal.
//
// This is separated from Marshaller, as this almost always requires a
// pointer, and functions that only need to marshal bytes can use the
// Marshaller interface to access non-pointers.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Tx represents the data sent from the user to the engine. It includes
// the actual message, along with information needed to authenticate
// the sender (cryptographic signatures) and anything else needed to
// pass through middleware.
type Tx interface {
	Persistent

	// GetMsg returns the action we wish to communicate
	GetMsg() (Msg, error)
}

// GetPath returns the path of the message, or (missing) if no message
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// TxDecoder can parse bytes into a Tx
type TxDecoder func(txBytes []byte) (Tx, error)

// LoadMsg extracts the message from the transaction, ensures it is
// valid and assigns it to the destination. Destination must be a non
// nil pointer to a message of the same type the transaction carries.
func LoadMsg(tx Tx, destination Msg) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get message")
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}

	d := reflect.ValueOf(destination)
	if d.Kind() != reflect.Ptr || d.IsNil() {
		return errors.Wrap(errors.ErrType, "destination must be a non nil pointer")
	}
	m := reflect.ValueOf(msg)
	if m.Kind() == reflect.Ptr {
		m = m.Elem()
	}
	if !m.Type().AssignableTo(d.Elem().Type()) {
		return errors.Wrapf(errors.ErrType, "cannot assign %T message to %T destination", msg, destination)
	}
	d.Elem().Set(m)
	return nil
}
