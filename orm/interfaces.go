package orm

import (
	"github.com/gogo/protobuf/proto"
)

// Model is implemented by any entity that can be stored in a Bucket.
// Serialization goes through the protobuf codec, validation is the
// model's own business.
type Model interface {
	proto.Message
	Validate() error
}

// Object wraps a key and a Model value, the unit a Bucket stores.
type Object interface {
	// Key returns the key to store the object under
	Key() []byte
	// Value gets the value stored in the object
	Value() Model

	// SetKey may be used to update the object key
	SetKey([]byte)
	// Validate makes sure the fields aren't empty and the value is
	// consistent.
	Validate() error
	// Clone makes a deep, independent copy
	Clone() Object
}
