/*
Package orm provides an easy to use db wrapper.

Break state space into prefixed sections called Buckets. Each bucket
contains only one type of object and has a primary key. All access is
by exact key; entity addresses in this engine are derived, never
sequential, so there are no secondary indexes or id sequences here.
*/
package orm

import (
	"fmt"
	"regexp"

	"github.com/custos-chain/custos"
	"github.com/custos-chain/custos/errors"
	"github.com/gogo/protobuf/proto"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Bucket is a generic holder that stores data as well as references
// to the value prototype used to parse it.
//
// This is a generic building block that should generally be embedded
// in a type-safe wrapper to ensure all data is the same type.
// Bucket is a prefixed subspace of the DB.
type Bucket struct {
	name   string
	prefix []byte
	proto  Object
}

// NewBucket creates a bucket to store data
func NewBucket(name string, proto Object) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}

	return Bucket{
		name:   name,
		prefix: append([]byte(name), ':'),
		proto:  proto,
	}
}

// Name returns the name of the bucket
func (b Bucket) Name() string {
	return b.name
}

// DBKey is the full key we store in the db, including prefix.
// We copy into a new array rather than use append, as we don't want
// consecutive calls to overwrite the same byte array.
func (b Bucket) DBKey(key []byte) []byte {
	l := len(b.prefix)
	out := make([]byte, l+len(key))
	copy(out, b.prefix)
	copy(out[l:], key)
	return out
}

// Get one element, returns nil Object and nil error on a miss.
func (b Bucket) Get(db custos.KVStore, key []byte) (Object, error) {
	dbkey := b.DBKey(key)
	bz := db.Get(dbkey)
	if bz == nil {
		return nil, nil
	}
	return b.Parse(key, bz)
}

// Has checks for the existence of the key without parsing the value.
func (b Bucket) Has(db custos.KVStore, key []byte) bool {
	return db.Has(b.DBKey(key))
}

// Parse takes a key and value data and reconstructs the data this
// Bucket would return.
//
// Used internally as part of Get. It is exposed mainly as a test
// helper, but can work for any code that wants to parse.
func (b Bucket) Parse(key, value []byte) (Object, error) {
	obj := b.proto.Clone()
	if err := proto.Unmarshal(value, obj.Value()); err != nil {
		return nil, errors.Wrap(err, "parse")
	}
	obj.SetKey(key)
	return obj, nil
}

// Save will write the object, along with the bucket prefix.
func (b Bucket) Save(db custos.KVStore, obj Object) error {
	if err := obj.Validate(); err != nil {
		return errors.Wrap(err, "invalid object")
	}

	bz, err := proto.Marshal(obj.Value())
	if err != nil {
		return errors.Wrap(err, "marshal object")
	}
	db.Set(b.DBKey(obj.Key()), bz)
	return nil
}

// Delete removes the value at the given key, if present. Deleting an
// absent key is a noop.
func (b Bucket) Delete(db custos.KVStore, key []byte) error {
	db.Delete(b.DBKey(key))
	return nil
}
