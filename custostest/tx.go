package custostest

import (
	"github.com/custos-chain/custos"
	"github.com/custos-chain/custos/errors"
	"github.com/gogo/protobuf/proto"
)

// Tx is a mock implementing custos.Tx interface. It wraps a single
// message and serializes through it.
type Tx struct {
	// Msg is the message this transaction is carrying.
	Msg custos.Msg

	// Err, if set, is returned by any method call.
	Err error
}

var _ custos.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (custos.Msg, error) {
	if tx.Err != nil {
		return nil, tx.Err
	}
	return tx.Msg, nil
}

func (tx *Tx) Marshal() ([]byte, error) {
	if tx.Err != nil {
		return nil, tx.Err
	}
	return proto.Marshal(tx.Msg)
}

func (tx *Tx) Unmarshal(raw []byte) error {
	if tx.Err != nil {
		return tx.Err
	}
	return proto.Unmarshal(raw, tx.Msg)
}

// Msg is a mock implementing custos.Msg interface. Marshaling uses the
// Serialized payload verbatim.
type Msg struct {
	// RoutePath is returned by Path.
	RoutePath string

	// Serialized represents the serialized form of this message.
	Serialized []byte

	// Err, if set, is returned by Marshal, Unmarshal and Validate.
	Err error
}

var _ custos.Msg = (*Msg)(nil)

func (m *Msg) Path() string { return m.RoutePath }

func (m *Msg) Marshal() ([]byte, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Serialized, nil
}

func (m *Msg) Unmarshal(raw []byte) error {
	if m.Err != nil {
		return m.Err
	}
	m.Serialized = raw
	return nil
}

func (m *Msg) Validate() error {
	if m.Err != nil {
		return errors.Wrap(m.Err, "invalid message")
	}
	return nil
}

func (m *Msg) Reset()         { *m = Msg{} }
func (m *Msg) String() string { return "custostest message" }
func (*Msg) ProtoMessage()    {}
