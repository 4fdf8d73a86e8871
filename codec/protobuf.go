package codec

import (
	"github.com/unkn0wn-root/base26"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Protobuf is a Codec for proto messages. Numerals travel inside messages as
// their letter form; see NumeralMessage and MessageNumeral.
type Protobuf[T proto.Message] struct {
	new func() T // constructor for a concrete message (e.g., func() *wrapperspb.StringValue { return &wrapperspb.StringValue{} })
}

func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return proto.Marshal(v)
}
func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.new()
	err := proto.Unmarshal(b, m)
	return m, err
}

// NumeralMessage wraps the letters of n in a StringValue.
func NumeralMessage(n base26.Numeral) *wrapperspb.StringValue {
	return wrapperspb.String(n.String())
}

// MessageNumeral parses the letters held by m. A nil message is 0.
func MessageNumeral(m *wrapperspb.StringValue) (base26.Numeral, error) {
	return base26.ParseNumeral(m.GetValue())
}

// ProtoLetters stores a uint64 as a serialized StringValue of its letters.
type ProtoLetters struct{}

var _ Codec[uint64] = ProtoLetters{}

func (ProtoLetters) Encode(n uint64) ([]byte, error) {
	return proto.Marshal(NumeralMessage(base26.Numeral(n)))
}

func (ProtoLetters) Decode(b []byte) (uint64, error) {
	m := new(wrapperspb.StringValue)
	if err := proto.Unmarshal(b, m); err != nil {
		return 0, err
	}
	n, err := MessageNumeral(m)
	return uint64(n), err
}
