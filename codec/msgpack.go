package codec

import (
	"github.com/unkn0wn-root/base26"
	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack is a Codec that serializes values using vmihailenco/msgpack/v5.
// The zero value is ready to use. base26.Numeral fields are msgpack strings.
//
// Use `msgpack:"fieldName"` tags if you need explicit control over field names.
type Msgpack[V any] struct{}

func (Msgpack[V]) Encode(v V) ([]byte, error) {
	return msgpack.Marshal(v)
}
func (Msgpack[V]) Decode(b []byte) (V, error) {
	var v V
	err := msgpack.Unmarshal(b, &v)
	return v, err
}

// MsgpackLetters stores a uint64 as a msgpack string of its letters.
type MsgpackLetters struct{}

var _ Codec[uint64] = MsgpackLetters{}

func (MsgpackLetters) Encode(n uint64) ([]byte, error) {
	return msgpack.Marshal(base26.Numeral(n))
}

func (MsgpackLetters) Decode(b []byte) (uint64, error) {
	var n base26.Numeral
	err := msgpack.Unmarshal(b, &n)
	return uint64(n), err
}
