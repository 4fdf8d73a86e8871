package codec

import (
	"encoding/json"

	"github.com/unkn0wn-root/base26"
)

// JSON is a Codec backed by encoding/json. The zero value is ready to use.
// base26.Numeral fields render as JSON strings of letters.
type JSON[V any] struct{}

var _ Codec[struct{}] = JSON[struct{}]{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}

// JSONLetters stores a uint64 as a JSON string of its letters: 28 -> "ab".
// JSON numbers are rejected on decode.
type JSONLetters struct{}

var _ Codec[uint64] = JSONLetters{}

func (JSONLetters) Encode(n uint64) ([]byte, error) { return json.Marshal(base26.Numeral(n)) }
func (JSONLetters) Decode(b []byte) (uint64, error) {
	var n base26.Numeral
	err := json.Unmarshal(b, &n)
	return uint64(n), err
}
