package codec

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/unkn0wn-root/base26"
)

// maxNesting bounds decode depth. Numeral payloads are flat records, so deep
// nesting only shows up in hostile input.
const maxNesting = 16

// CBOR is a Codec that serializes values using fxamacker/cbor.
// The zero value is NOT ready to use. Construct with NewCBOR or MustCBOR.
//
// Use deterministic=true for canonical encoding (RFC 8949 Core Deterministic)
// when outputs must be byte-for-byte stable, e.g. for hashing.
// Otherwise PreferredUnsortedEncOptions are used.
//
// Decoding rejects duplicate map keys, so a record cannot carry two values
// for the same column, and nesting deeper than maxNesting.
type CBOR[V any] struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var _ Codec[struct{}] = CBOR[struct{}]{}

// NewCBOR constructs a CBOR codec.
//   - Deterministic is true, uses CoreDetEncOptions (RFC 8949).
//   - Otherwise uses PreferredUnsortedEncOptions.
func NewCBOR[V any](deterministic bool) (CBOR[V], error) {
	var eo cbor.EncOptions
	if deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}

	em, err := eo.EncMode()
	if err != nil {
		return CBOR[V]{}, err
	}
	dm, err := cbor.DecOptions{
		DupMapKey:       cbor.DupMapKeyEnforcedAPF,
		MaxNestedLevels: maxNesting,
		UTF8:            cbor.UTF8RejectInvalid,
	}.DecMode()
	if err != nil {
		return CBOR[V]{}, err
	}
	return CBOR[V]{enc: em, dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error.
// Handy for package-level variables in tests/examples.
func MustCBOR[V any](deterministic bool) CBOR[V] {
	c, err := NewCBOR[V](deterministic)
	if err != nil {
		panic(err)
	}
	return c
}

func (c CBOR[V]) Encode(v V) ([]byte, error) {
	return c.enc.Marshal(v)
}

func (c CBOR[V]) Decode(b []byte) (V, error) {
	var v V
	err := c.dec.Unmarshal(b, &v)
	return v, err
}

// CBORLetters stores a uint64 as a CBOR text string of its letters.
type CBORLetters struct {
	c CBOR[base26.Numeral]
}

var _ Codec[uint64] = CBORLetters{}

func NewCBORLetters() (CBORLetters, error) {
	c, err := NewCBOR[base26.Numeral](true)
	if err != nil {
		return CBORLetters{}, err
	}
	return CBORLetters{c: c}, nil
}

func (l CBORLetters) Encode(n uint64) ([]byte, error) { return l.c.Encode(base26.Numeral(n)) }
func (l CBORLetters) Decode(b []byte) (uint64, error) {
	n, err := l.c.Decode(b)
	return uint64(n), err
}
