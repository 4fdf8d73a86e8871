package base26

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// Numeral is a uint64 that serializes as its bijective base-26 letters.
// It marshals as a string in text/JSON, CBOR and msgpack payloads.
// Parsing always uses the default codec, so out-of-range input fails.
type Numeral uint64

var (
	_ cbor.Marshaler        = Numeral(0)
	_ cbor.Unmarshaler      = (*Numeral)(nil)
	_ msgpack.CustomEncoder = Numeral(0)
	_ msgpack.CustomDecoder = (*Numeral)(nil)
)

// ParseNumeral is Decode returning a Numeral.
func ParseNumeral(s string) (Numeral, error) {
	v, err := Decode(s)
	return Numeral(v), err
}

func (n Numeral) String() string { return Encode(uint64(n)) }

func (n Numeral) MarshalText() ([]byte, error) {
	return AppendEncode(nil, uint64(n)), nil
}

func (n *Numeral) UnmarshalText(b []byte) error {
	v, err := ParseNumeral(string(b))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

func (n Numeral) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(n.String())
}

func (n *Numeral) UnmarshalCBOR(b []byte) error {
	var s string
	if err := cbor.Unmarshal(b, &s); err != nil {
		return err
	}
	return n.UnmarshalText([]byte(s))
}

func (n Numeral) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(n.String())
}

func (n *Numeral) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	return n.UnmarshalText([]byte(s))
}
