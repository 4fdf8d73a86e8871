// Package codec provides byte codecs for values carrying base-26 numerals.
//
// base26.Numeral serializes as its letter form through JSON, Msgpack and CBOR,
// and travels in protobuf as a StringValue (NumeralMessage).
// For a bare uint64 there is one codec per format: Letters (raw letter bytes),
// JSONLetters, MsgpackLetters, CBORLetters and ProtoLetters.
package codec

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
