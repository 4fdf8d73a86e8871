package codec

import "github.com/unkn0wn-root/base26"

// Letters is a Codec[uint64] that stores the value as its base-26 letters.
// The zero value decodes with base26.Decode; set Codec to use another
// overflow policy.
type Letters struct {
	Codec base26.Codec
}

var _ Codec[uint64] = Letters{}

func (l Letters) Encode(n uint64) ([]byte, error) {
	return base26.AppendEncode(nil, n), nil
}

func (l Letters) Decode(b []byte) (uint64, error) {
	if l.Codec != nil {
		return l.Codec.Decode(string(b))
	}
	return base26.Decode(string(b))
}
