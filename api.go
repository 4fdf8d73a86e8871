package base26

import "fmt"

// OverflowPolicy selects what Decode does when the input is worth more than 2^64-1.
type OverflowPolicy int

const (
	OverflowFail     OverflowPolicy = iota // return ErrOverflow (default)
	OverflowWrap                           // wrap modulo 2^64, like native uint64 arithmetic
	OverflowSaturate                       // clamp to 2^64-1
)

func (p OverflowPolicy) String() string {
	switch p {
	case OverflowFail:
		return "fail"
	case OverflowWrap:
		return "wrap"
	case OverflowSaturate:
		return "saturate"
	default:
		return fmt.Sprintf("OverflowPolicy(%d)", int(p))
	}
}

// Codec converts between uint64 values and bijective base-26 strings.
// Implementations returned by New are immutable and safe for concurrent use.
type Codec interface {
	Encode(n uint64) string
	AppendEncode(dst []byte, n uint64) []byte
	Decode(s string) (uint64, error)
}

// Options tune a Codec. The zero value is the default codec used by the
// package-level functions.
type Options struct {
	Overflow OverflowPolicy // default OverflowFail
	Logger   Logger         // if nil, NopLogger is used
	Hooks    Hooks          // if nil, NopHooks is used
}

func New(opts Options) (Codec, error) {
	return newCodec(opts)
}
