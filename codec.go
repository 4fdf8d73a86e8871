package base26

import (
	"fmt"
	"math"
	"math/bits"
)

type codec struct {
	overflow OverflowPolicy
	log      Logger
	hooks    Hooks
}

var _ Codec = (*codec)(nil)

func newCodec(opts Options) (*codec, error) {
	switch opts.Overflow {
	case OverflowFail, OverflowWrap, OverflowSaturate:
	default:
		return nil, fmt.Errorf("base26: unknown overflow policy %v", opts.Overflow)
	}
	return &codec{
		overflow: opts.Overflow,
		log:      coalesce[Logger](opts.Logger, NopLogger{}),
		hooks:    coalesce[Hooks](opts.Hooks, NopHooks{}),
	}, nil
}

func (c *codec) Encode(n uint64) string { return Encode(n) }

func (c *codec) AppendEncode(dst []byte, n uint64) []byte { return AppendEncode(dst, n) }

// Decode evaluates s left to right as acc = acc*26 + digit. Under OverflowFail
// the first failure wins: an invalid character past the overflow point is not reported.
func (c *codec) Decode(s string) (uint64, error) {
	var (
		acc      uint64
		overflow bool
	)
	for i, r := range s {
		if r < 'a' || r > 'z' {
			c.log.Debug("decode rejected (invalid character)", Fields{"pos": i, "char": string(r), "len": len(s)})
			c.hooks.DecodeRejected("invalid_char", len(s))
			return 0, &DecodeError{Pos: i, Char: r, Err: ErrInvalidChar}
		}
		d := uint64(r-'a') + 1

		if overflow {
			// result already decided by the policy; keep validating the tail
			if c.overflow == OverflowWrap {
				acc = acc*26 + d
			}
			continue
		}

		hi, lo := bits.Mul64(acc, 26)
		sum, carry := bits.Add64(lo, d, 0)
		if hi == 0 && carry == 0 {
			acc = sum
			continue
		}

		switch c.overflow {
		case OverflowWrap:
			acc = sum
		case OverflowSaturate:
			acc = math.MaxUint64
		default:
			c.log.Debug("decode rejected (overflow)", Fields{"pos": i, "len": len(s)})
			c.hooks.DecodeRejected("overflow", len(s))
			return 0, &DecodeError{Pos: i, Char: r, Err: ErrOverflow}
		}
		overflow = true
	}

	if overflow {
		c.log.Warn("decode overflowed uint64", Fields{"policy": c.overflow.String(), "len": len(s), "value": acc})
		c.hooks.OverflowHandled(c.overflow.String(), len(s))
	}
	return acc, nil
}
