package base26

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidChar is returned when a decoded string contains anything but 'a'..'z'.
	ErrInvalidChar = errors.New("base26: invalid character")
	// ErrOverflow is returned when a decoded value does not fit in a uint64
	// and the codec uses OverflowFail.
	ErrOverflow = errors.New("base26: value overflows uint64")
)

// DecodeError describes where Decode stopped. Err is ErrInvalidChar or ErrOverflow.
type DecodeError struct {
	Pos  int  // byte offset into the input
	Char rune // offending rune; for overflow, the digit that pushed past 2^64-1
	Err  error
}

func (e *DecodeError) Error() string {
	switch {
	case errors.Is(e.Err, ErrInvalidChar):
		return fmt.Sprintf("%v %q at offset %d", e.Err, e.Char, e.Pos)
	case errors.Is(e.Err, ErrOverflow):
		return fmt.Sprintf("%v at offset %d", e.Err, e.Pos)
	default:
		return fmt.Sprintf("base26: decode failed at offset %d: %v", e.Pos, e.Err)
	}
}

func (e *DecodeError) Unwrap() error { return e.Err }
