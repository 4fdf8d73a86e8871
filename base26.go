package base26

import (
	"cmp"
	"strings"
)

// MaxLen is the length of the longest encoding of a uint64 (Encode(math.MaxUint64)).
const MaxLen = 14

var std = &codec{overflow: OverflowFail, log: NopLogger{}, hooks: NopHooks{}}

// Encode returns the bijective base-26 form of n. Encode(0) is "".
func Encode(n uint64) string {
	var buf [MaxLen]byte
	i := fill(&buf, n)
	return string(buf[i:])
}

// AppendEncode appends the encoding of n to dst and returns the extended buffer.
func AppendEncode(dst []byte, n uint64) []byte {
	var buf [MaxLen]byte
	i := fill(&buf, n)
	return append(dst, buf[i:]...)
}

// fill writes the digits of n least-significant first from the end of buf and
// returns the index of the most significant one.
func fill(buf *[MaxLen]byte, n uint64) int {
	i := len(buf)
	for n > 0 {
		n-- // shift digit values 1..26 down to 0..25
		i--
		buf[i] = 'a' + byte(n%26)
		n /= 26
	}
	return i
}

// Len returns len(Encode(n)) without allocating.
func Len(n uint64) int {
	l := 0
	for n > 0 {
		n = (n - 1) / 26
		l++
	}
	return l
}

// Decode parses s with the default codec: any character outside 'a'..'z' fails
// with ErrInvalidChar, values above 2^64-1 fail with ErrOverflow. Decode("") is 0.
//
// The scan stops at the first failure from the left. Once the value has
// overflowed, later characters are not inspected, so "zzzzzzzzzzzzzz1" reports
// ErrOverflow rather than ErrInvalidChar.
func Decode(s string) (uint64, error) {
	return std.Decode(s)
}

// Valid reports whether s consists only of 'a'..'z'. Valid("") is true.
// It does not check the value against the uint64 range.
func Valid(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// Compare orders two encodings the way their values are ordered: shorter
// strings first, equal lengths byte by byte. The result is -1, 0 or +1.
func Compare(a, b string) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
