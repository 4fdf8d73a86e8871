// Package base26 implements a bijective base-26 numeral codec. A non-negative
// integer is rendered as lowercase letters where each digit carries a value in
// 1..26, so there is no zero digit and no leading-zero ambiguity:
//
//	0   -> ""
//	1   -> "a"
//	26  -> "z"
//	27  -> "aa"
//	702 -> "zz"
//	703 -> "aaa"
//
// This is the numbering used for spreadsheet column names, shifted to lower case.
// Every uint64 has exactly one encoding and every string of 'a'..'z' that fits
// in a uint64 decodes to exactly one value.
//
// Components:
//   - Encode/Decode: package-level pair backed by a default Codec.
//   - Codec: configured via Options (overflow policy, Logger, Hooks).
//   - Numeral: uint64 that serializes as its letter form (text, JSON, CBOR, msgpack).
//
// Overflow:
//
//	Decode("zzzzzzzzzzzzzz") // ErrOverflow with the default codec
//	c, _ := base26.New(base26.Options{Overflow: base26.OverflowWrap})
//	c.Decode("zzzzzzzzzzzzzz") // wraps modulo 2^64
package base26
