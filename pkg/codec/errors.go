// Package codec implements the primitive wire encodings shared by every
// packet in the catalogue: big-endian fixed-width numbers, LEB128-style
// varints/varlongs, length-prefixed strings, 128-bit identifiers, packed
// block positions, and the fixed-point/angle conversions used for entity
// movement.
package codec

import "errors"

// Sentinel errors for malformed input. Read failures never panic; they
// always surface as one of these (or a wrapped io error for short reads).
var (
	// ErrVarIntTooLarge is returned when a varint exceeds 5 bytes.
	ErrVarIntTooLarge = errors.New("codec: varint is too large")
	// ErrVarLongTooLarge is returned when a varlong exceeds 10 bytes.
	ErrVarLongTooLarge = errors.New("codec: varlong is too large")
	// ErrStringTooLarge is returned when a decoded string length is out of range.
	ErrStringTooLarge = errors.New("codec: string length out of range")
	// ErrInvalidUTF8 is returned when a decoded string is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("codec: invalid utf-8")
)
