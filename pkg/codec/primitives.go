package codec

import (
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"
)

// ReadString reads a varint-length-prefixed UTF-8 string. The protocol
// bounds strings at 32767 UTF-16 code units; we bound the byte length
// generously at 4 bytes per unit, matching the wire spec's own slack.
func ReadString(r io.Reader) (string, error) {
	length, err := ReadVarInt(r)
	if err != nil {
		return "", err
	}
	if length < 0 || length > 32767*4 {
		return "", ErrStringTooLarge
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	if !utf8.Valid(buf) {
		return "", ErrInvalidUTF8
	}
	return string(buf), nil
}

// WriteString writes a varint-length-prefixed UTF-8 string.
func WriteString(w io.Writer, s string) error {
	if err := WriteVarInt(w, int32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

// ReadBool reads a boolean; any nonzero byte reads as true.
func ReadBool(r io.Reader) (bool, error) {
	b, err := ReadUint8(r)
	return b != 0, err
}

// WriteBool writes a boolean as 1 or 0.
func WriteBool(w io.Writer, v bool) error {
	if v {
		return WriteUint8(w, 1)
	}
	return WriteUint8(w, 0)
}

// ReadUint8 reads a single unsigned byte.
func ReadUint8(r io.Reader) (uint8, error) {
	var buf [1]byte
	_, err := io.ReadFull(r, buf[:])
	return buf[0], err
}

// WriteUint8 writes a single unsigned byte.
func WriteUint8(w io.Writer, v uint8) error {
	_, err := w.Write([]byte{v})
	return err
}

// ReadInt8 reads a signed byte.
func ReadInt8(r io.Reader) (int8, error) {
	v, err := ReadUint8(r)
	return int8(v), err
}

// WriteInt8 writes a signed byte.
func WriteInt8(w io.Writer, v int8) error {
	return WriteUint8(w, uint8(v))
}

// ReadUint16 reads a big-endian unsigned 16-bit integer.
func ReadUint16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

// WriteUint16 writes a big-endian unsigned 16-bit integer.
func WriteUint16(w io.Writer, v uint16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// ReadInt16 reads a big-endian signed 16-bit integer.
func ReadInt16(r io.Reader) (int16, error) {
	v, err := ReadUint16(r)
	return int16(v), err
}

// WriteInt16 writes a big-endian signed 16-bit integer.
func WriteInt16(w io.Writer, v int16) error {
	return WriteUint16(w, uint16(v))
}

// ReadInt32 reads a big-endian signed 32-bit integer.
func ReadInt32(r io.Reader) (int32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(buf[:])), nil
}

// WriteInt32 writes a big-endian signed 32-bit integer.
func WriteInt32(w io.Writer, v int32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(v))
	_, err := w.Write(buf[:])
	return err
}

// ReadInt64 reads a big-endian signed 64-bit integer.
func ReadInt64(r io.Reader) (int64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(buf[:])), nil
}

// WriteInt64 writes a big-endian signed 64-bit integer.
func WriteInt64(w io.Writer, v int64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	_, err := w.Write(buf[:])
	return err
}

// ReadFloat32 reads a big-endian IEEE-754 32-bit float.
func ReadFloat32(r io.Reader) (float32, error) {
	v, err := ReadInt32(r)
	return math.Float32frombits(uint32(v)), err
}

// WriteFloat32 writes a big-endian IEEE-754 32-bit float.
func WriteFloat32(w io.Writer, v float32) error {
	return WriteInt32(w, int32(math.Float32bits(v)))
}

// ReadFloat64 reads a big-endian IEEE-754 64-bit float.
func ReadFloat64(r io.Reader) (float64, error) {
	v, err := ReadInt64(r)
	return math.Float64frombits(uint64(v)), err
}

// WriteFloat64 writes a big-endian IEEE-754 64-bit float.
func WriteFloat64(w io.Writer, v float64) error {
	return WriteInt64(w, int64(math.Float64bits(v)))
}

// ReadByteArray reads a varint-length-prefixed byte slice.
func ReadByteArray(r io.Reader) ([]byte, error) {
	length, err := ReadVarInt(r)
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, ErrStringTooLarge
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// WriteByteArray writes a varint-length-prefixed byte slice.
func WriteByteArray(w io.Writer, b []byte) error {
	if err := WriteVarInt(w, int32(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}
