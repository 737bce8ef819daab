// Package nbt implements the named-tag tree: a recursive, self-describing
// hierarchical data format used to carry structured item and block-entity
// data on the wire (compound tags embedded in slot payloads, sign/chest/
// furnace records, ...). Grounded on the tag-kind table nictuku/chunkymonkey's
// nbt package exposes, reshaped around typed accessors that fail loudly on
// a kind mismatch instead of silently coercing.
package nbt

import (
	"errors"
	"fmt"
	"io"

	"github.com/quartzmc/quartzd/pkg/codec"
)

// Kind identifies one of the twelve tag kinds.
type Kind byte

const (
	KindEnd       Kind = 0
	KindByte      Kind = 1
	KindShort     Kind = 2
	KindInt       Kind = 3
	KindLong      Kind = 4
	KindFloat     Kind = 5
	KindDouble    Kind = 6
	KindByteArray Kind = 7
	KindString    Kind = 8
	KindList      Kind = 9
	KindCompound  Kind = 10
	KindIntArray  Kind = 11
)

// maxNestLevel bounds compound/list recursion depth.
const maxNestLevel = 512

var (
	ErrInvalidKind         = errors.New("nbt: invalid tag id")
	ErrNegativeLength       = errors.New("nbt: negative-length array")
	ErrMaxNestLevelReached  = errors.New("nbt: max nest level reached")
	ErrRootNotCompound      = errors.New("nbt: root tag is not a compound")
	ErrFieldNotFound        = errors.New("nbt: field not found")
	ErrOutOfBounds          = errors.New("nbt: index out of bounds")
)

// KindMismatchError is returned by typed accessors when a field exists
// but holds a different kind than requested.
type KindMismatchError struct {
	Field    string
	Want     Kind
	Got      Kind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("nbt: field %q is kind %d, want kind %d", e.Field, e.Got, e.Want)
}

// Tag is any decoded NBT value. Compound and List hold their children as
// Tag values directly; the scalar kinds are plain Go types wrapped below.
type Tag struct {
	Kind       Kind
	Byte       int8
	Short      int16
	Int        int32
	Long       int64
	Float      float32
	Double     float64
	Str        string
	ByteArray  []byte
	IntArray   []int32
	List       []Tag
	ListKind   Kind
	Compound   map[string]Tag
}

// Compound constructs a compound tag from a field map.
func Compound(fields map[string]Tag) Tag {
	return Tag{Kind: KindCompound, Compound: fields}
}

// String constructs a string tag.
func String(s string) Tag { return Tag{Kind: KindString, Str: s} }

// Int constructs an int tag.
func Int(v int32) Tag { return Tag{Kind: KindInt, Int: v} }

// Short constructs a short tag.
func Short(v int16) Tag { return Tag{Kind: KindShort, Short: v} }

// Byte constructs a byte tag.
func Byte(v int8) Tag { return Tag{Kind: KindByte, Byte: v} }

// List constructs a list tag of the given element kind.
func List(kind Kind, items []Tag) Tag { return Tag{Kind: KindList, ListKind: kind, List: items} }

// Field looks up a named field of a compound, failing with a precise
// kind-mismatch error rather than coercing.
func (t Tag) Field(name string, want Kind) (Tag, error) {
	if t.Kind != KindCompound {
		return Tag{}, &KindMismatchError{Field: name, Want: KindCompound, Got: t.Kind}
	}
	v, ok := t.Compound[name]
	if !ok {
		return Tag{}, fmt.Errorf("%w: %q", ErrFieldNotFound, name)
	}
	if v.Kind != want {
		return Tag{}, &KindMismatchError{Field: name, Want: want, Got: v.Kind}
	}
	return v, nil
}

// Read decodes a root tag: either a single zero byte (empty tree) or a
// named compound (kind id 10 followed by its name and payload).
func Read(r io.Reader) (Tag, error) {
	kind, err := codec.ReadUint8(r)
	if err != nil {
		return Tag{}, err
	}
	if Kind(kind) == KindEnd {
		return Tag{Kind: KindCompound, Compound: map[string]Tag{}}, nil
	}
	if Kind(kind) != KindCompound {
		return Tag{}, ErrRootNotCompound
	}
	if _, err := readName(r); err != nil {
		return Tag{}, err
	}
	return readPayload(r, KindCompound, 0)
}

// Write encodes t as a root named compound tag with the given name (pass
// "" for the conventional empty root name). Writing an empty compound
// ({}) still emits the full id+name+terminator triplet, matching read/write
// symmetry for the non-trivial root case; callers that want the single
// zero-byte empty-tree encoding should write a literal 0 byte themselves.
func Write(w io.Writer, name string, t Tag) error {
	if t.Kind != KindCompound {
		return ErrRootNotCompound
	}
	if err := codec.WriteUint8(w, byte(KindCompound)); err != nil {
		return err
	}
	if err := writeName(w, name); err != nil {
		return err
	}
	return writePayload(w, t)
}

func readName(r io.Reader) (string, error) {
	length, err := codec.ReadUint16(r)
	if err != nil {
		return "", err
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func writeName(w io.Writer, name string) error {
	if err := codec.WriteUint16(w, uint16(len(name))); err != nil {
		return err
	}
	_, err := io.WriteString(w, name)
	return err
}

func readPayload(r io.Reader, kind Kind, depth int) (Tag, error) {
	if depth > maxNestLevel {
		return Tag{}, ErrMaxNestLevelReached
	}
	switch kind {
	case KindByte:
		v, err := codec.ReadInt8(r)
		return Tag{Kind: kind, Byte: v}, err
	case KindShort:
		v, err := codec.ReadInt16(r)
		return Tag{Kind: kind, Short: v}, err
	case KindInt:
		v, err := codec.ReadInt32(r)
		return Tag{Kind: kind, Int: v}, err
	case KindLong:
		v, err := codec.ReadInt64(r)
		return Tag{Kind: kind, Long: v}, err
	case KindFloat:
		v, err := codec.ReadFloat32(r)
		return Tag{Kind: kind, Float: v}, err
	case KindDouble:
		v, err := codec.ReadFloat64(r)
		return Tag{Kind: kind, Double: v}, err
	case KindByteArray:
		n, err := codec.ReadInt32(r)
		if err != nil {
			return Tag{}, err
		}
		if n < 0 {
			return Tag{}, ErrNegativeLength
		}
		buf := make([]byte, n)
		if _, err := io.ReadFull(r, buf); err != nil {
			return Tag{}, err
		}
		return Tag{Kind: kind, ByteArray: buf}, nil
	case KindIntArray:
		n, err := codec.ReadInt32(r)
		if err != nil {
			return Tag{}, err
		}
		if n < 0 {
			return Tag{}, ErrNegativeLength
		}
		ints := make([]int32, n)
		for i := range ints {
			ints[i], err = codec.ReadInt32(r)
			if err != nil {
				return Tag{}, err
			}
		}
		return Tag{Kind: kind, IntArray: ints}, nil
	case KindString:
		s, err := readName(r)
		return Tag{Kind: kind, Str: s}, err
	case KindList:
		elemKindByte, err := codec.ReadUint8(r)
		if err != nil {
			return Tag{}, err
		}
		elemKind := Kind(elemKindByte)
		n, err := codec.ReadInt32(r)
		if err != nil {
			return Tag{}, err
		}
		if n < 0 {
			n = 0
		}
		items := make([]Tag, 0, n)
		for i := int32(0); i < n; i++ {
			item, err := readPayload(r, elemKind, depth+1)
			if err != nil {
				return Tag{}, err
			}
			items = append(items, item)
		}
		return Tag{Kind: kind, ListKind: elemKind, List: items}, nil
	case KindCompound:
		fields := map[string]Tag{}
		for {
			idByte, err := codec.ReadUint8(r)
			if err != nil {
				return Tag{}, err
			}
			childKind := Kind(idByte)
			if childKind == KindEnd {
				break
			}
			if childKind > KindIntArray {
				return Tag{}, ErrInvalidKind
			}
			name, err := readName(r)
			if err != nil {
				return Tag{}, err
			}
			child, err := readPayload(r, childKind, depth+1)
			if err != nil {
				return Tag{}, err
			}
			fields[name] = child
		}
		return Tag{Kind: kind, Compound: fields}, nil
	default:
		return Tag{}, ErrInvalidKind
	}
}

func writePayload(w io.Writer, t Tag) error {
	switch t.Kind {
	case KindByte:
		return codec.WriteInt8(w, t.Byte)
	case KindShort:
		return codec.WriteInt16(w, t.Short)
	case KindInt:
		return codec.WriteInt32(w, t.Int)
	case KindLong:
		return codec.WriteInt64(w, t.Long)
	case KindFloat:
		return codec.WriteFloat32(w, t.Float)
	case KindDouble:
		return codec.WriteFloat64(w, t.Double)
	case KindByteArray:
		if err := codec.WriteInt32(w, int32(len(t.ByteArray))); err != nil {
			return err
		}
		_, err := w.Write(t.ByteArray)
		return err
	case KindIntArray:
		if err := codec.WriteInt32(w, int32(len(t.IntArray))); err != nil {
			return err
		}
		for _, v := range t.IntArray {
			if err := codec.WriteInt32(w, v); err != nil {
				return err
			}
		}
		return nil
	case KindString:
		return writeName(w, t.Str)
	case KindList:
		if err := codec.WriteUint8(w, byte(t.ListKind)); err != nil {
			return err
		}
		if err := codec.WriteInt32(w, int32(len(t.List))); err != nil {
			return err
		}
		for _, item := range t.List {
			if err := writePayload(w, item); err != nil {
				return err
			}
		}
		return nil
	case KindCompound:
		for name, child := range t.Compound {
			if err := codec.WriteUint8(w, byte(child.Kind)); err != nil {
				return err
			}
			if err := writeName(w, name); err != nil {
				return err
			}
			if err := writePayload(w, child); err != nil {
				return err
			}
		}
		return codec.WriteUint8(w, byte(KindEnd))
	default:
		return ErrInvalidKind
	}
}
