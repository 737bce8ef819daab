package protocol

import (
	"bytes"

	"github.com/quartzmc/quartzd/pkg/codec"
)

// MetadataValueType selects one of the eight entity metadata value
// encodings, carried in the high 3 bits of a metadata header byte.
type MetadataValueType byte

const (
	MetadataByte MetadataValueType = iota
	MetadataShort
	MetadataInt
	MetadataFloat
	MetadataString
	MetadataSlot
	MetadataPosition // three int32s
	MetadataRotation // three float32s
)

// MetadataEntry is one key/value pair in an entity metadata stream.
type MetadataEntry struct {
	Index byte
	Type  MetadataValueType
	Value interface{} // int8, int16, int32, float32, string, Slot, [3]int32, [3]float32
}

// EncodeMetadata writes a full metadata stream: each entry as
// {header_byte, value}, terminated by header byte 127.
func EncodeMetadata(w *bytes.Buffer, entries []MetadataEntry) error {
	for _, e := range entries {
		header := byte(e.Type)<<5 | (e.Index & 0x1F)
		if err := codec.WriteUint8(w, header); err != nil {
			return err
		}
		if err := writeMetadataValue(w, e); err != nil {
			return err
		}
	}
	return codec.WriteUint8(w, 127)
}

func writeMetadataValue(w *bytes.Buffer, e MetadataEntry) error {
	switch e.Type {
	case MetadataByte:
		return codec.WriteInt8(w, e.Value.(int8))
	case MetadataShort:
		return codec.WriteInt16(w, e.Value.(int16))
	case MetadataInt:
		return codec.WriteInt32(w, e.Value.(int32))
	case MetadataFloat:
		return codec.WriteFloat32(w, e.Value.(float32))
	case MetadataString:
		return codec.WriteString(w, e.Value.(string))
	case MetadataSlot:
		return WriteSlot(w, e.Value.(Slot))
	case MetadataPosition:
		p := e.Value.([3]int32)
		for _, v := range p {
			if err := codec.WriteInt32(w, v); err != nil {
				return err
			}
		}
		return nil
	case MetadataRotation:
		p := e.Value.([3]float32)
		for _, v := range p {
			if err := codec.WriteFloat32(w, v); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}

// SneakingFlag is the 0x02 bit of the byte-0 "entity flags" metadata entry.
const SneakingFlag byte = 0x02

// EntityFlagsEntry builds the conventional index-0 byte metadata entry
// carrying the sneaking/on-fire/sprinting flag bitmask.
func EntityFlagsEntry(flags byte) MetadataEntry {
	return MetadataEntry{Index: 0, Type: MetadataByte, Value: int8(flags)}
}
