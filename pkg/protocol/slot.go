package protocol

import (
	"io"

	"github.com/quartzmc/quartzd/pkg/codec"
	"github.com/quartzmc/quartzd/pkg/nbt"
)

// Slot is an inventory slot: a signed short item id, and — when present
// (id >= 0) — a count, a damage value, and a named-tag tree (possibly
// empty), per §6.
type Slot struct {
	Present bool
	ID      int16
	Count   byte
	Damage  int16
	Tag     nbt.Tag // zero value (TagEnd) means "no tag"
}

// EmptySlot is the canonical empty slot (id -1, no payload).
var EmptySlot = Slot{ID: -1}

// ReadSlot decodes a slot from r.
func ReadSlot(r io.Reader) (Slot, error) {
	id, err := codec.ReadInt16(r)
	if err != nil {
		return Slot{}, err
	}
	if id < 0 {
		return Slot{ID: -1}, nil
	}
	count, err := codec.ReadUint8(r)
	if err != nil {
		return Slot{}, err
	}
	damage, err := codec.ReadInt16(r)
	if err != nil {
		return Slot{}, err
	}
	tag, err := nbt.Read(r)
	if err != nil {
		return Slot{}, err
	}
	return Slot{Present: true, ID: id, Count: count, Damage: damage, Tag: tag}, nil
}

// WriteSlot encodes a slot to w.
func WriteSlot(w io.Writer, s Slot) error {
	if !s.Present || s.ID < 0 {
		return codec.WriteInt16(w, -1)
	}
	if err := codec.WriteInt16(w, s.ID); err != nil {
		return err
	}
	if err := codec.WriteUint8(w, s.Count); err != nil {
		return err
	}
	if err := codec.WriteInt16(w, s.Damage); err != nil {
		return err
	}
	if s.Tag.Kind != nbt.KindCompound {
		return codec.WriteUint8(w, 0) // no tag: a lone TagEnd byte
	}
	return nbt.Write(w, "", s.Tag)
}
