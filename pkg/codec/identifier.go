package codec

import (
	"io"

	"github.com/google/uuid"
)

// ReadIdentifier reads a 128-bit identifier. The wire format stores the
// 16 bytes in the reverse order of the canonical hyphenated form — a
// hard wire requirement, not a stylistic choice, so the bytes are
// un-reversed on the way in.
func ReadIdentifier(r io.Reader) (uuid.UUID, error) {
	var wire [16]byte
	if _, err := io.ReadFull(r, wire[:]); err != nil {
		return uuid.UUID{}, err
	}
	var id uuid.UUID
	for i := 0; i < 16; i++ {
		id[i] = wire[15-i]
	}
	return id, nil
}

// WriteIdentifier writes a 128-bit identifier with its bytes reversed
// relative to the canonical hyphenated form, per the wire requirement.
func WriteIdentifier(w io.Writer, id uuid.UUID) error {
	var wire [16]byte
	for i := 0; i < 16; i++ {
		wire[i] = id[15-i]
	}
	_, err := w.Write(wire[:])
	return err
}

// OfflineIdentifier derives the offline-mode player identifier: a
// version-3 (name-based, MD5) UUID in the URL namespace over the literal
// string "OfflinePlayer:<name>".
func OfflineIdentifier(name string) uuid.UUID {
	return uuid.NewMD5(uuid.NameSpaceURL, []byte("OfflinePlayer:"+name))
}
