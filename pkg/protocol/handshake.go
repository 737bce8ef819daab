package protocol

import (
	"bytes"

	"github.com/quartzmc/quartzd/pkg/codec"
)

// Handshake is the sole Handshake-state packet; NextState selects whether
// the framer switches to Status (1) or Login (2).
type Handshake struct {
	ProtocolVersion int32
	ServerAddress   string
	ServerPort      uint16
	NextState       int32
}

// DecodeHandshake reads a Handshake body.
func DecodeHandshake(data []byte) (Handshake, error) {
	r := bytes.NewReader(data)
	var h Handshake
	var err error
	if h.ProtocolVersion, err = codec.ReadVarInt(r); err != nil {
		return h, err
	}
	if h.ServerAddress, err = codec.ReadString(r); err != nil {
		return h, err
	}
	if h.ServerPort, err = codec.ReadUint16(r); err != nil {
		return h, err
	}
	if h.NextState, err = codec.ReadVarInt(r); err != nil {
		return h, err
	}
	return h, CheckFullyConsumed(r)
}
