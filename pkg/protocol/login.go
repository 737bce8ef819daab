package protocol

import (
	"bytes"

	"github.com/quartzmc/quartzd/pkg/codec"
)

// DecodeLoginStart reads the username from a Login Start body.
func DecodeLoginStart(data []byte) (string, error) {
	r := bytes.NewReader(data)
	name, err := codec.ReadString(r)
	if err != nil {
		return "", err
	}
	return name, CheckFullyConsumed(r)
}

// EncodeLoginDisconnect builds a Login-state Disconnect packet carrying a
// JSON chat reason.
func EncodeLoginDisconnect(chatJSON string) Packet {
	return Build(LoginDisconnect, func(w *bytes.Buffer) {
		codec.WriteString(w, chatJSON)
	})
}

// EncodeSetCompression builds the compression-threshold-set packet.
func EncodeSetCompression(threshold int32) Packet {
	return Build(LoginSetCompression, func(w *bytes.Buffer) {
		codec.WriteVarInt(w, threshold)
	})
}

// EncodeLoginSuccess builds the Login Success packet carrying the player's
// hyphenated UUID string and username.
func EncodeLoginSuccess(uuidString, username string) Packet {
	return Build(LoginSuccess, func(w *bytes.Buffer) {
		codec.WriteString(w, uuidString)
		codec.WriteString(w, username)
	})
}
