package protocol

import (
	"bytes"
	"encoding/json"

	"github.com/quartzmc/quartzd/pkg/codec"
)

// StatusVersion is the version sub-object of a status response.
type StatusVersion struct {
	Name     string `json:"name"`
	Protocol int    `json:"protocol"`
}

// StatusSamplePlayer is one entry in a status response's optional player sample.
type StatusSamplePlayer struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// StatusPlayers is the players sub-object of a status response.
type StatusPlayers struct {
	Max    int                  `json:"max"`
	Online int                  `json:"online"`
	Sample []StatusSamplePlayer `json:"sample,omitempty"`
}

// StatusResponseDoc is the full JSON document served for a Status request,
// per §6: version, player counts, a chat description, and an optional
// base64 favicon data URI.
type StatusResponseDoc struct {
	Version     StatusVersion `json:"version"`
	Players     StatusPlayers `json:"players"`
	Description interface{}   `json:"description"`
	Favicon     string        `json:"favicon,omitempty"`
}

// EncodeStatusResponse marshals doc and builds the Status Response packet.
func EncodeStatusResponse(doc StatusResponseDoc) (Packet, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return Packet{}, err
	}
	return Build(StatusResponse, func(w *bytes.Buffer) {
		codec.WriteString(w, string(body))
	}), nil
}

// DecodeStatusPing reads the 64-bit payload of a Status Ping, to be echoed
// verbatim in the Pong.
func DecodeStatusPing(data []byte) (int64, error) {
	r := bytes.NewReader(data)
	v, err := codec.ReadInt64(r)
	if err != nil {
		return 0, err
	}
	return v, CheckFullyConsumed(r)
}

// EncodeStatusPong builds the Status Pong packet echoing payload.
func EncodeStatusPong(payload int64) Packet {
	return Build(StatusPong, func(w *bytes.Buffer) {
		codec.WriteInt64(w, payload)
	})
}
