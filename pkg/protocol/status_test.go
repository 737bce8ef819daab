package protocol

import (
	"encoding/json"
	"testing"

	"github.com/quartzmc/quartzd/pkg/codec"
)

func TestEncodeStatusResponseRoundTrips(t *testing.T) {
	doc := StatusResponseDoc{
		Version:     StatusVersion{Name: VersionName, Protocol: ProtocolVersion},
		Players:     StatusPlayers{Max: 20, Online: 1},
		Description: map[string]string{"text": "A Quartz Server"},
	}
	pkt, err := EncodeStatusResponse(doc)
	if err != nil {
		t.Fatalf("EncodeStatusResponse: %v", err)
	}
	if pkt.ID != StatusResponse {
		t.Fatalf("got id %d, want %d", pkt.ID, StatusResponse)
	}

	body, err := codec.ReadString(pkt.Reader())
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	var got StatusResponseDoc
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Version.Protocol != ProtocolVersion || got.Players.Max != 20 {
		t.Errorf("got %+v", got)
	}
}

func TestStatusPingPongRoundTrips(t *testing.T) {
	pkt := EncodeStatusPong(123456789)
	if pkt.ID != StatusPong {
		t.Fatalf("got id %d, want %d", pkt.ID, StatusPong)
	}
	got, err := DecodeStatusPing(pkt.Data)
	if err != nil {
		t.Fatalf("DecodeStatusPing: %v", err)
	}
	if got != 123456789 {
		t.Errorf("got %d, want 123456789", got)
	}
}
