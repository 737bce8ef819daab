package protocol

import (
	"bytes"
	"testing"

	"github.com/quartzmc/quartzd/pkg/codec"
)

func TestDecodeLoginStart(t *testing.T) {
	var buf bytes.Buffer
	codec.WriteString(&buf, "Notch")

	name, err := DecodeLoginStart(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeLoginStart: %v", err)
	}
	if name != "Notch" {
		t.Errorf("got %q, want Notch", name)
	}
}

func TestEncodeLoginSuccess(t *testing.T) {
	pkt := EncodeLoginSuccess("069a79f4-44e9-4726-a5be-fca90e38aaf5", "Notch")
	if pkt.ID != LoginSuccess {
		t.Fatalf("got id %d, want %d", pkt.ID, LoginSuccess)
	}

	r := pkt.Reader()
	id, err := codec.ReadString(r)
	if err != nil {
		t.Fatalf("ReadString(id): %v", err)
	}
	name, err := codec.ReadString(r)
	if err != nil {
		t.Fatalf("ReadString(name): %v", err)
	}
	if id != "069a79f4-44e9-4726-a5be-fca90e38aaf5" || name != "Notch" {
		t.Errorf("got id=%q name=%q", id, name)
	}
}

func TestEncodeSetCompression(t *testing.T) {
	pkt := EncodeSetCompression(256)
	got, err := codec.ReadVarInt(pkt.Reader())
	if err != nil {
		t.Fatalf("ReadVarInt: %v", err)
	}
	if got != 256 {
		t.Errorf("got %d, want 256", got)
	}
}
