package framer

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zlib"

	"github.com/quartzmc/quartzd/pkg/codec"
)

func TestRoundTripUncompressed(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	body := []byte{1, 2, 3, 4}
	if err := w.WritePacket(5, body); err != nil {
		t.Fatalf("WritePacket: %v", err)
	}

	r := NewReader(&buf)
	f, err := r.ReadPacket()
	if err != nil {
		t.Fatalf("ReadPacket: %v", err)
	}
	if f.ID != 5 || !bytes.Equal(f.Body, body) {
		t.Errorf("got %+v", f)
	}
}

func TestRoundTripCompressedAboveThreshold(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.SetThreshold(8)
	body := bytes.Repeat([]byte{0x42}, 64)
	if err := w.WritePacket(9, body); err != nil {
		t.Fatalf("WritePacket: %v", err)
	}

	r := NewReader(&buf)
	r.SetThreshold(8)
	f, err := r.ReadPacket()
	if err != nil {
		t.Fatalf("ReadPacket: %v", err)
	}
	if f.ID != 9 || !bytes.Equal(f.Body, body) {
		t.Errorf("got id=%d len(body)=%d", f.ID, len(f.Body))
	}
}

func TestRoundTripBelowThresholdStaysUncompressed(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.SetThreshold(256)
	body := []byte{9, 9, 9}
	if err := w.WritePacket(2, body); err != nil {
		t.Fatalf("WritePacket: %v", err)
	}

	r := NewReader(&buf)
	r.SetThreshold(256)
	f, err := r.ReadPacket()
	if err != nil {
		t.Fatalf("ReadPacket: %v", err)
	}
	if f.ID != 2 || !bytes.Equal(f.Body, body) {
		t.Errorf("got %+v", f)
	}
}

func TestReadPacketRejectsOversizeFrame(t *testing.T) {
	var buf bytes.Buffer
	if err := writeRawVarIntLen(&buf, MaxFrameLength+1); err != nil {
		t.Fatal(err)
	}
	r := NewReader(&buf)
	if _, err := r.ReadPacket(); err != ErrFrameTooLarge {
		t.Errorf("err = %v, want ErrFrameTooLarge", err)
	}
}

// TestReadPacketRejectsResidualCompressedBytes builds a frame whose declared
// uncompressed length understates the zlib stream's actual content, and
// checks ReadPacket catches the mismatch instead of silently truncating.
func TestReadPacketRejectsResidualCompressedBytes(t *testing.T) {
	var id bytes.Buffer
	codec.WriteVarInt(&id, 9)
	full := append(id.Bytes(), bytes.Repeat([]byte{0x42}, 64)...)

	var zbuf bytes.Buffer
	zw := zlib.NewWriter(&zbuf)
	zw.Write(full)
	zw.Close()

	var body bytes.Buffer
	codec.WriteVarInt(&body, int32(len(full)-32)) // understate the real length
	body.Write(zbuf.Bytes())

	var frame bytes.Buffer
	codec.WriteVarInt(&frame, int32(body.Len()))
	frame.Write(body.Bytes())

	r := NewReader(&frame)
	r.SetThreshold(8)
	if _, err := r.ReadPacket(); err != ErrResidualBytes {
		t.Errorf("err = %v, want ErrResidualBytes", err)
	}
}

func writeRawVarIntLen(buf *bytes.Buffer, n int32) error {
	for {
		b := byte(n & 0x7F)
		n >>= 7
		if n != 0 {
			b |= 0x80
		}
		buf.WriteByte(b)
		if n == 0 {
			break
		}
	}
	return nil
}
