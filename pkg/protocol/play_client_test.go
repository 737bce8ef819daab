package protocol

import (
	"bytes"
	"testing"

	"github.com/quartzmc/quartzd/pkg/codec"
)

func TestDecodeClientKeepAlive(t *testing.T) {
	var buf bytes.Buffer
	codec.WriteVarInt(&buf, 42)

	got, err := DecodeClientKeepAlive(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeClientKeepAlive: %v", err)
	}
	if got.Token != 42 {
		t.Errorf("got %+v", got)
	}
}

func TestDecodeClientChatMessage(t *testing.T) {
	var buf bytes.Buffer
	codec.WriteString(&buf, "hello world")

	got, err := DecodeClientChatMessage(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeClientChatMessage: %v", err)
	}
	if got.Message != "hello world" {
		t.Errorf("got %+v", got)
	}
}

func TestDecodeClientPlayerPositionAndLook(t *testing.T) {
	var buf bytes.Buffer
	codec.WriteFloat64(&buf, 1.5)
	codec.WriteFloat64(&buf, 64.0)
	codec.WriteFloat64(&buf, -3.25)
	codec.WriteFloat32(&buf, 90.0)
	codec.WriteFloat32(&buf, -10.0)
	codec.WriteBool(&buf, true)

	got, err := DecodeClientPlayerPositionAndLook(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeClientPlayerPositionAndLook: %v", err)
	}
	want := ClientPlayerPositionAndLook{X: 1.5, Y: 64.0, Z: -3.25, Yaw: 90.0, Pitch: -10.0, OnGround: true}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestDecodeClientPlayerDiggingRejectsResidualBytes(t *testing.T) {
	var buf bytes.Buffer
	codec.WriteUint8(&buf, 0)
	codec.WritePosition(&buf, 1, 64, 1)
	codec.WriteUint8(&buf, 1)
	buf.WriteByte(0xAA)

	if _, err := DecodeClientPlayerDigging(buf.Bytes()); err != ErrPacketTooLarge {
		t.Errorf("got err=%v, want ErrPacketTooLarge", err)
	}
}

func TestDecodeClientPlayerBlockPlacement(t *testing.T) {
	var buf bytes.Buffer
	codec.WritePosition(&buf, 10, 65, -20)
	codec.WriteUint8(&buf, 1)
	if err := WriteSlot(&buf, EmptySlot); err != nil {
		t.Fatalf("WriteSlot: %v", err)
	}
	codec.WriteUint8(&buf, 8)
	codec.WriteUint8(&buf, 8)
	codec.WriteUint8(&buf, 8)

	got, err := DecodeClientPlayerBlockPlacement(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeClientPlayerBlockPlacement: %v", err)
	}
	if got.X != 10 || got.Y != 65 || got.Z != -20 || got.Face != 1 || got.HeldItem.Present {
		t.Errorf("got %+v", got)
	}
}

func TestDecodeClientUseEntityAttack(t *testing.T) {
	var buf bytes.Buffer
	codec.WriteVarInt(&buf, 7)
	codec.WriteVarInt(&buf, UseEntityAttack)

	got, err := DecodeClientUseEntity(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeClientUseEntity: %v", err)
	}
	if got.Target != 7 || got.Type != UseEntityAttack {
		t.Errorf("got %+v", got)
	}
}

func TestDecodeClientUseEntityInteractAtConsumesTargetVector(t *testing.T) {
	var buf bytes.Buffer
	codec.WriteVarInt(&buf, 7)
	codec.WriteVarInt(&buf, UseEntityInteractAt)
	codec.WriteFloat32(&buf, 0.5)
	codec.WriteFloat32(&buf, 1.0)
	codec.WriteFloat32(&buf, 0.5)

	got, err := DecodeClientUseEntity(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeClientUseEntity: %v", err)
	}
	if got.Target != 7 || got.Type != UseEntityInteractAt {
		t.Errorf("got %+v", got)
	}
}

func TestDecodeClientClientStatusRespawn(t *testing.T) {
	var buf bytes.Buffer
	codec.WriteVarInt(&buf, ClientStatusRespawn)

	got, err := DecodeClientClientStatus(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeClientClientStatus: %v", err)
	}
	if got.Action != ClientStatusRespawn {
		t.Errorf("got %+v", got)
	}
}

func TestDecodeClientEntityAction(t *testing.T) {
	var buf bytes.Buffer
	codec.WriteVarInt(&buf, 99)
	codec.WriteVarInt(&buf, 0)
	codec.WriteVarInt(&buf, 0)

	got, err := DecodeClientEntityAction(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeClientEntityAction: %v", err)
	}
	if got.EntityID != 99 || got.ActionID != 0 {
		t.Errorf("got %+v", got)
	}
}
