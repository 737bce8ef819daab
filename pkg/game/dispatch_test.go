package game

import (
	"bytes"
	"testing"

	"github.com/quartzmc/quartzd/pkg/codec"
	"github.com/quartzmc/quartzd/pkg/protocol"
	"github.com/quartzmc/quartzd/pkg/world"
)

func buildPacket(id int32, write func(w *bytes.Buffer)) protocol.Packet {
	return protocol.Build(id, write)
}

func TestHandleChatMessageBroadcasts(t *testing.T) {
	s := newTestServer()
	p, out := connectTestPlayer(s, "Steve", world.PlayerID{1})
	drainChannel(out)

	pkt := buildPacket(protocol.PlayClientChatMessage, func(w *bytes.Buffer) {
		codec.WriteString(w, "hello")
	})
	p.dispatch(s, pkt)

	select {
	case got := <-out:
		if got.ID != protocol.PlayServerChatMessage {
			t.Errorf("got id %d, want ChatMessage", got.ID)
		}
	default:
		t.Error("expected a chat broadcast")
	}
}

func TestHandleKeepAliveUpdatesPing(t *testing.T) {
	s := newTestServer()
	p, out := connectTestPlayer(s, "Steve", world.PlayerID{1})
	drainChannel(out)

	p.LastKeepAliveToken = 5
	pkt := buildPacket(protocol.PlayClientKeepAlive, func(w *bytes.Buffer) {
		codec.WriteVarInt(w, 5)
	})
	p.dispatch(s, pkt)

	select {
	case got := <-out:
		if got.ID != protocol.PlayServerPlayerListItem {
			t.Errorf("got id %d, want PlayerListItem (UpdateLatency)", got.ID)
		}
	default:
		t.Error("expected an UpdateLatency broadcast")
	}
}

func TestHandleKeepAliveIgnoresStaleToken(t *testing.T) {
	s := newTestServer()
	p, out := connectTestPlayer(s, "Steve", world.PlayerID{1})
	drainChannel(out)

	p.LastKeepAliveToken = 5
	pkt := buildPacket(protocol.PlayClientKeepAlive, func(w *bytes.Buffer) {
		codec.WriteVarInt(w, 999)
	})
	p.dispatch(s, pkt)

	select {
	case got := <-out:
		t.Errorf("expected no broadcast for a stale token, got id %d", got.ID)
	default:
	}
}

func TestHandleDiggingRequiresCreative(t *testing.T) {
	s := newTestServer()
	p, out := connectTestPlayer(s, "Steve", world.PlayerID{1})
	drainChannel(out)
	p.GameMode = 0 // survival

	pos := world.BlockPos{X: 0, Y: 4, Z: 0}
	before := s.World.GetBlock(pos)

	pkt := buildPacket(protocol.PlayClientPlayerDigging, func(w *bytes.Buffer) {
		codec.WriteUint8(w, 0)
		codec.WritePosition(w, pos.X, pos.Y, pos.Z)
		codec.WriteUint8(w, 1)
	})
	p.dispatch(s, pkt)

	if got := s.World.GetBlock(pos); got != before {
		t.Errorf("expected survival digging to leave the block unchanged, got %v", got)
	}
}

func TestHandleDiggingBreaksBlockInCreative(t *testing.T) {
	s := newTestServer()
	p, out := connectTestPlayer(s, "Steve", world.PlayerID{1})
	drainChannel(out)
	p.GameMode = 1 // creative

	pos := world.BlockPos{X: 0, Y: 4, Z: 0}
	pkt := buildPacket(protocol.PlayClientPlayerDigging, func(w *bytes.Buffer) {
		codec.WriteUint8(w, 0)
		codec.WritePosition(w, pos.X, pos.Y, pos.Z)
		codec.WriteUint8(w, 1)
	})
	p.dispatch(s, pkt)

	if got := s.World.GetBlock(pos); !got.IsAir() {
		t.Errorf("expected block broken to air, got %v", got)
	}
}

func TestHandleEntityActionTogglesSneaking(t *testing.T) {
	s := newTestServer()
	p, out := connectTestPlayer(s, "Steve", world.PlayerID{1})
	drainChannel(out)

	pkt := buildPacket(protocol.PlayClientEntityAction, func(w *bytes.Buffer) {
		codec.WriteVarInt(w, p.EntityID)
		codec.WriteVarInt(w, entityActionStartSneaking)
		codec.WriteVarInt(w, 0)
	})
	p.dispatch(s, pkt)

	if !p.Sneaking {
		t.Error("expected Sneaking set to true")
	}
}
