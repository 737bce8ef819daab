package game

import (
	"testing"

	"github.com/quartzmc/quartzd/pkg/protocol"
	"github.com/quartzmc/quartzd/pkg/world"
)

func TestPlayerBlockPosFloorsNegativeCoordinates(t *testing.T) {
	inbound := make(chan protocol.Packet, 1)
	outbound := make(chan protocol.Packet, 1)
	p := NewPlayer("Steve", world.PlayerID{}, inbound, outbound)

	p.X, p.Y, p.Z = -0.5, 64.0, -16.1
	got := p.BlockPos()
	want := world.BlockPos{X: -1, Y: 64, Z: -17}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestPlayerSendDeliversToOutbound(t *testing.T) {
	inbound := make(chan protocol.Packet, 1)
	outbound := make(chan protocol.Packet, 1)
	p := NewPlayer("Alex", world.PlayerID{}, inbound, outbound)

	pkt := protocol.EncodeKeepAlive(1)
	p.Send(pkt)

	select {
	case got := <-outbound:
		if got.ID != pkt.ID {
			t.Errorf("got id %d, want %d", got.ID, pkt.ID)
		}
	default:
		t.Fatal("expected a packet on the outbound channel")
	}
}

func TestNewPlayerDefaults(t *testing.T) {
	p := NewPlayer("Steve", world.PlayerID{}, nil, nil)
	if !p.Connected.Get() {
		t.Error("expected a new player to start connected")
	}
	if p.GameMode != 0 {
		t.Errorf("got gamemode %d, want 0", p.GameMode)
	}
	if len(p.Vicinity) != 0 {
		t.Error("expected empty vicinity")
	}
}
