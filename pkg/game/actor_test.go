package game

import (
	"context"
	"testing"

	"github.com/quartzmc/quartzd/pkg/protocol"
	"github.com/quartzmc/quartzd/pkg/world"
)

func TestJoinRegistersPlayerInSpawnChunk(t *testing.T) {
	s := newTestServer()
	p, out := connectTestPlayer(s, "Steve", world.PlayerID{1})
	drainChannel(out)

	c, ok := s.World.PeekChunk(p.CurrentChunk)
	if !ok {
		t.Fatal("expected spawn chunk to be loaded")
	}
	if _, present := c.PlayersPresent()[p.Identifier]; !present {
		t.Error("expected player registered in spawn chunk's players-present set")
	}
}

func TestJoinSendsJoinGameFirst(t *testing.T) {
	s := newTestServer()
	inbound := make(chan protocol.Packet, 16)
	outbound := make(chan protocol.Packet, 64)
	p := NewPlayer("Steve", world.PlayerID{1}, inbound, outbound)

	p.join(context.Background(), s)

	first := <-outbound
	if first.ID != protocol.PlayServerJoinGame {
		t.Errorf("got first packet id %d, want JoinGame (%d)", first.ID, protocol.PlayServerJoinGame)
	}
}

func TestLeaveRemovesFromChunkAndBroadcastsDestroy(t *testing.T) {
	s := newTestServer()
	p, out := connectTestPlayer(s, "Steve", world.PlayerID{1})
	drainChannel(out)

	p.leave(context.Background(), s)

	c, ok := s.World.PeekChunk(p.CurrentChunk)
	if ok {
		if _, present := c.PlayersPresent()[p.Identifier]; present {
			t.Error("expected player removed from players-present set")
		}
	}

	// The leaving player is still in s.players, so the broadcast reaches it too.
	foundDestroy := false
	for {
		select {
		case pkt := <-out:
			if pkt.ID == protocol.PlayServerDestroyEntities {
				foundDestroy = true
			}
		default:
			goto done
		}
	}
done:
	if !foundDestroy {
		t.Error("expected a DestroyEntities broadcast on leave")
	}
}

func TestRefreshVicinityEmitsSpawnForNewlyVisiblePlayer(t *testing.T) {
	s := newTestServer()
	p1, out1 := connectTestPlayer(s, "One", world.PlayerID{1})
	drainChannel(out1)

	p2, out2 := connectTestPlayer(s, "Two", world.PlayerID{2})
	drainChannel(out2)
	drainChannel(out1) // Two's join broadcast lands in One's outbound too.

	p1.refreshVicinity(s)

	foundSpawn := false
	for {
		select {
		case pkt := <-out1:
			if pkt.ID == protocol.PlayServerSpawnPlayer {
				foundSpawn = true
			}
		default:
			goto done
		}
	}
done:
	if !foundSpawn {
		t.Error("expected a SpawnPlayer packet for the newly visible player")
	}
	if _, ok := p1.Vicinity[p2.EntityID]; !ok {
		t.Error("expected p2 registered in p1's vicinity")
	}
}

func TestMaybeSendKeepAliveFiresOnInterval(t *testing.T) {
	s := newTestServer()
	p, out := connectTestPlayer(s, "Steve", world.PlayerID{1})
	drainChannel(out)

	p.JoinTick = 0
	s.tick = KeepAliveIntervalTicks

	p.maybeSendKeepAlive(s)

	select {
	case pkt := <-out:
		if pkt.ID != protocol.PlayServerKeepAlive {
			t.Errorf("got id %d, want KeepAlive", pkt.ID)
		}
	default:
		t.Error("expected a keep-alive packet")
	}
}

func TestMaybeSendKeepAliveSkipsOffInterval(t *testing.T) {
	s := newTestServer()
	p, out := connectTestPlayer(s, "Steve", world.PlayerID{1})
	drainChannel(out)

	p.JoinTick = 0
	s.tick = 1

	p.maybeSendKeepAlive(s)

	select {
	case pkt := <-out:
		t.Errorf("expected no keep-alive, got id %d", pkt.ID)
	default:
	}
}
