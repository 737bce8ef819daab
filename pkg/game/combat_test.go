package game

import (
	"bytes"
	"testing"

	"github.com/quartzmc/quartzd/pkg/codec"
	"github.com/quartzmc/quartzd/pkg/protocol"
	"github.com/quartzmc/quartzd/pkg/world"
)

func useEntityPacket(target int32, useType int32) protocol.Packet {
	return buildPacket(protocol.PlayClientUseEntity, func(w *bytes.Buffer) {
		codec.WriteVarInt(w, target)
		codec.WriteVarInt(w, useType)
	})
}

func TestHandleUseEntityAttackDamagesTarget(t *testing.T) {
	s := newTestServer()
	attacker, attackerOut := connectTestPlayer(s, "Attacker", world.PlayerID{1})
	target, targetOut := connectTestPlayer(s, "Target", world.PlayerID{2})
	drainChannel(attackerOut)
	drainChannel(targetOut)

	attacker.dispatch(s, useEntityPacket(target.EntityID, protocol.UseEntityAttack))

	if target.Health != FullHealth-meleeDamage {
		t.Errorf("got health %v, want %v", target.Health, FullHealth-meleeDamage)
	}

	foundHealthPacket := false
drain:
	for {
		select {
		case pkt := <-targetOut:
			if pkt.ID == protocol.PlayServerUpdateHealth {
				foundHealthPacket = true
			}
		default:
			break drain
		}
	}
	if !foundHealthPacket {
		t.Error("expected an UpdateHealth packet sent to the target")
	}
}

func TestHandleUseEntityKillsAndMarksDead(t *testing.T) {
	s := newTestServer()
	attacker, attackerOut := connectTestPlayer(s, "Attacker", world.PlayerID{1})
	target, targetOut := connectTestPlayer(s, "Target", world.PlayerID{2})
	drainChannel(attackerOut)
	drainChannel(targetOut)

	target.Health = meleeDamage // one more hit is fatal
	attacker.dispatch(s, useEntityPacket(target.EntityID, protocol.UseEntityAttack))

	if !target.IsDead {
		t.Error("expected target to be marked dead")
	}
	if target.Health != 0 {
		t.Errorf("got health %v, want 0", target.Health)
	}
}

func TestHandleUseEntityIgnoresInteract(t *testing.T) {
	s := newTestServer()
	attacker, attackerOut := connectTestPlayer(s, "Attacker", world.PlayerID{1})
	target, targetOut := connectTestPlayer(s, "Target", world.PlayerID{2})
	drainChannel(attackerOut)
	drainChannel(targetOut)

	attacker.dispatch(s, useEntityPacket(target.EntityID, protocol.UseEntityInteract))

	if target.Health != FullHealth {
		t.Errorf("expected interact (non-attack) to leave health unchanged, got %v", target.Health)
	}
}

func TestRespawnResetsHealthAndPosition(t *testing.T) {
	s := newTestServer()
	p, out := connectTestPlayer(s, "Steve", world.PlayerID{1})
	drainChannel(out)

	p.Health = 0
	p.IsDead = true
	p.X, p.Y, p.Z = 100, 100, 100

	p.respawn(s)

	if p.IsDead {
		t.Error("expected IsDead cleared after respawn")
	}
	if p.Health != FullHealth {
		t.Errorf("got health %v, want %v", p.Health, FullHealth)
	}
	wantX := float64(s.Config.Spawn.X) + 0.5
	if p.X != wantX {
		t.Errorf("got X %v, want %v", p.X, wantX)
	}
}

func TestRespawnIsNoOpWhenAlive(t *testing.T) {
	s := newTestServer()
	p, out := connectTestPlayer(s, "Steve", world.PlayerID{1})
	drainChannel(out)

	p.X, p.Y, p.Z = 42, 42, 42
	p.respawn(s)

	if p.X != 42 {
		t.Errorf("expected respawn on a living player to be a no-op, X moved to %v", p.X)
	}
}
