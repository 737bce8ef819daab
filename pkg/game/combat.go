package game

import (
	"log"
	"math"

	"github.com/quartzmc/quartzd/pkg/chat"
	"github.com/quartzmc/quartzd/pkg/protocol"
)

// Gamemode wire values, per the revision-47 Join Game / PlayerListItem
// tables.
const (
	GameModeSurvival  = 0
	GameModeCreative  = 1
	GameModeAdventure = 2
	GameModeSpectator = 3
)

// FullHealth is the health value a player starts and respawns with.
const FullHealth float32 = 20.0

// meleeDamage is the fixed per-hit damage dealt by a bare-handed attack
// (one heart).
const meleeDamage float32 = 2.0

// knockbackHorizontal and knockbackUpward scale the attacker->target
// horizontal unit vector into a velocity-packet impulse.
const (
	knockbackHorizontal = 0.4
	knockbackUpward     = 0.4
)

func (p *Player) handleUseEntity(s *Server, pkt protocol.Packet) {
	m, err := protocol.DecodeClientUseEntity(pkt.Data)
	if err != nil || m.Type != protocol.UseEntityAttack {
		return
	}
	if p.GameMode == GameModeSpectator {
		return
	}
	target, ok := s.players[m.Target]
	if !ok || target == p {
		return
	}
	if target.IsDead || target.GameMode == GameModeCreative || target.GameMode == GameModeSpectator {
		return
	}

	attackerX, attackerZ := p.X, p.Z
	targetX, targetZ := target.X, target.Z

	isDead := s.applyDamage(target, meleeDamage, target.Username+" was slain by "+p.Username)
	if isDead {
		return
	}

	dx := targetX - attackerX
	dz := targetZ - attackerZ
	dist := math.Sqrt(dx*dx + dz*dz)
	if dist == 0 {
		return
	}
	vx := (dx / dist) * knockbackHorizontal
	vz := (dz / dist) * knockbackHorizontal
	target.Send(protocol.EncodeEntityVelocity(target.EntityID, vx, knockbackUpward, vz))
}

// applyDamage subtracts damage from target's health, broadcasts the
// hurt/dead visuals, and returns whether the hit was fatal. deathMessage is
// only used when the hit kills.
func (s *Server) applyDamage(target *Player, damage float32, deathMessage string) bool {
	if target.IsDead || target.GameMode == GameModeCreative || target.GameMode == GameModeSpectator {
		return false
	}

	target.Health -= damage
	if target.Health <= 0 {
		target.Health = 0
		target.IsDead = true
	}

	hurtAnim := protocol.EncodeAnimation(target.EntityID, 1)
	hurtStatus := protocol.EncodeEntityStatus(target.EntityID, 2)
	for _, q := range target.Vicinity {
		q.Send(hurtAnim)
		q.Send(hurtStatus)
	}
	target.Send(protocol.EncodeUpdateHealth(target.Health, 20, 5.0))

	if target.IsDead {
		target.Send(protocol.EncodeEntityStatus(target.EntityID, 3))
		s.Broadcast(protocol.EncodeChatMessage(chat.Colored(deathMessage, "red").String(), 0))
		log.Printf("player %s died: %s", target.Username, deathMessage)
	}
	return target.IsDead
}

// respawn resets a dead player's health and position and resends the join
// sequence's position/health packets, mirroring the 0x07 Respawn the client
// expects after requesting a respawn.
func (p *Player) respawn(s *Server) {
	if !p.IsDead {
		return
	}
	p.Health = FullHealth
	p.IsDead = false
	p.X = float64(s.Config.Spawn.X) + 0.5
	p.Y = float64(s.Config.Spawn.Y)
	p.Z = float64(s.Config.Spawn.Z) + 0.5

	p.Send(protocol.EncodeRespawn(protocol.Respawn{
		Dimension:  int32(s.World.Dimension),
		Difficulty: Difficulty,
		GameMode:   p.GameMode,
		LevelType:  "default",
	}))
	p.Send(protocol.EncodePlayerPositionAndLook(protocol.PlayerPositionAndLook{
		X: p.X, Y: p.Y, Z: p.Z, Yaw: p.Yaw, Pitch: p.Pitch,
	}))
	p.Send(protocol.EncodeUpdateHealth(p.Health, 20, 5.0))

	s.Broadcast(protocol.EncodeDestroyEntities([]int32{p.EntityID}))
	for _, q := range p.Vicinity {
		q.Send(protocol.EncodeSpawnPlayer(protocol.SpawnPlayer{
			EntityID: p.EntityID,
			UUID:     p.Identifier,
			X:        p.X, Y: p.Y, Z: p.Z,
		}))
	}
}
