package game

import (
	"strings"
	"time"

	"github.com/quartzmc/quartzd/pkg/chat"
	"github.com/quartzmc/quartzd/pkg/protocol"
	"github.com/quartzmc/quartzd/pkg/world"
)

// dispatch reacts to one inbound Play-state packet. Variants not listed in
// the abbreviated reaction table are accepted and ignored.
func (p *Player) dispatch(s *Server, pkt protocol.Packet) {
	switch pkt.ID {
	case protocol.PlayClientKeepAlive:
		p.handleKeepAlive(s, pkt)
	case protocol.PlayClientChatMessage:
		p.handleChatMessage(s, pkt)
	case protocol.PlayClientUseEntity:
		p.handleUseEntity(s, pkt)
	case protocol.PlayClientPlayer:
		if m, err := protocol.DecodeClientPlayer(pkt.Data); err == nil {
			p.handleMotion(s, false, false, 0, 0, 0, 0, 0, m.OnGround)
		}
	case protocol.PlayClientPlayerPosition:
		if m, err := protocol.DecodeClientPlayerPosition(pkt.Data); err == nil {
			p.handleMotion(s, true, false, m.X, m.Y, m.Z, 0, 0, m.OnGround)
		}
	case protocol.PlayClientPlayerLook:
		if m, err := protocol.DecodeClientPlayerLook(pkt.Data); err == nil {
			p.handleMotion(s, false, true, 0, 0, 0, m.Yaw, m.Pitch, m.OnGround)
		}
	case protocol.PlayClientPlayerPositionAndLook:
		if m, err := protocol.DecodeClientPlayerPositionAndLook(pkt.Data); err == nil {
			p.handleMotion(s, true, true, m.X, m.Y, m.Z, m.Yaw, m.Pitch, m.OnGround)
		}
	case protocol.PlayClientPlayerDigging:
		p.handleDigging(s, pkt)
	case protocol.PlayClientPlayerBlockPlacement:
		p.handleBlockPlacement(s, pkt)
	case protocol.PlayClientAnimation:
		p.handleAnimation(s)
	case protocol.PlayClientEntityAction:
		p.handleEntityAction(s, pkt)
	case protocol.PlayClientClientStatus:
		if m, err := protocol.DecodeClientClientStatus(pkt.Data); err == nil && m.Action == protocol.ClientStatusRespawn {
			p.respawn(s)
		}
	}
}

func (p *Player) handleKeepAlive(s *Server, pkt protocol.Packet) {
	m, err := protocol.DecodeClientKeepAlive(pkt.Data)
	if err != nil || m.Token != p.LastKeepAliveToken {
		return
	}
	rtt := time.Since(p.LastKeepAliveSentAt)
	p.PingMillis = int32(rtt.Milliseconds() / 2)
	s.Broadcast(protocol.EncodePlayerListUpdateLatency(p.Identifier, p.PingMillis))
}

func (p *Player) handleChatMessage(s *Server, pkt protocol.Packet) {
	m, err := protocol.DecodeClientChatMessage(pkt.Data)
	if err != nil {
		return
	}
	if strings.HasPrefix(m.Message, "/") {
		p.handleCommand(s, m.Message)
		return
	}
	body := chat.FormatChatLine(p.Username, m.Message, legacyControl)
	s.Broadcast(protocol.EncodeChatMessage(body.String(), 0))
}

const diggingStatusStarted = 0

func (p *Player) handleDigging(s *Server, pkt protocol.Packet) {
	m, err := protocol.DecodeClientPlayerDigging(pkt.Data)
	if err != nil || m.Status != diggingStatusStarted || p.GameMode != GameModeCreative {
		return
	}
	pos := world.BlockPos{X: m.X, Y: m.Y, Z: m.Z}
	s.World.SetBlock(pos, world.AirBlock)
	s.broadcastToChunkVicinity(pos.ChunkPos(), protocol.EncodeBlockChange(pos, world.AirBlock))
}

func (p *Player) handleBlockPlacement(s *Server, pkt protocol.Packet) {
	m, err := protocol.DecodeClientPlayerBlockPlacement(pkt.Data)
	if err != nil || p.GameMode != GameModeCreative || !m.HeldItem.Present {
		return
	}
	pos := world.BlockPos{X: m.X, Y: m.Y, Z: m.Z}
	block := world.NewBlockID(uint8(m.HeldItem.ID), uint8(m.HeldItem.Damage))
	s.World.SetBlock(pos, block)
	s.broadcastToChunkVicinity(pos.ChunkPos(), protocol.EncodeBlockChange(pos, block))
}

func (p *Player) handleAnimation(s *Server) {
	pkt := protocol.EncodeAnimation(p.EntityID, 0)
	for _, q := range p.Vicinity {
		q.Send(pkt)
	}
}

const (
	entityActionStartSneaking = 0
	entityActionStopSneaking  = 1
	sneakingFlag              = 0x02
)

func (p *Player) handleEntityAction(s *Server, pkt protocol.Packet) {
	m, err := protocol.DecodeClientEntityAction(pkt.Data)
	if err != nil {
		return
	}
	switch m.ActionID {
	case entityActionStartSneaking:
		p.Sneaking = true
	case entityActionStopSneaking:
		p.Sneaking = false
	default:
		return
	}
	var flags byte
	if p.Sneaking {
		flags |= sneakingFlag
	}
	update := protocol.EncodeEntityMetadata(p.EntityID, []protocol.MetadataEntry{protocol.EntityFlagsEntry(flags)})
	for _, q := range p.Vicinity {
		q.Send(update)
	}
}

// broadcastToChunkVicinity sends pkt to every player whose view rectangle
// currently includes the chunk at pos.
func (s *Server) broadcastToChunkVicinity(pos world.ChunkPos, pkt protocol.Packet) {
	c, ok := s.World.PeekChunk(pos)
	if !ok {
		return
	}
	for id := range c.Vicinity() {
		if q, ok := s.PlayerByIdentifier(id); ok {
			q.Send(pkt)
		}
	}
}
