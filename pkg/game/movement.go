package game

import (
	"github.com/quartzmc/quartzd/pkg/codec"
	"github.com/quartzmc/quartzd/pkg/protocol"
)

// fixedPointDelta reports whether each component of the fixed-point delta
// between (oldX,oldY,oldZ) and (newX,newY,newZ) fits a signed byte, and
// returns the deltas when it does.
func fixedPointDelta(oldX, oldY, oldZ, newX, newY, newZ float64) (dx, dy, dz int8, fits bool) {
	fx := codec.DoubleToFixedPoint(newX) - codec.DoubleToFixedPoint(oldX)
	fy := codec.DoubleToFixedPoint(newY) - codec.DoubleToFixedPoint(oldY)
	fz := codec.DoubleToFixedPoint(newZ) - codec.DoubleToFixedPoint(oldZ)
	if fx < -128 || fx > 127 || fy < -128 || fy > 127 || fz < -128 || fz > 127 {
		return 0, 0, 0, false
	}
	return int8(fx), int8(fy), int8(fz), true
}

// handleMotion applies a client movement/look update: it updates chunk
// membership and streams/unstreams chunks when the player crosses a chunk
// boundary, then broadcasts the most compact applicable update packet to
// the player's vicinity.
func (p *Player) handleMotion(s *Server, moved, rotated bool, newX, newY, newZ float64, newYaw, newPitch float32, onGround bool) {
	oldX, oldY, oldZ := p.X, p.Y, p.Z
	oldChunk := p.CurrentChunk

	if moved {
		p.X, p.Y, p.Z = newX, newY, newZ
		newChunk := p.BlockPos().ChunkPos()
		if newChunk != oldChunk {
			if c, ok := s.World.PeekChunk(oldChunk); ok {
				c.RemovePresent(p.Identifier)
			}

			newRect := chunksInRect(newChunk, ViewDistance)
			oldRect := chunksInRect(oldChunk, ViewDistance)

			streamChunks(s, p, chunkSetDiff(newRect, p.loadedChunks))
			unstreamChunks(s, p, rectDiff(oldRect, newRect))

			p.CurrentChunk = newChunk
			c := s.World.GetChunk(newChunk, p.Identifier)
			c.AddPresent(p.Identifier)
		}
	}
	if rotated {
		p.Yaw, p.Pitch = newYaw, newPitch
	}
	p.OnGround = onGround

	yawByte := byte(codec.AngleToByte(float64(p.Yaw)))
	pitchByte := byte(codec.AngleToByte(float64(p.Pitch)))

	switch {
	case moved:
		dx, dy, dz, fits := fixedPointDelta(oldX, oldY, oldZ, p.X, p.Y, p.Z)
		var pkt protocol.Packet
		switch {
		case !fits:
			pkt = protocol.EncodeEntityTeleport(p.EntityID, p.X, p.Y, p.Z, yawByte, pitchByte, onGround)
		case rotated:
			pkt = protocol.EncodeEntityLookAndRelativeMove(p.EntityID, dx, dy, dz, yawByte, pitchByte, onGround)
		default:
			pkt = protocol.EncodeEntityRelativeMove(p.EntityID, dx, dy, dz, onGround)
		}
		for _, q := range p.Vicinity {
			q.Send(pkt)
		}
	case rotated:
		pkt := protocol.EncodeEntityLook(p.EntityID, yawByte, pitchByte, onGround)
		for _, q := range p.Vicinity {
			q.Send(pkt)
		}
	}

	if rotated {
		head := protocol.EncodeEntityHeadLook(p.EntityID, yawByte)
		for _, q := range p.Vicinity {
			q.Send(head)
		}
	}
}
