package game

import (
	"context"
	"time"

	"github.com/quartzmc/quartzd/pkg/chat"
	"github.com/quartzmc/quartzd/pkg/codec"
	"github.com/quartzmc/quartzd/pkg/protocol"
)

// legacyControl is the in-band style-code control character this server
// uses for chat parsing.
const legacyControl = '§'

// tick runs one per-tick pass over a single connected player: draining its
// inbound packets, sending a periodic keep-alive, and refreshing its
// vicinity set.
func (p *Player) tick(ctx context.Context, s *Server) {
	p.drainInbound(s)
	p.maybeSendKeepAlive(s)
	p.refreshVicinity(s)
}

func (p *Player) drainInbound(s *Server) {
	for {
		select {
		case pkt := <-p.Inbound:
			p.dispatch(s, pkt)
		default:
			return
		}
	}
}

func (p *Player) maybeSendKeepAlive(s *Server) {
	sinceJoin := s.Tick() - p.JoinTick
	if sinceJoin <= 0 || sinceJoin%KeepAliveIntervalTicks != 0 {
		return
	}
	token := int32(s.Tick())
	p.LastKeepAliveToken = token
	p.LastKeepAliveSentTick = s.Tick()
	p.LastKeepAliveSentAt = time.Now()
	p.Send(protocol.EncodeKeepAlive(token))
}

// refreshVicinity recomputes V' — the other connected players whose
// current chunk falls inside this player's view rectangle — and emits the
// spawn/destroy diff against the previous V.
func (p *Player) refreshVicinity(s *Server) {
	next := map[int32]*Player{}
	s.forEachPlayer(func(q *Player) {
		if q.EntityID == p.EntityID {
			return
		}
		if inRect(p.CurrentChunk, q.CurrentChunk, ViewDistance) {
			next[q.EntityID] = q
		}
	})

	for id, q := range next {
		if _, already := p.Vicinity[id]; !already {
			p.Send(protocol.EncodeSpawnPlayer(protocol.SpawnPlayer{
				EntityID: q.EntityID,
				UUID:     q.Identifier,
				X:        q.X, Y: q.Y, Z: q.Z,
				Yaw:   byte(codec.AngleToByte(float64(q.Yaw))),
				Pitch: byte(codec.AngleToByte(float64(q.Pitch))),
			}))
		}
	}
	for id := range p.Vicinity {
		if _, still := next[id]; !still {
			p.Send(protocol.EncodeDestroyEntities([]int32{id}))
		}
	}
	p.Vicinity = next
}

// join sends the exact packet sequence that brings a newly assigned
// player into Play state, streams its initial view rectangle, and
// registers it in its spawn chunk.
func (p *Player) join(ctx context.Context, s *Server) {
	p.X = float64(s.Config.Spawn.X) + 0.5
	p.Y = float64(s.Config.Spawn.Y)
	p.Z = float64(s.Config.Spawn.Z) + 0.5
	p.GameMode = s.Config.DefaultGameMode
	p.CurrentChunk = p.BlockPos().ChunkPos()

	p.Send(protocol.EncodeJoinGame(protocol.JoinGame{
		EntityID:   p.EntityID,
		GameMode:   p.GameMode,
		Dimension:  int8(s.World.Dimension),
		Difficulty: Difficulty,
		MaxPlayers: byte(s.Config.MaxPlayers),
		LevelType:  "default",
	}))
	p.Send(protocol.EncodePluginMessage("MC|Brand", []byte(Brand)))
	p.Send(protocol.EncodeServerDifficulty(Difficulty))
	p.Send(protocol.EncodePlayerAbilities(protocol.PlayerAbilities{FlyingSpeed: 0.05, WalkingSpeed: 0.1}))
	p.Send(protocol.EncodePlayerListHeaderFooter("", ""))

	selfEntry := protocol.PlayerListAddEntry{
		UUID: p.Identifier, Name: p.Username, GameMode: int32(p.GameMode),
	}
	s.Broadcast(protocol.EncodePlayerListAddPlayer([]protocol.PlayerListAddEntry{selfEntry}))
	joinMsg := protocol.EncodeChatMessage(chat.Colored(p.Username+" joined the game!", "yellow").String(), 0)
	s.Broadcast(joinMsg)
	p.Send(joinMsg)

	// The joiner isn't registered in s.players yet, so the broadcasts above
	// never reach it; seed its own tab-list entry first, then every other
	// already-connected player.
	toSelf := []protocol.PlayerListAddEntry{selfEntry}
	s.forEachPlayer(func(q *Player) {
		if q.EntityID == p.EntityID {
			return
		}
		toSelf = append(toSelf, protocol.PlayerListAddEntry{
			UUID: q.Identifier, Name: q.Username, GameMode: int32(q.GameMode),
		})
	})
	p.Send(protocol.EncodePlayerListAddPlayer(toSelf))

	c := s.World.GetChunk(p.CurrentChunk, p.Identifier)
	c.AddPresent(p.Identifier)

	streamChunks(s, p, chunksInRect(p.CurrentChunk, ViewDistance))

	p.Send(protocol.EncodeSpawnPosition(s.Config.Spawn.X, s.Config.Spawn.Y, s.Config.Spawn.Z))
	p.Send(protocol.EncodePlayerPositionAndLook(protocol.PlayerPositionAndLook{
		X: p.X, Y: p.Y, Z: p.Z, Yaw: p.Yaw, Pitch: p.Pitch,
	}))
}

// leave sends the inverse announcement sequence and releases the
// player's hold on its loaded chunks.
func (p *Player) leave(ctx context.Context, s *Server) {
	s.Broadcast(protocol.EncodePlayerListRemovePlayer(p.Identifier))
	s.Broadcast(protocol.EncodeChatMessage(chat.Colored(p.Username+" left the game", "yellow").String(), 0))
	s.Broadcast(protocol.EncodeDestroyEntities([]int32{p.EntityID}))

	if c, ok := s.World.PeekChunk(p.CurrentChunk); ok {
		c.RemovePresent(p.Identifier)
	}

	for pos := range p.loadedChunks {
		s.World.UnloadChunkIfRequired(pos, p.Identifier)
	}
}
