package game

import (
	"time"

	"github.com/quartzmc/quartzd/pkg/protocol"
	"github.com/quartzmc/quartzd/pkg/world"
)

// ViewDistance is the radius, in chunks, of the square view rectangle kept
// loaded and streamed around each player.
const ViewDistance = 7

// KeepAliveIntervalTicks is "2 * TPS" at the server's fixed 20 Hz tick rate.
const KeepAliveIntervalTicks = 2 * TicksPerSecond

// Player is the server-main-resident state for one connected client. Every
// field here is touched only by the tick loop goroutine; the connection
// worker communicates with it exclusively through Inbound/Outbound/Connected.
type Player struct {
	EntityID   int32
	Username   string
	Identifier world.PlayerID // offline-mode UUID bytes, reused as the world's player key

	Inbound   chan protocol.Packet
	Outbound  chan protocol.Packet
	Connected *ConnFlag

	GameMode byte

	X, Y, Z    float64
	Yaw, Pitch float32
	OnGround   bool
	Sneaking   bool

	Health float32
	IsDead bool

	JoinTick              int64
	LastKeepAliveToken    int32
	LastKeepAliveSentAt   time.Time
	LastKeepAliveSentTick int64
	PingMillis            int32

	CurrentChunk world.ChunkPos
	loadedChunks map[world.ChunkPos]bool

	// Vicinity is V: the set of other players' entity ids currently
	// visible to this player (inside its view rectangle).
	Vicinity map[int32]*Player
}

// NewPlayer constructs a player record bound to a pair of connection
// channels. It is handed to server-main via the incoming-players channel;
// EntityID is assigned by server-main on the tick it is drained.
func NewPlayer(username string, id world.PlayerID, inbound, outbound chan protocol.Packet) *Player {
	return &Player{
		Username:     username,
		Identifier:   id,
		Inbound:      inbound,
		Outbound:     outbound,
		Connected:    NewConnFlag(true),
		GameMode:     0,
		Health:       FullHealth,
		loadedChunks: map[world.ChunkPos]bool{},
		Vicinity:     map[int32]*Player{},
	}
}

// Send enqueues a packet on the player's outbound channel. The channel has
// a fixed buffer, so Send blocks the caller while that buffer is full.
func (p *Player) Send(pkt protocol.Packet) {
	p.Outbound <- pkt
}

// BlockPos returns the player's feet position as a block coordinate.
func (p *Player) BlockPos() world.BlockPos {
	return world.BlockPos{X: int32(floor(p.X)), Y: int32(floor(p.Y)), Z: int32(floor(p.Z))}
}

func floor(v float64) float64 {
	i := int64(v)
	if v < 0 && float64(i) != v {
		i--
	}
	return float64(i)
}
