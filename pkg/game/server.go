package game

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/quartzmc/quartzd/pkg/protocol"
	"github.com/quartzmc/quartzd/pkg/world"
)

// TicksPerSecond is the server's fixed tick rate.
const TicksPerSecond = 20

// MsPerTick is the wall-clock duration of one tick.
const MsPerTick = time.Second / TicksPerSecond

// maxAccumulatorMs clamps a single measured frame gap so a stalled process
// (e.g. resumed from a suspended host) doesn't try to replay a huge burst
// of ticks on wake.
const maxAccumulatorMs = 2000

// Brand is the plugin-channel brand string sent to joining players.
const Brand = "quartzd"

// Difficulty is the server-wide difficulty broadcast to joining players.
const Difficulty = 2 // normal

// Config collects the tick loop's external parameters.
type Config struct {
	MaxPlayers      int
	MOTD            string
	DefaultGameMode byte
	Spawn           world.BlockPos
	Favicon         string // base64 data URI, "" if none
}

// Server owns the player list and the world, and runs the single-threaded
// tick loop. Every field here is touched only from the goroutine running
// Run; connection workers reach it exclusively through the channels.
type Server struct {
	Config Config
	World  *world.World

	players      map[int32]*Player
	byIdentifier map[world.PlayerID]*Player
	nextEntity   int32
	tick         int64

	Incoming chan *Player

	stopOnce sync.Once
	stopping chan struct{}
}

// NewServer constructs a server with an empty player list over w.
func NewServer(cfg Config, w *world.World) *Server {
	return &Server{
		Config:       cfg,
		World:        w,
		players:      map[int32]*Player{},
		byIdentifier: map[world.PlayerID]*Player{},
		Incoming:     make(chan *Player, 64),
		stopping:     make(chan struct{}),
	}
}

// RequestStop asks the tick loop to exit on its next iteration, the way a
// console/command "/stop" shuts the process down. Safe to call more than
// once or concurrently with Run.
func (s *Server) RequestStop() {
	s.stopOnce.Do(func() { close(s.stopping) })
}

// PlayerByIdentifier looks up a connected player by its world identifier,
// used when broadcasting to a chunk's players-present/vicinity sets (which
// store identifiers, not *Player, to keep pkg/world free of a pkg/game
// dependency).
func (s *Server) PlayerByIdentifier(id world.PlayerID) (*Player, bool) {
	p, ok := s.byIdentifier[id]
	return p, ok
}

// playerByName looks up a connected player by username, case-insensitively,
// for name-addressed commands like "/tp <player>".
func (s *Server) playerByName(name string) (*Player, bool) {
	for _, p := range s.players {
		if strings.EqualFold(p.Username, name) {
			return p, true
		}
	}
	return nil, false
}

// Tick returns the current global tick counter.
func (s *Server) Tick() int64 { return s.tick }

// Run drives the fixed-step tick loop until ctx is cancelled. It samples a
// monotonic clock each iteration, accumulates elapsed milliseconds (clamped
// to maxAccumulatorMs per gap), drains whole ticks from the accumulator,
// then sleeps for the remainder.
func (s *Server) Run(ctx context.Context) {
	prev := time.Now()
	var accumulator time.Duration

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopping:
			return
		default:
		}

		now := time.Now()
		delta := now.Sub(prev)
		prev = now

		if delta > maxAccumulatorMs*time.Millisecond {
			skipped := int64(delta/MsPerTick) - int64(maxAccumulatorMs*time.Millisecond/MsPerTick)
			if skipped > 0 {
				log.Printf("tick loop stalled: clamping %d skipped ticks", skipped)
			}
			delta = maxAccumulatorMs * time.Millisecond
		}
		accumulator += delta

		for accumulator >= MsPerTick {
			s.runTick(ctx)
			accumulator -= MsPerTick
		}

		if leftover := MsPerTick - accumulator; leftover > 0 {
			time.Sleep(leftover)
		}
	}
}

// runTick performs the four phases of a single server tick.
func (s *Server) runTick(ctx context.Context) {
	s.drainIncoming(ctx)

	for _, p := range s.players {
		p.tick(ctx, s)
	}

	for id, p := range s.players {
		if !p.Connected.Get() {
			p.leave(ctx, s)
			delete(s.players, id)
			delete(s.byIdentifier, p.Identifier)
		}
	}

	s.tick++
}

func (s *Server) drainIncoming(ctx context.Context) {
	for {
		select {
		case p := <-s.Incoming:
			s.nextEntity++
			p.EntityID = s.nextEntity
			p.JoinTick = s.tick
			p.join(ctx, s)
			s.players[p.EntityID] = p
			s.byIdentifier[p.Identifier] = p
		default:
			return
		}
	}
}

// Broadcast enqueues pkt to every connected player.
func (s *Server) Broadcast(pkt protocol.Packet) {
	for _, p := range s.players {
		p.Send(pkt)
	}
}

// forEachPlayer invokes f for every connected player.
func (s *Server) forEachPlayer(f func(*Player)) {
	for _, p := range s.players {
		f(p)
	}
}
