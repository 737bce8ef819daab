// Package network runs one worker per accepted TCP connection: it drives
// the connection through Handshake/Status/Login, then bridges a logged-in
// player to server-main via channels and splits into a send loop and a
// receive loop for the remainder of the connection's life.
package network

import (
	"log"
	"net"
	"sync"
	"time"

	"github.com/quartzmc/quartzd/pkg/chat"
	"github.com/quartzmc/quartzd/pkg/codec"
	"github.com/quartzmc/quartzd/pkg/framer"
	"github.com/quartzmc/quartzd/pkg/game"
	"github.com/quartzmc/quartzd/pkg/protocol"
)

// CompressionThreshold is the fixed byte threshold set once a connection
// completes login.
const CompressionThreshold = 256

// channelBuffer bounds the outbound channel enough to absorb a tick's
// worth of broadcast traffic without the writer goroutine stalling the
// tick loop; it is not a correctness requirement, just headroom.
const channelBuffer = 256

// StatusProvider supplies the live fields of a status response.
type StatusProvider interface {
	StatusDocument() protocol.StatusResponseDoc
}

// Registry tracks logged-in identifiers across connections to reject
// duplicate logins, and hands off completed logins to server-main.
type Registry struct {
	mu          sync.Mutex
	identifiers map[[16]byte]bool

	Incoming chan *game.Player
	Status   StatusProvider
}

// NewRegistry constructs an empty duplicate-identifier registry bound to
// the server's incoming-players channel.
func NewRegistry(incoming chan *game.Player, status StatusProvider) *Registry {
	return &Registry{
		identifiers: map[[16]byte]bool{},
		Incoming:    incoming,
		Status:      status,
	}
}

func (r *Registry) reserve(id [16]byte) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.identifiers[id] {
		return false
	}
	r.identifiers[id] = true
	return true
}

func (r *Registry) release(id [16]byte) {
	r.mu.Lock()
	delete(r.identifiers, id)
	r.mu.Unlock()
}

// Serve runs the accept loop on l until it returns an error (typically
// from Close), spawning one worker goroutine per accepted connection.
func (r *Registry) Serve(l net.Listener) error {
	for {
		conn, err := l.Accept()
		if err != nil {
			return err
		}
		go r.handleConnection(conn)
	}
}

func (r *Registry) handleConnection(conn net.Conn) {
	defer conn.Close()
	addr := conn.RemoteAddr().String()

	fr := framer.NewReader(conn)
	fw := framer.NewWriter(conn)

	state := protocol.StateHandshake

	for state == protocol.StateHandshake || state == protocol.StateStatus {
		frame, err := fr.ReadPacket()
		if err != nil {
			log.Printf("%s disconnected: %v", addr, err)
			return
		}

		switch state {
		case protocol.StateHandshake:
			hs, err := protocol.DecodeHandshake(frame.Body)
			if err != nil {
				log.Printf("%s disconnected: %v", addr, err)
				return
			}
			switch hs.NextState {
			case int32(protocol.StateStatus):
				state = protocol.StateStatus
			case int32(protocol.StateLogin):
				state = protocol.StateLogin
			default:
				log.Printf("%s disconnected: unexpected next state %d", addr, hs.NextState)
				return
			}

		case protocol.StateStatus:
			switch frame.ID {
			case protocol.StatusRequest:
				doc := r.Status.StatusDocument()
				pkt, err := protocol.EncodeStatusResponse(doc)
				if err != nil || fw.WritePacket(pkt.ID, pkt.Data) != nil {
					return
				}
			case protocol.StatusPing:
				payload, err := protocol.DecodeStatusPing(frame.Body)
				if err != nil {
					return
				}
				pong := protocol.EncodeStatusPong(payload)
				fw.WritePacket(pong.ID, pong.Data)
				return
			default:
				return
			}
		}
	}

	r.handleLogin(addr, fr, fw)
}

func (r *Registry) handleLogin(addr string, fr *framer.Reader, fw *framer.Writer) {
	frame, err := fr.ReadPacket()
	if err != nil || frame.ID != protocol.LoginStart {
		log.Printf("%s disconnected: expected login start", addr)
		return
	}
	username, err := protocol.DecodeLoginStart(frame.Body)
	if err != nil {
		log.Printf("%s disconnected: %v", addr, err)
		return
	}

	id := codec.OfflineIdentifier(username)
	var rawID [16]byte
	copy(rawID[:], id[:])

	if !r.reserve(rawID) {
		reason := chat.Colored("You are already logged in", "red").String()
		pkt := protocol.EncodeLoginDisconnect(reason)
		fw.WritePacket(pkt.ID, pkt.Data)
		return
	}
	defer r.release(rawID)

	setCompression := protocol.EncodeSetCompression(CompressionThreshold)
	fw.WritePacket(setCompression.ID, setCompression.Data)
	fw.SetThreshold(CompressionThreshold)
	fr.SetThreshold(CompressionThreshold)

	success := protocol.EncodeLoginSuccess(id.String(), username)
	if err := fw.WritePacket(success.ID, success.Data); err != nil {
		return
	}

	inbound := make(chan protocol.Packet, channelBuffer)
	outbound := make(chan protocol.Packet, channelBuffer)
	player := game.NewPlayer(username, rawID, inbound, outbound)

	r.Incoming <- player

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		sendLoop(fw, player)
	}()
	go func() {
		defer wg.Done()
		receiveLoop(fr, player, addr)
	}()
	wg.Wait()
}

func sendLoop(fw *framer.Writer, p *game.Player) {
	for p.Connected.Get() {
		select {
		case pkt := <-p.Outbound:
			if err := fw.WritePacket(pkt.ID, pkt.Data); err != nil {
				p.Connected.Set(false)
				return
			}
		case <-time.After(time.Second):
			// re-check Connected periodically even with no outbound traffic
		}
	}
}

func receiveLoop(fr *framer.Reader, p *game.Player, addr string) {
	for p.Connected.Get() {
		frame, err := fr.ReadPacket()
		if err != nil {
			log.Printf("%s disconnected: %v", addr, err)
			p.Connected.Set(false)
			return
		}
		if !protocol.Known(protocol.StatePlay, true, frame.ID) {
			log.Printf("%s disconnected: unknown play packet id %d", addr, frame.ID)
			p.Connected.Set(false)
			return
		}
		p.Inbound <- protocol.Packet{ID: frame.ID, Data: frame.Body}
	}
}

