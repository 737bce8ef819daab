package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quartzmc/quartzd/pkg/chat"
	"github.com/quartzmc/quartzd/pkg/protocol"
)

// handleCommand dispatches a /-prefixed chat line.
func (p *Player) handleCommand(s *Server, message string) {
	parts := strings.Fields(message)
	if len(parts) == 0 {
		return
	}
	switch strings.ToLower(parts[0]) {
	case "/help":
		p.handleHelpCommand()
	case "/gamemode", "/gm":
		p.handleGamemodeCommand(s, parts[1:])
	case "/tp", "/teleport":
		p.handleTpCommand(s, parts[1:])
	case "/stop":
		p.handleStopCommand(s)
	default:
		p.Send(protocol.EncodeChatMessage(chat.Colored("Unknown command: "+parts[0], "red").String(), 0))
	}
}

func (p *Player) handleHelpCommand() {
	lines := []string{
		"/help - show this message",
		"/gamemode <survival|creative|adventure|spectator> - change your game mode",
		"/tp <x> <y> <z> - teleport to coordinates",
		"/stop - shut down the server",
	}
	for _, line := range lines {
		p.Send(protocol.EncodeChatMessage(chat.Colored(line, "gray").String(), 0))
	}
}

// invisibleFlag is bit 5 of the entity-flags metadata byte, used to hide a
// spectating player's model from everyone else.
const invisibleFlag byte = 0x20

func gameModeByAlias(alias string) (byte, bool) {
	switch strings.ToLower(alias) {
	case "survival", "s", "0":
		return GameModeSurvival, true
	case "creative", "c", "1":
		return GameModeCreative, true
	case "adventure", "a", "2":
		return GameModeAdventure, true
	case "spectator", "sp", "3":
		return GameModeSpectator, true
	default:
		return 0, false
	}
}

func gameModeName(mode byte) string {
	switch mode {
	case GameModeCreative:
		return "creative"
	case GameModeAdventure:
		return "adventure"
	case GameModeSpectator:
		return "spectator"
	default:
		return "survival"
	}
}

// abilityFlags mirrors the join-time PlayerAbilities flags bit layout
// (0x01 invulnerable, 0x02 flying, 0x04 allow flying, 0x08 instant break)
// for the two modes this server distinguishes.
func abilityFlags(mode byte) byte {
	if mode == GameModeCreative || mode == GameModeSpectator {
		return 0x0D
	}
	return 0
}

func (p *Player) handleGamemodeCommand(s *Server, args []string) {
	if len(args) < 1 {
		p.Send(protocol.EncodeChatMessage(chat.Colored("Usage: /gamemode <survival|creative|adventure|spectator>", "red").String(), 0))
		return
	}
	mode, ok := gameModeByAlias(args[0])
	if !ok {
		p.Send(protocol.EncodeChatMessage(chat.Colored("Unknown gamemode: "+args[0], "red").String(), 0))
		return
	}
	p.GameMode = mode

	p.Send(protocol.EncodeChangeGameState(3, float32(mode)))
	p.Send(protocol.EncodePlayerAbilities(protocol.PlayerAbilities{
		Flags: abilityFlags(mode), FlyingSpeed: 0.05, WalkingSpeed: 0.1,
	}))
	s.Broadcast(protocol.EncodePlayerListUpdateGameMode(p.Identifier, int32(mode)))

	var flags byte
	if p.Sneaking {
		flags |= protocol.SneakingFlag
	}
	if mode == GameModeSpectator {
		flags |= invisibleFlag
	}
	update := protocol.EncodeEntityMetadata(p.EntityID, []protocol.MetadataEntry{protocol.EntityFlagsEntry(flags)})
	for _, q := range p.Vicinity {
		q.Send(update)
	}

	p.Send(protocol.EncodeChatMessage(chat.Colored("Game mode set to "+gameModeName(mode), "gray").String(), 0))
}

func (p *Player) handleTpCommand(s *Server, args []string) {
	switch len(args) {
	case 3:
		x, err1 := strconv.ParseFloat(args[0], 64)
		y, err2 := strconv.ParseFloat(args[1], 64)
		z, err3 := strconv.ParseFloat(args[2], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			p.Send(protocol.EncodeChatMessage(chat.Colored("Invalid coordinates. Usage: /tp <x> <y> <z>", "red").String(), 0))
			return
		}
		p.teleportTo(s, x, y, z)
		p.Send(protocol.EncodeChatMessage(chat.Colored(fmt.Sprintf("Teleported to %.1f, %.1f, %.1f", x, y, z), "gray").String(), 0))
	case 1:
		target, ok := s.playerByName(args[0])
		if !ok {
			p.Send(protocol.EncodeChatMessage(chat.Colored("Player not found: "+args[0], "red").String(), 0))
			return
		}
		p.teleportTo(s, target.X, target.Y, target.Z)
		p.Send(protocol.EncodeChatMessage(chat.Colored("Teleported to "+target.Username, "gray").String(), 0))
	default:
		p.Send(protocol.EncodeChatMessage(chat.Colored("Usage: /tp <x> <y> <z> or /tp <player>", "red").String(), 0))
	}
}

// teleportTo moves the player to an absolute position: handleMotion streams
// the crossed chunks and announces the new position to its vicinity, and
// the direct PlayerPositionAndLook resyncs the mover's own client (which
// handleMotion, built for client-acknowledged movement, does not do).
func (p *Player) teleportTo(s *Server, x, y, z float64) {
	p.handleMotion(s, true, false, x, y, z, 0, 0, p.OnGround)
	p.Send(protocol.EncodePlayerPositionAndLook(protocol.PlayerPositionAndLook{
		X: p.X, Y: p.Y, Z: p.Z, Yaw: p.Yaw, Pitch: p.Pitch,
	}))
}

func (p *Player) handleStopCommand(s *Server) {
	s.Broadcast(protocol.EncodeChatMessage(chat.Colored("Server is stopping...", "red").String(), 0))
	s.RequestStop()
}
