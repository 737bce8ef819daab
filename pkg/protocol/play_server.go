package protocol

import (
	"bytes"

	"github.com/quartzmc/quartzd/pkg/codec"
	"github.com/quartzmc/quartzd/pkg/world"
)

// EncodeKeepAlive builds a server keep-alive carrying a 32-bit token.
func EncodeKeepAlive(token int32) Packet {
	return Build(PlayServerKeepAlive, func(w *bytes.Buffer) {
		codec.WriteVarInt(w, token)
	})
}

// JoinGame is the first packet sent to a player entering Play state.
type JoinGame struct {
	EntityID         int32
	GameMode         byte
	Dimension        int8
	Difficulty       byte
	MaxPlayers       byte
	LevelType        string
	ReducedDebugInfo bool
}

func EncodeJoinGame(j JoinGame) Packet {
	return Build(PlayServerJoinGame, func(w *bytes.Buffer) {
		codec.WriteInt32(w, j.EntityID)
		codec.WriteUint8(w, j.GameMode)
		codec.WriteInt8(w, j.Dimension)
		codec.WriteUint8(w, j.Difficulty)
		codec.WriteUint8(w, j.MaxPlayers)
		codec.WriteString(w, j.LevelType)
		codec.WriteBool(w, j.ReducedDebugInfo)
	})
}

// EncodePluginMessage builds a plugin-channel message.
func EncodePluginMessage(channel string, data []byte) Packet {
	return Build(PlayServerPluginMessage, func(w *bytes.Buffer) {
		codec.WriteString(w, channel)
		w.Write(data)
	})
}

// EncodeServerDifficulty builds the server-difficulty broadcast.
func EncodeServerDifficulty(difficulty byte) Packet {
	return Build(PlayServerServerDifficulty, func(w *bytes.Buffer) {
		codec.WriteUint8(w, difficulty)
	})
}

// PlayerAbilities carries the flags/flying-speed/walking-speed triple.
type PlayerAbilities struct {
	Flags        byte
	FlyingSpeed  float32
	WalkingSpeed float32
}

func EncodePlayerAbilities(a PlayerAbilities) Packet {
	return Build(PlayServerPlayerAbilities, func(w *bytes.Buffer) {
		codec.WriteUint8(w, a.Flags)
		codec.WriteFloat32(w, a.FlyingSpeed)
		codec.WriteFloat32(w, a.WalkingSpeed)
	})
}

// EncodePlayerListHeaderFooter builds the tab-list header/footer packet.
func EncodePlayerListHeaderFooter(headerJSON, footerJSON string) Packet {
	return Build(PlayServerPlayerListHeaderFooter, func(w *bytes.Buffer) {
		codec.WriteString(w, headerJSON)
		codec.WriteString(w, footerJSON)
	})
}

// PlayerListAddEntry is one player described by a PlayerListItem AddPlayer action.
type PlayerListAddEntry struct {
	UUID        [16]byte
	Name        string
	GameMode    int32
	Ping        int32
	DisplayName string // "" means no display name override
}

// EncodePlayerListAddPlayer builds a PlayerListItem packet with action 0 (AddPlayer).
func EncodePlayerListAddPlayer(entries []PlayerListAddEntry) Packet {
	return Build(PlayServerPlayerListItem, func(w *bytes.Buffer) {
		codec.WriteVarInt(w, 0)
		codec.WriteVarInt(w, int32(len(entries)))
		for _, e := range entries {
			w.Write(e.UUID[:])
			codec.WriteString(w, e.Name)
			codec.WriteVarInt(w, 0) // no properties
			codec.WriteVarInt(w, e.GameMode)
			codec.WriteVarInt(w, e.Ping)
			if e.DisplayName != "" {
				codec.WriteBool(w, true)
				codec.WriteString(w, e.DisplayName)
			} else {
				codec.WriteBool(w, false)
			}
		}
	})
}

// EncodePlayerListUpdateLatency builds a PlayerListItem packet with action 2 (UpdateLatency).
func EncodePlayerListUpdateLatency(id [16]byte, pingMillis int32) Packet {
	return Build(PlayServerPlayerListItem, func(w *bytes.Buffer) {
		codec.WriteVarInt(w, 2)
		codec.WriteVarInt(w, 1)
		w.Write(id[:])
		codec.WriteVarInt(w, pingMillis)
	})
}

// EncodePlayerListRemovePlayer builds a PlayerListItem packet with action 4 (RemovePlayer).
func EncodePlayerListRemovePlayer(id [16]byte) Packet {
	return Build(PlayServerPlayerListItem, func(w *bytes.Buffer) {
		codec.WriteVarInt(w, 4)
		codec.WriteVarInt(w, 1)
		w.Write(id[:])
	})
}

// EncodeChatMessage builds a chat message packet; position 0 is the normal
// chat line shown above the hotbar.
func EncodeChatMessage(chatJSON string, position byte) Packet {
	return Build(PlayServerChatMessage, func(w *bytes.Buffer) {
		codec.WriteString(w, chatJSON)
		codec.WriteUint8(w, position)
	})
}

// EncodeSpawnPosition builds the compass-target spawn position packet.
func EncodeSpawnPosition(x, y, z int32) Packet {
	return Build(PlayServerSpawnPosition, func(w *bytes.Buffer) {
		codec.WritePosition(w, x, y, z)
	})
}

// PlayerPositionAndLook is the clientbound absolute teleport packet.
type PlayerPositionAndLook struct {
	X, Y, Z    float64
	Yaw, Pitch float32
	Flags      byte
}

func EncodePlayerPositionAndLook(p PlayerPositionAndLook) Packet {
	return Build(PlayServerPlayerPositionAndLook, func(w *bytes.Buffer) {
		codec.WriteFloat64(w, p.X)
		codec.WriteFloat64(w, p.Y)
		codec.WriteFloat64(w, p.Z)
		codec.WriteFloat32(w, p.Yaw)
		codec.WriteFloat32(w, p.Pitch)
		codec.WriteUint8(w, p.Flags)
	})
}

// SpawnPlayer describes another player entity becoming visible.
type SpawnPlayer struct {
	EntityID   int32
	UUID       [16]byte
	X, Y, Z    float64
	Yaw, Pitch byte
	CurrentItem int16
}

func EncodeSpawnPlayer(s SpawnPlayer) Packet {
	return Build(PlayServerSpawnPlayer, func(w *bytes.Buffer) {
		codec.WriteVarInt(w, s.EntityID)
		w.Write(s.UUID[:])
		codec.WriteInt32(w, codec.DoubleToFixedPoint(s.X))
		codec.WriteInt32(w, codec.DoubleToFixedPoint(s.Y))
		codec.WriteInt32(w, codec.DoubleToFixedPoint(s.Z))
		codec.WriteUint8(w, s.Yaw)
		codec.WriteUint8(w, s.Pitch)
		codec.WriteInt16(w, s.CurrentItem)
		EncodeMetadata(w, nil)
	})
}

// EncodeDestroyEntities builds a despawn packet for the given entity ids.
func EncodeDestroyEntities(ids []int32) Packet {
	return Build(PlayServerDestroyEntities, func(w *bytes.Buffer) {
		codec.WriteVarInt(w, int32(len(ids)))
		for _, id := range ids {
			codec.WriteVarInt(w, id)
		}
	})
}

// EncodeBlockChange builds a single-block-change packet.
func EncodeBlockChange(pos world.BlockPos, b world.BlockID) Packet {
	return Build(PlayServerBlockChange, func(w *bytes.Buffer) {
		codec.WritePosition(w, pos.X, pos.Y, pos.Z)
		codec.WriteVarInt(w, int32(b))
	})
}

// EncodeAnimation builds an entity-animation broadcast (0=swing arm, ...).
func EncodeAnimation(entityID int32, animation byte) Packet {
	return Build(PlayServerAnimation, func(w *bytes.Buffer) {
		codec.WriteVarInt(w, entityID)
		codec.WriteUint8(w, animation)
	})
}

// EncodeEntityMetadata builds a full metadata-stream packet for one entity.
func EncodeEntityMetadata(entityID int32, entries []MetadataEntry) Packet {
	return Build(PlayServerEntityMetadata, func(w *bytes.Buffer) {
		codec.WriteVarInt(w, entityID)
		EncodeMetadata(w, entries)
	})
}

// EncodeEntityTeleport builds an absolute-position entity update.
func EncodeEntityTeleport(entityID int32, x, y, z float64, yaw, pitch byte, onGround bool) Packet {
	return Build(PlayServerEntityTeleport, func(w *bytes.Buffer) {
		codec.WriteVarInt(w, entityID)
		codec.WriteInt32(w, codec.DoubleToFixedPoint(x))
		codec.WriteInt32(w, codec.DoubleToFixedPoint(y))
		codec.WriteInt32(w, codec.DoubleToFixedPoint(z))
		codec.WriteUint8(w, yaw)
		codec.WriteUint8(w, pitch)
		codec.WriteBool(w, onGround)
	})
}

// EncodeEntityRelativeMove builds a compact byte-delta position update.
func EncodeEntityRelativeMove(entityID int32, dx, dy, dz int8, onGround bool) Packet {
	return Build(PlayServerEntityRelativeMove, func(w *bytes.Buffer) {
		codec.WriteVarInt(w, entityID)
		codec.WriteInt8(w, dx)
		codec.WriteInt8(w, dy)
		codec.WriteInt8(w, dz)
		codec.WriteBool(w, onGround)
	})
}

// EncodeEntityLookAndRelativeMove builds a compact byte-delta move+look update.
func EncodeEntityLookAndRelativeMove(entityID int32, dx, dy, dz int8, yaw, pitch byte, onGround bool) Packet {
	return Build(PlayServerEntityLookAndRelativeMove, func(w *bytes.Buffer) {
		codec.WriteVarInt(w, entityID)
		codec.WriteInt8(w, dx)
		codec.WriteInt8(w, dy)
		codec.WriteInt8(w, dz)
		codec.WriteUint8(w, yaw)
		codec.WriteUint8(w, pitch)
		codec.WriteBool(w, onGround)
	})
}

// EncodeEntityLook builds a look-only update.
func EncodeEntityLook(entityID int32, yaw, pitch byte, onGround bool) Packet {
	return Build(PlayServerEntityLook, func(w *bytes.Buffer) {
		codec.WriteVarInt(w, entityID)
		codec.WriteUint8(w, yaw)
		codec.WriteUint8(w, pitch)
		codec.WriteBool(w, onGround)
	})
}

// EncodeEntityHeadLook builds a head-yaw-only update.
func EncodeEntityHeadLook(entityID int32, headYaw byte) Packet {
	return Build(PlayServerEntityHeadLook, func(w *bytes.Buffer) {
		codec.WriteVarInt(w, entityID)
		codec.WriteUint8(w, headYaw)
	})
}

// EncodeDisconnect builds a Play-state disconnect packet with a JSON chat reason.
func EncodeDisconnect(chatJSON string) Packet {
	return Build(PlayServerDisconnect, func(w *bytes.Buffer) {
		codec.WriteString(w, chatJSON)
	})
}

// ChunkBulkHeader is one column header in a MapChunkBulk payload.
type ChunkBulkHeader struct {
	ChunkX, ChunkZ int32
	PrimaryBitMask uint16
}

// EncodeMapChunkBulk builds a bulk-chunk packet: a sky-light flag, then
// headers, then each column's ground-up-continuous body, in that order
// per §6.
func EncodeMapChunkBulk(skyLightSent bool, headers []ChunkBulkHeader, bodies [][]byte) Packet {
	return Build(PlayServerMapChunkBulk, func(w *bytes.Buffer) {
		codec.WriteBool(w, skyLightSent)
		codec.WriteVarInt(w, int32(len(headers)))
		for _, h := range headers {
			codec.WriteInt32(w, h.ChunkX)
			codec.WriteInt32(w, h.ChunkZ)
			codec.WriteUint16(w, h.PrimaryBitMask)
		}
		for _, b := range bodies {
			w.Write(b)
		}
	})
}

// EncodeUpdateHealth builds the health/food/saturation packet.
func EncodeUpdateHealth(health float32, food int32, saturation float32) Packet {
	return Build(PlayServerUpdateHealth, func(w *bytes.Buffer) {
		codec.WriteFloat32(w, health)
		codec.WriteVarInt(w, food)
		codec.WriteFloat32(w, saturation)
	})
}

// Respawn carries the dimension/difficulty/gamemode/level-type quadruple
// sent when a dead player respawns.
type Respawn struct {
	Dimension  int32
	Difficulty byte
	GameMode   byte
	LevelType  string
}

func EncodeRespawn(r Respawn) Packet {
	return Build(PlayServerRespawn, func(w *bytes.Buffer) {
		codec.WriteInt32(w, r.Dimension)
		codec.WriteUint8(w, r.Difficulty)
		codec.WriteUint8(w, r.GameMode)
		codec.WriteString(w, r.LevelType)
	})
}

// EncodeEntityVelocity builds a velocity update; vx/vy/vz are in
// blocks-per-tick and scaled to the wire's 1/8000-blocks-per-tick units.
func EncodeEntityVelocity(entityID int32, vx, vy, vz float64) Packet {
	return Build(PlayServerEntityVelocity, func(w *bytes.Buffer) {
		codec.WriteVarInt(w, entityID)
		codec.WriteInt16(w, int16(vx*8000))
		codec.WriteInt16(w, int16(vy*8000))
		codec.WriteInt16(w, int16(vz*8000))
	})
}

// EncodeEntityStatus builds a one-byte entity-status event (e.g. 2=hurt,
// 3=dead for the revision-47 player entity table).
func EncodeEntityStatus(entityID int32, status byte) Packet {
	return Build(PlayServerEntityStatus, func(w *bytes.Buffer) {
		codec.WriteInt32(w, entityID)
		codec.WriteUint8(w, status)
	})
}

// EncodeChangeGameState builds a change-game-state packet (reason 3 carries
// a new gamemode value in its float32 field).
func EncodeChangeGameState(reason byte, value float32) Packet {
	return Build(PlayServerChangeGameState, func(w *bytes.Buffer) {
		codec.WriteUint8(w, reason)
		codec.WriteFloat32(w, value)
	})
}

// EncodePlayerListUpdateGameMode builds a PlayerListItem packet with action
// 1 (UpdateGameMode).
func EncodePlayerListUpdateGameMode(id [16]byte, gameMode int32) Packet {
	return Build(PlayServerPlayerListItem, func(w *bytes.Buffer) {
		codec.WriteVarInt(w, 1)
		codec.WriteVarInt(w, 1)
		w.Write(id[:])
		codec.WriteVarInt(w, gameMode)
	})
}

// EncodeChunkData builds a single-column chunk packet (ground-up
// continuous or non-continuous, selected by the caller's data/mask).
func EncodeChunkData(chunkX, chunkZ int32, groundUpContinuous bool, primaryBitMask uint16, data []byte) Packet {
	return Build(PlayServerChunkData, func(w *bytes.Buffer) {
		codec.WriteInt32(w, chunkX)
		codec.WriteInt32(w, chunkZ)
		codec.WriteBool(w, groundUpContinuous)
		codec.WriteUint16(w, primaryBitMask)
		codec.WriteVarInt(w, int32(len(data)))
		w.Write(data)
	})
}
