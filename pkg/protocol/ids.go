package protocol

// Handshake, Status, and Login packet identifiers. Status and Login reuse
// id 0x00 for more than one direction since the bound direction
// disambiguates them.
const (
	HandshakeSetProtocol = 0x00

	StatusRequest  = 0x00
	StatusResponse = 0x00
	StatusPing     = 0x01
	StatusPong     = 0x01

	LoginStart          = 0x00
	LoginDisconnect     = 0x00
	LoginSuccess        = 0x02
	LoginSetCompression = 0x03
)

// Play-state, client-to-server packet identifiers (0x00..0x19), enumerated
// exhaustively per the revision-47 client packet table.
const (
	PlayClientKeepAlive = iota
	PlayClientChatMessage
	PlayClientUseEntity
	PlayClientPlayer
	PlayClientPlayerPosition
	PlayClientPlayerLook
	PlayClientPlayerPositionAndLook
	PlayClientPlayerDigging
	PlayClientPlayerBlockPlacement
	PlayClientHeldItemChange
	PlayClientAnimation
	PlayClientEntityAction
	PlayClientSteerVehicle
	PlayClientCloseWindow
	PlayClientClickWindow
	PlayClientConfirmTransaction
	PlayClientCreativeInventoryAction
	PlayClientEnchantItem
	PlayClientUpdateSign
	PlayClientPlayerAbilities
	PlayClientTabComplete
	PlayClientClientSettings
	PlayClientClientStatus
	PlayClientPluginMessage
	PlayClientSpectate
	PlayClientResourcePackStatus
)

// Play-state, server-to-client packet identifiers (0x00..0x49), enumerated
// exhaustively per the revision-47 server packet table. EntityVelocity is
// fixed at 0x12 per the revision-47 wire table (see DESIGN.md open
// question decisions for the historical id-19 collision this corrects).
const (
	PlayServerKeepAlive = iota
	PlayServerJoinGame
	PlayServerChatMessage
	PlayServerTimeUpdate
	PlayServerEntityEquipment
	PlayServerSpawnPosition
	PlayServerUpdateHealth
	PlayServerRespawn
	PlayServerPlayerPositionAndLook
	PlayServerHeldItemChange
	PlayServerUseBed
	PlayServerAnimation
	PlayServerSpawnPlayer
	PlayServerCollectItem
	PlayServerSpawnObject
	PlayServerSpawnMob
	PlayServerSpawnPainting
	PlayServerSpawnExperienceOrb
	PlayServerEntityVelocity
	PlayServerDestroyEntities
	PlayServerEntity
	PlayServerEntityRelativeMove
	PlayServerEntityLook
	PlayServerEntityLookAndRelativeMove
	PlayServerEntityTeleport
	PlayServerEntityHeadLook
	PlayServerEntityStatus
	PlayServerAttachEntity
	PlayServerEntityMetadata
	PlayServerEntityEffect
	PlayServerRemoveEntityEffect
	PlayServerSetExperience
	PlayServerEntityProperties
	PlayServerChunkData
	PlayServerMultiBlockChange
	PlayServerBlockChange
	PlayServerBlockAction
	PlayServerBlockBreakAnimation
	PlayServerMapChunkBulk
	PlayServerExplosion
	PlayServerEffect
	PlayServerSoundEffect
	PlayServerParticle
	PlayServerChangeGameState
	PlayServerSpawnGlobalEntity
	PlayServerOpenWindow
	PlayServerCloseWindow
	PlayServerSetSlot
	PlayServerWindowItems
	PlayServerWindowProperty
	PlayServerConfirmTransaction
	PlayServerUpdateSign
	PlayServerMaps
	PlayServerUpdateBlockEntity
	PlayServerSignEditorOpen
	PlayServerStatistics
	PlayServerPlayerListItem
	PlayServerPlayerAbilities
	PlayServerTabComplete
	PlayServerScoreboardObjective
	PlayServerUpdateScore
	PlayServerDisplayScoreboard
	PlayServerTeams
	PlayServerPluginMessage
	PlayServerDisconnect
	PlayServerServerDifficulty
	PlayServerCombatEvent
	PlayServerCamera
	PlayServerWorldBorder
	PlayServerTitle
	PlayServerSetCompression
	PlayServerPlayerListHeaderFooter
	PlayServerResourcePackSend
	PlayServerUpdateEntityNBT
)
