package world

import "github.com/quartzmc/quartzd/pkg/nbt"

// BlockEntityKind identifies a block-entity variant. Using a tagged sum
// here (rather than an interface implemented per concrete type) removes
// the need for reflection to map a concrete Go type back to its wire
// identifier string — the identifier is a static function of the kind.
type BlockEntityKind int

const (
	BlockEntityFurnace BlockEntityKind = iota
	BlockEntityChest
	BlockEntityEnderChest
	BlockEntityRecordPlayer
	BlockEntityTrap
	BlockEntityDropper
	BlockEntitySign
	BlockEntityMobSpawner
	BlockEntityMusic
	BlockEntityPiston
	BlockEntityCauldron
	BlockEntityEnchantTable
	BlockEntityAirportal
	BlockEntityControl
	BlockEntityBeacon
	BlockEntitySkull
	BlockEntityDLDetector
	BlockEntityHopper
	BlockEntityComparator
	BlockEntityFlowerPot
	BlockEntityBanner
)

// wireID is the string identifier each kind serializes under.
var wireID = map[BlockEntityKind]string{
	BlockEntityFurnace:      "Furnance",
	BlockEntityChest:        "Chest",
	BlockEntityEnderChest:   "EnderChest",
	BlockEntityRecordPlayer: "RecordPlayer",
	BlockEntityTrap:         "Trap",
	BlockEntityDropper:      "Dropper",
	BlockEntitySign:         "Sign",
	BlockEntityMobSpawner:   "MobSpawner",
	BlockEntityMusic:        "Music",
	BlockEntityPiston:       "Piston",
	BlockEntityCauldron:     "Cauldron",
	BlockEntityEnchantTable: "EnchantTable",
	BlockEntityAirportal:    "Airportal",
	BlockEntityControl:      "Control",
	BlockEntityBeacon:       "Beacon",
	BlockEntitySkull:        "Skull",
	BlockEntityDLDetector:   "DLDetector",
	BlockEntityHopper:       "Hopper",
	BlockEntityComparator:   "Comparator",
	BlockEntityFlowerPot:    "FlowerPot",
	BlockEntityBanner:       "Banner",
}

// BlockEntity is one instance of a block-entity record at a cell.
type BlockEntity struct {
	Kind BlockEntityKind
	Pos  BlockPos

	// SignLines holds a sign's four JSON-encoded chat lines; empty for
	// every other kind.
	SignLines [4]string

	// Fields carries any additional kind-specific scalar data (e.g. a
	// mob spawner's entity id, a skull's owner name) as plain key/value
	// pairs, kept generic since the core doesn't model every block
	// entity's full behavior.
	Fields map[string]string
}

// NewBlockEntity returns the default instance for a kind at pos.
func NewBlockEntity(kind BlockEntityKind, pos BlockPos) *BlockEntity {
	return &BlockEntity{Kind: kind, Pos: pos, Fields: map[string]string{}}
}

// WireID returns the kind's string identifier, as used in its serialized compound.
func (k BlockEntityKind) WireID() string { return wireID[k] }

// Compound serializes the block entity to its NBT representation.
func (be *BlockEntity) Compound() nbt.Tag {
	fields := map[string]nbt.Tag{
		"id": nbt.String(be.Kind.WireID()),
		"x":  nbt.Int(be.Pos.X),
		"y":  nbt.Int(be.Pos.Y),
		"z":  nbt.Int(be.Pos.Z),
	}
	if be.Kind == BlockEntitySign {
		for i, line := range be.SignLines {
			fields[signLineKey(i)] = nbt.String(line)
		}
	}
	for k, v := range be.Fields {
		fields[k] = nbt.String(v)
	}
	return nbt.Compound(fields)
}

func signLineKey(i int) string {
	return [4]string{"Text1", "Text2", "Text3", "Text4"}[i]
}

// blockEntityKindFor returns the block-entity kind a block type implies,
// and whether that type carries a block entity at all.
func blockEntityKindFor(blockType uint8) (BlockEntityKind, bool) {
	switch blockType {
	case 61, 62: // furnace / lit furnace
		return BlockEntityFurnace, true
	case 54: // chest
		return BlockEntityChest, true
	case 130: // ender chest
		return BlockEntityEnderChest, true
	case 25: // noteblock
		return BlockEntityMusic, true
	case 23: // dropper
		return BlockEntityDropper, true
	case 158: // dropper (old id alias kept for completeness)
		return BlockEntityDropper, true
	case 63, 68: // sign post / wall sign
		return BlockEntitySign, true
	case 52: // mob spawner
		return BlockEntityMobSpawner, true
	case 29, 33, 34: // pistons
		return BlockEntityPiston, true
	case 118: // cauldron
		return BlockEntityCauldron, true
	case 116: // enchanting table
		return BlockEntityEnchantTable, true
	case 119, 120: // end portal / frame
		return BlockEntityAirportal, true
	case 138: // beacon
		return BlockEntityBeacon, true
	case 144: // skull
		return BlockEntitySkull, true
	case 151: // daylight detector
		return BlockEntityDLDetector, true
	case 154: // hopper
		return BlockEntityHopper, true
	case 149, 150: // comparator
		return BlockEntityComparator, true
	case 140: // flower pot
		return BlockEntityFlowerPot, true
	case 176, 177: // banner
		return BlockEntityBanner, true
	default:
		return 0, false
	}
}
