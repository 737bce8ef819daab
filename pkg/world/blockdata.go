package world

// IsInstantBreak reports whether b has zero hardness, so survival-mode
// clients break it with only a start-digging status packet.
func IsInstantBreak(b BlockID) bool {
	switch b.Type() {
	case 6, // sapling
		27, 28, // powered/detector rails
		30,     // cobweb
		31, 32, // tall grass, dead bush
		37, 38, 39, 40, // flowers, mushrooms
		50,     // torch
		51,     // fire
		55,     // redstone wire
		59,     // wheat
		63, 68, // sign post, wall sign
		65,     // ladder
		66,     // rail
		69,     // lever
		70, 72, // stone/wooden pressure plate
		75, 76, // redstone torches
		77,     // button
		78,     // snow layer
		83,     // sugar cane
		90,     // nether portal
		93, 94, // repeater
		106,      // vine
		111,      // lily pad
		115,      // nether wart
		119, 120, // end portal, end portal frame
		131, 132, // tripwire hook, tripwire
		141, 142, // carrot, potato
		143,      // wooden button
		144,      // head
		147, 148, // golden/stone pressure plate
		149, 150, // comparator
		151,      // daylight sensor
		154,      // hopper
		157,      // activator rail
		175,      // double plant
		176, 177: // banner (standing/wall)
		return true
	}
	return false
}

// BlockToItem returns the item type, metadata, and count that should be
// dropped when b is broken. itemType is -1 if nothing drops.
func BlockToItem(b BlockID) (itemType int16, itemMeta int16, count byte) {
	blockType := b.Type()
	meta := int16(b.Meta())

	switch blockType {
	case 0, 7, 8, 9, 10, 11: // air, bedrock, water, lava
		return -1, 0, 0
	case 20, 95, 102, 160: // glass, stained glass, glass/stained panes
		return -1, 0, 0
	case 2: // grass block -> dirt
		return 3, 0, 1
	case 1: // stone: meta 0 -> cobblestone, variants drop themselves
		if meta == 0 {
			return 4, 0, 1
		}
		return 1, meta, 1
	case 17, 162: // logs -> themselves, strip orientation bits
		return int16(blockType), meta & 0x03, 1
	case 18, 161: // leaves
		return -1, 0, 0
	case 31: // tall grass
		return -1, 0, 0
	case 59: // wheat
		if meta == 7 {
			return 296, 0, 1
		}
		return 295, 0, 1
	case 60: // farmland -> dirt
		return 3, 0, 1
	case 64:
		return 324, 0, 1
	case 71:
		return 330, 0, 1
	case 193:
		return 427, 0, 1
	case 194:
		return 428, 0, 1
	case 195:
		return 429, 0, 1
	case 196:
		return 430, 0, 1
	case 197:
		return 431, 0, 1
	case 175: // double plant, top half drops nothing
		if meta&0x08 != 0 {
			return -1, 0, 0
		}
		return 175, meta & 0x07, 1
	case 53, 67, 108, 109, 114, 128, 134, 135, 136, 156, 163, 164, 180: // stairs
		return int16(blockType), 0, 1
	case 50:
		return 50, 0, 1
	case 75, 76:
		return 76, 0, 1
	case 16:
		return 263, 0, 1
	case 56:
		return 264, 0, 1
	case 73, 74:
		return 331, 0, 4
	case 21:
		return 351, 4, 6
	case 129:
		return 388, 0, 1
	case 153:
		return 406, 0, 1
	case 82:
		return 337, 0, 4
	case 89:
		return 348, 0, 3
	case 169:
		return 410, 0, 2
	case 3: // dirt
		if meta == 1 {
			return 3, 1, 1
		}
		return 3, 0, 1
	case 4:
		return 4, 0, 1
	case 5:
		return 5, meta, 1
	case 6: // sapling, strip age bit
		return 6, meta & 0x07, 1
	case 12:
		return 12, meta, 1
	case 13:
		return 13, 0, 1
	case 19:
		return 19, meta, 1
	case 24:
		return 24, meta, 1
	case 26: // bed, only foot half drops
		if meta&0x08 != 0 {
			return -1, 0, 0
		}
		return 355, 0, 1
	case 35:
		return 35, meta, 1
	case 37:
		return 37, 0, 1
	case 38:
		return 38, meta, 1
	case 43: // double slab -> 2 slabs
		return 44, meta & 0x07, 2
	case 44:
		return 44, meta & 0x07, 1
	case 54:
		return 54, 0, 1
	case 61, 62:
		return 61, 0, 1
	case 97:
		return 97, meta, 1
	case 98:
		return 98, meta, 1
	case 125: // double wooden slab -> 2 slabs
		return 126, meta & 0x07, 2
	case 126:
		return 126, meta & 0x07, 1
	case 139:
		return 139, meta, 1
	case 145: // anvil, keep damage level, strip rotation
		return 145, (meta >> 2) & 0x03, 1
	case 155: // quartz pillar orientation collapses
		if meta >= 2 {
			return 155, 2, 1
		}
		return 155, meta, 1
	case 159:
		return 159, meta, 1
	case 168:
		return 168, meta, 1
	case 171:
		return 171, meta, 1
	case 179:
		return 179, meta, 1
	default:
		return int16(blockType), 0, 1
	}
}
