package world

import (
	"bytes"

	"github.com/quartzmc/quartzd/pkg/bitstorage"
)

const (
	sectionCells     = 16 * 16 * 16
	ChunkHeight      = 256
	SectionsPerChunk = ChunkHeight / 16
	initialBitWidth  = 4
)

// Section is a palette-compressed 16x16x16 cube of blocks plus its light
// data. Index 0 of a freshly constructed section's palette is always air.
type Section struct {
	palette    []BlockID
	blocks     *bitstorage.VarWidthArray
	blockLight *bitstorage.NibbleArray
	skyLight   *bitstorage.NibbleArray // nil when the dimension has no sky light
	airCount   int
}

// NewSection constructs an empty section (all air, full light) for a
// dimension with (hasSkyLight) or without sky light.
func NewSection(hasSkyLight bool) *Section {
	s := &Section{
		palette:    []BlockID{AirBlock},
		blocks:     bitstorage.NewVarWidthArray(sectionCells, initialBitWidth),
		blockLight: bitstorage.NewNibbleArrayFilled(sectionCells, 15),
		airCount:   sectionCells,
	}
	if hasSkyLight {
		s.skyLight = bitstorage.NewNibbleArrayFilled(sectionCells, 15)
	}
	return s
}

func cellIndex(lx, ly, lz int32) int {
	return int(ly*256 + lz*16 + lx)
}

// GetBlock returns the block at local coordinates (each in [0,16)).
func (s *Section) GetBlock(lx, ly, lz int32) BlockID {
	idx := s.blocks.Get(cellIndex(lx, ly, lz))
	if int(idx) >= len(s.palette) {
		return AirBlock
	}
	return s.palette[idx]
}

// SetBlock sets the block at local coordinates, growing the palette and
// promoting the backing array's bit width as needed. air_count is kept
// exact by comparing the previous and new block against the air sentinel.
func (s *Section) SetBlock(lx, ly, lz int32, b BlockID) {
	cell := cellIndex(lx, ly, lz)
	prev := s.GetBlock(lx, ly, lz)

	idx := s.paletteIndex(b)
	s.blocks.Set(cell, uint64(idx))

	if prev.IsAir() && !b.IsAir() {
		s.airCount--
	} else if !prev.IsAir() && b.IsAir() {
		s.airCount++
	}
}

// paletteIndex returns b's index in the palette, appending it (and
// promoting the backing array if the new count needs more bits) on a miss.
func (s *Section) paletteIndex(b BlockID) int {
	for i, v := range s.palette {
		if v == b {
			return i
		}
	}
	s.palette = append(s.palette, b)
	idx := len(s.palette) - 1
	if needed := bitstorage.BitsNeeded(len(s.palette) - 1); needed > s.blocks.BitWidth() {
		s.blocks = s.blocks.ChangeBitWidth(needed)
	}
	return idx
}

// IsEmpty reports whether every cell in the section is air.
func (s *Section) IsEmpty() bool { return s.airCount == sectionCells }

// PlayerID is the stable 128-bit player identifier used by chunk
// bookkeeping. Defined here rather than imported from the game package so
// that world has no dependency on it — chunks store identifiers, never
// player references.
type PlayerID [16]byte

// Chunk is a column of up to 16 sections plus per-column metadata: the
// biome grid, the player-presence/vicinity sets, and block entities.
type Chunk struct {
	Pos      ChunkPos
	sections [SectionsPerChunk]*Section
	biomes   [256]byte
	hasSky   bool

	playersPresent map[PlayerID]struct{}
	vicinity       map[PlayerID]struct{}

	blockEntities map[BlockPos]*BlockEntity
}

// NewChunk constructs an empty chunk column; hasSky determines whether
// freshly realized sections carry sky light.
func NewChunk(pos ChunkPos, hasSky bool) *Chunk {
	c := &Chunk{
		Pos:            pos,
		hasSky:         hasSky,
		playersPresent: map[PlayerID]struct{}{},
		vicinity:       map[PlayerID]struct{}{},
		blockEntities:  map[BlockPos]*BlockEntity{},
	}
	for i := range c.biomes {
		c.biomes[i] = 1 // plains
	}
	return c
}

// GetBlock returns the block at the given in-chunk coordinates; air if
// the enclosing section is absent.
func (c *Chunk) GetBlock(lx, y, lz int32) BlockID {
	sec := int(y) / 16
	if sec < 0 || sec >= SectionsPerChunk || c.sections[sec] == nil {
		return AirBlock
	}
	return c.sections[sec].GetBlock(lx, floorMod16(y), lz)
}

// SetBlock sets the block at the given in-chunk coordinates, realizing
// the section on demand. It also maintains the block-entity map: placing
// a block whose type has an associated block-entity inserts a default
// instance; overwriting or removing it removes the entry.
func (c *Chunk) SetBlock(lx, y, lz int32, b BlockID) {
	sec := int(y) / 16
	if sec < 0 || sec >= SectionsPerChunk {
		return
	}
	if c.sections[sec] == nil {
		c.sections[sec] = NewSection(c.hasSky)
	}
	c.sections[sec].SetBlock(lx, floorMod16(y), lz, b)

	pos := BlockPos{X: c.Pos.X*16 + lx, Y: y, Z: c.Pos.Z*16 + lz}
	if kind, ok := blockEntityKindFor(b.Type()); ok {
		c.blockEntities[pos] = NewBlockEntity(kind, pos)
	} else {
		delete(c.blockEntities, pos)
	}
}

// BlockEntityAt returns the block entity at pos, if any.
func (c *Chunk) BlockEntityAt(pos BlockPos) (*BlockEntity, bool) {
	be, ok := c.blockEntities[pos]
	return be, ok
}

// BlockEntities returns every block entity in the column.
func (c *Chunk) BlockEntities() map[BlockPos]*BlockEntity { return c.blockEntities }

// AddPresent inserts id into the players-present set.
func (c *Chunk) AddPresent(id PlayerID) { c.playersPresent[id] = struct{}{} }

// RemovePresent removes id from the players-present set.
func (c *Chunk) RemovePresent(id PlayerID) { delete(c.playersPresent, id) }

// PlayersPresent returns the set of players currently standing in this chunk.
func (c *Chunk) PlayersPresent() map[PlayerID]struct{} { return c.playersPresent }

// AddObserver inserts id into the vicinity set (its view rectangle
// contains this chunk).
func (c *Chunk) AddObserver(id PlayerID) { c.vicinity[id] = struct{}{} }

// RemoveObserver removes id from the vicinity set.
func (c *Chunk) RemoveObserver(id PlayerID) { delete(c.vicinity, id) }

// Vicinity returns the set of players whose view rectangle contains this chunk.
func (c *Chunk) Vicinity() map[PlayerID]struct{} { return c.vicinity }

// Abandoned reports whether the chunk's vicinity set is empty.
func (c *Chunk) Abandoned() bool { return len(c.vicinity) == 0 }

// primaryBitMask returns the bit mask of non-nil sections, optionally
// restricted to sections that are also non-empty (for the ground-up
// continuous encoding, which omits absent or empty sections).
func (c *Chunk) primaryBitMask(skipEmpty bool) uint16 {
	var mask uint16
	for i, sec := range c.sections {
		if sec == nil {
			continue
		}
		if skipEmpty && sec.IsEmpty() {
			continue
		}
		mask |= 1 << uint(i)
	}
	return mask
}

// EncodeGroundUpContinuous produces the "ground-up continuous" wire shape:
// every present, non-empty section (selected automatically) plus the full
// 16x16 biome grid. Returns the section data and the primary bit mask
// advertising which sections are included.
func (c *Chunk) EncodeGroundUpContinuous() ([]byte, uint16) {
	mask := c.primaryBitMask(true)
	return c.encodeSections(mask, true), mask
}

// EncodeGroundUpNonContinuous produces the "ground-up non-continuous"
// shape: exactly the sections flagged by mask (even if empty), without
// biomes — used for explicit partial updates.
func (c *Chunk) EncodeGroundUpNonContinuous(mask uint16) []byte {
	return c.encodeSections(mask, false)
}

// encodeSections writes the three stripes in wire order for every section
// flagged by mask: all blocks (2 bytes/cell little-endian), all block-light
// nibbles, then all sky-light nibbles if the dimension has sky light.
func (c *Chunk) encodeSections(mask uint16, withBiomes bool) []byte {
	var buf bytes.Buffer

	var included []*Section
	for i := 0; i < SectionsPerChunk; i++ {
		if mask&(1<<uint(i)) == 0 {
			continue
		}
		sec := c.sections[i]
		if sec == nil {
			sec = NewSection(c.hasSky)
		}
		included = append(included, sec)
	}

	for _, sec := range included {
		for i := 0; i < sectionCells; i++ {
			idx := sec.blocks.Get(i)
			var block BlockID
			if int(idx) < len(sec.palette) {
				block = sec.palette[idx]
			}
			buf.WriteByte(byte(block))
			buf.WriteByte(byte(block >> 8))
		}
	}
	for _, sec := range included {
		buf.Write(sec.blockLight.Bytes())
	}
	if c.hasSky {
		for _, sec := range included {
			sl := sec.skyLight
			if sl == nil {
				sl = bitstorage.NewNibbleArrayFilled(sectionCells, 15)
			}
			buf.Write(sl.Bytes())
		}
	}
	if withBiomes {
		buf.Write(c.biomes[:])
	}
	return buf.Bytes()
}

// SetBiome sets the biome byte at column-local (x,z).
func (c *Chunk) SetBiome(x, z int32, biome byte) { c.biomes[z*16+x] = biome }

// Biome returns the biome byte at column-local (x,z).
func (c *Chunk) Biome(x, z int32) byte { return c.biomes[z*16+x] }
