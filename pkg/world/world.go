package world

import "sync"

// Dimension selects the sky-light behavior of a world's chunks.
type Dimension int

const (
	Overworld Dimension = iota
	Nether
	End
)

// HasSkyLight reports whether chunks in this dimension carry sky light.
func (d Dimension) HasSkyLight() bool { return d == Overworld }

// spawnProtectionRadius is the half-width (in chunks) of the square
// centered on the spawn chunk that is never unloaded, even when abandoned.
const spawnProtectionRadius = 10 // 21x21

// World owns every loaded chunk for one dimension, plus the spawn position
// used both for new-player placement and spawn-protection unload bookkeeping.
type World struct {
	mu        sync.Mutex
	Dimension Dimension
	Spawn     BlockPos
	chunks    map[ChunkPos]*Chunk
}

// NewWorld constructs an empty world with the given dimension and spawn point.
func NewWorld(dim Dimension, spawn BlockPos) *World {
	return &World{
		Dimension: dim,
		Spawn:     spawn,
		chunks:    map[ChunkPos]*Chunk{},
	}
}

// GetChunk returns the chunk at pos, realizing it on demand, and marks
// requester as an observer of it (inserted into its vicinity set).
func (w *World) GetChunk(pos ChunkPos, requester PlayerID) *Chunk {
	w.mu.Lock()
	defer w.mu.Unlock()

	c, ok := w.chunks[pos]
	if !ok {
		c = w.generate(pos)
		w.chunks[pos] = c
	}
	c.AddObserver(requester)
	return c
}

// PeekChunk returns the chunk at pos without loading it or touching its
// vicinity set; it returns (nil, false) if the chunk is not resident.
func (w *World) PeekChunk(pos ChunkPos) (*Chunk, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	c, ok := w.chunks[pos]
	return c, ok
}

// UnloadChunkIfRequired removes requester from pos's vicinity set and, if
// the chunk is then abandoned and lies outside the spawn-protection
// rectangle, drops it from the world.
func (w *World) UnloadChunkIfRequired(pos ChunkPos, requester PlayerID) {
	w.mu.Lock()
	defer w.mu.Unlock()

	c, ok := w.chunks[pos]
	if !ok {
		return
	}
	c.RemoveObserver(requester)
	if c.Abandoned() && !w.withinSpawnProtection(pos) {
		delete(w.chunks, pos)
	}
}

func (w *World) withinSpawnProtection(pos ChunkPos) bool {
	spawnChunk := w.Spawn.ChunkPos()
	dx := pos.X - spawnChunk.X
	if dx < 0 {
		dx = -dx
	}
	dz := pos.Z - spawnChunk.Z
	if dz < 0 {
		dz = -dz
	}
	return dx <= spawnProtectionRadius && dz <= spawnProtectionRadius
}

// SetBlock writes b at pos. It panics if the enclosing chunk is not
// loaded — callers must have previously loaded it via GetChunk. Successful
// writes do not themselves emit protocol packets.
func (w *World) SetBlock(pos BlockPos, b BlockID) {
	w.mu.Lock()
	defer w.mu.Unlock()

	cp := pos.ChunkPos()
	c, ok := w.chunks[cp]
	if !ok {
		panic("world: SetBlock on unloaded chunk")
	}
	lx, _, lz := pos.Local()
	c.SetBlock(lx, pos.Y, lz, b)
}

// GetBlock reads the block at pos, realizing its chunk if absent. Unlike
// SetBlock this never panics: reads are side-effect free with respect to
// the vicinity bookkeeping that GetChunk would otherwise perform, so it
// loads directly without registering an observer.
func (w *World) GetBlock(pos BlockPos) BlockID {
	w.mu.Lock()
	defer w.mu.Unlock()

	cp := pos.ChunkPos()
	c, ok := w.chunks[cp]
	if !ok {
		c = w.generate(cp)
		w.chunks[cp] = c
	}
	lx, _, lz := pos.Local()
	return c.GetBlock(lx, pos.Y, lz)
}

// generate realizes a new chunk column using the trivial flat-world
// height map: bedrock at y=0, dirt through y=3, grass at y=4, air above.
// Must be called with w.mu held.
func (w *World) generate(pos ChunkPos) *Chunk {
	c := NewChunk(pos, w.Dimension.HasSkyLight())
	for lx := int32(0); lx < 16; lx++ {
		for lz := int32(0); lz < 16; lz++ {
			c.SetBlock(lx, 0, lz, NewBlockID(7, 0))  // bedrock
			c.SetBlock(lx, 1, lz, NewBlockID(3, 0))  // dirt
			c.SetBlock(lx, 2, lz, NewBlockID(3, 0))  // dirt
			c.SetBlock(lx, 3, lz, NewBlockID(3, 0))  // dirt
			c.SetBlock(lx, 4, lz, NewBlockID(2, 0))  // grass
		}
	}
	return c
}
