package game

import "github.com/quartzmc/quartzd/pkg/world"

// chunksInRect returns every chunk position within radius chunks of
// center (inclusive), forming the square view rectangle used for chunk
// streaming and vicinity membership.
func chunksInRect(center world.ChunkPos, radius int32) []world.ChunkPos {
	out := make([]world.ChunkPos, 0, (2*radius+1)*(2*radius+1))
	for dx := -radius; dx <= radius; dx++ {
		for dz := -radius; dz <= radius; dz++ {
			out = append(out, world.ChunkPos{X: center.X + dx, Z: center.Z + dz})
		}
	}
	return out
}

// inRect reports whether pos lies within radius chunks of center.
func inRect(center, pos world.ChunkPos, radius int32) bool {
	dx := pos.X - center.X
	if dx < 0 {
		dx = -dx
	}
	dz := pos.Z - center.Z
	if dz < 0 {
		dz = -dz
	}
	return dx <= radius && dz <= radius
}

// chunkSetDiff returns the elements of a not present in b.
func chunkSetDiff(a []world.ChunkPos, b map[world.ChunkPos]bool) []world.ChunkPos {
	var out []world.ChunkPos
	for _, pos := range a {
		if !b[pos] {
			out = append(out, pos)
		}
	}
	return out
}

// rectDiff returns the elements of a not present in b.
func rectDiff(a, b []world.ChunkPos) []world.ChunkPos {
	inB := make(map[world.ChunkPos]bool, len(b))
	for _, pos := range b {
		inB[pos] = true
	}
	var out []world.ChunkPos
	for _, pos := range a {
		if !inB[pos] {
			out = append(out, pos)
		}
	}
	return out
}
