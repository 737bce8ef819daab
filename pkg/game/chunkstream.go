package game

import (
	"github.com/quartzmc/quartzd/pkg/protocol"
	"github.com/quartzmc/quartzd/pkg/world"
)

// bulkGroupSize is the number of columns flushed per MapChunkBulk packet.
const bulkGroupSize = 8

// streamChunks loads and sends every chunk in positions to p, flushing a
// MapChunkBulk packet every bulkGroupSize columns.
func streamChunks(s *Server, p *Player, positions []world.ChunkPos) {
	skyLight := s.World.Dimension.HasSkyLight()

	var headers []protocol.ChunkBulkHeader
	var bodies [][]byte

	flush := func() {
		if len(headers) == 0 {
			return
		}
		p.Send(protocol.EncodeMapChunkBulk(skyLight, headers, bodies))
		headers = nil
		bodies = nil
	}

	for _, pos := range positions {
		c := s.World.GetChunk(pos, p.Identifier)
		data, mask := c.EncodeGroundUpContinuous()
		headers = append(headers, protocol.ChunkBulkHeader{ChunkX: pos.X, ChunkZ: pos.Z, PrimaryBitMask: mask})
		bodies = append(bodies, data)
		p.loadedChunks[pos] = true

		if len(headers) >= bulkGroupSize {
			flush()
		}
	}
	flush()
}

// unstreamChunks sends an empty ground-up continuous packet for every
// position (signaling the client to unload it) and releases the server's
// hold on it.
func unstreamChunks(s *Server, p *Player, positions []world.ChunkPos) {
	for _, pos := range positions {
		p.Send(protocol.EncodeChunkData(pos.X, pos.Z, true, 0, nil))
		s.World.UnloadChunkIfRequired(pos, p.Identifier)
		delete(p.loadedChunks, pos)
	}
}
