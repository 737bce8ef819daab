package world

import "testing"

func TestSectionSetGetRoundTrip(t *testing.T) {
	s := NewSection(true)
	s.SetBlock(1, 2, 3, NewBlockID(1, 0))
	if got := s.GetBlock(1, 2, 3); got != NewBlockID(1, 0) {
		t.Errorf("GetBlock = %v, want stone", got)
	}
	if got := s.GetBlock(0, 0, 0); got != AirBlock {
		t.Errorf("untouched cell = %v, want air", got)
	}
}

func TestSectionAirCountTracksMutations(t *testing.T) {
	s := NewSection(false)
	if !s.IsEmpty() {
		t.Fatal("fresh section should be empty")
	}
	s.SetBlock(0, 0, 0, NewBlockID(1, 0))
	if s.IsEmpty() {
		t.Fatal("section with one stone block should not be empty")
	}
	s.SetBlock(0, 0, 0, AirBlock)
	if !s.IsEmpty() {
		t.Fatal("section should be empty again after reverting to air")
	}
}

func TestSectionPaletteGrowthPromotesBitWidth(t *testing.T) {
	s := NewSection(false)
	for i := 0; i < 20; i++ {
		s.SetBlock(int32(i%16), int32(i/16), 0, NewBlockID(uint8(i+1), 0))
	}
	for i := 0; i < 20; i++ {
		want := NewBlockID(uint8(i+1), 0)
		if got := s.GetBlock(int32(i%16), int32(i/16), 0); got != want {
			t.Errorf("cell %d = %v, want %v", i, got, want)
		}
	}
}

func TestChunkSetBlockInsertsAndRemovesBlockEntity(t *testing.T) {
	c := NewChunk(ChunkPos{0, 0}, true)
	pos := BlockPos{X: 3, Y: 10, Z: 4}

	c.SetBlock(3, 10, 4, NewBlockID(54, 0)) // chest
	be, ok := c.BlockEntityAt(pos)
	if !ok {
		t.Fatal("expected chest to insert a block entity")
	}
	if be.Kind != BlockEntityChest {
		t.Errorf("kind = %v, want BlockEntityChest", be.Kind)
	}

	c.SetBlock(3, 10, 4, AirBlock)
	if _, ok := c.BlockEntityAt(pos); ok {
		t.Error("clearing the block should remove its block entity")
	}
}

func TestChunkVicinityAndPresence(t *testing.T) {
	c := NewChunk(ChunkPos{0, 0}, true)
	p1 := PlayerID{1}
	p2 := PlayerID{2}

	c.AddObserver(p1)
	c.AddObserver(p2)
	if c.Abandoned() {
		t.Fatal("chunk with two observers should not be abandoned")
	}
	c.RemoveObserver(p1)
	if c.Abandoned() {
		t.Fatal("chunk with one remaining observer should not be abandoned")
	}
	c.RemoveObserver(p2)
	if !c.Abandoned() {
		t.Fatal("chunk with no observers should be abandoned")
	}

	c.AddPresent(p1)
	if _, ok := c.PlayersPresent()[p1]; !ok {
		t.Fatal("p1 should be present")
	}
	c.RemovePresent(p1)
	if _, ok := c.PlayersPresent()[p1]; ok {
		t.Fatal("p1 should no longer be present")
	}
}

func TestEncodeGroundUpContinuousSkipsEmptySections(t *testing.T) {
	c := NewChunk(ChunkPos{0, 0}, true)
	c.SetBlock(0, 0, 0, NewBlockID(7, 0))   // section 0
	c.SetBlock(0, 200, 0, NewBlockID(1, 0)) // section 12

	data, mask := c.EncodeGroundUpContinuous()
	if mask != (1<<0 | 1<<12) {
		t.Errorf("mask = %016b, want bits 0 and 12 set", mask)
	}
	// 2 sections * (4096*2 blocks + 2048 block-light + 2048 sky-light) + 256 biomes
	wantLen := 2*(sectionCells*2+2048+2048) + 256
	if len(data) != wantLen {
		t.Errorf("len(data) = %d, want %d", len(data), wantLen)
	}
}

func TestEncodeGroundUpNonContinuousOmitsBiomes(t *testing.T) {
	c := NewChunk(ChunkPos{0, 0}, false)
	data := c.EncodeGroundUpNonContinuous(1)
	wantLen := sectionCells*2 + 2048 // blocks + block-light, no sky light, no biomes
	if len(data) != wantLen {
		t.Errorf("len(data) = %d, want %d", len(data), wantLen)
	}
}
