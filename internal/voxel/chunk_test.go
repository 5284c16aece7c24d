package voxel

import "testing"

func TestChunkSetGetRoundTrip(t *testing.T) {
	c := NewChunk(0, 0, 0)
	if c.Voxel(5, 5, 5) != 0 {
		t.Fatal("fresh chunk should be all air")
	}

	c.Set(5, 5, 5, 9)
	if got := c.Voxel(5, 5, 5); got != 9 {
		t.Fatalf("Voxel(5,5,5) = %d, want 9", got)
	}
	if !c.Dirty() {
		t.Fatal("Set should mark the chunk dirty")
	}
	c.ClearDirty()
	if c.Dirty() {
		t.Fatal("ClearDirty should clear the flag")
	}
}

func TestChunkOutOfBoundsIsAir(t *testing.T) {
	c := NewChunk(0, 0, 0)
	c.Set(5, 5, 5, 1)
	for _, p := range [][3]int{{-1, 0, 0}, {0, -1, 0}, {0, 0, -1}, {CS_P, 0, 0}, {0, CS_P, 0}, {0, 0, CS_P}} {
		if c.Voxel(p[0], p[1], p[2]) != 0 {
			t.Errorf("Voxel%v should be air (out of bounds)", p)
		}
	}
}

func TestChunkOpaqueColumnZMatchesVoxels(t *testing.T) {
	c := NewChunk(0, 0, 0)
	c.Set(3, 4, 10, 1)
	c.Set(3, 4, 11, 2)

	col := c.OpaqueColumnZ()
	word := col[4*CS_P+3]
	want := uint64(1)<<10 | uint64(1)<<11
	if word != want {
		t.Fatalf("OpaqueColumnZ[4*CS_P+3] = %#x, want %#x", word, want)
	}

	c.Set(3, 4, 10, 0)
	word = c.OpaqueColumnZ()[4*CS_P+3]
	if word != uint64(1)<<11 {
		t.Fatalf("after clearing (3,4,10): word = %#x, want bit 11 only", word)
	}
}

func TestChunkNonAirCount(t *testing.T) {
	c := NewChunk(0, 0, 0)
	if c.NonAirCount() != 0 {
		t.Fatalf("fresh chunk NonAirCount = %d, want 0", c.NonAirCount())
	}
	c.Set(1, 1, 1, 5)
	c.Set(2, 2, 2, 5)
	if c.NonAirCount() != 2 {
		t.Fatalf("NonAirCount = %d, want 2", c.NonAirCount())
	}
	c.Set(1, 1, 1, 0)
	if c.NonAirCount() != 1 {
		t.Fatalf("after clearing one voxel: NonAirCount = %d, want 1", c.NonAirCount())
	}
	c.Set(2, 2, 2, 7) // overwrite with a different material, count unchanged
	if c.NonAirCount() != 1 {
		t.Fatalf("overwrite should not change NonAirCount: got %d, want 1", c.NonAirCount())
	}
}
