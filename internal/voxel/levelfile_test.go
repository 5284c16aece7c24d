package voxel

import (
	"bytes"
	"testing"
)

func TestLevelFileWriteReadRoundTrip(t *testing.T) {
	lf := NewLevelFile(2)

	a := make([]uint8, 100)
	for i := 10; i < 40; i++ {
		a[i] = 1
	}
	b := make([]uint8, 100)
	for i := 0; i < 100; i++ {
		b[i] = 2
	}

	lf.AddChunk(ChunkKey(0, 0, 0), a)
	lf.AddChunk(ChunkKey(1, 0, 0), b)

	var buf bytes.Buffer
	if _, err := lf.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	got, err := ReadLevelFile(&buf)
	if err != nil {
		t.Fatalf("ReadLevelFile: %v", err)
	}
	if got.Size != 2 {
		t.Fatalf("Size = %d, want 2", got.Size)
	}
	if len(got.Table) != 4 {
		t.Fatalf("len(Table) = %d, want 4 (size*size)", len(got.Table))
	}

	rleA, ok := got.RLEFor(ChunkKey(0, 0, 0))
	if !ok {
		t.Fatal("chunk (0,0,0) missing from round-tripped table")
	}
	decodedA := make([]uint8, len(a))
	col := make([]uint64, csP2)
	Decompress(rleA, decodedA, col)
	if !bytes.Equal(decodedA, a) {
		t.Fatal("chunk (0,0,0) round-trip mismatch")
	}

	rleB, ok := got.RLEFor(ChunkKey(1, 0, 0))
	if !ok {
		t.Fatal("chunk (1,0,0) missing from round-tripped table")
	}
	decodedB := make([]uint8, len(b))
	Decompress(rleB, decodedB, col)
	if !bytes.Equal(decodedB, b) {
		t.Fatal("chunk (1,0,0) round-trip mismatch")
	}
}

func TestChunkKeyPacksCoordinates(t *testing.T) {
	key := ChunkKey(1, 2, 3)
	want := uint32(3)<<16 | uint32(2)<<8 | uint32(1)
	if key != want {
		t.Fatalf("ChunkKey(1,2,3) = %#x, want %#x", key, want)
	}
}

func TestRLEForMissingKey(t *testing.T) {
	lf := NewLevelFile(1)
	if _, ok := lf.RLEFor(ChunkKey(9, 9, 9)); ok {
		t.Fatal("RLEFor should report false for an unknown key")
	}
}
