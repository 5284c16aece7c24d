package voxel

import (
	"bytes"
	"testing"
)

func TestCompressDecompressRoundTrip(t *testing.T) {
	voxels := make([]uint8, csP3)
	for i := 1000; i < 1500; i++ {
		voxels[i] = 3
	}
	for i := 5000; i < 5010; i++ {
		voxels[i] = 7
	}

	rle := Compress(voxels)

	got := make([]uint8, csP3)
	col := make([]uint64, csP2)
	Decompress(rle, got, col)

	if !bytes.Equal(got, voxels) {
		for i := range voxels {
			if got[i] != voxels[i] {
				t.Fatalf("first mismatch at %d: got %d, want %d", i, got[i], voxels[i])
			}
		}
	}
}

func TestCompressSplitsLongRuns(t *testing.T) {
	voxels := make([]uint8, 600)
	for i := range voxels {
		voxels[i] = 4
	}
	rle := Compress(voxels)

	// 600 = 255 + 255 + 90, so three (type,length) pairs.
	if len(rle) != 6 {
		t.Fatalf("len(rle) = %d, want 6", len(rle))
	}
	total := 0
	for i := 0; i+1 < len(rle); i += 2 {
		if rle[i] != 4 {
			t.Fatalf("run %d type = %d, want 4", i/2, rle[i])
		}
		total += int(rle[i+1])
	}
	if total != 600 {
		t.Fatalf("decoded total length = %d, want 600", total)
	}
}

func TestDecompressBuildsOpaqueColumnBitmap(t *testing.T) {
	voxels := make([]uint8, csP3)
	voxels[index(3, 4, 10)] = 1
	voxels[index(3, 4, 11)] = 1

	rle := Compress(voxels)
	got := make([]uint8, csP3)
	col := make([]uint64, csP2)
	Decompress(rle, got, col)

	want := uint64(1)<<10 | uint64(1)<<11
	if col[4*CS_P+3] != want {
		t.Fatalf("col[4*CS_P+3] = %#x, want %#x", col[4*CS_P+3], want)
	}
}

func TestDecompressChunkMatchesManualSet(t *testing.T) {
	manual := NewChunk(1, 2, 3)
	manual.Set(0, 0, 0, 9)
	manual.Set(1, 1, 1, 9)

	rle := Compress(manual.voxels[:])

	decoded := NewChunk(1, 2, 3)
	DecompressChunk(rle, decoded)

	if decoded.NonAirCount() != manual.NonAirCount() {
		t.Fatalf("NonAirCount mismatch: got %d, want %d", decoded.NonAirCount(), manual.NonAirCount())
	}
	if decoded.Voxel(0, 0, 0) != 9 || decoded.Voxel(1, 1, 1) != 9 {
		t.Fatal("decoded chunk missing expected voxels")
	}
	if decoded.OpaqueColumnZ()[0] != manual.OpaqueColumnZ()[0] {
		t.Fatal("decoded chunk's opaque column bitmap does not match the source")
	}
}
