package voxel

import (
	"encoding/binary"
	"fmt"
	"io"
)

// chunkTableEntrySize is the on-disk size of one ChunkTableEntry: three
// little-endian uint32s (key, rleDataBegin, rleDataSize).
const chunkTableEntrySize = 12

// ChunkTableEntry locates one chunk's RLE payload inside a level file's
// data section. Key packs the chunk's grid coordinates as
// (z<<16)|(y<<8)|x, matching original_source/src/data/level_file.h.
type ChunkTableEntry struct {
	Key          uint32
	RLEDataBegin uint32
	RLEDataSize  uint32
}

// ChunkKey packs chunk coordinates into the table's key encoding. x, y, z
// must each fit in a byte (0-255).
func ChunkKey(x, y, z int) uint32 {
	return uint32(z)<<16 | uint32(y)<<8 | uint32(x)
}

// LevelFile is an in-memory world file: a square-world size byte, a lookup
// table of chunk table entries, and the concatenated RLE payloads the
// table's offsets point into. Ported from level_file.h's LevelFile class;
// Go's growable []byte replaces the C++ version's preallocated
// `1e5 * size * size`-byte buffer.
type LevelFile struct {
	Size  uint8
	Table []ChunkTableEntry
	Data  []byte
}

// NewLevelFile starts an empty level file for a size x size square world
// (size chunks along each of X and Z).
func NewLevelFile(size uint8) *LevelFile {
	return &LevelFile{Size: size}
}

// AddChunk RLE-compresses voxels and appends it to the data section,
// recording a new table entry under key.
func (lf *LevelFile) AddChunk(key uint32, voxels []uint8) {
	rleData := Compress(voxels)
	lf.Table = append(lf.Table, ChunkTableEntry{
		Key:          key,
		RLEDataBegin: uint32(len(lf.Data)),
		RLEDataSize:  uint32(len(rleData)),
	})
	lf.Data = append(lf.Data, rleData...)
}

// RLEFor returns the raw RLE bytes for the chunk stored under key, and
// whether it was found.
func (lf *LevelFile) RLEFor(key uint32) ([]byte, bool) {
	for _, e := range lf.Table {
		if e.Key == key {
			return lf.Data[e.RLEDataBegin : e.RLEDataBegin+e.RLEDataSize], true
		}
	}
	return nil, false
}

// WriteTo serializes the level file as: 1 size byte, Size*Size table
// entries, then the RLE payload — exactly level_file.h's documented layout.
func (lf *LevelFile) WriteTo(w io.Writer) (int64, error) {
	var written int64

	if _, err := w.Write([]byte{lf.Size}); err != nil {
		return written, fmt.Errorf("voxel: write level size: %w", err)
	}
	written++

	entry := make([]byte, chunkTableEntrySize)
	tableLen := int(lf.Size) * int(lf.Size)
	for i := 0; i < tableLen; i++ {
		var e ChunkTableEntry
		if i < len(lf.Table) {
			e = lf.Table[i]
		}
		binary.LittleEndian.PutUint32(entry[0:4], e.Key)
		binary.LittleEndian.PutUint32(entry[4:8], e.RLEDataBegin)
		binary.LittleEndian.PutUint32(entry[8:12], e.RLEDataSize)
		if _, err := w.Write(entry); err != nil {
			return written, fmt.Errorf("voxel: write chunk table entry %d: %w", i, err)
		}
		written += chunkTableEntrySize
	}

	n, err := w.Write(lf.Data)
	written += int64(n)
	if err != nil {
		return written, fmt.Errorf("voxel: write RLE payload: %w", err)
	}
	return written, nil
}

// ReadLevelFile parses a level file written by WriteTo.
func ReadLevelFile(r io.Reader) (*LevelFile, error) {
	all, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("voxel: read level file: %w", err)
	}
	if len(all) < 1 {
		return nil, fmt.Errorf("voxel: level file too short for size byte")
	}

	lf := &LevelFile{Size: all[0]}
	pos := 1
	tableLen := int(lf.Size) * int(lf.Size)
	tableBytes := tableLen * chunkTableEntrySize
	if len(all) < pos+tableBytes {
		return nil, fmt.Errorf("voxel: level file truncated in chunk table (want %d entries)", tableLen)
	}

	lf.Table = make([]ChunkTableEntry, tableLen)
	for i := 0; i < tableLen; i++ {
		off := pos + i*chunkTableEntrySize
		lf.Table[i] = ChunkTableEntry{
			Key:          binary.LittleEndian.Uint32(all[off : off+4]),
			RLEDataBegin: binary.LittleEndian.Uint32(all[off+4 : off+8]),
			RLEDataSize:  binary.LittleEndian.Uint32(all[off+8 : off+12]),
		}
	}
	pos += tableBytes
	lf.Data = all[pos:]
	return lf, nil
}
