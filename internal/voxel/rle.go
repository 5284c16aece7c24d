package voxel

// Compress turns a flat voxel array into a run-length encoded byte stream:
// each run is a (type, length) pair where length is capped at 255, so a
// longer run of the same type is split into several consecutive pairs.
// Ported from original_source/src/data/rle.h's addRleRun/compress, with the
// recursive length split rewritten as the equivalent loop.
func Compress(voxels []uint8) []byte {
	out := make([]byte, 0, len(voxels)/8)
	if len(voxels) == 0 {
		return out
	}

	typ := voxels[0]
	length := 0
	for _, v := range voxels {
		if v == typ {
			length++
			continue
		}
		out = appendRuns(out, typ, length)
		typ = v
		length = 1
	}
	return appendRuns(out, typ, length)
}

func appendRuns(out []byte, typ uint8, length int) []byte {
	for length > 255 {
		out = append(out, typ, 255)
		length -= 255
	}
	out = append(out, typ, uint8(length))
	return out
}

// Decompress expands an RLE byte stream back into CS_P3 voxels and, in the
// same pass, the Z-axis opaque column bitmap the mesher needs (spec.md §6):
// bit z of col[y*CS_P+x] set iff the decoded voxel at (x,y,z) is non-air.
// Computing both from one scan avoids a second full pass over the grid
// after loading, mirroring rle.h's decompressToVoxelsAndOpaqueMask.
func Decompress(rle []byte, voxels []uint8, col []uint64) {
	for i := range col {
		col[i] = 0
	}

	pos := 0
	for i := 0; i+1 < len(rle); i += 2 {
		typ := rle[i]
		length := int(rle[i+1])
		for k := 0; k < length; k++ {
			voxels[pos+k] = typ
		}
		if typ != 0 {
			for k := 0; k < length; k++ {
				idx := pos + k
				y := idx / csP2
				rem := idx % csP2
				x := rem / CS_P
				z := rem % CS_P
				col[y*CS_P+x] |= 1 << uint(z)
			}
		}
		pos += length
	}
}

// DecompressChunk decompresses rle directly into c, leaving c ready to mesh
// without an additional OpaqueColumnZ rebuild.
func DecompressChunk(rle []byte, c *Chunk) {
	Decompress(rle, c.voxels[:], c.opaqueZ[:])
	c.nonAir = 0
	for _, v := range c.voxels {
		if v != 0 {
			c.nonAir++
		}
	}
	c.dirty = true
}
