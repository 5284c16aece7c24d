package meshing

// VoxelSource supplies voxel type bytes for a padded CS_P^3 chunk. A zero
// byte means air; any non-zero byte is an opaque material id that can be
// greedily merged with other cells sharing the same id.
//
// Implementations only need to answer Voxel(x,y,z) for x,y,z in [0,CS_P);
// internal/voxel.Chunk is the production implementation.
type VoxelSource interface {
	Voxel(x, y, z int) uint8
}

// buildColumns derives the three axis-projected opaque column bitmaps from
// a padded voxel grid. cols[0] is keyed by (z,y) with bit x set, cols[1] by
// (x,z) with bit y set, cols[2] by (y,x) with bit z set — cols[2] is exactly
// the "opaque column bitmap" spec.md's external interface contracts
// (bit z of cols[2][y*CS_P+x] equals voxel(x,y,z) != 0), so a caller that
// already maintains that single array in its chunk storage can pass it in
// directly via fillColumnsFromOpaque instead of paying for this full scan.
func buildColumns(src VoxelSource, cols *[3][]uint64) {
	for a := range cols {
		if cap(cols[a]) < CSP2 {
			cols[a] = make([]uint64, CSP2)
		} else {
			cols[a] = cols[a][:CSP2]
			for i := range cols[a] {
				cols[a][i] = 0
			}
		}
	}
	for y := 0; y < CS_P; y++ {
		for x := 0; x < CS_P; x++ {
			for z := 0; z < CS_P; z++ {
				if src.Voxel(x, y, z) == 0 {
					continue
				}
				cols[0][z*CS_P+y] |= 1 << uint(x)
				cols[1][x*CS_P+z] |= 1 << uint(y)
				cols[2][y*CS_P+x] |= 1 << uint(z)
			}
		}
	}
}

// fillColumnsFromOpaque derives cols[0] and cols[1] from an already-built Z
// opaque column bitmap (cols[2]) and the voxel grid, skipping the Z-bit
// bookkeeping the caller already did. It still needs one full pass over the
// grid because cols[0]/cols[1] are bit-packed along X and Y respectively,
// not Z, so their words cannot be derived by reshuffling cols[2] alone.
func fillColumnsFromOpaque(src VoxelSource, opaqueZ []uint64, cols *[3][]uint64) {
	// Copy rather than alias: a later buildColumns reuses cols[2] in place
	// and would otherwise overwrite the caller's bitmap.
	if cap(cols[2]) < CSP2 {
		cols[2] = make([]uint64, CSP2)
	} else {
		cols[2] = cols[2][:CSP2]
	}
	copy(cols[2], opaqueZ)
	for a := 0; a < 2; a++ {
		if cap(cols[a]) < CSP2 {
			cols[a] = make([]uint64, CSP2)
		} else {
			cols[a] = cols[a][:CSP2]
			for i := range cols[a] {
				cols[a][i] = 0
			}
		}
	}
	for y := 0; y < CS_P; y++ {
		for x := 0; x < CS_P; x++ {
			if opaqueZ[y*CS_P+x] == 0 {
				continue
			}
			for z := 0; z < CS_P; z++ {
				if src.Voxel(x, y, z) == 0 {
					continue
				}
				cols[0][z*CS_P+y] |= 1 << uint(x)
				cols[1][x*CS_P+z] |= 1 << uint(y)
			}
		}
	}
}
