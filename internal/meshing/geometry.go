// Package meshing implements the binary greedy mesher: it turns a padded
// dense voxel grid into a minimal set of axis-aligned textured quads using
// 64-bit column bitmasks and greedy rectangle merging.
package meshing

const (
	// CS is the visible chunk edge length.
	CS = 62
	// CS_P is the padded edge length; coordinates 1..CS are visible, 0 and
	// CS_P-1 are the border copied from neighbouring chunks.
	CS_P = CS + 2
	// CS2 is CS*CS, the number of cells in one face plane.
	CS2 = CS * CS
	// CSP2 is CS_P*CS_P, the number of columns in the padded grid.
	CSP2 = CS_P * CS_P
	// CSP3 is CS_P*CS_P*CS_P, the number of voxels in the padded grid.
	CSP3 = CS_P * CS_P * CS_P

	// csLastBit is the bit index of the far border cell in a column word.
	csLastBit = CS_P - 1

	// edgeMask has the two border bits (0 and csLastBit) set; ANDing its
	// complement into a face mask clears any quad that would touch the border.
	edgeMask = (uint64(1) << csLastBit) | 1
)

// Face identifies one of the six cardinal directions a voxel can expose.
// Faces come in axis pairs: 0/1 are +X/-X, 2/3 are +Y/-Y, 4/5 are +Z/-Z.
type Face int

const (
	FacePosX Face = iota
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ
)

// Axis returns which of the three chunk axes this face is perpendicular to (0=X, 1=Y, 2=Z).
func (f Face) Axis() int { return int(f) / 2 }

// Positive reports whether the face points in the increasing direction of its axis.
func (f Face) Positive() bool { return f%2 == 0 }

// voxelIndex returns the linear YXZ index of voxel (x,y,z) in a padded CS_P3 grid.
// This ordering is load-bearing: the column builder's inner loop walks z
// contiguously so it lines up with the bit direction within a column word.
func voxelIndex(x, y, z int) int {
	return z + x*CS_P + y*CSP2
}

// columnIndex returns the index into a CSP2-sized column array for (x,y).
func columnIndex(y, x int) int {
	return y*CS_P + x
}
