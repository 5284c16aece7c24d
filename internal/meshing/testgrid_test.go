package meshing

// grid is the simplest possible VoxelSource: a dense padded array, used
// across this package's tests the same way greedy_test.go in the teacher
// repo built a small in-memory chunk before meshing it.
type grid struct {
	v [CSP3]uint8
}

func (g *grid) Voxel(x, y, z int) uint8 {
	if x < 0 || y < 0 || z < 0 || x >= CS_P || y >= CS_P || z >= CS_P {
		return 0
	}
	return g.v[voxelIndex(x, y, z)]
}

func (g *grid) Set(x, y, z int, t uint8) {
	g.v[voxelIndex(x, y, z)] = t
}

func (g *grid) fillBox(x0, y0, z0, x1, y1, z1 int, t uint8) {
	for x := x0; x < x1; x++ {
		for y := y0; y < y1; y++ {
			for z := z0; z < z1; z++ {
				g.Set(x, y, z, t)
			}
		}
	}
}

func quadArea(q uint64) int {
	w := int((q >> 18) & 0x3f)
	h := int((q >> 24) & 0x3f)
	return w * h
}

func quadType(q uint64) uint8 {
	return uint8((q >> 32) & 0xff)
}
