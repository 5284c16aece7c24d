package meshing

import "testing"

func randomishChunk() *grid {
	g := &grid{}
	for x := 1; x <= CS; x++ {
		for z := 1; z <= CS; z++ {
			height := 1 + (x*7+z*13)%20
			for y := 1; y <= height; y++ {
				typ := uint8(1 + (x+y+z)%3)
				g.Set(x, y, z, typ)
			}
		}
	}
	return g
}

func BenchmarkBuildFullChunk(b *testing.B) {
	g := randomishChunk()
	m := NewMeshData()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.Build(g)
	}
}

func BenchmarkBuildAOFullChunk(b *testing.B) {
	g := randomishChunk()
	m := NewMeshData()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.BuildAO(g)
	}
}
