package terrain

import (
	"github.com/cgerikj/binary-greedy-meshing/internal/config"
	"github.com/cgerikj/binary-greedy-meshing/internal/voxel"
)

// Generator fills voxel.Chunks with a layered height-map terrain: stone
// below the surface, a few layers of dirt, and a single grass layer on top.
// Grounded on the teacher's internal/world/generator.go shape (a small
// struct of tunable fbm parameters driving a per-column fill loop).
type Generator struct {
	Seed        int64
	Octaves     int
	Persistence float64
	Lacunarity  float64

	BaseHeight      float64
	AmplitudeHeight float64
	DirtDepth       int
}

// NewGenerator returns a Generator with reasonable defaults for meshing
// demos: a gently rolling surface around y=32 with about a 16-voxel range.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		Seed:            seed,
		Octaves:         4,
		Persistence:     0.5,
		Lacunarity:      2.0,
		BaseHeight:      32,
		AmplitudeHeight: 16,
		DirtDepth:       4,
	}
}

// Fill writes voxels into every (x,z) column of c, including its border
// ring, using world-space coordinates derived from c's chunk position so
// adjacent chunks' borders agree with their neighbour's interior. Columns
// whose surface falls below config.GetSeaLevel() are flooded with water
// up to sea level, and when config.GetCaves() is set, a second noise
// field carves pockets of air out of everything below the top two layers
// of each column (stone and the lower dirt layers alike).
func (g *Generator) Fill(c *voxel.Chunk) {
	originX := c.X * voxel.CS
	originY := c.Y * voxel.CS
	originZ := c.Z * voxel.CS

	seaLevel := config.GetSeaLevel()
	caves := config.GetCaves()

	for lx := 0; lx < voxel.CS_P; lx++ {
		wx := float64(originX + lx - 1)
		for lz := 0; lz < voxel.CS_P; lz++ {
			wz := float64(originZ + lz - 1)
			n := octaveNoise2D(wx/64, wz/64, g.Seed, g.Octaves, g.Persistence, g.Lacunarity)
			surface := int(g.BaseHeight + (n*2-1)*g.AmplitudeHeight)

			for ly := 0; ly < voxel.CS_P; ly++ {
				wy := originY + ly - 1
				if wy > surface {
					if wy <= seaLevel {
						c.Set(lx, ly, lz, MaterialWater)
					}
					continue
				}

				if caves && g.isCave(wx, float64(wy), wz) && wy < surface-1 {
					continue
				}

				switch {
				case wy == surface:
					c.Set(lx, ly, lz, MaterialGrass)
				case wy > surface-g.DirtDepth:
					c.Set(lx, ly, lz, MaterialDirt)
				default:
					c.Set(lx, ly, lz, MaterialStone)
				}
			}
		}
	}
}

// isCave reports whether (wx, wy, wz) falls inside a carved cave pocket,
// sampling the 2D value-noise field along two offset-seeded planes and
// carving where both cross a high threshold — a cheap stand-in for true
// 3D noise that still produces connected, winding pockets rather than
// isolated bubbles.
func (g *Generator) isCave(wx, wy, wz float64) bool {
	const threshold = 0.78
	a := valueNoise2D(wx/12, wy/12, g.Seed+9001)
	b := valueNoise2D(wy/12, wz/12, g.Seed+7331)
	return a > threshold && b > threshold
}
