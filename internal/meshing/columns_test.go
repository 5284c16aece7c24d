package meshing

import "testing"

func TestBuildColumnsSingleVoxel(t *testing.T) {
	g := &grid{}
	g.Set(5, 6, 7, 1)

	var cols [3][]uint64
	buildColumns(g, &cols)

	check := func(name string, got []uint64, idx, bit int) {
		for i, word := range got {
			want := uint64(0)
			if i == idx {
				want = 1 << uint(bit)
			}
			if word != want {
				t.Fatalf("%s[%d] = %#x, want %#x", name, i, word, want)
			}
		}
	}

	check("cols[0]", cols[0], 7*CS_P+6, 5)
	check("cols[1]", cols[1], 5*CS_P+7, 6)
	check("cols[2]", cols[2], 6*CS_P+5, 7)
}

func TestFillColumnsFromOpaqueMatchesBuildColumns(t *testing.T) {
	g := &grid{}
	g.fillBox(1, 1, 1, 4, 3, 2, 1)
	g.Set(10, 10, 10, 2)

	var want [3][]uint64
	buildColumns(g, &want)

	opaqueZ := make([]uint64, CSP2)
	copy(opaqueZ, want[2])

	var got [3][]uint64
	fillColumnsFromOpaque(g, opaqueZ, &got)

	for a := 0; a < 3; a++ {
		for i := range want[a] {
			if got[a][i] != want[a][i] {
				t.Fatalf("axis %d word %d: got %#x want %#x", a, i, got[a][i], want[a][i])
			}
		}
	}
}
