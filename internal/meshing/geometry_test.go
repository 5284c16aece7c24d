package meshing

import "testing"

func TestFaceAxisAndDirection(t *testing.T) {
	cases := []struct {
		f        Face
		axis     int
		positive bool
	}{
		{FacePosX, 0, true},
		{FaceNegX, 0, false},
		{FacePosY, 1, true},
		{FaceNegY, 1, false},
		{FacePosZ, 2, true},
		{FaceNegZ, 2, false},
	}
	for _, c := range cases {
		if got := c.f.Axis(); got != c.axis {
			t.Errorf("Face(%d).Axis() = %d, want %d", c.f, got, c.axis)
		}
		if got := c.f.Positive(); got != c.positive {
			t.Errorf("Face(%d).Positive() = %v, want %v", c.f, got, c.positive)
		}
	}
}

func TestVoxelIndexDistinct(t *testing.T) {
	seen := make(map[int]struct{}, 8)
	for _, p := range [][3]int{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {5, 6, 7}, {CS_P - 1, CS_P - 1, CS_P - 1}} {
		idx := voxelIndex(p[0], p[1], p[2])
		if idx < 0 || idx >= CSP3 {
			t.Fatalf("voxelIndex%v = %d out of range", p, idx)
		}
		if _, ok := seen[idx]; ok {
			t.Fatalf("voxelIndex%v collided with a previous point", p)
		}
		seen[idx] = struct{}{}
	}
}
