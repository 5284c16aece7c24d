package meshing

// voxelAt maps the merger's (forward, right, bit) triple for a given axis
// back to a real voxel coordinate, following the same axis roles the
// column/face-mask arrays were built with (see columns.go):
//
//	axis 0 (X): bit=x, forward=z, right=y
//	axis 1 (Y): bit=y, forward=x, right=z
//	axis 2 (Z): bit=z, forward=y, right=x
func voxelAt(src VoxelSource, axis, forward, right, bit int) uint8 {
	switch axis {
	case 0:
		return src.Voxel(bit, right, forward)
	case 1:
		return src.Voxel(forward, bit, right)
	default:
		return src.Voxel(right, forward, bit)
	}
}

// mergeAll runs the greedy merger over all six faces. Each face is an
// independent 2D sweep over its (forward, right) plane with the third
// (bit-packed) axis resolved via CTZ, ported from the original
// binary-greedy-meshing mesh() loop and extended with a same-type check at
// every merge decision so adjacent cells of different materials never
// combine into one quad (spec.md's type-homogeneity invariant).
func (m *MeshData) mergeAll(src VoxelSource) {
	m.growMergedArrays()
	for face := FacePosX; face <= FaceNegZ; face++ {
		m.faceVertexBegin[face] = len(m.Vertices)
		m.faceVertexLength[face] = 0
		mergeFace(src, m.faces[face], face, m)
	}
}

func mergeFace(src VoxelSource, faceMask []uint64, face Face, out *MeshData) {
	axis := face.Axis()
	positive := face.Positive()

	mergedForward := out.mergedForward
	for i := range mergedForward {
		mergedForward[i] = 0
	}
	mergedRight := out.mergedRight

	for forward := 1; forward < csLastBit; forward++ {
		bitsWalkingRight := uint64(0)
		for i := range mergedRight {
			mergedRight[i] = 0
		}
		forwardAtEdge := forward >= CS

		for right := 1; right < csLastBit; right++ {
			idx := forward*CS_P + right
			bitsHere := faceMask[idx] &^ edgeMask
			if bitsHere == 0 {
				bitsWalkingRight = 0
				continue
			}

			var bitsMergingForward uint64
			if !forwardAtEdge {
				candidate := bitsHere &^ bitsWalkingRight & faceMask[idx+CS_P]
				for candidate != 0 {
					bit := trailingZeros64(candidate)
					candidate &= candidate - 1
					if voxelAt(src, axis, forward, right, bit) == voxelAt(src, axis, forward+1, right, bit) {
						bitsMergingForward |= 1 << uint(bit)
						mergedForward[right*CS_P+bit]++
					}
				}
			}

			var bitsMergingRight uint64
			if right < CS {
				bitsMergingRight = bitsHere & faceMask[idx+1]
			}

			bitsStoppedForward := bitsHere &^ bitsMergingForward
			for bitsStoppedForward != 0 {
				bit := trailingZeros64(bitsStoppedForward)
				bitsStoppedForward &= bitsStoppedForward - 1

				typ := voxelAt(src, axis, forward, right, bit)

				if (bitsMergingRight>>uint(bit))&1 == 1 &&
					mergedForward[right*CS_P+bit] == mergedForward[(right+1)*CS_P+bit] &&
					voxelAt(src, axis, forward, right+1, bit) == typ {
					bitsWalkingRight |= 1 << uint(bit)
					mergedRight[bit]++
					mergedForward[right*CS_P+bit] = 0
					continue
				}
				bitsWalkingRight &^= 1 << uint(bit)

				meshLeft := right - mergedRight[bit]
				meshRight := right + 1
				meshFront := forward - mergedForward[right*CS_P+bit]
				meshBack := forward + 1
				meshUp := bit
				if positive {
					meshUp++
				}

				mergedForward[right*CS_P+bit] = 0
				mergedRight[bit] = 0

				width := meshRight - meshLeft
				height := meshBack - meshFront
				out.emitQuad(face, meshFront, meshLeft, meshUp, width, height, typ)
			}
		}
	}
}
