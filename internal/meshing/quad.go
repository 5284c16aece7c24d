package meshing

// packQuad packs a merged rectangle into a single 64-bit word:
//
//	bits  0- 5  x (0..63)
//	bits  6-11  y (0..63)
//	bits 12-17  z (0..63)
//	bits 18-23  w (1..62, extent along the face's "right" in-plane axis)
//	bits 24-29  h (1..62, extent along the face's "forward" in-plane axis)
//	bits 32-39  type (material id, 1..255)
//
// (x,y,z) is the rectangle's minimum corner; which real axis w and h run
// along depends on the face (see the table in emitQuad) and is implicit,
// the same way the original format leaves the face itself out of the word
// and carries it alongside via faceVertexBegin/Length instead.
func packQuad(x, y, z, w, h int, typ uint8) uint64 {
	return uint64(x&0x3f) |
		uint64(y&0x3f)<<6 |
		uint64(z&0x3f)<<12 |
		uint64(w&0x3f)<<18 |
		uint64(h&0x3f)<<24 |
		uint64(typ)<<32
}

// emitQuad converts one merged run, expressed in the face-local
// (front, left, up, width, height) coordinates the merger works in, into
// real chunk coordinates and appends the packed word.
//
//	face pair   up (bit axis)   front (forward)   left (right)   w axis   h axis
//	0/1 (X)     x                z                 y               y        z
//	2/3 (Y)     y                x                 z               z        x
//	4/5 (Z)     z                y                 x               x        y
func (m *MeshData) emitQuad(face Face, front, left, up, width, height int, typ uint8) {
	var x, y, z int
	switch face.Axis() {
	case 0:
		x, y, z = up, left, front
	case 1:
		x, y, z = front, up, left
	case 2:
		x, y, z = left, front, up
	}
	m.appendVertex(packQuad(x, y, z, width, height, typ))
	m.faceVertexLength[face]++
}

// emitQuadAO is emitQuad's ambient-occlusion sibling: same face-local to
// real-coordinate conversion, but the packed word also carries the four
// corner AO values used by BuildAO.
func (m *MeshData) emitQuadAO(face Face, front, left, up, width, height int, typ uint8, ao [4]uint8) {
	var x, y, z int
	switch face.Axis() {
	case 0:
		x, y, z = up, left, front
	case 1:
		x, y, z = front, up, left
	case 2:
		x, y, z = left, front, up
	}
	m.appendVertex(packedQuadAO(packQuad(x, y, z, width, height, typ), ao))
	m.faceVertexLength[face]++
}
