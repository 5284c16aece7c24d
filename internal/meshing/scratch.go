package meshing

// MeshData is a reusable scratch arena for one mesh build. A caller meshing
// many chunks (typically one per worker, see pool.go) keeps a MeshData per
// goroutine and calls Build repeatedly instead of allocating fresh slices
// every time: the column bitmaps, face masks, and merge counters are all
// grown once and then reused in place, and the packed vertex buffer only
// grows when it runs out of room (doubling, like append would).
//
// A MeshData must not be used from more than one goroutine at a time, but
// has no other state shared with the mesher package, so distinct instances
// never contend with each other.
type MeshData struct {
	cols  [3][]uint64
	faces [6][]uint64

	mergedForward []int
	mergedRight   []int

	Vertices []uint64

	// faceVertexBegin/faceVertexLength index into Vertices, letting a
	// renderer submit one draw call per face without re-scanning the
	// buffer. Index i holds the span for Face(i).
	faceVertexBegin  [6]int
	faceVertexLength [6]int
}

// NewMeshData returns an empty arena with no preallocated capacity. Reusing
// one across Build calls is what makes the preallocation pay off; a
// throwaway one-shot caller can just construct a zero-value MeshData too.
func NewMeshData() *MeshData {
	return &MeshData{}
}

// Reset clears the output of the previous Build without releasing the
// underlying arrays, so the next Build starts from a clean vertex count
// but keeps whatever capacity was grown into.
func (m *MeshData) Reset() {
	m.Vertices = m.Vertices[:0]
	for i := range m.faceVertexBegin {
		m.faceVertexBegin[i] = 0
		m.faceVertexLength[i] = 0
	}
}

// FaceSpan returns the [begin,begin+length) range of Vertices produced for
// the given face by the most recent Build call.
func (m *MeshData) FaceSpan(f Face) (begin, length int) {
	return m.faceVertexBegin[f], m.faceVertexLength[f]
}

// VertexCount is the number of quads written to Vertices by the most recent
// Build, always equal to len(Vertices) (0 for an empty mesh). The original
// implementation's last-index-plus-one counter is not reproduced.
func (m *MeshData) VertexCount() int {
	if len(m.Vertices) == 0 {
		return 0
	}
	return len(m.Vertices)
}

func (m *MeshData) growMergedArrays() {
	if cap(m.mergedForward) < CSP2 {
		m.mergedForward = make([]int, CSP2)
	}
	if cap(m.mergedRight) < CS_P {
		m.mergedRight = make([]int, CS_P)
	}
}

func (m *MeshData) appendVertex(v uint64) {
	m.Vertices = append(m.Vertices, v)
}

// Build runs the full binary greedy meshing pipeline against src and leaves
// the result in m.Vertices / m.faceVertexBegin / m.faceVertexLength. It is
// a total function: every reachable (voxel grid, face) combination is
// handled, and it never returns an error (spec.md §7).
func (m *MeshData) Build(src VoxelSource) {
	m.Reset()
	buildColumns(src, &m.cols)
	buildFaceMasks(m.cols, &m.faces)
	m.mergeAll(src)
}

// BuildFromOpaqueZ is the fast path for a caller (internal/voxel.Chunk) that
// already maintains the Z-axis opaque column bitmap incrementally as voxels
// are written, instead of paying for buildColumns' full grid scan for that
// axis too.
func (m *MeshData) BuildFromOpaqueZ(src VoxelSource, opaqueZ []uint64) {
	m.Reset()
	fillColumnsFromOpaque(src, opaqueZ, &m.cols)
	buildFaceMasks(m.cols, &m.faces)
	m.mergeAll(src)
}
