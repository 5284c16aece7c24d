package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// quadSlotBytes is the GPU footprint of one packed quad: its uint64 split
// into two uint32 words (attribute location 0 = low word, location 1 =
// high word), since v4.1-core has no 64-bit integer vertex attribute.
const quadSlotBytes = 8

// ChunkBuffers owns one shared GPU vertex buffer holding every visible
// chunk's packed quads, addressed through a best-fit slotAllocator. Each
// chunk's mesh is drawn with one instanced draw call per non-empty face
// span (6 vertices per instance, one instance per quad), the vertex shader unpacking corner
// position, face, type, and AO straight out of the two uint32 attributes
// with gl_VertexID selecting which of a quad's 4 corners to emit. Grounded
// on Leterax-go-voxels' ChunkBufferManager (one shared buffer, per-chunk
// AddChunk/RemoveChunk, indexed draws) and the teacher's renderer.go
// VAO/VBO setup idiom, but trades that manager's persistent-mapped triple
// buffering for straightforward glBufferSubData uploads, and its fixed
// per-chunk slot size for the variable-length best-fit allocator above —
// packed-quad chunk meshes vary far more in size than the teacher's fixed
// per-block instance data did.
type ChunkBuffers struct {
	vao uint32
	vbo uint32

	capacityQuads int
	nextID        int
	idOf          map[[3]int]int
	spansOf       map[[3]int][6][2]int // local (begin, length) within the chunk's arena span, per face
	alloc         *slotAllocator
}

// NewChunkBuffers allocates a shared quad buffer sized for capacityQuads
// quads total across every resident chunk.
func NewChunkBuffers(capacityQuads int) *ChunkBuffers {
	b := &ChunkBuffers{
		capacityQuads: capacityQuads,
		idOf:          make(map[[3]int]int),
		spansOf:       make(map[[3]int][6][2]int),
		alloc:         newSlotAllocator(capacityQuads),
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, capacityQuads*quadSlotBytes, nil, gl.DYNAMIC_DRAW)

	gl.VertexAttribIPointerWithOffset(0, 1, gl.UNSIGNED_INT, quadSlotBytes, 0)
	gl.VertexAttribDivisor(0, 1)
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribIPointerWithOffset(1, 1, gl.UNSIGNED_INT, quadSlotBytes, 4)
	gl.VertexAttribDivisor(1, 1)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return b
}

// faceBitShift places a 3-bit face index (0-5) in word bits otherwise
// unused by both the plain and AO packed-quad formats (bits 32-39 hold
// type, bits 40-47 hold AO when present), so the vertex shader can derive
// a face normal without the mesh-interchange format itself needing to
// carry it — the meshing package intentionally leaves the face out of
// the word and tracks it via per-face spans instead (see MeshData.Build),
// and this is the GPU-only place those spans get folded back in.
const faceBitShift = 48

// Upload uploads vertices (one uint64 per packed quad, spec-format, no
// face bits) as coord's mesh, together with spans describing which
// contiguous sub-range of vertices belongs to each of the 6 faces (the
// same [6][2]int shape as pool.Result.Spans). It replaces any previous
// allocation for that chunk. Upload returns an error if the arena has no
// free span large enough; the caller should grow the arena (a fresh
// NewChunkBuffers with more capacity, re-uploading every resident chunk)
// and retry.
func (b *ChunkBuffers) Upload(coord [3]int, vertices []uint64, spans [6][2]int) error {
	b.Remove(coord)
	if len(vertices) == 0 {
		return nil
	}

	id, exists := b.idOf[coord]
	if !exists {
		id = b.nextID
		b.nextID++
		b.idOf[coord] = id
	}

	offset, ok := b.alloc.Allocate(id, len(vertices))
	if !ok {
		delete(b.idOf, coord)
		return fmt.Errorf("render: chunk buffer out of space (%d/%d quads free)", b.alloc.LargestFree(), b.capacityQuads)
	}
	b.spansOf[coord] = spans

	words := make([]uint32, len(vertices)*2)
	for face, span := range spans {
		begin, length := span[0], span[1]
		for i := begin; i < begin+length; i++ {
			tagged := vertices[i] | uint64(face)<<faceBitShift
			words[i*2] = uint32(tagged)
			words[i*2+1] = uint32(tagged >> 32)
		}
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, offset*quadSlotBytes, len(words)*4, gl.Ptr(words))
	return nil
}

// Remove frees coord's GPU allocation, if any. It is safe to call for a
// chunk that was never uploaded.
func (b *ChunkBuffers) Remove(coord [3]int) {
	id, ok := b.idOf[coord]
	if !ok {
		return
	}
	b.alloc.Free(id)
	delete(b.idOf, coord)
	delete(b.spansOf, coord)
}

// BeginDraw binds the chunk VAO and vertex buffer; call once before a run
// of drawOne calls and EndDraw once after.
func (b *ChunkBuffers) BeginDraw() {
	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
}

// EndDraw unbinds the chunk VAO.
func (b *ChunkBuffers) EndDraw() {
	gl.BindVertexArray(0)
}

// drawOne issues one instanced draw call per non-empty face span of
// coord's mesh. Callers are expected to have already bound the VAO and
// set per-chunk shader uniforms (uChunkOrigin).
//
// v4.1-core predates ARB_base_instance, so there is no
// DrawArraysInstancedBaseInstance to offset gl_InstanceID by a chunk's
// arena position. Instead each draw re-points the instanced attributes at
// that span's slot before issuing a plain DrawArraysInstanced starting
// from instance 0.
func (b *ChunkBuffers) drawOne(coord [3]int) {
	id, ok := b.idOf[coord]
	if !ok {
		return
	}
	s, ok := b.alloc.Lookup(id)
	if !ok {
		return
	}
	spans := b.spansOf[coord]
	for _, span := range spans {
		begin, length := span[0], span[1]
		if length == 0 {
			continue
		}
		byteOffset := (s.offset + begin) * quadSlotBytes
		gl.VertexAttribIPointerWithOffset(0, 1, gl.UNSIGNED_INT, quadSlotBytes, uint32(byteOffset))
		gl.VertexAttribIPointerWithOffset(1, 1, gl.UNSIGNED_INT, quadSlotBytes, uint32(byteOffset+4))
		gl.DrawArraysInstanced(gl.TRIANGLES, 0, 6, int32(length))
	}
}

// Delete releases the underlying GPU objects.
func (b *ChunkBuffers) Delete() {
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteVertexArrays(1, &b.vao)
}
