package render

import (
	"fmt"

	"github.com/cgerikj/binary-greedy-meshing/internal/config"
	"github.com/cgerikj/binary-greedy-meshing/internal/profiling"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer owns the GL state for drawing meshed chunks: the chunk shader,
// the shared GPU quad arena, and per-frame clear/draw bookkeeping.
// Grounded on the shape of the teacher's graphics.Renderer (Init sets up
// GPU objects once, Render runs the per-frame clear/draw/present
// sequence) trimmed to the single draw pass this demo needs — no block
// instancing, wireframe overlay mesh, crosshair, or font rendering.
type Renderer struct {
	shader  *Shader
	buffers *ChunkBuffers
}

// NewRenderer compiles the chunk shader and allocates a quad arena sized
// for capacityQuads quads across every resident chunk.
func NewRenderer(capacityQuads int) (*Renderer, error) {
	shader, err := NewShader("assets/shaders/chunk.vert", "assets/shaders/chunk.frag")
	if err != nil {
		return nil, fmt.Errorf("render: new renderer: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)

	return &Renderer{
		shader:  shader,
		buffers: NewChunkBuffers(capacityQuads),
	}, nil
}

// UploadChunk pushes a freshly built mesh for the chunk at coord (world
// chunk coordinates, not voxel coordinates) into the GPU arena.
func (r *Renderer) UploadChunk(coord [3]int, vertices []uint64, spans [6][2]int) error {
	defer profiling.Track("render.UploadChunk")()
	return r.buffers.Upload(coord, vertices, spans)
}

// RemoveChunk frees coord's GPU allocation, e.g. when it leaves the
// render distance.
func (r *Renderer) RemoveChunk(coord [3]int) {
	r.buffers.Remove(coord)
}

// Render clears the frame and draws every resident chunk from cam's point
// of view. chunkSize is the world-space size of one chunk edge (CS in
// voxel units), used to place each chunk's origin uniform.
func (r *Renderer) Render(cam *Camera, lightDir mgl32.Vec3, chunkSize float32, resident map[[3]int]struct{}) {
	defer profiling.Track("render.Render")()

	if config.GetWireframeMode() {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	gl.ClearColor(0.53, 0.8, 0.92, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.shader.Use()
	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix()
	r.shader.SetMatrix4("uView", &view[0])
	r.shader.SetMatrix4("uProjection", &proj[0])
	r.shader.SetVector3("uLightDir", lightDir.X(), lightDir.Y(), lightDir.Z())

	r.buffers.BeginDraw()
	for coord := range resident {
		origin := mgl32.Vec3{
			float32(coord[0]) * chunkSize,
			float32(coord[1]) * chunkSize,
			float32(coord[2]) * chunkSize,
		}
		r.shader.SetVector3("uChunkOrigin", origin.X(), origin.Y(), origin.Z())
		r.buffers.drawOne(coord)
	}
	r.buffers.EndDraw()
}

// Delete releases GPU resources.
func (r *Renderer) Delete() {
	r.buffers.Delete()
}
