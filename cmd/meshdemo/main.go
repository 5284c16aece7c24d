// Command meshdemo streams a grid of terrain-generated chunks through the
// meshing pool and renders the packed-quad result in a free-fly camera.
// Structured the way the teacher's cmd/mini-mc/main.go wires window setup,
// a renderer, and a world together, trimmed to this repo's much smaller
// scope: no player, inventory, or block-breaking interaction.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/cgerikj/binary-greedy-meshing/internal/config"
	"github.com/cgerikj/binary-greedy-meshing/internal/input"
	"github.com/cgerikj/binary-greedy-meshing/internal/meshing"
	"github.com/cgerikj/binary-greedy-meshing/internal/profiling"
	"github.com/cgerikj/binary-greedy-meshing/internal/render"
	"github.com/cgerikj/binary-greedy-meshing/internal/terrain"
	"github.com/cgerikj/binary-greedy-meshing/internal/voxel"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	winWidth  = 1280
	winHeight = 720

	// Chunks loaded in each horizontal direction and vertically around the
	// origin at startup.
	gridRadiusXZ = 3
	gridRadiusY  = 1

	maxArenaQuads = 4_000_000
)

func init() { runtime.LockOSThread() }

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "meshdemo:", err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		return err
	}

	renderer, err := render.NewRenderer(maxArenaQuads)
	if err != nil {
		return err
	}
	defer renderer.Delete()

	im := input.NewManager()
	im.SetCallbacks(window)

	cam := render.NewCamera(mgl32.Vec3{0, float32(voxel.CS) + 16, 0}, winWidth, winHeight)

	pool := meshing.NewPool(config.GetMeshWorkers(), 256)
	defer pool.Shutdown()

	gen := terrain.NewGenerator(1)
	resident := make(map[[3]int]struct{})

	// Stream the initial grid synchronously so the first frame already
	// shows terrain, mirroring the teacher's StreamChunksAroundSync call
	// for a smooth startup instead of popping chunks in over several
	// frames.
	type pending struct {
		coord [3]int
		ch    chan meshing.Result
	}
	startupTimer := render.NewTimer("startup grid")
	startupTimer.Start()

	var inFlight []pending
	for gy := -gridRadiusY; gy <= gridRadiusY; gy++ {
		for gx := -gridRadiusXZ; gx <= gridRadiusXZ; gx++ {
			for gz := -gridRadiusXZ; gz <= gridRadiusXZ; gz++ {
				coord := [3]int{gx, gy, gz}
				c := voxel.NewChunk(gx, gy, gz)
				gen.Fill(c)
				result := make(chan meshing.Result, 1)
				pool.Submit(meshing.Job{Coord: coord, Source: c, AO: config.GetAmbientOcclusion(), Result: result})
				inFlight = append(inFlight, pending{coord: coord, ch: result})
			}
		}
	}
	for _, p := range inFlight {
		res := <-p.ch
		if len(res.Vertices) == 0 {
			continue
		}
		if err := renderer.UploadChunk(res.Coord, res.Vertices, res.Spans); err != nil {
			fmt.Fprintln(os.Stderr, "meshdemo: upload:", err)
			continue
		}
		resident[res.Coord] = struct{}{}
	}
	fmt.Printf("meshdemo: %s took %s for %d chunks\n", startupTimer.Description(), startupTimer.Stop(), len(inFlight))

	lightDir := mgl32.Vec3{-0.4, -1.0, -0.3}.Normalize()
	lastFrame := time.Now()
	limiter := render.NewFPSLimiter()

	for !window.ShouldClose() {
		now := time.Now()
		dt := float32(now.Sub(lastFrame).Seconds())
		lastFrame = now

		glfw.PollEvents()
		handleInput(im, cam, dt)

		if im.JustPressed(input.ActionToggleWireframe) {
			config.ToggleWireframeMode()
		}
		if im.JustPressed(input.ActionToggleAO) {
			config.ToggleAmbientOcclusion()
		}
		if im.JustPressed(input.ActionTogglePause) {
			window.SetShouldClose(true)
		}

		profiling.ResetFrame()
		renderer.Render(cam, lightDir, float32(voxel.CS), resident)

		window.SwapBuffers()
		im.PostUpdate()
		limiter.Wait()
	}
	return nil
}

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(winWidth, winHeight, "meshdemo", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}

	glfw.SwapInterval(0)
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	return window, nil
}

const (
	moveSpeed   = 12.0
	sprintBoost = 2.5
)

func handleInput(im *input.Manager, cam *render.Camera, dt float32) {
	dx, dy := im.MouseDelta()
	cam.ProcessMouseMovement(float32(dx), float32(dy))

	var speed float32 = moveSpeed
	if im.IsActive(input.ActionSprint) {
		speed *= sprintBoost
	}
	step := speed * dt

	if im.IsActive(input.ActionMoveForward) {
		cam.Position = cam.Position.Add(cam.Front().Mul(step))
	}
	if im.IsActive(input.ActionMoveBackward) {
		cam.Position = cam.Position.Sub(cam.Front().Mul(step))
	}
	if im.IsActive(input.ActionMoveLeft) {
		cam.Position = cam.Position.Sub(cam.Right().Mul(step))
	}
	if im.IsActive(input.ActionMoveRight) {
		cam.Position = cam.Position.Add(cam.Right().Mul(step))
	}
	if im.IsActive(input.ActionMoveUp) {
		cam.Position = cam.Position.Add(mgl32.Vec3{0, step, 0})
	}
	if im.IsActive(input.ActionMoveDown) {
		cam.Position = cam.Position.Sub(mgl32.Vec3{0, step, 0})
	}
}
