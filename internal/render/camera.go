package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Fly camera defaults, ported from the original's misc/camera.h constants.
const (
	defaultYaw         = -90.0
	defaultPitch       = 0.0
	defaultSensitivity = 0.075
	defaultFOV         = 80.0
	defaultNear        = 0.1
	defaultFar         = 10000.0
	maxPitch           = 89.9
)

// Camera is a free-flying yaw/pitch camera, grounded on the teacher's
// internal/graphics.Camera (projection matrix bookkeeping) and the
// original's Camera class (front/right/up vector recomputation and mouse
// sensitivity handling), but unlike the teacher's version it does not
// delegate its view matrix to a player entity — this repo has none.
type Camera struct {
	Position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3

	Yaw, Pitch       float32
	MouseSensitivity float32
	FOV              float32
	AspectRatio      float32
	Near, Far        float32
}

// NewCamera returns a camera positioned at pos, facing -Z, sized for a
// width×height viewport.
func NewCamera(pos mgl32.Vec3, width, height int) *Camera {
	c := &Camera{
		Position:         pos,
		Yaw:              defaultYaw,
		Pitch:            defaultPitch,
		MouseSensitivity: defaultSensitivity,
		FOV:              defaultFOV,
		AspectRatio:      float32(width) / float32(height),
		Near:             defaultNear,
		Far:              defaultFar,
	}
	c.updateVectors()
	return c
}

// Resize recomputes the aspect ratio after a window resize.
func (c *Camera) Resize(width, height int) {
	c.AspectRatio = float32(width) / float32(height)
}

// ProcessMouseMovement applies a raw mouse delta, scaled by sensitivity, to
// yaw and pitch, clamping pitch away from the poles to avoid gimbal flip.
func (c *Camera) ProcessMouseMovement(xOffset, yOffset float32) {
	xOffset *= c.MouseSensitivity
	yOffset *= c.MouseSensitivity

	c.Yaw += xOffset
	c.Pitch -= yOffset
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
	c.updateVectors()
}

// Front, Right, Up expose the camera's current basis vectors, used by the
// demo to turn logical move actions into world-space translation.
func (c *Camera) Front() mgl32.Vec3 { return c.front }
func (c *Camera) Right() mgl32.Vec3 { return c.right }
func (c *Camera) Up() mgl32.Vec3    { return c.up }

func (c *Camera) updateVectors() {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)

	front := mgl32.Vec3{
		float32(math.Cos(float64(yaw)) * math.Cos(float64(pitch))),
		float32(math.Sin(float64(pitch))),
		float32(math.Sin(float64(yaw)) * math.Cos(float64(pitch))),
	}
	c.front = front.Normalize()
	c.right = c.front.Cross(mgl32.Vec3{0, 1, 0}).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

// ViewMatrix returns the camera's look-at matrix for the current frame.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.front), c.up)
}

// ProjectionMatrix returns the camera's perspective projection matrix.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.Near, c.Far)
}
