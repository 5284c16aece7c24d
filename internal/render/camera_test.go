package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewCameraFrontIsUnitLength(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 0}, 16, 9)
	if l := c.Front().Len(); math.Abs(float64(l)-1) > 1e-4 {
		t.Fatalf("front length = %v, want ~1", l)
	}
	if l := c.Up().Len(); math.Abs(float64(l)-1) > 1e-4 {
		t.Fatalf("up length = %v, want ~1", l)
	}
	if l := c.Right().Len(); math.Abs(float64(l)-1) > 1e-4 {
		t.Fatalf("right length = %v, want ~1", l)
	}
}

func TestProcessMouseMovementClampsPitch(t *testing.T) {
	c := NewCamera(mgl32.Vec3{}, 16, 9)
	for i := 0; i < 1000; i++ {
		c.ProcessMouseMovement(0, 1000)
	}
	if c.Pitch > maxPitch || c.Pitch < -maxPitch {
		t.Fatalf("pitch %v exceeded clamp of ±%v", c.Pitch, maxPitch)
	}
}

func TestProcessMouseMovementYawWrapsFreely(t *testing.T) {
	c := NewCamera(mgl32.Vec3{}, 16, 9)
	c.ProcessMouseMovement(360/defaultSensitivity, 0)
	// Yaw isn't clamped, only pitch; front should still be unit length
	// after a full rotation's worth of input.
	if l := c.Front().Len(); math.Abs(float64(l)-1) > 1e-3 {
		t.Fatalf("front length after large yaw = %v, want ~1", l)
	}
}

func TestResizeUpdatesAspectRatio(t *testing.T) {
	c := NewCamera(mgl32.Vec3{}, 16, 9)
	c.Resize(1920, 1080)
	want := float32(1920) / float32(1080)
	if c.AspectRatio != want {
		t.Fatalf("AspectRatio = %v, want %v", c.AspectRatio, want)
	}
}
