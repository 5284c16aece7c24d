// Package config holds tunable settings for the meshing demo behind a
// single RWMutex-guarded global, the same shape as the teacher's
// config.RenderSettings.
package config

import "sync"

// Settings holds demo-wide configuration.
type Settings struct {
	mu               sync.RWMutex
	renderDistance   int  // in chunks
	fpsLimit         int  // 0 means uncapped, otherwise target FPS
	wireframeMode    bool // wireframe rendering mode
	ambientOcclusion bool // whether Build meshes include AO
	meshWorkers      int  // worker goroutines in the meshing pool
}

var global = &Settings{
	renderDistance:   12,
	fpsLimit:         144,
	wireframeMode:    false,
	ambientOcclusion: true,
	meshWorkers:      4,
}

// GetRenderDistance returns the current render distance in chunks.
func GetRenderDistance() int {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.renderDistance
}

// SetRenderDistance sets the render distance in chunks, clamped to a
// sane range.
func SetRenderDistance(distance int) {
	global.mu.Lock()
	defer global.mu.Unlock()
	if distance < 2 {
		distance = 2
	}
	if distance > 32 {
		distance = 32
	}
	global.renderDistance = distance
}

// GetFPSLimit returns the configured FPS cap (0 means uncapped).
func GetFPSLimit() int {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.fpsLimit
}

// SetFPSLimit sets the FPS cap; 0 disables the cap.
func SetFPSLimit(limit int) {
	global.mu.Lock()
	defer global.mu.Unlock()
	if limit < 0 {
		limit = 0
	}
	if limit > 480 {
		limit = 480
	}
	global.fpsLimit = limit
}

// GetWireframeMode returns whether wireframe rendering is enabled.
func GetWireframeMode() bool {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.wireframeMode
}

// ToggleWireframeMode flips wireframe rendering.
func ToggleWireframeMode() {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.wireframeMode = !global.wireframeMode
}

// GetAmbientOcclusion returns whether freshly built meshes include AO.
func GetAmbientOcclusion() bool {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.ambientOcclusion
}

// ToggleAmbientOcclusion flips whether freshly built meshes include AO.
// Already-resident chunk meshes are unaffected until rebuilt.
func ToggleAmbientOcclusion() {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.ambientOcclusion = !global.ambientOcclusion
}

// GetMeshWorkers returns the configured meshing worker pool size.
func GetMeshWorkers() int {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.meshWorkers
}

// SetMeshWorkers sets the meshing worker pool size, clamped to a sane
// range. Takes effect only on the next pool creation.
func SetMeshWorkers(n int) {
	global.mu.Lock()
	defer global.mu.Unlock()
	if n < 1 {
		n = 1
	}
	if n > 32 {
		n = 32
	}
	global.meshWorkers = n
}
