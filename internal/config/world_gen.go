package config

import "sync"

// WorldGenSettings holds terrain generation configuration consulted by
// internal/terrain.Generator, carried forward from the teacher's
// config.WorldGenSettings (sea level and cave toggle kept; the
// authentic-vs-default generator switch dropped along with the teacher's
// alternate 1.8.9-accurate generator, which this repo has no equivalent
// of).
type WorldGenSettings struct {
	mu       sync.RWMutex
	seaLevel int
	caves    bool
}

var globalWorldGenSettings = &WorldGenSettings{
	seaLevel: 28,
	caves:    true,
}

// GetSeaLevel returns the configured sea level; columns whose surface
// falls below it are flooded up to this height.
func GetSeaLevel() int {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.seaLevel
}

// SetSeaLevel sets the sea level.
func SetSeaLevel(level int) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	globalWorldGenSettings.seaLevel = level
}

// GetCaves returns whether cave carving is enabled.
func GetCaves() bool {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.caves
}

// SetCaves sets whether cave carving is enabled.
func SetCaves(enabled bool) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	globalWorldGenSettings.caves = enabled
}
