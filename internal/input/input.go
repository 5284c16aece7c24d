// Package input maps physical keyboard/mouse events to logical actions for
// the meshing demo's fly camera, trimmed from the teacher's
// internal/input.Manager (which also handled inventory, hotbar, and player
// actions this demo has no use for).
package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is a logical input action, decoupled from any physical key.
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionSprint
	ActionToggleWireframe
	ActionToggleAO
	ActionTogglePause
	ActionCount
)

// Manager tracks keyboard state and derives edge-triggered just-pressed and
// just-released events, same shape as the teacher's InputManager.
type Manager struct {
	mu sync.RWMutex

	keyToActions map[glfw.Key][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool

	firstCursor bool
	lastX       float64
	lastY       float64
	deltaX      float64
	deltaY      float64
}

// NewManager returns a Manager with the default fly-camera bindings.
func NewManager() *Manager {
	m := &Manager{
		keyToActions: make(map[glfw.Key][]Action),
		firstCursor:  true,
	}

	m.BindKey(glfw.KeyW, ActionMoveForward)
	m.BindKey(glfw.KeyS, ActionMoveBackward)
	m.BindKey(glfw.KeyA, ActionMoveLeft)
	m.BindKey(glfw.KeyD, ActionMoveRight)
	m.BindKey(glfw.KeySpace, ActionMoveUp)
	m.BindKey(glfw.KeyLeftShift, ActionMoveDown)
	m.BindKey(glfw.KeyLeftControl, ActionSprint)
	m.BindKey(glfw.KeyF, ActionToggleWireframe)
	m.BindKey(glfw.KeyO, ActionToggleAO)
	m.BindKey(glfw.KeyEscape, ActionTogglePause)

	return m
}

// BindKey binds a physical key to a logical action. Multiple keys may map
// to the same action.
func (m *Manager) BindKey(key glfw.Key, action Action) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if action < 0 || action >= ActionCount {
		return
	}
	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// HandleKeyEvent processes a single key event, called from a glfw key
// callback.
func (m *Manager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	m.mu.RLock()
	actions, ok := m.keyToActions[key]
	m.mu.RUnlock()
	if !ok {
		return
	}

	isPressed := action == glfw.Press || action == glfw.Repeat

	m.mu.Lock()
	for _, act := range actions {
		if isPressed && !m.currentState[act] {
			m.justPressed[act] = true
		}
		if !isPressed && m.currentState[act] {
			m.justReleased[act] = true
		}
		m.currentState[act] = isPressed
	}
	m.mu.Unlock()
}

// HandleCursorEvent accumulates raw mouse-look deltas between PostUpdate
// calls, discarding the very first sample the Manager receives so the
// camera doesn't snap on startup. Later cursor jumps (window focus, cursor
// re-grab) are not detected and are accumulated like ordinary movement.
func (m *Manager) HandleCursorEvent(x, y float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.firstCursor {
		m.lastX, m.lastY = x, y
		m.firstCursor = false
		return
	}
	m.deltaX += x - m.lastX
	m.deltaY += y - m.lastY
	m.lastX, m.lastY = x, y
}

// SetCallbacks wires key and cursor callbacks on window to this manager.
func (m *Manager) SetCallbacks(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		m.HandleKeyEvent(key, action)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		m.HandleCursorEvent(xpos, ypos)
	})
}

// PostUpdate resets edge-detection flags and mouse deltas; call once per
// frame after all input is read.
func (m *Manager) PostUpdate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range ActionCount {
		m.justPressed[i] = false
		m.justReleased[i] = false
	}
	m.deltaX, m.deltaY = 0, 0
}

// IsActive reports whether action is currently held.
func (m *Manager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentState[action]
}

// JustPressed reports whether action transitioned to held this frame.
func (m *Manager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justPressed[action]
}

// MouseDelta returns the accumulated cursor movement since the last
// PostUpdate.
func (m *Manager) MouseDelta() (dx, dy float64) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.deltaX, m.deltaY
}
