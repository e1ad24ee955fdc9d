// Package controls implements first-person pointer-lock controls over a camera.
package controls

import (
	"math"

	"chosenoffset.com/gallery/internal/camera"
	"chosenoffset.com/gallery/internal/core/geom"
)

// DefaultSensitivity is the look rotation in radians per pixel of mouse movement.
const DefaultSensitivity = 0.002

// PointerLock drives a camera from captured mouse movement and
// directional move requests. Look is ignored while unlocked; moves are not.
type PointerLock struct {
	cam         *camera.Camera
	locked      bool
	Sensitivity float64

	onLock   []func()
	onUnlock []func()
}

// NewPointerLock creates unlocked controls for cam.
func NewPointerLock(cam *camera.Camera) *PointerLock {
	return &PointerLock{
		cam:         cam,
		Sensitivity: DefaultSensitivity,
	}
}

// OnLock registers a listener fired when capture starts.
func (p *PointerLock) OnLock(fn func()) {
	p.onLock = append(p.onLock, fn)
}

// OnUnlock registers a listener fired when capture ends.
func (p *PointerLock) OnUnlock(fn func()) {
	p.onUnlock = append(p.onUnlock, fn)
}

// Lock starts capture. Locking an already locked control is a no-op.
func (p *PointerLock) Lock() {
	if p.locked {
		return
	}
	p.locked = true
	for _, fn := range p.onLock {
		fn()
	}
}

// Unlock ends capture. Unlocking an unlocked control is a no-op.
func (p *PointerLock) Unlock() {
	if !p.locked {
		return
	}
	p.locked = false
	for _, fn := range p.onUnlock {
		fn()
	}
}

// IsLocked reports whether input is captured.
func (p *PointerLock) IsLocked() bool {
	return p.locked
}

// Camera returns the controlled camera.
func (p *PointerLock) Camera() *camera.Camera {
	return p.cam
}

// Position returns the controlled object's position.
func (p *PointerLock) Position() geom.Vec3 {
	return p.cam.Position
}

// Look rotates the view by a mouse movement of (dx, dy) pixels.
// Pitch is clamped so the view never flips over the poles.
func (p *PointerLock) Look(dx, dy float64) {
	if !p.locked {
		return
	}
	p.cam.Yaw -= dx * p.Sensitivity
	p.cam.Pitch -= dy * p.Sensitivity
	p.cam.Pitch = math.Max(-math.Pi/2, math.Min(math.Pi/2, p.cam.Pitch))
}

// MoveForward moves parallel to the floor along the view direction.
// Negative distances move backward.
func (p *PointerLock) MoveForward(distance float64) {
	right := p.cam.Right()
	forward := geom.V(0, 1, 0).Cross(right)
	p.cam.Position = p.cam.Position.Add(forward.Scale(distance))
}

// MoveRight strafes along the camera's right vector.
// Negative distances move left.
func (p *PointerLock) MoveRight(distance float64) {
	p.cam.Position = p.cam.Position.Add(p.cam.Right().Scale(distance))
}
