// Package orbitcam is a pan-orbit camera rig: the camera circles a
// focus point at a radius, panning moves the focus, and the wheel
// zooms. Left-drag orbits; shift + left-drag pans.
package orbitcam

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const tau = 2 * math.Pi

// radiansPerPixel converts mouse pixels to orbit angle before the
// sensitivity factor is applied.
const radiansPerPixel = 0.003

// panUnitsPerPixel converts mouse pixels to focus movement at radius 1
// before the sensitivity factor is applied.
const panUnitsPerPixel = 0.002

// zoomFactorPerNotch is the radius change per wheel notch at
// sensitivity 1.
const zoomFactorPerNotch = 0.1

const minRadius = 0.2

// Camera holds the rig state and the tuning knobs. Zero sensitivities
// disable the corresponding control.
type Camera struct {
	Focus  rl.Vector3
	Yaw    float32 // radians around Y, 0 = looking down -Z
	Pitch  float32 // radians above the horizon
	Radius float32

	OrbitSensitivity float32
	PanSensitivity   float32
	ZoomSensitivity  float32
	ReversedZoom     bool
	AllowUpsideDown  bool

	// Enabled gates all input handling; the derived camera keeps its
	// last pose while disabled.
	Enabled bool
}

// New returns a rig orbiting focus at the given radius, angled an
// eighth of a turn up and around, with the standard sensitivities.
func New(focus rl.Vector3, radius float32) *Camera {
	return &Camera{
		Focus:            focus,
		Yaw:              tau / 8,
		Pitch:            tau / 8,
		Radius:           radius,
		OrbitSensitivity: 1.5,
		PanSensitivity:   0.5,
		ZoomSensitivity:  0.5,
		ReversedZoom:     true,
		AllowUpsideDown:  true,
		Enabled:          true,
	}
}

// Update consumes this frame's mouse input. Call once per frame before
// RLCamera.
func (c *Camera) Update() {
	if !c.Enabled {
		return
	}
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		delta := rl.GetMouseDelta()
		if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
			c.pan(delta)
		} else {
			c.orbit(delta)
		}
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		c.zoom(wheel)
	}
}

func (c *Camera) orbit(delta rl.Vector2) {
	c.Yaw -= delta.X * radiansPerPixel * c.OrbitSensitivity
	c.Pitch += delta.Y * radiansPerPixel * c.OrbitSensitivity
	if !c.AllowUpsideDown {
		const limit = tau/4 - 0.01
		if c.Pitch > limit {
			c.Pitch = limit
		}
		if c.Pitch < -limit {
			c.Pitch = -limit
		}
	}
}

func (c *Camera) pan(delta rl.Vector2) {
	right, up := c.basis()
	scale := panUnitsPerPixel * c.PanSensitivity * c.Radius
	move := rl.Vector3Add(
		rl.Vector3Scale(right, -delta.X*scale),
		rl.Vector3Scale(up, delta.Y*scale),
	)
	c.Focus = rl.Vector3Add(c.Focus, move)
}

func (c *Camera) zoom(wheel float32) {
	step := wheel * zoomFactorPerNotch * c.ZoomSensitivity
	if c.ReversedZoom {
		step = -step
	}
	c.Radius *= 1 - step
	if c.Radius < minRadius {
		c.Radius = minRadius
	}
}

// RLCamera derives the raylib camera for this frame.
func (c *Camera) RLCamera() rl.Camera3D {
	up := rl.NewVector3(0, 1, 0)
	if c.upsideDown() {
		up = rl.NewVector3(0, -1, 0)
	}
	return rl.Camera3D{
		Position:   c.position(),
		Target:     c.Focus,
		Up:         up,
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

func (c *Camera) position() rl.Vector3 {
	cp := float32(math.Cos(float64(c.Pitch)))
	sp := float32(math.Sin(float64(c.Pitch)))
	cy := float32(math.Cos(float64(c.Yaw)))
	sy := float32(math.Sin(float64(c.Yaw)))
	return rl.NewVector3(
		c.Focus.X+c.Radius*cp*sy,
		c.Focus.Y+c.Radius*sp,
		c.Focus.Z+c.Radius*cp*cy,
	)
}

// upsideDown reports whether pitch has wrapped past vertical, which
// flips the up vector so orbiting stays continuous.
func (c *Camera) upsideDown() bool {
	p := math.Mod(float64(c.Pitch)+tau/4, tau)
	if p < 0 {
		p += tau
	}
	return p > tau/2
}

// basis returns the camera-space right and up vectors, used for
// panning in the view plane.
func (c *Camera) basis() (right, up rl.Vector3) {
	forward := rl.Vector3Normalize(rl.Vector3Subtract(c.Focus, c.position()))
	worldUp := rl.NewVector3(0, 1, 0)
	if c.upsideDown() {
		worldUp = rl.NewVector3(0, -1, 0)
	}
	right = rl.Vector3Normalize(rl.Vector3CrossProduct(forward, worldUp))
	up = rl.Vector3CrossProduct(right, forward)
	return right, up
}
