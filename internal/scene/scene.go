package scene

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"pipeworks/internal/layout"
	"pipeworks/internal/orbitcam"
	"pipeworks/internal/palette"
	"pipeworks/internal/primitives"
	"pipeworks/internal/viewerconfig"
)

const (
	gridExtent     = 25
	gridMinorStep  = 1
	gridMajorStep  = 5
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
)

// Scene draws the parsed layout: one colored cube per cell and the pipe
// connector prisms, under a pan-orbit camera. Update runs input; Draw
// renders between BeginMode3D and EndMode3D.
type Scene struct {
	Camera *orbitcam.Camera

	reg  *primitives.Registry
	plan *layout.Plan
	pal  *palette.Palette

	pipeColor   rl.Color
	GridVisible bool

	// HideBlocks suppresses the cubes so the pipe routing is visible on
	// its own; toggled with H. T toggles camera control.
	HideBlocks bool
}

// New builds a scene for the plan. The camera orbits the box center at
// the configured radius with the configured sensitivities.
func New(plan *layout.Plan, pal *palette.Palette, box layout.Box, cfg viewerconfig.Config) (*Scene, error) {
	pipeRGB, err := viewerconfig.ParseColor(cfg.PipeColor)
	if err != nil {
		return nil, err
	}
	center := box.Center()
	cam := orbitcam.New(rl.NewVector3(center[0], center[1], center[2]), cfg.Camera.Radius)
	cam.OrbitSensitivity = cfg.Camera.OrbitSensitivity
	cam.PanSensitivity = cfg.Camera.PanSensitivity
	cam.ZoomSensitivity = cfg.Camera.ZoomSensitivity
	cam.ReversedZoom = cfg.Camera.ReversedZoom
	cam.AllowUpsideDown = cfg.Camera.AllowUpsideDown

	return &Scene{
		Camera:      cam,
		reg:         primitives.NewRegistry(),
		plan:        plan,
		pal:         pal,
		pipeColor:   rl.NewColor(pipeRGB[0], pipeRGB[1], pipeRGB[2], 255),
		GridVisible: cfg.GridVisible,
	}, nil
}

// Update runs once per frame: key toggles, then the camera rig.
func (s *Scene) Update() {
	if rl.IsKeyPressed(rl.KeyH) {
		s.HideBlocks = !s.HideBlocks
	}
	if rl.IsKeyPressed(rl.KeyT) {
		s.Camera.Enabled = !s.Camera.Enabled
	}
	s.Camera.Update()
}

var unitCube = [3]float32{1, 1, 1}

// Draw renders the reference grid, the block cubes (unless hidden), and
// the pipe prisms. Pipes stay visible when blocks are hidden.
func (s *Scene) Draw() {
	cam := s.Camera.RLCamera()
	rl.BeginMode3D(cam)
	if s.GridVisible {
		drawReferenceGrid()
	}
	s.reg.SetView(
		[3]float32{cam.Position.X, cam.Position.Y, cam.Position.Z},
		normalizedLightDir(),
	)
	if !s.HideBlocks {
		for _, c := range s.plan.Cubes {
			col := s.pal.Color(c.Label)
			s.reg.DrawCube(c.Position, unitCube, rl.NewColor(col[0], col[1], col[2], 255))
		}
	}
	for _, p := range s.plan.Prisms {
		s.reg.DrawCube(p.Position, p.Size, s.pipeColor)
	}
	rl.EndMode3D()
}

// lightDir is fixed from above-right; normalized once per draw.
func normalizedLightDir() [3]float32 {
	d := [3]float32{0.5, 1, 0.5}
	n := float32(math.Sqrt(float64(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])))
	return [3]float32{d[0] / n, d[1] / n, d[2] / n}
}

// drawReferenceGrid draws a grid on the XZ plane with major/minor lines
// and axis lines through the origin, as an orientation aid under the
// layout box.
func drawReferenceGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}

	// Axis lines through origin (X=red, Y=green, Z=blue)
	start.X, start.Y, start.Z = float32(-gridExtent), 0, 0
	end.X, end.Y, end.Z = float32(gridExtent), 0, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, float32(-gridExtent), 0
	end.X, end.Y, end.Z = 0, float32(gridExtent), 0
	rl.DrawLine3D(start, end, axisY)
	start.X, start.Y, start.Z = 0, 0, float32(-gridExtent)
	end.X, end.Y, end.Z = 0, 0, float32(gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}
