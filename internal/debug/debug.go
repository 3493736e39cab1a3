package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the overlay text every N frames to
	// reduce allocations.
	updateInterval = 30
)

// Debug draws runtime overlays (FPS, heap usage) in the top-right
// corner. All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool

	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn.
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the heap allocation counter is drawn
// under the FPS line.
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// Draw renders any enabled overlays. Call after the scene in the draw
// loop, outside 3D mode.
func (d *Debug) Draw() {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		if d.lastFpsText != "" {
			w := rl.MeasureText(d.lastFpsText, fontSize)
			rl.DrawText(d.lastFpsText, screenW-w-padding, y, fontSize, rl.Green)
		}
		y += lineHeight
	}

	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		if d.lastMemText != "" {
			w := rl.MeasureText(d.lastMemText, fontSize)
			rl.DrawText(d.lastMemText, screenW-w-padding, y, fontSize, rl.Green)
		}
	}
}
