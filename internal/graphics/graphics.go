package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Run opens the window and drives the main loop. Each frame it calls
// update (input, camera), then clears the screen and calls draw. This
// keeps the graphics layer separate from scene content. ESC or the
// window button closes the viewer.
func Run(width, height int, title string, update, draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(width), int32(height), title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(18, 18, 22, 255))
		draw()
		rl.EndDrawing()
	}
}
