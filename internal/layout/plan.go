package layout

import "fmt"

// Box is the configured layout size in cells.
type Box struct {
	Width, Height, Depth int
}

// Center returns the midpoint of the box in world space; cells are unit
// cubes centered on their 1-indexed coordinates, so a W×H×D box spans
// 0.5..W+0.5 on X and likewise on the other axes.
func (b Box) Center() [3]float32 {
	return [3]float32{
		float32(b.Width+1) / 2,
		float32(b.Height+1) / 2,
		float32(b.Depth+1) / 2,
	}
}

// Cells returns the number of cells in the box.
func (b Box) Cells() int {
	return b.Width * b.Height * b.Depth
}

// Cube is one block cell to draw: a unit cube at Position colored by
// its block label.
type Cube struct {
	Coord    Coordinate
	Label    string
	Position [3]float32
}

// Prism is one pipe connector to draw.
type Prism struct {
	Position [3]float32
	Size     [3]float32
}

// Plan is everything the scene draws: one cube per cell and a pair of
// connector prisms per piped cell. Built once at startup.
type Plan struct {
	Cubes  []Cube
	Prisms []Prism
}

// BuildPlan walks every coordinate in the box exactly once and produces
// the cube and prism instances for it. Every cell must be present in
// the layout's cell map; a hole is an error naming the coordinate.
func BuildPlan(l *Layout, box Box) (*Plan, error) {
	if box.Width <= 0 || box.Height <= 0 || box.Depth <= 0 {
		return nil, fmt.Errorf("box dimensions must be positive, got %dx%dx%d", box.Width, box.Height, box.Depth)
	}
	plan := &Plan{
		Cubes: make([]Cube, 0, box.Cells()),
	}
	for x := 1; x <= box.Width; x++ {
		for z := 1; z <= box.Depth; z++ {
			for y := 1; y <= box.Height; y++ {
				c := Coordinate{X: x, Y: y, Z: z}
				label, ok := l.Cells[c]
				if !ok {
					return nil, fmt.Errorf("no block at (%d,%d,%d)", x, y, z)
				}
				fx, fy, fz := float32(x), float32(y), float32(z)
				plan.Cubes = append(plan.Cubes, Cube{
					Coord:    c,
					Label:    label,
					Position: [3]float32{fx, fy, fz},
				})
				if pipe, ok := l.Pipes[c]; ok {
					for _, dir := range []Direction{pipe.In, pipe.Out} {
						plan.Prisms = append(plan.Prisms, Prism{
							Position: dir.PrismCenter(fx, fy, fz),
							Size:     dir.PrismSize(),
						})
					}
				}
			}
		}
	}
	return plan, nil
}

// Labels returns the distinct block labels in the layout's cell map.
// Order is unspecified; the palette sorts before assigning colors.
func (l *Layout) Labels() []string {
	seen := make(map[string]bool, len(l.Cells))
	labels := make([]string, 0, len(l.Cells))
	for _, label := range l.Cells {
		if !seen[label] {
			seen[label] = true
			labels = append(labels, label)
		}
	}
	return labels
}
