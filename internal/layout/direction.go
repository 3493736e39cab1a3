package layout

import "fmt"

// Direction is one of the six sides a pipe can enter or leave a cell
// through. The solver emits the single-letter form (a, b, n, s, e, w).
type Direction int

const (
	Above Direction = iota
	Below
	North
	South
	East
	West
)

// ParseDirection maps the solver's letter form to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "a":
		return Above, nil
	case "b":
		return Below, nil
	case "n":
		return North, nil
	case "s":
		return South, nil
	case "e":
		return East, nil
	case "w":
		return West, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

func (d Direction) String() string {
	switch d {
	case Above:
		return "above"
	case Below:
		return "below"
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// prismOffset shifts the connector prism center off the cell center
// along the pipe axis so the prism straddles the cube face.
const prismOffset = 0.175

// PrismSize returns the width/height/depth of the connector prism for
// this direction. Vertical connectors are tall, east/west wide,
// north/south deep; the long extent (0.65) lies along the pipe axis.
func (d Direction) PrismSize() [3]float32 {
	switch d {
	case Above, Below:
		return [3]float32{0.3, 0.65, 0.3}
	case North, South:
		return [3]float32{0.3, 0.3, 0.65}
	default: // East, West
		return [3]float32{0.65, 0.3, 0.3}
	}
}

// PrismCenter returns the world-space center of the connector prism for
// a pipe leaving the cell centered at (x, y, z) through this side.
func (d Direction) PrismCenter(x, y, z float32) [3]float32 {
	switch d {
	case Above:
		return [3]float32{x, y + prismOffset, z}
	case Below:
		return [3]float32{x, y - prismOffset, z}
	case North:
		return [3]float32{x, y, z + prismOffset}
	case South:
		return [3]float32{x, y, z - prismOffset}
	case East:
		return [3]float32{x + prismOffset, y, z}
	default: // West
		return [3]float32{x - prismOffset, y, z}
	}
}
