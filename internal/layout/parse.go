package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Coordinate is a 1-indexed cell position in the layout box.
type Coordinate struct {
	X, Y, Z int
}

// Pipe is the routing through one cell: the side the pipe enters from
// and the side it leaves through.
type Pipe struct {
	In, Out Direction
}

// Layout is the parsed solver model: which block label occupies each
// cell and which cells carry a pipe segment.
type Layout struct {
	Cells map[Coordinate]string
	Pipes map[Coordinate]Pipe
}

// Parse reads a solver model: whitespace- or newline-separated atoms of
// the forms block_pos(x,y,z,label), cell_value(x,y,z,label) and
// pipe_pos(x,y,z,in,out). A trailing "." after an atom (fact form) is
// tolerated, as are extra fields after the ones named. Atoms with an
// unrecognized head are skipped. On duplicate coordinates the last atom
// wins.
func Parse(model string) (*Layout, error) {
	l := &Layout{
		Cells: make(map[Coordinate]string),
		Pipes: make(map[Coordinate]Pipe),
	}
	for _, atom := range strings.Fields(model) {
		atom = strings.TrimSuffix(atom, ".")
		switch {
		case strings.HasPrefix(atom, "block_pos("), strings.HasPrefix(atom, "cell_value("):
			fields, err := atomFields(atom, 4)
			if err != nil {
				return nil, err
			}
			c, err := atomCoordinate(atom, fields)
			if err != nil {
				return nil, err
			}
			l.Cells[c] = fields[3]
		case strings.HasPrefix(atom, "pipe_pos("):
			fields, err := atomFields(atom, 5)
			if err != nil {
				return nil, err
			}
			c, err := atomCoordinate(atom, fields)
			if err != nil {
				return nil, err
			}
			in, err := ParseDirection(fields[3])
			if err != nil {
				return nil, fmt.Errorf("atom %q: %w", atom, err)
			}
			out, err := ParseDirection(fields[4])
			if err != nil {
				return nil, fmt.Errorf("atom %q: %w", atom, err)
			}
			l.Pipes[c] = Pipe{In: in, Out: out}
		}
	}
	return l, nil
}

// atomFields splits "head(f1,f2,...)" into its comma-separated fields
// and checks that at least min are present.
func atomFields(atom string, min int) ([]string, error) {
	open := strings.IndexByte(atom, '(')
	if open == -1 || !strings.HasSuffix(atom, ")") {
		return nil, fmt.Errorf("malformed atom %q", atom)
	}
	fields := strings.Split(atom[open+1:len(atom)-1], ",")
	if len(fields) < min {
		return nil, fmt.Errorf("atom %q: want at least %d fields, got %d", atom, min, len(fields))
	}
	return fields, nil
}

// atomCoordinate parses the leading x,y,z fields of an atom.
func atomCoordinate(atom string, fields []string) (Coordinate, error) {
	var c Coordinate
	for i, dst := range []*int{&c.X, &c.Y, &c.Z} {
		n, err := strconv.Atoi(fields[i])
		if err != nil {
			return Coordinate{}, fmt.Errorf("atom %q: bad coordinate %q", atom, fields[i])
		}
		*dst = n
	}
	return c, nil
}
