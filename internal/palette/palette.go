// Package palette assigns one color per block label so that cells of
// the same block share a material, as the solver groups them.
package palette

import (
	"math/rand"
	"sort"
)

// Color is an opaque RGB triple.
type Color [3]uint8

// Palette maps block labels to colors. Colors are random but stable for
// a given seed: labels are assigned in sorted order, so the same label
// set and seed always yields the same coloring.
type Palette struct {
	colors map[string]Color
}

// New builds a palette for the given labels using the given seed.
// Duplicate labels are collapsed.
func New(labels []string, seed int64) *Palette {
	sorted := make([]string, len(labels))
	copy(sorted, labels)
	sort.Strings(sorted)

	rng := rand.New(rand.NewSource(seed))
	colors := make(map[string]Color, len(sorted))
	for _, label := range sorted {
		if _, ok := colors[label]; ok {
			continue
		}
		colors[label] = Color{
			uint8(rng.Intn(256)),
			uint8(rng.Intn(256)),
			uint8(rng.Intn(256)),
		}
	}
	return &Palette{colors: colors}
}

// Color returns the color for label. Labels the palette has never seen
// come back white so a stale label shows up rather than vanishing.
func (p *Palette) Color(label string) Color {
	if c, ok := p.colors[label]; ok {
		return c
	}
	return Color{255, 255, 255}
}

// Len returns the number of labels with an assigned color.
func (p *Palette) Len() int {
	return len(p.colors)
}
