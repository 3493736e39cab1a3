package layout

import "testing"

func TestParseDirection(t *testing.T) {
	want := map[string]Direction{
		"a": Above, "b": Below, "n": North, "s": South, "e": East, "w": West,
	}
	for letter, dir := range want {
		got, err := ParseDirection(letter)
		if err != nil {
			t.Fatalf("%q: %v", letter, err)
		}
		if got != dir {
			t.Fatalf("%q: got %v want %v", letter, got, dir)
		}
	}
	if _, err := ParseDirection("x"); err == nil {
		t.Fatal("want error for unknown letter")
	}
	if _, err := ParseDirection(""); err == nil {
		t.Fatal("want error for empty string")
	}
}

func TestPrismSize(t *testing.T) {
	cases := []struct {
		dir  Direction
		want [3]float32
	}{
		{Above, [3]float32{0.3, 0.65, 0.3}},
		{Below, [3]float32{0.3, 0.65, 0.3}},
		{North, [3]float32{0.3, 0.3, 0.65}},
		{South, [3]float32{0.3, 0.3, 0.65}},
		{East, [3]float32{0.65, 0.3, 0.3}},
		{West, [3]float32{0.65, 0.3, 0.3}},
	}
	for _, c := range cases {
		if got := c.dir.PrismSize(); got != c.want {
			t.Fatalf("%v: got %v want %v", c.dir, got, c.want)
		}
	}
}

func TestPrismCenter(t *testing.T) {
	const x, y, z = 2, 3, 4
	cases := []struct {
		dir  Direction
		want [3]float32
	}{
		{Above, [3]float32{x, y + 0.175, z}},
		{Below, [3]float32{x, y - 0.175, z}},
		{North, [3]float32{x, y, z + 0.175}},
		{South, [3]float32{x, y, z - 0.175}},
		{East, [3]float32{x + 0.175, y, z}},
		{West, [3]float32{x - 0.175, y, z}},
	}
	for _, c := range cases {
		if got := c.dir.PrismCenter(x, y, z); got != c.want {
			t.Fatalf("%v: got %v want %v", c.dir, got, c.want)
		}
	}
}
