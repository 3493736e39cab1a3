package palette

import "testing"

func TestSameLabelSameColor(t *testing.T) {
	p := New([]string{"a", "b", "a", "c"}, 42)
	if p.Len() != 3 {
		t.Fatalf("got %d labels, want 3", p.Len())
	}
	if p.Color("a") != p.Color("a") {
		t.Fatal("same label returned different colors")
	}
}

func TestDeterministicForSeed(t *testing.T) {
	// Same labels presented in different orders must color identically.
	p1 := New([]string{"kiln", "belt", "press"}, 7)
	p2 := New([]string{"press", "kiln", "belt"}, 7)
	for _, label := range []string{"kiln", "belt", "press"} {
		if p1.Color(label) != p2.Color(label) {
			t.Fatalf("label %q: %v vs %v", label, p1.Color(label), p2.Color(label))
		}
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	labels := []string{"a", "b", "c", "d", "e"}
	p1, p2 := New(labels, 1), New(labels, 2)
	same := 0
	for _, l := range labels {
		if p1.Color(l) == p2.Color(l) {
			same++
		}
	}
	if same == len(labels) {
		t.Fatal("two seeds produced identical palettes")
	}
}

func TestUnknownLabelIsWhite(t *testing.T) {
	p := New([]string{"a"}, 1)
	if p.Color("nope") != (Color{255, 255, 255}) {
		t.Fatalf("unknown label: got %v", p.Color("nope"))
	}
}
