package palette

import "testing"

func brightness(c RGB) int {
	return int(c.R) + int(c.G) + int(c.B)
}

func TestGradientAnchors(t *testing.T) {
	tab := Generate()

	if c := tab.RGB[0]; c != (RGB{}) {
		t.Errorf("level 0 should be black, got %+v", c)
	}
	if c := tab.RGB[128]; c.R != 255 || c.G != 255 {
		t.Errorf("level 128 should be full yellow, got %+v", c)
	}
	if c := tab.RGB[255]; c != (RGB{255, 255, 255}) {
		t.Errorf("level 255 should be white, got %+v", c)
	}
}

func TestBrightnessMonotonicPerSegment(t *testing.T) {
	tab := Generate()

	segments := [][2]int{{0, 64}, {64, 128}, {128, 192}, {192, 256}}
	for _, seg := range segments {
		for i := seg[0] + 1; i < seg[1]; i++ {
			if brightness(tab.RGB[i]) < brightness(tab.RGB[i-1]) {
				t.Fatalf("brightness decreases at level %d: %+v -> %+v",
					i, tab.RGB[i-1], tab.RGB[i])
			}
		}
	}
}

func TestIndexedInQuantizedRange(t *testing.T) {
	tab := Generate()

	for i := 0; i < 256; i++ {
		idx := tab.Indexed[i]
		if idx < 16 {
			t.Errorf("level %d maps to system color %d", i, idx)
		}
	}
	if tab.Indexed[0] != 16 {
		t.Errorf("level 0 should map to index 16, got %d", tab.Indexed[0])
	}
	if tab.Indexed[255] != 231 {
		t.Errorf("level 255 should map to index 231, got %d", tab.Indexed[255])
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, b := Generate(), Generate()
	if *a != *b {
		t.Fatal("two generated tables differ")
	}
}
