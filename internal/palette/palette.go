// Package palette maps heat intensity levels to display colors.
//
// A single 256-entry lookup is generated once at startup and shared,
// read-only, by every renderer: the raw terminal surface, the windowed
// blit, the cube texture and the TUI fallback. Each entry carries both a
// 24-bit RGB triple and a quantized xterm-256 index so the caller can pick
// whichever the output device supports.
package palette

// RGB is a 24-bit color triple.
type RGB struct {
	R, G, B uint8
}

// Table holds the full heat gradient: black through red, orange and yellow
// up to white. Entries are immutable after Generate.
type Table struct {
	RGB     [256]RGB
	Indexed [256]uint8
}

// Generate builds the heat gradient. It is pure and deterministic; calling
// it twice yields identical tables.
func Generate() *Table {
	t := &Table{}
	for i := 0; i < 256; i++ {
		var c RGB
		switch {
		case i < 64:
			// Black to red
			c.R = uint8(i * 4)
		case i < 128:
			// Red to yellow
			c.R = 255
			c.G = uint8((i - 64) * 4)
		case i < 192:
			// Yellow to white
			c.R = 255
			c.G = 255
			c.B = uint8((i - 128) * 4)
		default:
			c = RGB{255, 255, 255}
		}
		t.RGB[i] = c
		t.Indexed[i] = quantize(i)
	}
	return t
}

// quantize approximates the gradient in the xterm-256 space. Brightness is
// monotonic within each segment of the gradient.
func quantize(i int) uint8 {
	switch {
	case i == 0:
		return 16 // black
	case i < 64:
		return uint8(52 + i/16) // dark reds
	case i < 128:
		return uint8(160 + (i-64)/16*6) // reds into orange
	case i < 220:
		return uint8(202 + (i-128)/10) // oranges into yellow
	default:
		return 231 // white
	}
}
