package display

// Typed escape commands. Each method appends one discrete sequence to the
// buffer, keeping protocol framing separate from simulation logic. The wire
// format is plain ANSI/ECMA-48; nothing terminfo-driven.

const (
	seqHome  = "\x1b[H"
	seqClear = "\x1b[2J"
	seqReset = "\x1b[0m"
)

// Home moves the cursor to the top-left corner.
func (b *Buffer) Home() { b.appendString(seqHome) }

// Clear erases the whole screen.
func (b *Buffer) Clear() { b.appendString(seqClear) }

// Reset clears all attributes, including the background color.
func (b *Buffer) Reset() { b.appendString(seqReset) }

// Cell emits the single drawing primitive: one space over the current
// background color.
func (b *Buffer) Cell() { b.append([]byte{' '}) }

// BackgroundRGB sets a 24-bit background color: ESC[48;2;R;G;Bm.
func (b *Buffer) BackgroundRGB(r, g, bl uint8) {
	var scratch [19]byte
	p := append(scratch[:0], "\x1b[48;2;"...)
	p = appendUint8(p, r)
	p = append(p, ';')
	p = appendUint8(p, g)
	p = append(p, ';')
	p = appendUint8(p, bl)
	p = append(p, 'm')
	b.append(p)
}

// BackgroundIndexed sets an xterm-256 background color: ESC[48;5;Nm.
func (b *Buffer) BackgroundIndexed(n uint8) {
	var scratch [12]byte
	p := append(scratch[:0], "\x1b[48;5;"...)
	p = appendUint8(p, n)
	p = append(p, 'm')
	b.append(p)
}

// appendUint8 formats v in decimal without going through fmt; this runs for
// every cell of every frame.
func appendUint8(p []byte, v uint8) []byte {
	if v >= 100 {
		p = append(p, '0'+v/100)
	}
	if v >= 10 {
		p = append(p, '0'+v/10%10)
	}
	return append(p, '0'+v%10)
}
