package display

import "io"

// DefaultBufferSize is the output buffer capacity. A full frame usually
// fits in one or two flushes, keeping write syscalls to a handful per tick.
const DefaultBufferSize = 256 * 1024

// Buffer accumulates escape-sequence bytes in a fixed-capacity buffer and
// writes them to the sink only when the next append would overflow, plus a
// mandatory flush at the end of each render. The capacity never grows; the
// buffer is allocated once and reused for every frame.
//
// Errors are sticky in the bufio style: once a flush fails, later appends
// are dropped and Flush keeps returning the first error.
type Buffer struct {
	out io.Writer
	buf []byte
	err error
}

// NewBuffer allocates a buffer of the given capacity over out.
func NewBuffer(out io.Writer, size int) *Buffer {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Buffer{out: out, buf: make([]byte, 0, size)}
}

// Len reports the bytes currently queued.
func (b *Buffer) Len() int { return len(b.buf) }

// append queues p, flushing first if p would not fit. Sequences longer
// than the whole capacity are written through directly; none of the escape
// commands come close to that.
func (b *Buffer) append(p []byte) {
	if b.err != nil {
		return
	}
	if len(b.buf)+len(p) >= cap(b.buf) {
		b.flush()
		if b.err != nil {
			return
		}
		if len(p) >= cap(b.buf) {
			_, b.err = b.out.Write(p)
			return
		}
	}
	b.buf = append(b.buf, p...)
}

func (b *Buffer) appendString(s string) {
	b.append([]byte(s))
}

func (b *Buffer) flush() {
	if len(b.buf) == 0 {
		return
	}
	_, err := b.out.Write(b.buf)
	if err != nil && b.err == nil {
		b.err = err
	}
	b.buf = b.buf[:0]
}

// Flush writes any queued bytes and returns the first error seen.
func (b *Buffer) Flush() error {
	if b.err == nil {
		b.flush()
	}
	return b.err
}
