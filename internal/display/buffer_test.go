package display

import (
	"bytes"
	"errors"
	"testing"
)

type errWriter struct{ err error }

func (w errWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestBufferFlushWhenFull(t *testing.T) {
	var out bytes.Buffer
	b := NewBuffer(&out, 8)

	b.appendString("aaaa")
	if out.Len() != 0 {
		t.Fatalf("premature flush: %d bytes written", out.Len())
	}

	// 4 queued + 4 incoming == capacity, which counts as full.
	b.appendString("bbbb")
	if out.String() != "aaaa" {
		t.Fatalf("expected first chunk flushed, got %q", out.String())
	}
	if b.Len() != 4 {
		t.Fatalf("expected second chunk queued, got %d bytes", b.Len())
	}

	if err := b.Flush(); err != nil {
		t.Fatal(err)
	}
	if out.String() != "aaaabbbb" {
		t.Fatalf("got %q", out.String())
	}
}

func TestBufferOversizedAppendWritesThrough(t *testing.T) {
	var out bytes.Buffer
	b := NewBuffer(&out, 8)

	b.appendString("0123456789")
	if out.String() != "0123456789" {
		t.Fatalf("oversized append should write through, got %q", out.String())
	}
	if b.Len() != 0 {
		t.Fatalf("buffer should be empty, holds %d bytes", b.Len())
	}
}

func TestBufferStickyError(t *testing.T) {
	boom := errors.New("boom")
	b := NewBuffer(errWriter{boom}, 4)

	b.appendString("xxxx") // forces a flush, which fails
	b.appendString("yyyy") // dropped

	if err := b.Flush(); !errors.Is(err, boom) {
		t.Fatalf("expected sticky error, got %v", err)
	}
	if err := b.Flush(); !errors.Is(err, boom) {
		t.Fatalf("error should stay sticky, got %v", err)
	}
}
