package fire

import (
	"math/rand"
	"testing"
)

func benchGrid(b *testing.B, w, h int) *Grid {
	b.Helper()
	g, err := NewGrid(w, h, DefaultParams(), rand.New(rand.NewSource(42)))
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func BenchmarkStep80x24(b *testing.B) {
	g := benchGrid(b, 80, 24)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Step()
	}
}

func BenchmarkStep200x50(b *testing.B) {
	g := benchGrid(b, 200, 50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Step()
	}
}

func BenchmarkStep320x200(b *testing.B) {
	g := benchGrid(b, 320, 200)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Step()
	}
}
