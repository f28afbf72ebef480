package display_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pyre/internal/display"
	"github.com/san-kum/pyre/internal/fire"
	"github.com/san-kum/pyre/internal/palette"
	"github.com/san-kum/pyre/internal/term"
)

// zeroRand keeps deterministic tests free of simulation noise; the surface
// tests never call Step, but NewGrid wants a source.
type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

func newGrid(w, h int) *fire.Grid {
	g, err := fire.NewGrid(w, h, fire.DefaultParams(), zeroRand{})
	Expect(err).NotTo(HaveOccurred())
	return g
}

// countingWriter records each flush as a separate write.
type countingWriter struct {
	bytes.Buffer
	writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.Buffer.Write(p)
}

var _ = Describe("Surface", func() {
	var (
		out *countingWriter
		pal *palette.Table
	)

	BeforeEach(func() {
		out = &countingWriter{}
		pal = palette.Generate()
	})

	Describe("Render", func() {
		It("emits the exact truecolor sequence for a cold 2x2 grid", func() {
			s := display.NewSurface(out, 0)
			g := newGrid(2, 2)

			Expect(s.Render(g, pal, term.TrueColor)).To(Succeed())

			want := "\x1b[H" +
				"\x1b[48;2;0;0;0m " +
				"\x1b[48;2;0;0;0m " +
				"\x1b[0m"
			Expect(out.String()).To(Equal(want))
		})

		It("never renders the bottom source row", func() {
			s := display.NewSurface(out, 0)
			g := newGrid(2, 2)
			g.Set(0, 1, 255)
			g.Set(1, 1, 255)

			Expect(s.Render(g, pal, term.TrueColor)).To(Succeed())

			Expect(out.String()).NotTo(ContainSubstring("48;2;255;255;255"))
		})

		It("uses the quantized table in indexed mode", func() {
			s := display.NewSurface(out, 0)
			g := newGrid(1, 2)
			g.Set(0, 0, 255)

			Expect(s.Render(g, pal, term.Indexed256)).To(Succeed())

			Expect(out.String()).To(Equal("\x1b[H\x1b[48;5;231m \x1b[0m"))
		})

		It("looks up the palette entry for each cell's heat", func() {
			s := display.NewSurface(out, 0)
			g := newGrid(2, 2)
			g.Set(0, 0, 64)  // red, start of the red-to-yellow segment
			g.Set(1, 0, 128) // full yellow

			Expect(s.Render(g, pal, term.TrueColor)).To(Succeed())

			Expect(out.String()).To(Equal("\x1b[H" +
				"\x1b[48;2;255;0;0m " +
				"\x1b[48;2;255;255;0m " +
				"\x1b[0m"))
		})

		It("re-emits every cell on consecutive frames", func() {
			s := display.NewSurface(out, 0)
			g := newGrid(2, 3)

			Expect(s.Render(g, pal, term.TrueColor)).To(Succeed())
			first := out.String()
			Expect(s.Render(g, pal, term.TrueColor)).To(Succeed())

			Expect(out.String()).To(Equal(first + first))
		})
	})

	Describe("buffering", func() {
		It("flushes when the next append would overflow, with identical output", func() {
			s := display.NewSurface(out, 64)
			g := newGrid(8, 5)

			Expect(s.Render(g, pal, term.TrueColor)).To(Succeed())
			Expect(out.writes).To(BeNumerically(">", 1))

			ref := &countingWriter{}
			refSurface := display.NewSurface(ref, 0)
			refGrid := newGrid(8, 5)
			Expect(refSurface.Render(refGrid, pal, term.TrueColor)).To(Succeed())
			Expect(ref.writes).To(Equal(1))

			Expect(out.String()).To(Equal(ref.String()))
		})
	})

	Describe("Resize", func() {
		It("forces a full clear on the next render only", func() {
			s := display.NewSurface(out, 0)
			g := newGrid(2, 2)

			Expect(s.Resize(2, 2)).To(BeTrue())
			Expect(s.Render(g, pal, term.TrueColor)).To(Succeed())
			Expect(strings.HasPrefix(out.String(), "\x1b[2J\x1b[H")).To(BeTrue())

			out.Reset()
			Expect(s.Render(g, pal, term.TrueColor)).To(Succeed())
			Expect(out.String()).NotTo(ContainSubstring("\x1b[2J"))
		})

		It("reports no change for identical dimensions", func() {
			s := display.NewSurface(out, 0)
			Expect(s.Resize(80, 24)).To(BeTrue())
			Expect(s.Resize(80, 24)).To(BeFalse())
			Expect(s.Resize(81, 24)).To(BeTrue())
		})
	})
})
