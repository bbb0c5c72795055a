package render_test

import (
	"image/color"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/intseq/internal/boundary"
	"github.com/san-kum/intseq/internal/palette"
	"github.com/san-kum/intseq/internal/render"
	"github.com/san-kum/intseq/internal/seq"
)

var black = color.RGBA{0, 0, 0, 255}

func smallConfig(mode render.Mode, w, h int) render.Config {
	cfg := render.DefaultConfig()
	cfg.Mode = mode
	cfg.Width = w
	cfg.Height = h
	return cfg
}

var _ = Describe("Render", func() {
	Context("with an empty sequence", func() {
		It("returns a black canvas of the configured size for every mode", func() {
			for _, m := range render.Modes() {
				c, err := render.RenderText("  ", smallConfig(m, 7, 3))
				Expect(err).NotTo(HaveOccurred())
				Expect(c.Width()).To(Equal(7))
				Expect(c.Height()).To(Equal(3))
				for _, v := range c.Float32() {
					Expect(v).To(BeZero())
				}
			}
		})
	})

	Context("with malformed input", func() {
		It("fails with a parse error and no canvas", func() {
			c, err := render.RenderText("1, two, 3", smallConfig(render.ModeRGB, 4, 4))
			Expect(err).To(MatchError(seq.ErrMalformed))
			Expect(c).To(BeNil())
		})
	})

	Context("with an invalid config", func() {
		It("rejects a zero-sized canvas", func() {
			_, err := render.RenderText("1", smallConfig(render.ModeRGB, 0, 4))
			Expect(err).To(MatchError(render.ErrInvalidSize))
		})

		It("rejects an inverted value range", func() {
			cfg := smallConfig(render.ModeRGB, 4, 4)
			cfg.Colors = palette.Bounds{ValueMin: palette.Set(10), ValueMax: palette.Set(5)}.Resolve()
			_, err := render.Render(seq.Sequence{1}, cfg)
			Expect(err).To(MatchError(palette.ErrInvalidRange))
		})

		It("rejects an unknown mode", func() {
			_, err := render.Render(seq.Sequence{1}, smallConfig(render.Mode(99), 4, 4))
			Expect(err).To(MatchError(render.ErrUnknownMode))
		})

		It("rejects a color offset above one", func() {
			cfg := smallConfig(render.ModeRGB, 4, 4)
			cfg.ColorOffset = 1.5
			_, err := render.Render(seq.Sequence{1}, cfg)
			Expect(err).To(MatchError(render.ErrInvalidOffset))
		})
	})

	Describe("ParseMode", func() {
		It("accepts the canonical names", func() {
			for _, m := range render.Modes() {
				got, err := render.ParseMode(m.String())
				Expect(err).NotTo(HaveOccurred())
				Expect(got).To(Equal(m))
			}
		})

		It("accepts shell-friendly aliases", func() {
			m, err := render.ParseMode("run_and_turn")
			Expect(err).NotTo(HaveOccurred())
			Expect(m).To(Equal(render.ModeRunTurn))
		})

		It("rejects unknown names", func() {
			_, err := render.ParseMode("spiral")
			Expect(err).To(MatchError(render.ErrUnknownMode))
		})
	})

	Describe("Registry", func() {
		It("has a renderer for every mode", func() {
			r := render.NewRegistry()
			Expect(r.Modes()).To(Equal(render.Modes()))
			for _, m := range render.Modes() {
				rd, err := r.Get(m)
				Expect(err).NotTo(HaveOccurred())
				Expect(rd.Mode()).To(Equal(m))
			}
		})

		It("lets Register replace a mode's renderer", func() {
			r := render.NewRegistry()
			r.Register(render.ModeRGB, func() render.Renderer { return render.Automaton{} })

			rd, err := r.Get(render.ModeRGB)
			Expect(err).NotTo(HaveOccurred())
			Expect(rd.Mode()).To(Equal(render.ModeAutomaton))
			Expect(r.Modes()).To(HaveLen(len(render.Modes())))
		})
	})
})

var _ = Describe("Raster", func() {
	It("colors 0 and 255 differently through the offset channels", func() {
		c, err := render.RenderText("0,255", smallConfig(render.ModeRGB, 2, 1))
		Expect(err).NotTo(HaveOccurred())
		Expect(c.At(0, 0)).To(Equal(color.RGBA{0, 84, 168, 255}))
		Expect(c.At(1, 0)).To(Equal(color.RGBA{255, 83, 167, 255}))
	})

	It("cycles the sequence in row-major order", func() {
		c, err := render.RenderText("0,255,90", smallConfig(render.ModeRGB, 2, 2))
		Expect(err).NotTo(HaveOccurred())
		Expect(c.At(0, 1)).To(Equal(color.RGBA{90, 174, 2, 255}))
		Expect(c.At(1, 1)).To(Equal(c.At(0, 0)))
	})

	It("exports a normalized HWC buffer", func() {
		c, err := render.RenderText("0,255", smallConfig(render.ModeRGB, 2, 1))
		Expect(err).NotTo(HaveOccurred())
		buf := c.Float32()
		Expect(buf).To(HaveLen(6))
		Expect(buf[0]).To(BeZero())
		Expect(buf[1]).To(BeNumerically("~", 84.0/255, 1e-6))
		Expect(buf[3]).To(BeNumerically("==", 1))
	})
})

var _ = Describe("Automaton", func() {
	It("follows rule 30 from a single seeded cell", func() {
		cfg := smallConfig(render.ModeAutomaton, 5, 2)
		c, err := render.RenderText("1,0,0,0,0", cfg)
		Expect(err).NotTo(HaveOccurred())

		white := color.RGBA{255, 255, 255, 255}
		row0 := []color.RGBA{white, black, black, black, black}
		row1 := []color.RGBA{white, white, black, black, white}
		for x := 0; x < 5; x++ {
			Expect(c.At(x, 0)).To(Equal(row0[x]), "row 0, x=%d", x)
			Expect(c.At(x, 1)).To(Equal(row1[x]), "row 1, x=%d", x)
		}
	})

	It("seeds by the sequence's own min and max, not the value range", func() {
		row := render.SeedRow(seq.Sequence{1000, 2000}, 4)
		Expect(row).To(Equal([]uint8{0, 1, 0, 1}))
	})

	It("seeds all zeros for a constant sequence", func() {
		Expect(render.SeedRow(seq.Sequence{7}, 3)).To(Equal([]uint8{0, 0, 0}))
	})

	It("paints with the channel minimums and maximums", func() {
		cfg := smallConfig(render.ModeAutomaton, 2, 1)
		cfg.Colors = palette.Bounds{
			RedMin: palette.Set(10), RedMax: palette.Set(20),
			GreenMin: palette.Set(30), GreenMax: palette.Set(40),
			BlueMin: palette.Set(50), BlueMax: palette.Set(60),
		}.Resolve()
		c, err := render.RenderText("0,1", cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.At(0, 0)).To(Equal(color.RGBA{10, 30, 50, 255}))
		Expect(c.At(1, 0)).To(Equal(color.RGBA{20, 40, 60, 255}))
	})

	It("ignores the boundary policy", func() {
		a := smallConfig(render.ModeAutomaton, 9, 6)
		b := a
		b.Boundary = boundary.None
		ca, _ := render.RenderText("3,1,4,1,5,9,2,6", a)
		cb, _ := render.RenderText("3,1,4,1,5,9,2,6", b)
		Expect(ca.Float32()).To(Equal(cb.Float32()))
	})

	Describe("RuleTable", func() {
		It("reads the rule as an MSB-first bit string", func() {
			t := render.NewRuleTable(30)
			Expect(t.String()).To(Equal("00011110"))
			Expect(t.Rule()).To(Equal(uint8(30)))
			Expect(t.Next(1, 1, 1)).To(Equal(uint8(0)))
			Expect(t.Next(1, 0, 0)).To(Equal(uint8(1)))
			Expect(t.Next(0, 0, 1)).To(Equal(uint8(1)))
		})

		It("wraps neighbors around the row", func() {
			next := render.Evolve([]uint8{0, 0, 0, 0, 1}, render.NewRuleTable(30))
			Expect(next).To(Equal([]uint8{1, 0, 0, 1, 1}))
		})
	})
})

var _ = Describe("Meander", func() {
	var cfg render.Config

	BeforeEach(func() {
		cfg = smallConfig(render.ModeMeander, 40, 40)
		cfg.StartX = 5
		cfg.StartY = 20
	})

	It("moves up by the length scale for the minimum value", func() {
		st, px, ok := render.MeanderStep(cfg.Start(), 0, cfg)
		Expect(ok).To(BeTrue())
		Expect(st).To(Equal(render.DrawState{X: 5, Y: 10}))
		Expect(px.X).To(Equal(5))
		Expect(px.Y).To(Equal(10))
	})

	It("clamps the painted point but keeps the cursor under clamp", func() {
		cfg.StartY = 3
		st, px, ok := render.MeanderStep(cfg.Start(), 0, cfg)
		Expect(ok).To(BeTrue())
		Expect(st.Y).To(Equal(-7.0))
		Expect(px.Y).To(Equal(0))
	})

	It("wraps the painted point under wrap", func() {
		cfg.StartX = 38
		cfg.StartY = 5
		cfg.Boundary = boundary.Wrap
		_, px, ok := render.MeanderStep(cfg.Start(), 127.5, cfg)
		Expect(ok).To(BeTrue())
		Expect(px.X).To(Equal(8))
		Expect(px.Y).To(Equal(15))
	})

	It("skips painting off-canvas points under none", func() {
		cfg.StartY = 3
		cfg.Boundary = boundary.None
		st, _, ok := render.MeanderStep(cfg.Start(), 0, cfg)
		Expect(ok).To(BeFalse())
		Expect(st.Y).To(Equal(-7.0))
	})

	// Bounce here only clamps the cursor. Unlike the walk renderers it never
	// reflects, so repeated upward steps stay pinned to the top edge.
	It("pins the cursor to the edge under bounce without reflecting", func() {
		cfg.StartY = 3
		cfg.Boundary = boundary.Bounce
		st := cfg.Start()
		for i := 0; i < 3; i++ {
			var px render.Pixel
			var ok bool
			st, px, ok = render.MeanderStep(st, 0, cfg)
			Expect(ok).To(BeTrue())
			Expect(px.Y).To(Equal(0))
			Expect(st.Y).To(Equal(0.0))
		}
		Expect(st.Heading).To(BeZero())
	})

	Context("under bounce", func() {
		const (
			right   = 91.0 // floor(91*7/255) = 2
			upRight = 55.0 // floor(55*7/255) = 1
		)

		BeforeEach(func() {
			cfg.Boundary = boundary.Bounce
		})

		It("clamps the cursor but paints nothing when only x overflows", func() {
			cfg.StartX = 35
			st, _, ok := render.MeanderStep(cfg.Start(), right, cfg)
			Expect(ok).To(BeFalse())
			Expect(st).To(Equal(render.DrawState{X: 39, Y: 20}))

			c, err := render.RenderText("91", cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.At(39, 20)).To(Equal(color.RGBA{0, 0, 0, 255}))
		})

		It("paints the clamped cursor when only y overflows", func() {
			cfg.StartY = 3
			st, px, ok := render.MeanderStep(cfg.Start(), 0, cfg)
			Expect(ok).To(BeTrue())
			Expect(st).To(Equal(render.DrawState{X: 5, Y: 0}))
			Expect(px.X).To(Equal(5))
			Expect(px.Y).To(Equal(0))
		})

		It("paints the clamped cursor when both axes overflow", func() {
			cfg.StartX = 35
			cfg.StartY = 3
			st, px, ok := render.MeanderStep(cfg.Start(), upRight, cfg)
			Expect(ok).To(BeTrue())
			Expect(st).To(Equal(render.DrawState{X: 39, Y: 0}))
			Expect(px.X).To(Equal(39))
			Expect(px.Y).To(Equal(0))
		})
	})

	It("holds still when the value maps outside the eight directions", func() {
		st, _, _ := render.MeanderStep(cfg.Start(), -100, cfg)
		Expect(st).To(Equal(cfg.Start()))
	})

	It("paints each step with the value's color", func() {
		c, err := render.RenderText("0,0", cfg)
		Expect(err).NotTo(HaveOccurred())
		want := color.RGBA{0, 84, 168, 255}
		Expect(c.At(5, 10)).To(Equal(want))
		Expect(c.At(5, 0)).To(Equal(want))
		Expect(c.At(5, 20)).To(Equal(black))
	})
})

var _ = Describe("Walk", func() {
	var cfg render.Config

	BeforeEach(func() {
		cfg = smallConfig(render.ModeAngleLength, 40, 40)
		cfg.StartX = 10
		cfg.StartY = 10
		cfg.LengthScale = 1
	})

	Context("with the cumulative policy", func() {
		It("draws a line at the turned heading", func() {
			c, err := render.RenderText("10,90", cfg)
			Expect(err).NotTo(HaveOccurred())
			want := color.RGBA{90, 174, 2, 255}
			for y := 10; y <= 20; y++ {
				Expect(c.At(10, y)).To(Equal(want), "y=%d", y)
			}
			Expect(c.At(10, 21)).To(Equal(black))
			Expect(c.At(11, 15)).To(Equal(black))

			strokes := c.Strokes()
			Expect(strokes).To(HaveLen(1))
			Expect(strokes[0].Y1).To(BeNumerically("~", 20, 1e-9))
		})

		It("accumulates heading across pairs", func() {
			st, _ := render.WalkStep(cfg.Start(), 5, 90, render.Cumulative, cfg)
			st, seg := render.WalkStep(st, 5, 90, render.Cumulative, cfg)
			Expect(st.Heading).To(Equal(180.0))
			Expect(seg.X1).To(BeNumerically("~", 5, 1e-9))
			Expect(seg.Y1).To(BeNumerically("~", 15, 1e-9))
		})

		It("ignores a trailing unpaired value", func() {
			c, err := render.RenderText("10,90,7", cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Strokes()).To(HaveLen(1))
		})

		It("reflects the heading on bounce and restarts from the clamped point", func() {
			cfg.StartY = 5
			cfg.Boundary = boundary.Bounce
			st, seg := render.WalkStep(cfg.Start(), 10, 270, render.Cumulative, cfg)
			Expect(seg.Y1).To(BeNumerically("~", -5, 1e-9))
			Expect(st.Heading).To(Equal(90.0))
			Expect(st.Y).To(Equal(0.0))

			st, seg = render.WalkStep(st, 10, 0, render.Cumulative, cfg)
			Expect(seg.Y1).To(BeNumerically("~", 10, 1e-9))
		})

		It("reflects on both axes at a corner", func() {
			cfg.StartX = 2
			cfg.StartY = 2
			cfg.Boundary = boundary.Bounce
			st, _ := render.WalkStep(cfg.Start(), 10, 225, render.Cumulative, cfg)
			Expect(st.Heading).To(BeNumerically("~", 360-(180-225), 1e-9))
			Expect(st.X).To(BeZero())
			Expect(st.Y).To(BeZero())
		})

		It("continues from the raw endpoint under none", func() {
			cfg.StartX = 35
			cfg.Boundary = boundary.None
			c, err := render.RenderText("10,0,10,180", cfg)
			Expect(err).NotTo(HaveOccurred())
			strokes := c.Strokes()
			Expect(strokes).To(HaveLen(2))
			Expect(strokes[1].X0).To(BeNumerically("~", 45, 1e-9))
			Expect(strokes[1].X1).To(BeNumerically("~", 35, 1e-9))
			Expect(c.At(39, 10)).NotTo(Equal(black))
		})

		It("wraps the next start under wrap", func() {
			cfg.StartX = 35
			cfg.Boundary = boundary.Wrap
			st, _ := render.WalkStep(cfg.Start(), 10, 0, render.Cumulative, cfg)
			Expect(st.X).To(BeNumerically("~", 5, 1e-9))
		})
	})

	Context("with the absolute policy", func() {
		BeforeEach(func() {
			cfg.Mode = render.ModeRunTurn
		})

		It("uses the remapped turn as a bearing and colors by length", func() {
			c, err := render.RenderText("10,0", cfg)
			Expect(err).NotTo(HaveOccurred())
			want := color.RGBA{10, 94, 178, 255}
			for x := 10; x <= 20; x++ {
				Expect(c.At(x, 10)).To(Equal(want), "x=%d", x)
			}
		})

		It("does not accumulate heading", func() {
			st, _ := render.WalkStep(cfg.Start(), 5, 127.5, render.Absolute, cfg)
			Expect(st.Heading).To(BeNumerically("~", 180, 1e-9))
			_, seg := render.WalkStep(st, 5, 127.5, render.Absolute, cfg)
			Expect(seg.X1).To(BeNumerically("~", 0, 1e-9))
		})

		It("reflects only the step's own bearing on bounce", func() {
			cfg.StartY = 5
			cfg.Boundary = boundary.Bounce
			// 191.25 maps to a 270 degree bearing, straight up.
			st, _ := render.WalkStep(cfg.Start(), 10, 191.25, render.Absolute, cfg)
			Expect(st.Heading).To(BeNumerically("~", 90, 1e-9))
			Expect(st.Y).To(BeZero())

			_, seg := render.WalkStep(st, 10, 191.25, render.Absolute, cfg)
			Expect(seg.Y1).To(BeNumerically("~", -10, 1e-9))
		})
	})

	It("draws wide strokes across the stroke width", func() {
		cfg.LineWidth = 3
		c, err := render.RenderText("10,0", cfg)
		Expect(err).NotTo(HaveOccurred())
		for _, y := range []int{9, 10, 11} {
			Expect(c.At(15, y)).NotTo(Equal(black), "y=%d", y)
		}
		Expect(c.At(15, 13)).To(Equal(black))
	})
})
