package playback_test

import (
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/trace"
)

// recordingSurface forwards to Bars and logs every instruction it receives.
type recordingSurface struct {
	bars playback.Bars
	log  []string
}

func (r *recordingSurface) SwapHeights(i, j int) {
	r.bars.SwapHeights(i, j)
	r.log = append(r.log, fmt.Sprintf("swap %d %d", i, j))
}

func (r *recordingSurface) SetHeight(i, v int) {
	r.bars.SetHeight(i, v)
	r.log = append(r.log, fmt.Sprintf("set %d %d", i, v))
}

func (r *recordingSurface) Paint(i int, color string) {
	r.bars.Paint(i, color)
	r.log = append(r.log, fmt.Sprintf("paint %d %s", i, color))
}

var _ = Describe("Scheduler", func() {
	const d = 20 * time.Millisecond

	var (
		sched   *playback.Scheduler
		surface *recordingSurface
		palette playback.Palette
		t0      time.Time
	)

	at := func(steps float64) time.Time {
		return t0.Add(time.Duration(steps * float64(d)))
	}

	BeforeEach(func() {
		sched = playback.New(playback.Config{Delay: d}, nil)
		palette = playback.Palette{Normal: "N", Compare: "C"}
		surface = &recordingSurface{bars: playback.NewBars([]int{5, 3, 1}, "N")}
		t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	})

	It("starts idle", func() {
		Expect(sched.Phase()).To(Equal(playback.Idle))
		Expect(sched.Tick(t0)).To(BeFalse())
	})

	It("applies step i at start + i*delay", func() {
		tr := trace.Trace{trace.SwapStep(0, 1), trace.SwapStep(1, 2), trace.OverwriteStep(0, 9)}

		Expect(sched.Start(t0, tr, surface, palette)).To(BeTrue())
		Expect(sched.Playing()).To(BeTrue())
		Expect(surface.bars.Heights()).To(Equal([]int{3, 5, 1}))

		sched.Tick(at(0.99))
		Expect(surface.bars.Heights()).To(Equal([]int{3, 5, 1}))

		sched.Tick(at(1))
		Expect(surface.bars.Heights()).To(Equal([]int{3, 1, 5}))

		sched.Tick(at(2.5))
		Expect(surface.bars.Heights()).To(Equal([]int{9, 1, 5}))
		applied, total := sched.Progress()
		Expect(applied).To(Equal(3))
		Expect(total).To(Equal(3))
		Expect(sched.Playing()).To(BeTrue())

		Expect(sched.Tick(at(3))).To(BeFalse())
		Expect(sched.Phase()).To(Equal(playback.Idle))
	})

	It("catches up on late ticks in trace order", func() {
		tr := sorting.BubbleSort(trace.Sequence{5, 3, 1})
		sched.Start(t0, tr, surface, palette)

		Expect(sched.Tick(at(100))).To(BeFalse())
		Expect(surface.bars.Heights()).To(Equal([]int{1, 3, 5}))
		Expect(surface.log).To(Equal([]string{
			"paint 0 C", "paint 1 C",
			"paint 0 N", "paint 1 N",
			"swap 0 1",
			"paint 1 C", "paint 2 C",
			"paint 1 N", "paint 2 N",
			"swap 1 2",
			"paint 0 C", "paint 1 C",
			"paint 0 N", "paint 1 N",
			"swap 0 1",
		}))
	})

	It("flashes compared bars for one delay", func() {
		sched.Start(t0, trace.Trace{trace.CompareStep(0, 2)}, surface, palette)

		Expect(surface.bars[0].Color).To(Equal("C"))
		Expect(surface.bars[1].Color).To(Equal("N"))
		Expect(surface.bars[2].Color).To(Equal("C"))

		sched.Tick(at(0.5))
		Expect(surface.bars[0].Color).To(Equal("C"))
		Expect(sched.Playing()).To(BeTrue())

		Expect(sched.Tick(at(1))).To(BeFalse())
		Expect(surface.bars[0].Color).To(Equal("N"))
		Expect(surface.bars[2].Color).To(Equal("N"))
	})

	It("reverts a flash before applying a step due at the same instant", func() {
		tr := trace.Trace{trace.CompareStep(0, 1), trace.CompareStep(1, 2)}
		sched.Start(t0, tr, surface, palette)
		sched.Tick(at(1))

		Expect(surface.bars[0].Color).To(Equal("N"))
		Expect(surface.bars[1].Color).To(Equal("C"))
		Expect(surface.bars[2].Color).To(Equal("C"))
	})

	It("stays playing until a long flash has been reverted", func() {
		sched = playback.New(playback.Config{Delay: d, Flash: 3 * d}, nil)
		sched.Start(t0, trace.Trace{trace.CompareStep(0, 1)}, surface, palette)

		Expect(sched.Tick(at(2))).To(BeTrue())
		Expect(surface.bars[0].Color).To(Equal("C"))

		Expect(sched.Tick(at(3))).To(BeFalse())
		Expect(surface.bars[0].Color).To(Equal("N"))
	})

	It("holds the settle delay after the last step", func() {
		sched = playback.New(playback.Config{Delay: d, Settle: d}, nil)
		sched.Start(t0, trace.Trace{trace.SwapStep(0, 1)}, surface, palette)

		Expect(sched.Tick(at(1))).To(BeTrue())
		Expect(sched.Tick(at(2))).To(BeFalse())
	})

	It("finishes an empty trace immediately", func() {
		Expect(sched.Start(t0, trace.Trace{}, surface, palette)).To(BeTrue())
		Expect(sched.Phase()).To(Equal(playback.Idle))
		Expect(surface.log).To(BeEmpty())
	})

	It("ignores Start while playing", func() {
		first := trace.Trace{trace.SwapStep(0, 1), trace.SwapStep(1, 2)}
		Expect(sched.Start(t0, first, surface, palette)).To(BeTrue())

		other := &recordingSurface{bars: playback.NewBars([]int{1, 1, 1}, "N")}
		Expect(sched.Start(at(0.5), trace.Trace{trace.OverwriteStep(0, 7)}, other, palette)).To(BeFalse())

		_, total := sched.Progress()
		Expect(total).To(Equal(2))

		sched.Tick(at(5))
		Expect(surface.bars.Heights()).To(Equal([]int{3, 1, 5}))
		Expect(other.log).To(BeEmpty())
		Expect(sched.Playing()).To(BeFalse())
	})

	It("accepts a new trace once idle", func() {
		sched.Start(t0, trace.Trace{trace.SwapStep(0, 1)}, surface, palette)
		sched.Tick(at(1))
		Expect(sched.Playing()).To(BeFalse())

		Expect(sched.Start(at(2), trace.Trace{trace.SwapStep(0, 1)}, surface, palette)).To(BeTrue())
		Expect(surface.bars.Heights()).To(Equal([]int{5, 3, 1}))
	})

	It("sorts the bars for every algorithm", func() {
		for _, alg := range sorting.NewRegistry().Ordered() {
			seq := trace.Sequence{9, 4, 7, 4, 1, 8, 2}
			bars := playback.NewBars(seq, "N")

			s := playback.New(playback.Config{Delay: d}, nil)
			Expect(s.Start(t0, alg.Generate(seq), bars, palette)).To(BeTrue())
			s.Tick(at(10000))

			Expect(s.Playing()).To(BeFalse(), alg.Name)
			Expect(trace.Sequence(bars.Heights()).IsSorted()).To(BeTrue(), alg.Name)
			for _, b := range bars {
				Expect(b.Color).To(Equal("N"), alg.Name)
			}
		}
	})

	It("runs from a tick channel until idle", func() {
		sched.Start(t0, trace.Trace{trace.SwapStep(0, 1), trace.SwapStep(1, 2)}, surface, palette)

		ticks := make(chan time.Time, 4)
		ticks <- at(1)
		ticks <- at(2)
		ticks <- at(3)
		sched.Run(ticks)

		Expect(sched.Playing()).To(BeFalse())
		Expect(ticks).To(HaveLen(1))
	})

	It("returns from Run when ticks stop", func() {
		sched.Start(t0, trace.Trace{trace.SwapStep(0, 1), trace.SwapStep(1, 2)}, surface, palette)

		ticks := make(chan time.Time)
		close(ticks)
		sched.Run(ticks)
		Expect(sched.Playing()).To(BeTrue())
	})
})

var _ = Describe("Bars", func() {
	It("tracks heights and colors by index", func() {
		b := playback.NewBars([]int{4, 8, 2}, "grey")
		Expect(b.Max()).To(Equal(8))

		b.SwapHeights(0, 2)
		b.SetHeight(1, 6)
		b.Paint(1, "red")
		Expect(b.Heights()).To(Equal([]int{2, 6, 4}))
		Expect(b[1].Color).To(Equal("red"))

		b.PaintAll("blue")
		Expect(b[0].Color).To(Equal("blue"))
		Expect(b[1].Color).To(Equal("blue"))
	})

	It("reports zero max for no bars", func() {
		Expect(playback.Bars{}.Max()).To(Equal(0))
	})
})
