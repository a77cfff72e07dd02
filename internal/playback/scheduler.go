package playback

import (
	"time"

	"github.com/san-kum/sortviz/internal/trace"
	"go.uber.org/zap"
)

type Phase int

const (
	Idle Phase = iota
	Playing
)

func (p Phase) String() string {
	if p == Playing {
		return "playing"
	}
	return "idle"
}

type Config struct {
	// Delay separates consecutive steps.
	Delay time.Duration
	// Flash is how long a compared pair stays highlighted. Zero means Delay.
	Flash time.Duration
	// Settle is extra time held in Playing after the last step.
	Settle time.Duration
}

func DefaultConfig() Config {
	return Config{Delay: 20 * time.Millisecond}
}

type revert struct {
	due  time.Time
	i, j int
}

// Scheduler replays a trace onto a Surface, applying step i at start + i*Delay.
// It is driven by Tick, so every step is applied from the caller's single
// loop, in trace order.
type Scheduler struct {
	cfg     Config
	log     *zap.Logger
	phase   Phase
	surface Surface
	palette Palette
	steps   trace.Trace
	start   time.Time
	cursor  int
	pending []revert
}

func New(cfg Config, log *zap.Logger) *Scheduler {
	if cfg.Flash <= 0 {
		cfg.Flash = cfg.Delay
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{cfg: cfg, log: log}
}

func (s *Scheduler) Phase() Phase   { return s.phase }
func (s *Scheduler) Playing() bool  { return s.phase == Playing }
func (s *Scheduler) Config() Config { return s.cfg }

// Progress reports how many steps have been applied out of the trace length.
func (s *Scheduler) Progress() (applied, total int) {
	return s.cursor, len(s.steps)
}

// Start begins playing t onto surface at now. It returns false and schedules
// nothing if a playback is already in progress.
func (s *Scheduler) Start(now time.Time, t trace.Trace, surface Surface, palette Palette) bool {
	if s.phase == Playing {
		s.log.Debug("start ignored, playback in progress",
			zap.Int("applied", s.cursor), zap.Int("total", len(s.steps)))
		return false
	}

	s.phase = Playing
	s.surface = surface
	s.palette = palette
	s.steps = t
	s.start = now
	s.cursor = 0
	s.pending = s.pending[:0]

	s.log.Debug("playback started",
		zap.Int("steps", len(t)),
		zap.Duration("delay", s.cfg.Delay),
		zap.Duration("duration", s.End().Sub(now)))

	s.Tick(now)
	return true
}

// End returns when the current playback becomes idle, ignoring reversions
// that outlast it.
func (s *Scheduler) End() time.Time {
	return s.start.Add(time.Duration(len(s.steps))*s.cfg.Delay + s.cfg.Settle)
}

func (s *Scheduler) due(i int) time.Time {
	return s.start.Add(time.Duration(i) * s.cfg.Delay)
}

// Tick applies every step and reversion due at or before now, in time order.
// A reversion due at the same instant as a step is applied first. It reports
// whether playback is still in progress.
func (s *Scheduler) Tick(now time.Time) bool {
	if s.phase != Playing {
		return false
	}

	for {
		stepDue := s.cursor < len(s.steps) && !s.due(s.cursor).After(now)
		revertDue := len(s.pending) > 0 && !s.pending[0].due.After(now)

		switch {
		case revertDue && (!stepDue || !s.pending[0].due.After(s.due(s.cursor))):
			r := s.pending[0]
			s.pending = s.pending[1:]
			s.surface.Paint(r.i, s.palette.Normal)
			s.surface.Paint(r.j, s.palette.Normal)
		case stepDue:
			s.apply(s.steps[s.cursor], s.due(s.cursor))
			s.cursor++
		default:
			if s.cursor == len(s.steps) && len(s.pending) == 0 && !now.Before(s.End()) {
				s.phase = Idle
				s.log.Debug("playback finished", zap.Int("steps", len(s.steps)))
			}
			return s.phase == Playing
		}
	}
}

func (s *Scheduler) apply(step trace.Step, at time.Time) {
	switch step.Kind {
	case trace.Compare:
		s.surface.Paint(step.I, s.palette.Compare)
		s.surface.Paint(step.J, s.palette.Compare)
		s.pending = append(s.pending, revert{due: at.Add(s.cfg.Flash), i: step.I, j: step.J})
	case trace.Swap:
		s.surface.SwapHeights(step.I, step.J)
	case trace.Overwrite:
		s.surface.SetHeight(step.I, step.Value)
	}
}

// Run drives the scheduler from ticks until playback is idle.
func (s *Scheduler) Run(ticks <-chan time.Time) {
	for s.Playing() {
		now, ok := <-ticks
		if !ok {
			return
		}
		s.Tick(now)
	}
}
