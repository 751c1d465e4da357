package wilsoncowan

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"wilson-ca/pkg/core"
)

const progressEvery = 50

// Option configures a Simulator.
type Option func(*Simulator)

// WithLogger routes run logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.log = l
		}
	}
}

// WithProgress registers a callback invoked after every committed step.
func WithProgress(fn func(step, total int)) Option {
	return func(s *Simulator) { s.progress = fn }
}

// Simulator drives a Grid through a fixed number of steps and owns the
// resulting History. Step t only ever reads frame t-1.
type Simulator struct {
	cfg      Config
	rng      core.Bernoulli
	grid     *Grid
	hist     *History
	log      *slog.Logger
	progress func(step, total int)
}

// New validates cfg and builds the grid, drawing initial activity from rng.
// A nil rng is replaced by a PCG source seeded with cfg.Seed.
func New(cfg Config, rng core.Bernoulli, opts ...Option) (*Simulator, error) {
	if rng == nil {
		rng = core.NewRNG(cfg.Seed)
	}
	grid, err := NewGrid(cfg, rng)
	if err != nil {
		return nil, err
	}
	s := &Simulator{
		cfg:  cfg,
		rng:  rng,
		grid: grid,
		hist: NewHistory(cfg.Steps, cfg.Rows, cfg.Cols),
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Config returns the run configuration.
func (s *Simulator) Config() Config { return s.cfg }

// Grid exposes the cells, e.g. to place stimuli before the first step.
func (s *Simulator) Grid() *Grid { return s.grid }

// History returns the record written so far.
func (s *Simulator) History() *History { return s.hist }

// Step commits the next frame and returns its index. Frame 0 is the initial
// activity drawn at construction; later frames apply the transition rule to
// the previous frame.
func (s *Simulator) Step() (int, error) {
	t := s.hist.Len()
	if t >= s.hist.Steps() {
		return t, ErrHistoryComplete
	}
	slot := s.hist.slot(t)
	var err error
	if t == 0 {
		err = s.grid.Seed(slot)
	} else {
		err = s.grid.Advance(s.hist.Frame(t-1), slot, s.rng)
	}
	if err != nil {
		return t, fmt.Errorf("step %d: %w", t, err)
	}
	s.hist.commit()

	if s.progress != nil {
		s.progress(t, s.hist.Steps())
	}
	if t%progressEvery == 0 {
		s.log.Debug("step committed", "step", t, "active", s.hist.ActiveCount(t))
	}
	return t, nil
}

// Run steps until the history is full. It checks ctx between steps and
// returns no history when interrupted.
func (s *Simulator) Run(ctx context.Context) (*History, error) {
	start := time.Now()
	s.log.Info("simulation started",
		"rows", s.cfg.Rows, "cols", s.cfg.Cols, "steps", s.cfg.Steps,
		"radius", s.cfg.ConnectivityRadius, "threshold", s.cfg.Threshold)
	for s.hist.Len() < s.hist.Steps() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run interrupted at step %d: %w", s.hist.Len(), err)
		}
		if _, err := s.Step(); err != nil {
			return nil, err
		}
	}
	s.log.Info("simulation finished", "steps", s.hist.Len(), "elapsed", time.Since(start))
	return s.hist, nil
}

// Run is a convenience wrapper building a Simulator and running it to the end.
func Run(ctx context.Context, cfg Config, rng core.Bernoulli, opts ...Option) (*History, error) {
	sim, err := New(cfg, rng, opts...)
	if err != nil {
		return nil, err
	}
	return sim.Run(ctx)
}
