// Package display drives the showtimes cycle: ensure a fresh snapshot,
// flatten it into per-theater display units, and advance through them at
// a fixed cadence, refetching when the UTC day rolls over.
package display

import (
	"context"
	"log/slog"
	"time"

	"github.com/vmunix/marquee/internal/cache"
	"github.com/vmunix/marquee/internal/config"
	"github.com/vmunix/marquee/internal/showtimes"
)

//go:generate mockgen -source=controller.go -destination=mocks/mocks.go -package=mocks

// Fetcher retrieves one theater's listing from the external search API.
type Fetcher interface {
	Showtimes(ctx context.Context, theater, location string) ([]showtimes.Movie, string, error)
}

// Renderer writes one frame of the display.
type Renderer interface {
	RenderTheater(th *showtimes.Theater, now time.Time) error
	RenderEmpty(now time.Time) error
}

// WaitFunc blocks for the inter-tick interval. It must return early with
// the context's error when the context is canceled.
type WaitFunc func(ctx context.Context, d time.Duration) error

func sleepWait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Config for the display cycle.
type Config struct {
	Theaters []config.Theater
	Interval time.Duration
}

// Controller owns the cycle state: the current snapshot and the pointer
// into its display units. No ambient globals; everything a tick touches
// lives here.
type Controller struct {
	store    *cache.Store
	fetcher  Fetcher
	renderer Renderer
	clock    Clock
	wait     WaitFunc
	config   Config
	logger   *slog.Logger

	snapshot *showtimes.Snapshot
	units    []Unit
	idx      int
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock substitutes the current-time source (for tests).
func WithClock(clk Clock) Option {
	return func(c *Controller) {
		c.clock = clk
	}
}

// WithWait substitutes the inter-tick wait (for tests).
func WithWait(wait WaitFunc) Option {
	return func(c *Controller) {
		c.wait = wait
	}
}

// NewController creates a controller over the given collaborators.
func NewController(store *cache.Store, fetcher Fetcher, renderer Renderer, cfg Config, logger *slog.Logger, opts ...Option) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Controller{
		store:    store,
		fetcher:  fetcher,
		renderer: renderer,
		clock:    systemClock{},
		wait:     sleepWait,
		config:   cfg,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run executes the display loop until the context is canceled, in which
// case it returns the context's error (the caller treats cancellation as
// a clean stop). It never returns for any other reason: every failure
// past startup degrades to showing less data.
func (c *Controller) Run(ctx context.Context) error {
	c.ensureFresh(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		// Midnight rollover check happens on every tick, so a stale
		// snapshot is replaced within one interval of the day changing.
		today := civilDate(c.clock.Now())
		if c.snapshot == nil || c.snapshot.Date != today {
			c.refresh(ctx, today)
		}

		c.renderCurrent()

		if err := c.wait(ctx, c.config.Interval); err != nil {
			return err
		}

		c.advance()
	}
}

// ensureFresh adopts today's cached snapshot when one exists, otherwise
// triggers a full refetch. Runs once at startup; rollover mid-run always
// refetches.
func (c *Controller) ensureFresh(ctx context.Context) {
	today := civilDate(c.clock.Now())
	if snap, ok := c.store.Load(); ok && c.store.IsFresh(snap, today) {
		c.adopt(snap)
		c.logger.Info("using cached snapshot", "date", snap.Date, "theaters", len(snap.Theaters))
		return
	}
	c.refresh(ctx, today)
}

func (c *Controller) refresh(ctx context.Context, today string) {
	c.logger.Info("refreshing showtimes", "date", today, "theaters", len(c.config.Theaters))
	snap := c.store.RefreshAll(ctx, c.config.Theaters, c.fetcher.Showtimes, today)
	c.adopt(snap)
}

// adopt replaces the snapshot wholesale and resets the pointer.
func (c *Controller) adopt(snap *showtimes.Snapshot) {
	c.snapshot = snap
	c.units = Flatten(snap)
	c.idx = 0
}

// renderCurrent draws the unit under the pointer, or the no-data frame
// when there are no units. A render failure is logged and the loop moves
// on to the next tick.
func (c *Controller) renderCurrent() {
	now := c.clock.Now()

	if len(c.units) == 0 {
		if err := c.renderer.RenderEmpty(now); err != nil {
			c.logger.Warn("render failed, skipping tick", "error", err)
		}
		return
	}

	unit := c.units[c.idx]
	if err := c.renderer.RenderTheater(unit.Theater, now); err != nil {
		c.logger.Warn("render failed, skipping tick", "theater", unit.Theater.Name, "error", err)
	}
}

// advance moves the pointer circularly. With zero units there is nothing
// to advance over and the pointer stays put (no modulus on zero).
func (c *Controller) advance() {
	if len(c.units) == 0 {
		return
	}
	c.idx = (c.idx + 1) % len(c.units)
}
