package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/marquee/internal/cache"
	"github.com/vmunix/marquee/internal/config"
	"github.com/vmunix/marquee/internal/display"
	"github.com/vmunix/marquee/internal/render"
	"github.com/vmunix/marquee/internal/serpapi"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// displayLocation maps an optional fixed-offset config value to the
// location used for banner timestamps. Freshness stays UTC regardless.
func displayLocation(offsetHours *float64) *time.Location {
	if offsetHours == nil {
		return time.UTC
	}
	return time.FixedZone(fmt.Sprintf("UTC%+g", *offsetHours), int(*offsetHours*3600))
}

func run(cmd *cobra.Command, args []string) error {
	// Config errors are the only fatal ones; everything past this point
	// degrades instead of exiting.
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if refreshOverride > 0 {
		cfg.RefreshSeconds = refreshOverride
	}
	if cacheOverride != "" {
		cfg.CacheFile = cacheOverride
	}

	// Log to stderr; stdout is the display surface.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := serpapi.NewClient(cfg.APIKey,
		serpapi.WithLocale(cfg.Locale.Language, cfg.Locale.Country))
	store := cache.NewStore(cfg.CacheFile, logger.With("component", "cache"))
	console := render.NewConsole(os.Stdout, displayLocation(cfg.TZOffsetHours))

	controller := display.NewController(store, client, console, display.Config{
		Theaters: cfg.Theaters,
		Interval: time.Duration(cfg.RefreshSeconds) * time.Second,
	}, logger.With("component", "display"))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return controller.Run(ctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("stopped")
	return nil
}
