// Package hooks implements the two site build extension points: OnConfig,
// run while the site configuration is resolved, and OnPostBuild, run once
// after every page has been rendered.
package hooks

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/kubasejdak/sitehooks/internal/config"
	"github.com/kubasejdak/sitehooks/internal/logfields"
	"github.com/kubasejdak/sitehooks/internal/metrics"
	"github.com/kubasejdak/sitehooks/internal/redirect"
)

// Hook names as reported in logs and metrics.
const (
	HookConfig    = "on_config"
	HookPostBuild = "on_post_build"
)

// Clock is the time source used for the copyright year. quartz.Clock satisfies it.
type Clock interface {
	Now(tags ...string) time.Time
}

// Hooks bundles the lifecycle callbacks with their collaborators.
type Hooks struct {
	clock     Clock
	generator *redirect.Generator
	recorder  metrics.Recorder
	logger    *slog.Logger
}

// Option configures Hooks.
type Option func(*Hooks)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(h *Hooks) { h.clock = c }
}

// WithGenerator replaces the asset redirect generator.
func WithGenerator(g *redirect.Generator) Option {
	return func(h *Hooks) { h.generator = g }
}

// WithRecorder sets the metrics recorder for hook durations.
func WithRecorder(r metrics.Recorder) Option {
	return func(h *Hooks) { h.recorder = r }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Hooks) { h.logger = l }
}

// New creates Hooks using the real clock and a default generator.
func New(opts ...Option) *Hooks {
	h := &Hooks{
		clock:    quartz.NewReal(),
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.generator == nil {
		h.generator = redirect.NewGenerator(redirect.WithLogger(h.logger), redirect.WithRecorder(h.recorder))
	}
	return h
}

// Copyright formats the site copyright line.
func Copyright(startYear, currentYear int, author string) string {
	return fmt.Sprintf("Copyright © %d - %d %s", startYear, currentYear, author)
}

// OnConfig sets cfg.Copyright from the current year and returns cfg.
func (h *Hooks) OnConfig(cfg *config.BuildConfig) *config.BuildConfig {
	start := h.clock.Now()
	settings := effectiveSettings(cfg)

	cfg.Copyright = Copyright(settings.StartYear, start.Year(), settings.Author)
	h.logger.Debug("Copyright set", logfields.Hook(HookConfig), slog.String("copyright", cfg.Copyright))

	h.recorder.ObserveHookDuration(HookConfig, h.clock.Now().Sub(start))
	return cfg
}

// OnPostBuild publishes every configured asset redirect into cfg.SiteDir.
// The first fatal error aborts the remaining redirects.
func (h *Hooks) OnPostBuild(cfg *config.BuildConfig) error {
	start := h.clock.Now()
	settings := effectiveSettings(cfg)
	log := h.logger.With(logfields.RunID(uuid.NewString()), logfields.Hook(HookPostBuild))

	log.Debug("Running post-build hook",
		logfields.DocsDir(cfg.DocsDir),
		logfields.SiteDir(cfg.SiteDir),
		slog.Int("redirects", len(settings.Redirects)))

	defer func() {
		d := h.clock.Now().Sub(start)
		h.recorder.ObserveHookDuration(HookPostBuild, d)
		log.Debug("Post-build hook finished", logfields.DurationMS(float64(d.Microseconds())/1000))
	}()

	for _, spec := range settings.Redirects {
		if err := h.generator.AddAssetRedirect(cfg, spec.Asset, spec.URL); err != nil {
			log.Error("Asset redirect failed", logfields.Asset(spec.Asset), logfields.URL(spec.URL), logfields.Error(err))
			return err
		}
	}
	return nil
}

// effectiveSettings fills in defaults for configs built in code rather than loaded.
func effectiveSettings(cfg *config.BuildConfig) config.HooksConfig {
	s := cfg.Hooks
	if s.Author == "" {
		s.Author = config.DefaultAuthor
	}
	if s.StartYear == 0 {
		s.StartYear = config.DefaultStartYear
	}
	if s.Redirects == nil {
		s.Redirects = config.DefaultRedirects()
	}
	return s
}
