package commands

import (
	"github.com/kubasejdak/sitehooks/internal/config"
	"github.com/kubasejdak/sitehooks/internal/foundation/errors"
	"github.com/kubasejdak/sitehooks/internal/logfields"
	"github.com/kubasejdak/sitehooks/internal/metrics"
)

// OnPostBuildCmd implements the 'on-post-build' command.
type OnPostBuildCmd struct {
	SiteOverrides
	MetricsFile string `name:"metrics-file" help:"Write Prometheus textfile metrics here (overrides extra.sitehooks.metrics_file)" type:"path"`
}

func (c *OnPostBuildCmd) Run(g *Global, root *CLI) error {
	cfg, err := c.LoadConfig(root.Config)
	if err != nil {
		return err
	}
	if c.MetricsFile != "" {
		cfg.Hooks.MetricsFile = c.MetricsFile
	}
	return RunPostBuild(g, cfg)
}

// RunPostBuild runs the post-build hook once and flushes metrics when a metrics file is configured.
func RunPostBuild(g *Global, cfg *config.BuildConfig) error {
	var recorder metrics.Recorder = metrics.NoopRecorder{}
	var prom *metrics.PrometheusRecorder
	if cfg.Hooks.MetricsFile != "" {
		prom = metrics.NewPrometheusRecorder(nil)
		recorder = prom
	}

	hookErr := newHooks(g, recorder).OnPostBuild(cfg)

	if prom != nil {
		if err := prom.WriteTextfile(cfg.Hooks.MetricsFile); err != nil {
			if hookErr != nil {
				g.logger().Warn("Failed to write metrics file", logfields.Path(cfg.Hooks.MetricsFile), logfields.Error(err))
				return hookErr
			}
			return errors.BuildError("failed to write metrics file").
				WithCause(err).
				WithContext("path", cfg.Hooks.MetricsFile).
				Build()
		}
	}
	return hookErr
}
