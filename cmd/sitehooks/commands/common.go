package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/kubasejdak/sitehooks/internal/config"
	"github.com/kubasejdak/sitehooks/internal/hooks"
	"github.com/kubasejdak/sitehooks/internal/metrics"
	"github.com/kubasejdak/sitehooks/internal/redirect"
)

// Global carries state shared by every subcommand.
type Global struct {
	Logger *slog.Logger
	// Out receives the plain build diagnostics the site generator shows its user.
	Out io.Writer
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Site configuration file path" default:"mkdocs.yml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	OnConfig    OnConfigCmd    `cmd:"" name:"on-config" help:"Run the config hook and print the resulting copyright"`
	OnPostBuild OnPostBuildCmd `cmd:"" name:"on-post-build" help:"Run the post-build hook against a built site"`
	Watch       WatchCmd       `cmd:"" help:"Run the post-build hook, then again whenever assets change"`
	Init        InitCmd        `cmd:"" help:"Write an example site configuration"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	envLevel, ok, envErr := config.LogLevel()
	if ok {
		level = envLevel
	}
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	if envErr != nil {
		slog.Warn("Ignoring log level from environment", "error", envErr)
	}
	return nil
}

// SiteOverrides are the directory flags shared by commands that touch the site tree.
type SiteOverrides struct {
	DocsDir string `name:"docs-dir" help:"Override docs_dir from the configuration" type:"path"`
	SiteDir string `name:"site-dir" help:"Override site_dir from the configuration" type:"path"`
}

// LoadConfig loads the site configuration and applies the directory overrides.
func (o SiteOverrides) LoadConfig(path string) (*config.BuildConfig, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if o.DocsDir != "" {
		cfg.DocsDir = o.DocsDir
	}
	if o.SiteDir != "" {
		cfg.SiteDir = o.SiteDir
	}
	return cfg, nil
}

// newHooks wires the hooks with the global diagnostics writer, logger and recorder.
func newHooks(g *Global, recorder metrics.Recorder) *hooks.Hooks {
	logger := g.logger()
	gen := redirect.NewGenerator(
		redirect.WithOutput(g.out()),
		redirect.WithLogger(logger),
		redirect.WithRecorder(recorder),
	)
	return hooks.New(hooks.WithGenerator(gen), hooks.WithRecorder(recorder), hooks.WithLogger(logger))
}

func (g *Global) logger() *slog.Logger {
	if g == nil || g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}
