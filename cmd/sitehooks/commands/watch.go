package commands

import (
	"context"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/kubasejdak/sitehooks/internal/config"
	"github.com/kubasejdak/sitehooks/internal/redirect"
	"github.com/kubasejdak/sitehooks/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	SiteOverrides
	Debounce time.Duration `help:"Quiet period after the last change before re-running" default:"300ms"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	cfg, err := w.LoadConfig(root.Config)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return RunWatch(ctx, g, cfg, w.Debounce)
}

// RunWatch runs the post-build hook once, then again on every change under
// docs_dir/assets until ctx is done.
func RunWatch(ctx context.Context, g *Global, cfg *config.BuildConfig, debounce time.Duration) error {
	if err := RunPostBuild(g, cfg); err != nil {
		return err
	}
	assetsDir := filepath.Join(cfg.DocsDir, redirect.AssetsDir)
	return watch.New(assetsDir, func() error { return RunPostBuild(g, cfg) }, debounce, watch.WithLogger(g.logger())).Run(ctx)
}
