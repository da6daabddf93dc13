package commands

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kubasejdak/sitehooks/internal/config"
	"github.com/kubasejdak/sitehooks/internal/foundation/errors"
)

// runCLI parses args like the binary does and runs the selected command.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"}, kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)
	kctx, err := parser.Parse(args)
	require.NoError(t, err)

	var out bytes.Buffer
	err = kctx.Run(&Global{Logger: slog.New(slog.NewTextHandler(io.Discard, nil)), Out: &out})
	return out.String(), err
}

// newProject lays out mkdocs.yml, docs/assets/JakubSejdak_CV.pdf and an empty site dir.
func newProject(t *testing.T, extra string) (dir, configPath string) {
	t.Helper()
	dir = t.TempDir()
	configPath = filepath.Join(dir, "mkdocs.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("site_name: test\n"+extra), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs", "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "assets", "JakubSejdak_CV.pdf"), []byte("%PDF"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "site"), 0o755))
	return dir, configPath
}

func TestOnConfigCmd_PrintsCopyright(t *testing.T) {
	_, configPath := newProject(t, "")

	out, err := runCLI(t, "-c", configPath, "on-config")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Copyright © 2024 - %d Kuba Sejdak\n", time.Now().Year()), out)
}

func TestOnConfigCmd_YAML(t *testing.T) {
	dir, configPath := newProject(t, "")

	out, err := runCLI(t, "-c", configPath, "on-config", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "site_name: test\n")
	assert.Contains(t, out, "docs_dir: "+filepath.Join(dir, "docs")+"\n")
	assert.Contains(t, out, "copyright: ")
	assert.Contains(t, out, "2024 - ")
}

func TestOnPostBuildCmd_EndToEnd(t *testing.T) {
	dir, configPath := newProject(t, "")

	out, err := runCLI(t, "--config", configPath, "on-post-build")
	require.NoError(t, err)

	assert.Equal(t, "Created asset redirect from /cv to /downloads/JakubSejdak_CV.pdf\n", out)
	copied, err := os.ReadFile(filepath.Join(dir, "site", "downloads", "JakubSejdak_CV.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), copied)
	assert.FileExists(t, filepath.Join(dir, "site", "cv", "index.html"))
}

func TestOnPostBuildCmd_SiteDirOverrideAndMetrics(t *testing.T) {
	dir, configPath := newProject(t, "")
	siteDir := filepath.Join(dir, "alt-site")
	metricsFile := filepath.Join(dir, "sitehooks.prom")

	_, err := runCLI(t, "-c", configPath, "on-post-build", "--site-dir", siteDir, "--metrics-file", metricsFile)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(siteDir, "cv", "index.html"))
	assert.NoFileExists(t, filepath.Join(dir, "site", "cv", "index.html"))

	data, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `sitehooks_assets_total{result="copied"} 1`)
	assert.Contains(t, string(data), "sitehooks_redirect_pages_total 1")
}

func TestRunPostBuild_MetricsWriteFailureIsBuildError(t *testing.T) {
	dir, configPath := newProject(t, "")
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	cfg, err := config.Load(configPath)
	require.NoError(t, err)
	cfg.Hooks.MetricsFile = filepath.Join(blocker, "sitehooks.prom")

	err = RunPostBuild(&Global{Logger: slog.New(slog.NewTextHandler(io.Discard, nil)), Out: io.Discard}, cfg)
	require.Error(t, err)
	assert.Equal(t, errors.CategoryBuild, errors.GetCategory(err))
	assert.FileExists(t, filepath.Join(dir, "site", "cv", "index.html"))
}

func TestOnPostBuildCmd_MissingAssetIsNotFatal(t *testing.T) {
	dir, configPath := newProject(t, "extra:\n  sitehooks:\n    redirects:\n      - asset: missing.pdf\n        url: /missing\n")

	out, err := runCLI(t, "-c", configPath, "on-post-build")
	require.NoError(t, err)
	assert.Contains(t, out, "missing.pdf not found at "+filepath.Join(dir, "docs", "assets", "missing.pdf")+"\n")
	assert.FileExists(t, filepath.Join(dir, "site", "missing", "index.html"))
}

func TestOnPostBuildCmd_MissingConfig(t *testing.T) {
	_, err := runCLI(t, "-c", filepath.Join(t.TempDir(), "mkdocs.yml"), "on-post-build")
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestInitCmd(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "mkdocs.yml")

	out, err := runCLI(t, "-c", configPath, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "initialized successfully")
	assert.FileExists(t, configPath)

	_, err = runCLI(t, "-c", configPath, "init")
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))

	_, err = runCLI(t, "-c", configPath, "init", "--force")
	require.NoError(t, err)
}

func TestRunWatch_InitialRunAndCancel(t *testing.T) {
	dir, configPath := newProject(t, "")
	cfg, err := config.Load(configPath)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	g := &Global{Logger: slog.New(slog.NewTextHandler(io.Discard, nil)), Out: io.Discard}
	go func() { done <- RunWatch(ctx, g, cfg, 10*time.Millisecond) }()

	require.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(dir, "site", "cv", "index.html"))
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
