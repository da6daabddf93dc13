package redirect

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/kubasejdak/sitehooks/internal/config"
	"github.com/kubasejdak/sitehooks/internal/foundation/errors"
	"github.com/kubasejdak/sitehooks/internal/logfields"
	"github.com/kubasejdak/sitehooks/internal/metrics"
)

const (
	// AssetsDir is the directory under docs_dir holding redirectable assets.
	AssetsDir = "assets"
	// DownloadsDir is the directory under site_dir assets are copied into.
	DownloadsDir = "downloads"
	// PageFile is the file name of generated redirect pages.
	PageFile = "index.html"
)

// Generator copies assets into the built site and writes redirect pages.
type Generator struct {
	out      io.Writer
	logger   *slog.Logger
	recorder metrics.Recorder
}

// Option configures a Generator.
type Option func(*Generator)

// WithOutput sets the writer receiving the plain-text build diagnostics
// (stdout by default).
func WithOutput(w io.Writer) Option {
	return func(g *Generator) { g.out = w }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(g *Generator) { g.recorder = r }
}

// NewGenerator creates a Generator writing diagnostics to stdout.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		out:      os.Stdout,
		logger:   slog.Default(),
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// AddAssetRedirect copies docs_dir/assets/<assetPath> to site_dir/downloads and
// writes site_dir/<assetURL>/index.html redirecting to the copy. A missing
// source asset is reported and skipped; the page is still written.
// An assetURL that resolves outside site_dir yields a validation error and
// nothing is written.
func (g *Generator) AddAssetRedirect(cfg *config.BuildConfig, assetPath, assetURL string) error {
	sourcePath := filepath.Join(cfg.DocsDir, AssetsDir, assetPath)
	fileName := filepath.Base(assetPath)
	downloadURL := DownloadURL(fileName)

	redirectDir, err := RedirectDir(cfg.SiteDir, assetURL)
	if err != nil {
		return err
	}

	destinationDir := filepath.Join(cfg.SiteDir, DownloadsDir)
	if err := os.MkdirAll(destinationDir, 0o755); err != nil {
		return errors.FileSystemError("failed to create downloads directory").
			WithCause(err).
			WithContext(logfields.KeyPath, destinationDir).
			Build()
	}

	if err := g.publishAsset(sourcePath, filepath.Join(destinationDir, fileName), assetPath); err != nil {
		return err
	}

	if err := g.writePage(redirectDir, fileName); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(g.out, "Created asset redirect from %s to %s\n", assetURL, downloadURL)
	g.logger.Info("Asset redirect created",
		logfields.URL(assetURL),
		logfields.Path(downloadURL),
		logfields.File(filepath.Join(redirectDir, PageFile)))
	return nil
}

func (g *Generator) publishAsset(sourcePath, destinationPath, assetPath string) error {
	info, err := os.Stat(sourcePath)
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		_, _ = fmt.Fprintf(g.out, "%s not found at %s\n", assetPath, sourcePath)
		g.logger.Warn("Asset not found; skipping copy", logfields.Asset(assetPath), logfields.Path(sourcePath))
		g.recorder.IncAssetResult(metrics.AssetMissing)
		return nil
	case err != nil:
		g.recorder.IncAssetResult(metrics.AssetFailed)
		return errors.FileSystemError("failed to stat asset").
			WithCause(err).
			WithContext(logfields.KeyPath, sourcePath).
			Build()
	case info.IsDir():
		g.recorder.IncAssetResult(metrics.AssetFailed)
		return errors.FileSystemError("asset is a directory").
			WithContext(logfields.KeyPath, sourcePath).
			Build()
	}

	n, err := copyFile(sourcePath, destinationPath)
	if err != nil {
		g.recorder.IncAssetResult(metrics.AssetFailed)
		return errors.FileSystemError("failed to copy asset").
			WithCause(err).
			WithContext(logfields.KeyAsset, sourcePath).
			WithContext(logfields.KeyPath, destinationPath).
			Build()
	}
	g.recorder.IncAssetResult(metrics.AssetCopied)
	g.recorder.AddAssetBytes(n)
	g.logger.Debug("Asset copied", logfields.Asset(assetPath), logfields.Path(destinationPath), logfields.Bytes(n))
	return nil
}

func (g *Generator) writePage(redirectDir, fileName string) error {
	content, err := RenderPage(fileName)
	if err != nil {
		return errors.InternalError("failed to render redirect page").WithCause(err).Build()
	}

	if err := os.MkdirAll(redirectDir, 0o755); err != nil {
		return errors.FileSystemError("failed to create redirect directory").
			WithCause(err).
			WithContext(logfields.KeyPath, redirectDir).
			Build()
	}

	indexPath := filepath.Join(redirectDir, PageFile)
	if existing, err := os.ReadFile(indexPath); err == nil && !bytes.Equal(existing, content) {
		g.logger.Warn("Overwriting existing page with asset redirect", logfields.Path(indexPath))
	}
	if err := os.WriteFile(indexPath, content, 0o644); err != nil {
		return errors.FileSystemError("failed to write redirect page").
			WithCause(err).
			WithContext(logfields.KeyPath, indexPath).
			Build()
	}
	g.recorder.IncRedirectPage()
	return nil
}

// RedirectDir returns the directory under siteDir that serves assetURL.
// Leading and trailing slashes are ignored, so "/cv", "cv" and "/cv/" name
// the same directory.
func RedirectDir(siteDir, assetURL string) (string, error) {
	if !config.IsLocalURLPath(assetURL) {
		return "", errors.ValidationError("redirect url escapes site directory").
			WithContext(logfields.KeyURL, assetURL).
			Build()
	}
	return filepath.Join(siteDir, filepath.FromSlash(strings.Trim(assetURL, "/"))), nil
}
