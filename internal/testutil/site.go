// Package testutil provides filesystem fixtures and assertions for tests that
// run the hooks against a real docs_dir/site_dir pair.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kubasejdak/sitehooks/internal/config"
)

// Site is a temporary project with docs/assets and an empty site directory.
type Site struct {
	t      *testing.T
	Root   string
	Config *config.BuildConfig
}

// NewSite creates the project layout under t.TempDir().
func NewSite(t *testing.T) *Site {
	t.Helper()
	root := t.TempDir()
	cfg := config.Default()
	cfg.DocsDir = filepath.Join(root, "docs")
	cfg.SiteDir = filepath.Join(root, "site")
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.DocsDir, "assets"), 0o755))
	require.NoError(t, os.MkdirAll(cfg.SiteDir, 0o755))
	return &Site{t: t, Root: root, Config: cfg}
}

// AssetPath returns the absolute path of an asset under docs_dir/assets.
func (s *Site) AssetPath(rel string) string {
	return filepath.Join(s.Config.DocsDir, "assets", filepath.FromSlash(rel))
}

// SitePath returns the absolute path of a slash-separated path under site_dir.
func (s *Site) SitePath(rel string) string {
	return filepath.Join(s.Config.SiteDir, filepath.FromSlash(rel))
}

// WriteAsset writes content to docs_dir/assets/rel, creating parent directories.
func (s *Site) WriteAsset(rel string, content []byte) *Site {
	s.t.Helper()
	path := s.AssetPath(rel)
	require.NoError(s.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(s.t, os.WriteFile(path, content, 0o644))
	return s
}

// WriteSiteFile writes content to site_dir/rel, creating parent directories.
func (s *Site) WriteSiteFile(rel string, content []byte) *Site {
	s.t.Helper()
	path := s.SitePath(rel)
	require.NoError(s.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(s.t, os.WriteFile(path, content, 0o644))
	return s
}

// ReadSiteFile returns the content of site_dir/rel.
func (s *Site) ReadSiteFile(rel string) []byte {
	s.t.Helper()
	data, err := os.ReadFile(s.SitePath(rel))
	require.NoError(s.t, err)
	return data
}

// AssertFileExists validates that site_dir/rel exists.
func (s *Site) AssertFileExists(rel string) *Site {
	s.t.Helper()
	if _, err := os.Stat(s.SitePath(rel)); err != nil {
		s.t.Errorf("Expected file to exist: %s", s.SitePath(rel))
	}
	return s
}

// AssertFileNotExists validates that site_dir/rel does not exist.
func (s *Site) AssertFileNotExists(rel string) *Site {
	s.t.Helper()
	if _, err := os.Stat(s.SitePath(rel)); err == nil {
		s.t.Errorf("Expected file to not exist: %s", s.SitePath(rel))
	}
	return s
}

// AssertFileContent validates that site_dir/rel holds exactly want.
func (s *Site) AssertFileContent(rel string, want []byte) *Site {
	s.t.Helper()
	data, err := os.ReadFile(s.SitePath(rel))
	if err != nil {
		s.t.Errorf("Failed to read file %s: %v", s.SitePath(rel), err)
		return s
	}
	if string(data) != string(want) {
		s.t.Errorf("Unexpected content in %s\nwant: %q\ngot:  %q", rel, want, data)
	}
	return s
}

// AssertRedirectPage validates that the page served at url exists and sends
// browsers to /downloads/<fileName> from all three redirect mechanisms.
func (s *Site) AssertRedirectPage(url, fileName string) *Site {
	s.t.Helper()
	rel := strings.Trim(url, "/")
	if rel == "" {
		rel = "index.html"
	} else {
		rel += "/index.html"
	}
	data, err := os.ReadFile(s.SitePath(rel))
	if err != nil {
		s.t.Errorf("Expected redirect page for %s: %v", url, err)
		return s
	}
	target := "/downloads/" + fileName
	page := string(data)
	for _, snippet := range []string{
		`content="0;url=` + target + `"`,
		`window.location.href = '` + target + `';`,
		`<a href="` + target + `">`,
	} {
		if !strings.Contains(page, snippet) {
			s.t.Errorf("Redirect page %s is missing %q", rel, snippet)
		}
	}
	if n := strings.Count(page, target); n != 3 {
		s.t.Errorf("Expected %s exactly 3 times in %s, found %d", target, rel, n)
	}
	return s
}
