package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kubasejdak/sitehooks/internal/foundation/errors"
)

// BuildConfig is the subset of the site generator configuration the hooks
// read and mutate.
type BuildConfig struct {
	SiteName  string      `yaml:"site_name,omitempty"`
	DocsDir   string      `yaml:"docs_dir"`
	SiteDir   string      `yaml:"site_dir"`
	Copyright string      `yaml:"copyright,omitempty"`
	Hooks     HooksConfig `yaml:"-"`
}

// HooksConfig holds hook settings read from extra.sitehooks.
type HooksConfig struct {
	Author      string      `yaml:"author"`
	StartYear   int         `yaml:"start_year"`
	Redirects   []AssetSpec `yaml:"redirects"`
	MetricsFile string      `yaml:"metrics_file,omitempty"`
}

// AssetSpec maps an asset under docs_dir/assets to a public redirect URL path.
type AssetSpec struct {
	Asset string `yaml:"asset"`
	URL   string `yaml:"url"`
}

// siteFile mirrors the keys of the site generator config file this package cares about.
// Everything else in the file is ignored. The top-level strings accept !ENV.
type siteFile struct {
	SiteName  envString `yaml:"site_name,omitempty"`
	DocsDir   envString `yaml:"docs_dir,omitempty"`
	SiteDir   envString `yaml:"site_dir,omitempty"`
	Copyright envString `yaml:"copyright,omitempty"`
	Extra     struct {
		SiteHooks *HooksConfig `yaml:"sitehooks,omitempty"`
	} `yaml:"extra,omitempty"`
}

// Load loads configuration from the specified site config file.
func Load(configPath string) (*BuildConfig, error) {
	loadEnvFile()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, errors.ConfigError("configuration file not found").
			WithContext("path", configPath).
			Build()
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to read config file").
			Fatal().
			WithContext("path", configPath).
			Build()
	}

	cfg, err := Parse([]byte(os.ExpandEnv(string(data))))
	if err != nil {
		return nil, err
	}

	baseDir := filepath.Dir(configPath)
	cfg.DocsDir = resolvePath(baseDir, cfg.DocsDir)
	cfg.SiteDir = resolvePath(baseDir, cfg.SiteDir)
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes site config YAML and applies defaults. Paths are returned as
// written in the file.
func Parse(data []byte) (*BuildConfig, error) {
	var raw siteFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to unmarshal config").Fatal().Build()
	}

	cfg := &BuildConfig{
		SiteName:  string(raw.SiteName),
		DocsDir:   string(raw.DocsDir),
		SiteDir:   string(raw.SiteDir),
		Copyright: string(raw.Copyright),
	}
	if raw.Extra.SiteHooks != nil {
		cfg.Hooks = *raw.Extra.SiteHooks
	}
	applyDefaults(cfg)
	return cfg, nil
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}

	example := siteFile{
		SiteName: "kubasejdak.com",
		DocsDir:  DefaultDocsDir,
		SiteDir:  DefaultSiteDir,
	}
	hooks := DefaultHooks()
	example.Extra.SiteHooks = &hooks

	data, err := yaml.Marshal(&example)
	if err != nil {
		return errors.InternalError("failed to marshal config").WithCause(err).Build()
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return errors.FileSystemError("failed to create config directory").WithCause(err).WithContext("path", configPath).Build()
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return errors.FileSystemError("failed to write config file").WithCause(err).WithContext("path", configPath).Build()
	}
	return nil
}

func resolvePath(baseDir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}
