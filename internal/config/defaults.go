package config

const (
	DefaultDocsDir   = "docs"
	DefaultSiteDir   = "site"
	DefaultAuthor    = "Kuba Sejdak"
	DefaultStartYear = 2024
)

// DefaultRedirects is the asset redirect set used when extra.sitehooks.redirects is absent.
func DefaultRedirects() []AssetSpec {
	return []AssetSpec{{Asset: "JakubSejdak_CV.pdf", URL: "/cv"}}
}

// DefaultHooks returns hook settings with all defaults applied.
func DefaultHooks() HooksConfig {
	return HooksConfig{
		Author:    DefaultAuthor,
		StartYear: DefaultStartYear,
		Redirects: DefaultRedirects(),
	}
}

// Default returns a BuildConfig for a site laid out with the default directories.
func Default() *BuildConfig {
	cfg := &BuildConfig{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *BuildConfig) {
	if cfg.DocsDir == "" {
		cfg.DocsDir = DefaultDocsDir
	}
	if cfg.SiteDir == "" {
		cfg.SiteDir = DefaultSiteDir
	}
	if cfg.Hooks.Author == "" {
		cfg.Hooks.Author = DefaultAuthor
	}
	if cfg.Hooks.StartYear == 0 {
		cfg.Hooks.StartYear = DefaultStartYear
	}
	// An explicit empty list disables redirects; only a missing key gets the default.
	if cfg.Hooks.Redirects == nil {
		cfg.Hooks.Redirects = DefaultRedirects()
	}
}
