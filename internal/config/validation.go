package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kubasejdak/sitehooks/internal/foundation/errors"
)

// Validate checks that the configuration can drive the hooks.
func (c *BuildConfig) Validate() error {
	if c.DocsDir == "" {
		return errors.ValidationError("docs_dir must not be empty").Build()
	}
	if c.SiteDir == "" {
		return errors.ValidationError("site_dir must not be empty").Build()
	}
	if c.Hooks.StartYear <= 0 {
		return errors.ValidationError("extra.sitehooks.start_year must be positive").
			WithContext("start_year", c.Hooks.StartYear).
			Build()
	}
	for i, r := range c.Hooks.Redirects {
		field := fmt.Sprintf("extra.sitehooks.redirects[%d]", i)
		if r.Asset == "" {
			return errors.ValidationError("asset must not be empty").WithContext("field", field).Build()
		}
		if !filepath.IsLocal(filepath.FromSlash(r.Asset)) {
			return errors.ValidationError("asset must stay inside docs_dir/assets").
				WithContext("field", field).
				WithContext("asset", r.Asset).
				Build()
		}
		if !IsLocalURLPath(r.URL) {
			return errors.ValidationError("url must stay inside site_dir").
				WithContext("field", field).
				WithContext("url", r.URL).
				Build()
		}
	}
	return nil
}

// IsLocalURLPath reports whether a redirect URL path, once its surrounding
// slashes are stripped, names a directory inside site_dir. The site root
// ("/" or "") counts as local.
func IsLocalURLPath(u string) bool {
	trimmed := strings.Trim(u, "/")
	if trimmed == "" {
		return true
	}
	return filepath.IsLocal(filepath.FromSlash(trimmed))
}
