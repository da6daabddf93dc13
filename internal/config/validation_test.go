package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kubasejdak/sitehooks/internal/foundation/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BuildConfig)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*BuildConfig) {}},
		{name: "empty docs dir", mutate: func(c *BuildConfig) { c.DocsDir = "" }, wantErr: true},
		{name: "empty site dir", mutate: func(c *BuildConfig) { c.SiteDir = "" }, wantErr: true},
		{name: "negative start year", mutate: func(c *BuildConfig) { c.Hooks.StartYear = -1 }, wantErr: true},
		{name: "empty asset", mutate: func(c *BuildConfig) { c.Hooks.Redirects = []AssetSpec{{URL: "/cv"}} }, wantErr: true},
		{name: "asset escapes assets dir", mutate: func(c *BuildConfig) {
			c.Hooks.Redirects = []AssetSpec{{Asset: "../secret.pdf", URL: "/cv"}}
		}, wantErr: true},
		{name: "absolute asset", mutate: func(c *BuildConfig) {
			c.Hooks.Redirects = []AssetSpec{{Asset: "/etc/passwd", URL: "/cv"}}
		}, wantErr: true},
		{name: "nested asset", mutate: func(c *BuildConfig) {
			c.Hooks.Redirects = []AssetSpec{{Asset: "talks/slides.pdf", URL: "/slides"}}
		}},
		{name: "url escapes site dir", mutate: func(c *BuildConfig) {
			c.Hooks.Redirects = []AssetSpec{{Asset: "cv.pdf", URL: "/a/../../b"}}
		}, wantErr: true},
		{name: "root url", mutate: func(c *BuildConfig) {
			c.Hooks.Redirects = []AssetSpec{{Asset: "cv.pdf", URL: "/"}}
		}},
		{name: "no redirects", mutate: func(c *BuildConfig) { c.Hooks.Redirects = []AssetSpec{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
		})
	}
}

func TestIsLocalURLPath(t *testing.T) {
	for _, u := range []string{"/cv", "cv", "/cv/", "", "/", "//", "/talks/2024/"} {
		assert.True(t, IsLocalURLPath(u), u)
	}
	for _, u := range []string{"..", "/../x", "/a/../../b"} {
		assert.False(t, IsLocalURLPath(u), u)
	}
}
