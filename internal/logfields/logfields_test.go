package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"RunID", KeyRunID, "abc", RunID("abc")},
		{"Hook", KeyHook, "on_post_build", Hook("on_post_build")},
		{"Asset", KeyAsset, "cv.pdf", Asset("cv.pdf")},
		{"URL", KeyURL, "/cv", URL("/cv")},
		{"Path", KeyPath, "/tmp/x", Path("/tmp/x")},
		{"File", KeyFile, "index.html", File("index.html")},
		{"DocsDir", KeyDocsDir, "docs", DocsDir("docs")},
		{"SiteDir", KeySiteDir, "site", SiteDir("site")},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if got := tc.attr.Value.String(); got != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %v", tc.name, tc.attrVal, got)
		}
	}
}

func TestNumericHelpers(t *testing.T) {
	if got := Bytes(42).Value.Int64(); got != 42 {
		t.Fatalf("Bytes: expected 42, got %d", got)
	}
	if got := DurationMS(1.5).Value.Float64(); got != 1.5 {
		t.Fatalf("DurationMS: expected 1.5, got %v", got)
	}
}

func TestErrorHelper(t *testing.T) {
	if got := Error(nil).Value.String(); got != "" {
		t.Fatalf("expected empty string for nil error, got %q", got)
	}
	if got := Error(errors.New("boom")).Value.String(); got != "boom" {
		t.Fatalf("expected boom, got %q", got)
	}
}
