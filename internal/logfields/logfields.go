package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyHook       = "hook"
	KeyAsset      = "asset"
	KeyURL        = "url"
	KeyPath       = "path"
	KeyFile       = "file"
	KeyBytes      = "bytes"
	KeyDocsDir    = "docs_dir"
	KeySiteDir    = "site_dir"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Hook(name string) slog.Attr      { return slog.String(KeyHook, name) }
func Asset(p string) slog.Attr        { return slog.String(KeyAsset, p) }
func URL(u string) slog.Attr          { return slog.String(KeyURL, u) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Bytes(n int64) slog.Attr         { return slog.Int64(KeyBytes, n) }
func DocsDir(d string) slog.Attr      { return slog.String(KeyDocsDir, d) }
func SiteDir(d string) slog.Attr      { return slog.String(KeySiteDir, d) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
