package metrics

import "time"

// AssetResult enumerates asset copy outcomes for counters.
type AssetResult string

const (
	AssetCopied  AssetResult = "copied"
	AssetMissing AssetResult = "missing"
	AssetFailed  AssetResult = "failed"
)

// Recorder defines observability hooks for the config and post-build hooks.
type Recorder interface {
	ObserveHookDuration(hook string, d time.Duration)
	IncAssetResult(result AssetResult)
	AddAssetBytes(n int64)
	IncRedirectPage()
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveHookDuration(string, time.Duration) {}
func (NoopRecorder) IncAssetResult(AssetResult)                {}
func (NoopRecorder) AddAssetBytes(int64)                       {}
func (NoopRecorder) IncRedirectPage()                          {}
