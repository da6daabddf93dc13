// Package metrics provides build hook metrics for sitehooks.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so no nil checks are needed at call sites:
//
//	gen := redirect.NewGenerator(redirect.WithRecorder(metrics.NoopRecorder{}))
//
// When a metrics file is configured the CLI swaps in a PrometheusRecorder and
// writes the registry in Prometheus text format after the hook returns. The
// file is meant for the node-exporter textfile collector on CI runners.
package metrics
