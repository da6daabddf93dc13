package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg           *prom.Registry
	hookDuration  *prom.HistogramVec
	assetResults  *prom.CounterVec
	assetBytes    prom.Counter
	redirectPages prom.Counter
}

// NewPrometheusRecorder constructs and registers Prometheus metrics on reg
// (a fresh registry when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reg: reg,
		hookDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "sitehooks",
			Name:      "hook_duration_seconds",
			Help:      "Duration of build hook invocations",
			Buckets:   prom.DefBuckets,
		}, []string{"hook"}),
		assetResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitehooks",
			Name:      "assets_total",
			Help:      "Asset copy results by outcome",
		}, []string{"result"}),
		assetBytes: prom.NewCounter(prom.CounterOpts{
			Namespace: "sitehooks",
			Name:      "asset_bytes_total",
			Help:      "Bytes copied into the downloads directory",
		}),
		redirectPages: prom.NewCounter(prom.CounterOpts{
			Namespace: "sitehooks",
			Name:      "redirect_pages_total",
			Help:      "Redirect pages written",
		}),
	}
	reg.MustRegister(pr.hookDuration, pr.assetResults, pr.assetBytes, pr.redirectPages)
	return pr
}

// Registry returns the registry the recorder's collectors are registered on.
func (p *PrometheusRecorder) Registry() *prom.Registry {
	return p.reg
}

func (p *PrometheusRecorder) ObserveHookDuration(hook string, d time.Duration) {
	if p == nil || p.hookDuration == nil {
		return
	}
	p.hookDuration.WithLabelValues(hook).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncAssetResult(result AssetResult) {
	if p == nil || p.assetResults == nil {
		return
	}
	p.assetResults.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) AddAssetBytes(n int64) {
	if p == nil || p.assetBytes == nil || n <= 0 {
		return
	}
	p.assetBytes.Add(float64(n))
}

func (p *PrometheusRecorder) IncRedirectPage() {
	if p == nil || p.redirectPages == nil {
		return
	}
	p.redirectPages.Inc()
}

// WriteTextfile writes the recorder's registry to path in Prometheus text format.
// The write is atomic (temp file + rename).
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	return prom.WriteToTextfile(path, p.reg)
}
