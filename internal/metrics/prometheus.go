package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusObserver records generation events on a private registry so a
// batch run can dump them to a node_exporter textfile when it finishes.
type PrometheusObserver struct {
	registry        *prometheus.Registry
	featureCounter  *prometheus.CounterVec
	strategyCounter *prometheus.CounterVec
	outputBytes     prometheus.Gauge
	writeDuration   prometheus.Histogram
}

func NewPrometheusObserver(runID string) *PrometheusObserver {
	reg := prometheus.NewRegistry()
	factory := promauto.With(prometheus.WrapRegistererWith(prometheus.Labels{"run_id": runID}, reg))

	return &PrometheusObserver{
		registry: reg,
		featureCounter: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "featuregen_features_generated_total",
			Help: "Number of generated features",
		}, []string{"enabled"}),
		strategyCounter: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "featuregen_strategies_generated_total",
			Help: "Number of generated strategies by kind",
		}, []string{"kind"}),
		outputBytes: factory.NewGauge(prometheus.GaugeOpts{
			Name: "featuregen_output_bytes",
			Help: "Size of the written dataset in bytes",
		}),
		writeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "featuregen_write_duration_seconds",
			Help:    "Time spent serializing and writing the dataset",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
}

func (p *PrometheusObserver) RecordFeature(enabled bool) {
	p.featureCounter.WithLabelValues(strconv.FormatBool(enabled)).Inc()
}

func (p *PrometheusObserver) RecordStrategy(kind string) {
	p.strategyCounter.WithLabelValues(kind).Inc()
}

func (p *PrometheusObserver) ObserveWrite(bytes int64, duration time.Duration) {
	p.outputBytes.Set(float64(bytes))
	p.writeDuration.Observe(duration.Seconds())
}

func (p *PrometheusObserver) Gatherer() prometheus.Gatherer {
	return p.registry
}

// WriteTextfile writes the collected metrics in text exposition format.
func (p *PrometheusObserver) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, p.registry)
}
