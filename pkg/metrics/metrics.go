package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// LatencyBuckets spans quick store lookups up to generation calls that run
// against the 60s upstream timeout, in milliseconds.
var LatencyBuckets = []float64{
	25, 50, 100, 250, 500, 750,
	1000, 2000, 3000, 5000, 7500,
	10000, 15000, 20000, 30000, 45000, 60000, 90000,
}

type MetricType string

const (
	CounterVec   MetricType = "counter_vec"
	HistogramVec MetricType = "histogram_vec"
	SummaryVec   MetricType = "summary_vec"
)

// Metric describes one collector. ID is how the owner looks it up after
// registration.
type Metric struct {
	MetricCollector prometheus.Collector
	ID              string
	Name            string
	Description     string
	Type            MetricType
	Args            []string

	// Buckets only applies to histograms; nil keeps the prometheus defaults.
	Buckets []float64
}

// NewMetric builds the collector for m. It returns nil for an unknown type.
func NewMetric(m *Metric, subsystem string) prometheus.Collector {
	switch m.Type {
	case CounterVec:
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      m.Name,
			Help:      m.Description,
		}, m.Args)
	case HistogramVec:
		return prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Subsystem: subsystem,
			Name:      m.Name,
			Help:      m.Description,
			Buckets:   m.Buckets,
		}, m.Args)
	case SummaryVec:
		return prometheus.NewSummaryVec(prometheus.SummaryOpts{
			Subsystem: subsystem,
			Name:      m.Name,
			Help:      m.Description,
		}, m.Args)
	}
	return nil
}

// Register registers c on reg, reusing an existing collector with the same
// descriptor so repeated construction in one process is harmless.
func Register(reg prometheus.Registerer, c prometheus.Collector) (prometheus.Collector, error) {
	if c == nil {
		return nil, errors.New("metrics: nil collector")
	}
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector, nil
		}
		return nil, err
	}
	return c, nil
}

const (
	RefererKey = "X-Referer"
)
