package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var usageRecorded = &Metric{
	ID:          "usageRecorded",
	Name:        "usage_recorded_total",
	Description: "Gated feature uses recorded against the daily quota.",
	Type:        CounterVec,
	Args:        []string{"feature", "tier"},
}

var quotaDenied = &Metric{
	ID:          "quotaDenied",
	Name:        "quota_denied_total",
	Description: "Requests rejected because the daily free use was spent.",
	Type:        CounterVec,
	Args:        []string{"feature"},
}

var upgrades = &Metric{
	ID:          "upgrades",
	Name:        "upgrades_total",
	Description: "Subscription upgrades applied.",
	Type:        CounterVec,
	Args:        []string{"tier", "source"},
}

var storageWriteFailures = &Metric{
	ID:          "storageWriteFailures",
	Name:        "storage_write_failures_total",
	Description: "Snapshot writes dropped after exhausting retries.",
	Type:        CounterVec,
	Args:        []string{"family"},
}

var generationDur = &Metric{
	ID:          "generationDur",
	Name:        "generation_dur_ms",
	Description: "Prayer generation latency in milliseconds, partitioned by outcome.",
	Type:        HistogramVec,
	Args:        []string{"outcome"},
	Buckets:     LatencyBuckets,
}

var businessMetrics = []*Metric{usageRecorded, quotaDenied, upgrades, storageWriteFailures, generationDur}

// Business holds the domain counters. A nil *Business is a valid no-op.
type Business struct {
	usage         *prometheus.CounterVec
	denied        *prometheus.CounterVec
	upgrades      *prometheus.CounterVec
	writeFailures *prometheus.CounterVec
	generation    *prometheus.HistogramVec
}

func NewBusiness(reg prometheus.Registerer, l *zap.SugaredLogger) *Business {
	b := &Business{}
	for _, def := range businessMetrics {
		c, err := Register(reg, NewMetric(def, Subsystem))
		if err != nil {
			l.Errorf("%s could not be registered in Prometheus, err=%v", def.Name, err)
			continue
		}
		switch def {
		case usageRecorded:
			b.usage = c.(*prometheus.CounterVec)
		case quotaDenied:
			b.denied = c.(*prometheus.CounterVec)
		case upgrades:
			b.upgrades = c.(*prometheus.CounterVec)
		case storageWriteFailures:
			b.writeFailures = c.(*prometheus.CounterVec)
		case generationDur:
			b.generation = c.(*prometheus.HistogramVec)
		}
	}
	return b
}

func (b *Business) UsageRecorded(feature, tier string) {
	if b == nil || b.usage == nil {
		return
	}
	b.usage.WithLabelValues(feature, tier).Inc()
}

func (b *Business) QuotaDenied(feature string) {
	if b == nil || b.denied == nil {
		return
	}
	b.denied.WithLabelValues(feature).Inc()
}

func (b *Business) Upgraded(tier, source string) {
	if b == nil || b.upgrades == nil {
		return
	}
	b.upgrades.WithLabelValues(tier, source).Inc()
}

func (b *Business) StorageWriteFailed(family string) {
	if b == nil || b.writeFailures == nil {
		return
	}
	b.writeFailures.WithLabelValues(family).Inc()
}

func (b *Business) GenerationObserved(start time.Time, err error) {
	if b == nil || b.generation == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	b.generation.WithLabelValues(outcome).Observe(MillisecondsSince(start))
}

// Subsystem prefixes every metric this service exports.
const Subsystem = "prayerbook"

func defaultRegisterer() prometheus.Registerer {
	return prometheus.DefaultRegisterer
}

var Module = fx.Options(
	fx.Provide(defaultRegisterer, NewBusiness),
)
