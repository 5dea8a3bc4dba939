package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const BusinessSubsystem = "jobmetrics"

var datasetLoadDur = &Metric{
	ID:          "datasetLoadDur",
	Name:        "dataset_load_dur_ms",
	Description: "Dataset load latency in milliseconds, partitioned by source and result.",
	Type:        "histogram_vec",
	Args:        []string{"source", "result"},
}

var kpiValue = &Metric{
	ID:          "kpiValue",
	Name:        "kpi_value",
	Description: "Latest computed business metric over the full dataset.",
	Type:        "gauge_vec",
	Args:        []string{"metric"},
}

var anomalyCount = &Metric{
	ID:          "anomalyCount",
	Name:        "anomalies",
	Description: "Anomalies found by the latest check, partitioned by severity.",
	Type:        "gauge_vec",
	Args:        []string{"severity"},
}

// Business exposes dataset and KPI metrics. A nil *Business is a no-op.
type Business struct {
	loadDur   *prometheus.HistogramVec
	kpi       *prometheus.GaugeVec
	anomalies *prometheus.GaugeVec
}

// NewBusiness registers the business collectors on reg. Collectors that are
// already registered are reused.
func NewBusiness(reg prometheus.Registerer) (*Business, error) {
	b := &Business{}
	for _, def := range []*Metric{datasetLoadDur, kpiValue, anomalyCount} {
		c, err := register(reg, NewMetric(def, BusinessSubsystem))
		if err != nil {
			return nil, err
		}
		switch def {
		case datasetLoadDur:
			b.loadDur = c.(*prometheus.HistogramVec)
		case kpiValue:
			b.kpi = c.(*prometheus.GaugeVec)
		case anomalyCount:
			b.anomalies = c.(*prometheus.GaugeVec)
		}
	}
	return b, nil
}

func register(reg prometheus.Registerer, c prometheus.Collector) (prometheus.Collector, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector, nil
		}
		return nil, err
	}
	return c, nil
}

func (b *Business) ObserveLoad(source string, start time.Time, err error) {
	if b == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	b.loadDur.WithLabelValues(source, result).Observe(MillisecondsSince(start))
}

func (b *Business) SetKPIs(values map[string]float64) {
	if b == nil {
		return
	}
	for name, v := range values {
		b.kpi.WithLabelValues(name).Set(v)
	}
}

func (b *Business) SetAnomalies(critical, warning int) {
	if b == nil {
		return
	}
	b.anomalies.WithLabelValues("critical").Set(float64(critical))
	b.anomalies.WithLabelValues("warning").Set(float64(warning))
}
