package analytics

import (
	"fmt"

	"github.com/fatflowers/jobmetrics/pkg/config"
	"github.com/fatflowers/jobmetrics/pkg/types"
)

const (
	MetricChurnRate      = "Churn Rate"
	MetricConversionRate = "Conversion Rate"
	MetricAvgMatchRate   = "Avg Match Rate"
	MetricMRRGrowth      = "MRR Growth"
)

type Anomaly struct {
	Metric   string         `json:"metric"`
	Value    string         `json:"value"`
	Severity types.Severity `json:"severity"`
	Message  string         `json:"message"`
}

func above(value, bound float64) bool { return value > bound }
func below(value, bound float64) bool { return value < bound }

// anomalyRule checks one metric. Values and thresholds are fractions.
type anomalyRule struct {
	metric    string
	label     string
	value     func(a *Analyzer) float64
	threshold func(th config.Thresholds) config.Threshold
	breaches  func(value, bound float64) bool
	critical  string
	warning   string
}

var anomalyRules = []anomalyRule{
	{
		metric:    MetricChurnRate,
		label:     "Churn rate",
		value:     func(a *Analyzer) float64 { return a.ChurnRate(ChurnPeriodDays) / 100 },
		threshold: func(th config.Thresholds) config.Threshold { return th.ChurnRate },
		breaches:  above,
		critical:  "exceeds critical threshold",
		warning:   "exceeds warning threshold",
	},
	{
		metric:    MetricConversionRate,
		label:     "Conversion rate",
		value:     func(a *Analyzer) float64 { return a.ConversionRate() / 100 },
		threshold: func(th config.Thresholds) config.Threshold { return th.ConversionRate },
		breaches:  below,
		critical:  "below critical threshold",
		warning:   "below warning threshold",
	},
	{
		metric:    MetricAvgMatchRate,
		label:     "Average match rate",
		value:     func(a *Analyzer) float64 { return a.AvgMatchRate() / 100 },
		threshold: func(th config.Thresholds) config.Threshold { return th.AvgMatchRate },
		breaches:  below,
		critical:  "below critical threshold",
		warning:   "below warning threshold",
	},
	{
		metric:    MetricMRRGrowth,
		label:     "MRR growth",
		value:     func(a *Analyzer) float64 { return a.MRRGrowthRate(MRRGrowthDays) / 100 },
		threshold: func(th config.Thresholds) config.Threshold { return th.MRRGrowth },
		breaches:  below,
		critical:  "below critical threshold",
		warning:   "needs attention",
	},
}

// DetectAnomalies returns at most one anomaly per metric in the order churn,
// conversion, match rate, MRR growth. Critical wins over warning.
func (a *Analyzer) DetectAnomalies() []Anomaly {
	out := make([]Anomaly, 0, len(anomalyRules))
	for _, rule := range anomalyRules {
		v := rule.value(a)
		th := rule.threshold(a.opts.Thresholds)

		var severity types.Severity
		var suffix string
		switch {
		case rule.breaches(v, th.Critical):
			severity, suffix = types.SeverityCritical, rule.critical
		case rule.breaches(v, th.Warning):
			severity, suffix = types.SeverityWarning, rule.warning
		default:
			continue
		}
		value := fmt.Sprintf("%.2f%%", v*100)
		out = append(out, Anomaly{
			Metric:   rule.metric,
			Value:    value,
			Severity: severity,
			Message:  fmt.Sprintf("%s (%s) %s", rule.label, value, suffix),
		})
	}
	return out
}

// CountBySeverity returns the number of critical and warning anomalies.
func CountBySeverity(anomalies []Anomaly) (critical, warning int) {
	for _, an := range anomalies {
		switch an.Severity {
		case types.SeverityCritical:
			critical++
		case types.SeverityWarning:
			warning++
		}
	}
	return critical, warning
}
