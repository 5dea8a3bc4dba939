package analytics

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fatflowers/jobmetrics/pkg/types"
)

var printer = message.NewPrinter(language.English)

// FormatCurrency renders v as dollars with thousands separators.
func FormatCurrency(v float64) string {
	if v < 0 {
		return printer.Sprintf("-$%.2f", -v)
	}
	return printer.Sprintf("$%.2f", v)
}

func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// Snapshot is the consolidated, display-ready view handed to prompt builders.
type Snapshot struct {
	Metrics      map[string]string            `json:"metrics"`
	Channels     map[string]map[string]string `json:"channels"`
	Segments     map[string]map[string]string `json:"segments"`
	Funnel       *FunnelSummary               `json:"funnel"`
	FunnelTrends []StageTrend                 `json:"funnel_trends"`
	Anomalies    []Anomaly                    `json:"anomalies"`
}

// BuildSnapshot assembles the snapshot. It fails when the funnel is
// structurally invalid.
func BuildSnapshot(a *Analyzer) (*Snapshot, error) {
	summary, err := SummarizeFunnel(a.ConversionFunnel())
	if err != nil {
		return nil, fmt.Errorf("summarize funnel: %w", err)
	}
	o := a.Overview()

	snap := &Snapshot{
		Metrics: map[string]string{
			"current_mrr":        FormatCurrency(o.CurrentMRR),
			"mrr_growth_rate":    FormatPercent(o.MRRGrowthRate),
			"arpu":               FormatCurrency(o.ARPU),
			"churn_rate":         FormatPercent(o.ChurnRate),
			"conversion_rate":    FormatPercent(o.ConversionRate),
			"cac":                FormatCurrency(o.CAC),
			"ltv":                FormatCurrency(o.LTV),
			"ltv_cac_ratio":      fmt.Sprintf("%.2fx", o.LTVCACRatio),
			"dau":                FormatCount(o.DAU),
			"wau":                FormatCount(o.WAU),
			"mau":                FormatCount(o.MAU),
			"avg_match_rate":     FormatPercent(o.AvgMatchRate),
			"avg_scans_per_user": fmt.Sprintf("%.1f", o.AvgScansPerUser),
			"total_users":        FormatCount(o.Totals.Users),
			"active_subscribers": FormatCount(o.Totals.ActiveSubscriptions),
			"total_scans":        FormatCount(o.Totals.Scans),
		},
		Channels:     formatGroups(a.ChannelPerformance()),
		Segments:     formatGroups(a.UserSegmentLTVAnalysis()),
		Funnel:       summary,
		FunnelTrends: a.ConversionFunnelTrend().Stages,
		Anomalies:    a.DetectAnomalies(),
	}
	for _, p := range a.RevenueByPlan() {
		snap.Metrics["mrr_"+string(p.PlanType)] = FormatCurrency(p.MRR)
	}
	return snap, nil
}

func formatGroups(groups []GroupPerformance) map[string]map[string]string {
	out := make(map[string]map[string]string, len(groups))
	for _, g := range groups {
		out[g.Group] = map[string]string{
			"total_users":     FormatCount(g.TotalUsers),
			"conversions":     FormatCount(g.Conversions),
			"conversion_rate": FormatPercent(g.ConversionRate),
			"total_mrr":       FormatCurrency(g.TotalMRR),
			"avg_cac":         FormatCurrency(g.AvgCAC),
			"avg_ltv":         FormatCurrency(g.AvgLTV),
			"ltv_cac_ratio":   fmt.Sprintf("%.2fx", g.LTVCACRatio),
			"roi":             FormatPercent(g.ROI),
		}
	}
	return out
}

// CriticalAnomalies filters the snapshot anomalies to critical ones.
func (s *Snapshot) CriticalAnomalies() []Anomaly {
	var out []Anomaly
	for _, an := range s.Anomalies {
		if an.Severity == types.SeverityCritical {
			out = append(out, an)
		}
	}
	return out
}
