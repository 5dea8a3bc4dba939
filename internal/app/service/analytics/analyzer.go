package analytics

import (
	"sync"

	"github.com/samber/lo"

	"github.com/fatflowers/jobmetrics/internal/app/service/dataset"
	"github.com/fatflowers/jobmetrics/internal/models"
	"github.com/fatflowers/jobmetrics/pkg/config"
)

// Options are the analyzer settings taken from config.Config.
type Options struct {
	Thresholds     config.Thresholds
	SegmentAliases map[string]string
}

func OptionsFrom(cfg *config.Config) Options {
	if cfg == nil {
		return Options{Thresholds: config.DefaultThresholds()}
	}
	return Options{Thresholds: cfg.Thresholds, SegmentAliases: cfg.SegmentAliases}
}

func (o Options) segmentOf(segment string) string {
	if alias, ok := o.SegmentAliases[segment]; ok && alias != "" {
		return alias
	}
	return segment
}

// Analyzer computes metrics over one immutable Dataset. All methods are safe
// for concurrent use.
type Analyzer struct {
	ds   *dataset.Dataset
	opts Options

	matchRateOnce sync.Once
	matchRates    map[string]float64

	subscribersOnce sync.Once
	subscribers     map[string]struct{}
}

func New(ds *dataset.Dataset, opts Options) *Analyzer {
	if ds == nil {
		ds = &dataset.Dataset{}
	}
	return &Analyzer{ds: ds, opts: opts}
}

func (a *Analyzer) Dataset() *dataset.Dataset { return a.ds }

// UserAvgMatchRate is the mean match rate of the user's scans. The per-user
// table is computed once per analyzer.
func (a *Analyzer) UserAvgMatchRate(userID string) (float64, bool) {
	a.matchRateOnce.Do(func() {
		a.matchRates = userMatchRates(a.ds.Scans)
	})
	rate, ok := a.matchRates[userID]
	return rate, ok
}

func userMatchRates(scans []*models.Scan) map[string]float64 {
	byUser := lo.GroupBy(scans, func(s *models.Scan) string { return s.UserID })
	return lo.MapValues(byUser, func(rows []*models.Scan, _ string) float64 {
		return lo.MeanBy(rows, func(s *models.Scan) float64 { return s.MatchRate })
	})
}

// subscribed is the set of users holding at least one subscription row.
func (a *Analyzer) subscribed() map[string]struct{} {
	a.subscribersOnce.Do(func() {
		a.subscribers = lo.SliceToMap(a.ds.Subscriptions, func(s *models.Subscription) (string, struct{}) {
			return s.UserID, struct{}{}
		})
	})
	return a.subscribers
}

func (a *Analyzer) scanCounts() map[string]int {
	return lo.CountValuesBy(a.ds.Scans, func(s *models.Scan) string { return s.UserID })
}
