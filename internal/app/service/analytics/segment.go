package analytics

import (
	"sort"

	"github.com/samber/lo"

	"github.com/fatflowers/jobmetrics/internal/models"
)

// SegmentLifetimeMonths is the fixed customer lifetime of group LTV. It is a
// separate view from the churn-derived Analyzer.LTV.
const SegmentLifetimeMonths = 12

// GroupPerformance aggregates one acquisition channel or user segment.
// LTVCACRatio and ROI are NonFiniteSentinel when AvgCAC is 0.
type GroupPerformance struct {
	Group          string  `json:"group"`
	TotalUsers     int     `json:"total_users"`
	Conversions    int     `json:"conversions"`
	ConversionRate float64 `json:"conversion_rate"`
	ActiveSubs     int     `json:"active_subs"`
	TotalMRR       float64 `json:"total_mrr"`
	AvgMRR         float64 `json:"avg_mrr"`
	AvgCAC         float64 `json:"avg_cac"`
	AvgLTV         float64 `json:"avg_ltv"`
	LTVCACRatio    float64 `json:"ltv_cac_ratio"`
	ROI            float64 `json:"roi"`
}

// SegmentPerformance is the conversion view of a user segment.
type SegmentPerformance struct {
	Segment        string  `json:"segment"`
	TotalUsers     int     `json:"total_users"`
	Conversions    int     `json:"conversions"`
	ConversionRate float64 `json:"conversion_rate"`
}

func (a *Analyzer) ChannelPerformance() []GroupPerformance {
	return a.groupPerformance(func(u *models.User) string { return string(u.AcquisitionChannel) })
}

// UserSegmentLTVAnalysis groups by user segment after applying segment aliases.
func (a *Analyzer) UserSegmentLTVAnalysis() []GroupPerformance {
	return a.groupPerformance(func(u *models.User) string { return a.opts.segmentOf(u.UserSegment) })
}

func (a *Analyzer) UserSegmentPerformance() []SegmentPerformance {
	return lo.Map(a.UserSegmentLTVAnalysis(), func(g GroupPerformance, _ int) SegmentPerformance {
		return SegmentPerformance{
			Segment:        g.Group,
			TotalUsers:     g.TotalUsers,
			Conversions:    g.Conversions,
			ConversionRate: g.ConversionRate,
		}
	})
}

type groupAcc struct {
	users      map[string]struct{}
	sumCAC     float64
	userRows   int
	subs       int
	activeSubs int
	activeMRR  float64
}

func (a *Analyzer) groupPerformance(key func(*models.User) string) []GroupPerformance {
	subsByUser := lo.GroupBy(a.ds.Subscriptions, func(s *models.Subscription) string { return s.UserID })

	groups := make(map[string]*groupAcc)
	for _, u := range a.ds.Users {
		k := key(u)
		acc, ok := groups[k]
		if !ok {
			acc = &groupAcc{users: make(map[string]struct{})}
			groups[k] = acc
		}
		acc.userRows++
		acc.sumCAC += u.CAC
		if _, dup := acc.users[u.UserID]; dup {
			continue
		}
		acc.users[u.UserID] = struct{}{}
		for _, s := range subsByUser[u.UserID] {
			acc.subs++
			if s.IsActive() {
				acc.activeSubs++
				acc.activeMRR += s.MRR
			}
		}
	}

	out := make([]GroupPerformance, 0, len(groups))
	for k, acc := range groups {
		g := GroupPerformance{
			Group:          k,
			TotalUsers:     len(acc.users),
			Conversions:    acc.subs,
			ConversionRate: SafeRate(float64(acc.subs), float64(len(acc.users))),
			ActiveSubs:     acc.activeSubs,
			TotalMRR:       acc.activeMRR,
			AvgMRR:         safeDiv(acc.activeMRR, float64(acc.activeSubs)),
			AvgCAC:         safeDiv(acc.sumCAC, float64(acc.userRows)),
		}
		g.AvgLTV = g.AvgMRR * SegmentLifetimeMonths
		if g.AvgCAC > 0 {
			g.LTVCACRatio = g.AvgLTV / g.AvgCAC
			g.ROI = (g.AvgLTV - g.AvgCAC) / g.AvgCAC * 100
		} else {
			g.LTVCACRatio = NonFiniteSentinel
			g.ROI = NonFiniteSentinel
		}
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Group < out[j].Group })
	return out
}
