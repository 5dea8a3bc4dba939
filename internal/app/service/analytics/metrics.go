package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/fatflowers/jobmetrics/internal/models"
	"github.com/fatflowers/jobmetrics/pkg/types"
)

const (
	day = 24 * time.Hour

	// ChurnPeriodDays is the default churn observation window.
	ChurnPeriodDays = 30
	// MRRGrowthDays is the default MRR growth lookback.
	MRRGrowthDays = 30
	// LTVCapMonths caps the churn-derived lifetime at three years.
	LTVCapMonths = 36
	// NonFiniteSentinel replaces ratios whose denominator is zero in group reports.
	NonFiniteSentinel = 999999.0
)

// SafeRate returns numerator/denominator as a percentage, or 0 when the
// denominator is not positive.
func SafeRate(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}
	return numerator / denominator * 100
}

func safeDiv(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

func (a *Analyzer) lastRevenue() (*models.RevenueDay, bool) {
	if len(a.ds.Revenue) == 0 {
		return nil, false
	}
	return a.ds.Revenue[len(a.ds.Revenue)-1], true
}

// CurrentMRR is the MRR of the latest revenue row.
func (a *Analyzer) CurrentMRR() float64 {
	last, ok := a.lastRevenue()
	if !ok {
		return 0
	}
	return last.MRR
}

// MRRGrowthRate compares the current MRR with the row `days` rows back. When
// fewer rows exist the earliest row is used.
func (a *Analyzer) MRRGrowthRate(days int) float64 {
	rev := a.ds.Revenue
	if len(rev) == 0 {
		return 0
	}
	idx := len(rev) - days
	if days <= 0 || idx < 0 {
		idx = 0
	}
	past := rev[idx].MRR
	if past == 0 {
		return 0
	}
	return (rev[len(rev)-1].MRR - past) / past * 100
}

// ARPU is the mean MRR of active subscriptions.
func (a *Analyzer) ARPU() float64 {
	active := lo.Filter(a.ds.Subscriptions, func(s *models.Subscription, _ int) bool { return s.IsActive() })
	if len(active) == 0 {
		return 0
	}
	return lo.MeanBy(active, func(s *models.Subscription) float64 { return s.MRR })
}

// ChurnRate is the share of subscriptions active at the period start that
// ended inside [start, end], where end is the latest revenue date.
// A subscription ending exactly at start is counted as churned but not as
// active at start, so the rate is not clamped to 100.
func (a *Analyzer) ChurnRate(periodDays int) float64 {
	last, ok := a.lastRevenue()
	if !ok {
		return 0
	}
	end := last.Date
	start := end.Add(-time.Duration(periodDays) * day)

	activeAtStart, churned := 0, 0
	for _, s := range a.ds.Subscriptions {
		if !s.SubscriptionStart.After(start) && (s.SubscriptionEnd == nil || s.SubscriptionEnd.After(start)) {
			activeAtStart++
		}
		if s.SubscriptionEnd != nil && !s.SubscriptionEnd.Before(start) && !s.SubscriptionEnd.After(end) {
			churned++
		}
	}
	if activeAtStart == 0 {
		return 0
	}
	return float64(churned) / float64(activeAtStart) * 100
}

// ConversionRate is subscription rows over users. A user with several
// subscriptions is counted once per row.
func (a *Analyzer) ConversionRate() float64 {
	if len(a.ds.Users) == 0 {
		return 0
	}
	return float64(len(a.ds.Subscriptions)) / float64(len(a.ds.Users)) * 100
}

// CAC is the mean acquisition cost over all users, organic signups included.
func (a *Analyzer) CAC() float64 {
	if len(a.ds.Users) == 0 {
		return 0
	}
	return lo.MeanBy(a.ds.Users, func(u *models.User) float64 { return u.CAC })
}

// LTV is ARPU over the monthly churn rate, capped at LTVCapMonths of ARPU.
// Zero churn returns the cap.
func (a *Analyzer) LTV() float64 {
	arpu := a.ARPU()
	limit := arpu * LTVCapMonths
	churn := a.ChurnRate(ChurnPeriodDays) / 100
	if churn == 0 {
		return limit
	}
	return math.Min(arpu/churn, limit)
}

// LTVCACRatio returns 0 when CAC is 0.
func (a *Analyzer) LTVCACRatio() float64 {
	cac := a.CAC()
	if cac == 0 {
		return 0
	}
	return a.LTV() / cac
}

// ActiveUsers counts distinct users with a scan strictly after
// max(scan_date) - period.
func (a *Analyzer) ActiveUsers(period types.ActivePeriod) int {
	if len(a.ds.Scans) == 0 {
		return 0
	}
	latest := lo.MaxBy(a.ds.Scans, func(x, y *models.Scan) bool { return x.ScanDate.After(y.ScanDate) }).ScanDate
	cutoff := latest.Add(-time.Duration(period.Days()) * day)
	active := make(map[string]struct{})
	for _, s := range a.ds.Scans {
		if s.ScanDate.After(cutoff) {
			active[s.UserID] = struct{}{}
		}
	}
	return len(active)
}

func (a *Analyzer) AvgMatchRate() float64 {
	if len(a.ds.Scans) == 0 {
		return 0
	}
	return lo.MeanBy(a.ds.Scans, func(s *models.Scan) float64 { return s.MatchRate })
}

// AvgScansPerUser is the mean scan count among users with at least one scan.
func (a *Analyzer) AvgScansPerUser() float64 {
	counts := a.scanCounts()
	if len(counts) == 0 {
		return 0
	}
	return float64(len(a.ds.Scans)) / float64(len(counts))
}

type PlanRevenue struct {
	PlanType    types.PlanType `json:"plan_type"`
	MRR         float64        `json:"mrr"`
	Subscribers int            `json:"subscribers"`
}

// RevenueByPlan sums active MRR per plan, ordered by plan name.
func (a *Analyzer) RevenueByPlan() []PlanRevenue {
	active := lo.Filter(a.ds.Subscriptions, func(s *models.Subscription, _ int) bool { return s.IsActive() })
	byPlan := lo.GroupBy(active, func(s *models.Subscription) types.PlanType { return s.PlanType })
	out := make([]PlanRevenue, 0, len(byPlan))
	for plan, subs := range byPlan {
		out = append(out, PlanRevenue{
			PlanType:    plan,
			MRR:         lo.SumBy(subs, func(s *models.Subscription) float64 { return s.MRR }),
			Subscribers: len(subs),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlanType < out[j].PlanType })
	return out
}

type TrendPoint struct {
	Date                time.Time `json:"date"`
	MRR                 float64   `json:"mrr"`
	DailyRevenue        float64   `json:"daily_revenue"`
	ActiveSubscriptions int       `json:"active_subscriptions"`
}

// MRRTrend returns the revenue rows dated after max(date) - days.
// days <= 0 returns every row.
func (a *Analyzer) MRRTrend(days int) []TrendPoint {
	last, ok := a.lastRevenue()
	if !ok {
		return []TrendPoint{}
	}
	cutoff := last.Date.Add(-time.Duration(days) * day)
	out := make([]TrendPoint, 0, len(a.ds.Revenue))
	for _, r := range a.ds.Revenue {
		if days > 0 && !r.Date.After(cutoff) {
			continue
		}
		out = append(out, TrendPoint{
			Date:                r.Date,
			MRR:                 r.MRR,
			DailyRevenue:        r.DailyRevenue,
			ActiveSubscriptions: r.ActiveSubscriptions,
		})
	}
	return out
}

type Totals struct {
	Users               int `json:"users"`
	Subscriptions       int `json:"subscriptions"`
	ActiveSubscriptions int `json:"active_subscriptions"`
	Scans               int `json:"scans"`
}

func (a *Analyzer) Totals() Totals {
	return Totals{
		Users:               len(a.ds.Users),
		Subscriptions:       len(a.ds.Subscriptions),
		ActiveSubscriptions: lo.CountBy(a.ds.Subscriptions, func(s *models.Subscription) bool { return s.IsActive() }),
		Scans:               len(a.ds.Scans),
	}
}

// Overview bundles the scalar metrics with their default periods.
type Overview struct {
	CurrentMRR      float64 `json:"current_mrr"`
	MRRGrowthRate   float64 `json:"mrr_growth_rate"`
	ARPU            float64 `json:"arpu"`
	ChurnRate       float64 `json:"churn_rate"`
	ConversionRate  float64 `json:"conversion_rate"`
	CAC             float64 `json:"cac"`
	LTV             float64 `json:"ltv"`
	LTVCACRatio     float64 `json:"ltv_cac_ratio"`
	DAU             int     `json:"dau"`
	WAU             int     `json:"wau"`
	MAU             int     `json:"mau"`
	AvgMatchRate    float64 `json:"avg_match_rate"`
	AvgScansPerUser float64 `json:"avg_scans_per_user"`
	Totals          Totals  `json:"totals"`
}

func (a *Analyzer) Overview() Overview {
	return Overview{
		CurrentMRR:      a.CurrentMRR(),
		MRRGrowthRate:   a.MRRGrowthRate(MRRGrowthDays),
		ARPU:            a.ARPU(),
		ChurnRate:       a.ChurnRate(ChurnPeriodDays),
		ConversionRate:  a.ConversionRate(),
		CAC:             a.CAC(),
		LTV:             a.LTV(),
		LTVCACRatio:     a.LTVCACRatio(),
		DAU:             a.ActiveUsers(types.ActivePeriodDaily),
		WAU:             a.ActiveUsers(types.ActivePeriodWeekly),
		MAU:             a.ActiveUsers(types.ActivePeriodMonthly),
		AvgMatchRate:    a.AvgMatchRate(),
		AvgScansPerUser: a.AvgScansPerUser(),
		Totals:          a.Totals(),
	}
}
