package analytics

import (
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/fatflowers/jobmetrics/internal/models"
)

const (
	StageSignups   = "Total Signups"
	StageFirstScan = "Performed 1+ Scan"
	StageEngaged   = "Performed 2+ Scans"
	StageConverted = "Converted to Paid"

	FunnelStageCount = 4
	// TrendWindowDays is the length of the recent and previous signup cohorts.
	TrendWindowDays = 30
)

var (
	ErrFunnelIncomplete = errors.New("funnel does not have 4 stages")
	ErrNoSignups        = errors.New("funnel has no signups")
	ErrFunnelNotOrdered = errors.New("funnel stage counts increase")
)

type FunnelStage struct {
	Stage string `json:"stage"`
	Users int    `json:"users"`
}

type Funnel []FunnelStage

// ConversionFunnel counts signups, users with 1+ and 2+ scans, and converted
// users. Each stage is a subset of the previous one, so subscribers with fewer
// than 2 scans are left out of the converted stage and it can be lower than
// the subscription count behind ConversionRate.
func (a *Analyzer) ConversionFunnel() Funnel {
	return a.funnelOf(a.ds.Users, a.scanCounts())
}

func (a *Analyzer) funnelOf(users []*models.User, scans map[string]int) Funnel {
	paid := a.subscribed()
	signups := lo.Uniq(lo.Map(users, func(u *models.User, _ int) string { return u.UserID }))
	scanned := lo.Filter(signups, func(id string, _ int) bool { return scans[id] >= 1 })
	engaged := lo.Filter(scanned, func(id string, _ int) bool { return scans[id] >= 2 })
	converted := lo.Filter(engaged, func(id string, _ int) bool {
		_, ok := paid[id]
		return ok
	})
	return Funnel{
		{Stage: StageSignups, Users: len(signups)},
		{Stage: StageFirstScan, Users: len(scanned)},
		{Stage: StageEngaged, Users: len(engaged)},
		{Stage: StageConverted, Users: len(converted)},
	}
}

// Validate rejects funnels that are truncated, empty or out of order.
func (f Funnel) Validate() error {
	if len(f) != FunnelStageCount {
		return fmt.Errorf("%w: got %d", ErrFunnelIncomplete, len(f))
	}
	if f[0].Users == 0 {
		return ErrNoSignups
	}
	for i := 1; i < len(f); i++ {
		if f[i].Users > f[i-1].Users {
			return fmt.Errorf("%w: %s=%d > %s=%d", ErrFunnelNotOrdered, f[i].Stage, f[i].Users, f[i-1].Stage, f[i-1].Users)
		}
	}
	return nil
}

// FunnelSummary is the drop-off view of a funnel. Rates are percentages.
type FunnelSummary struct {
	TotalSignups               int     `json:"total_signups"`
	ActivationRate             float64 `json:"activation_rate"`
	EngagementRate             float64 `json:"engagement_rate"`
	PaidConversionRate         float64 `json:"paid_conversion_rate"`
	FirstToSecondRetentionRate float64 `json:"first_to_second_retention_rate"`
	FirstToSecondDropOffRate   float64 `json:"first_to_second_drop_off_rate"`
	FirstToSecondUsersLost     int     `json:"first_to_second_users_lost"`
	EngagedToPaidRate          float64 `json:"engaged_to_paid_rate"`
	EngagedToPaidUsersLost     int     `json:"engaged_to_paid_users_lost"`
}

func SummarizeFunnel(f Funnel) (*FunnelSummary, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	total := float64(f[0].Users)
	first, second, paid := f[1].Users, f[2].Users, f[3].Users
	return &FunnelSummary{
		TotalSignups:               f[0].Users,
		ActivationRate:             float64(first) / total * 100,
		EngagementRate:             float64(second) / total * 100,
		PaidConversionRate:         float64(paid) / total * 100,
		FirstToSecondRetentionRate: SafeRate(float64(second), float64(first)),
		FirstToSecondDropOffRate:   SafeRate(float64(first-second), float64(first)),
		FirstToSecondUsersLost:     first - second,
		EngagedToPaidRate:          SafeRate(float64(paid), float64(second)),
		EngagedToPaidUsersLost:     second - paid,
	}, nil
}

const (
	TrendSignupToFirstScan = "signup_to_first_scan"
	TrendFirstToSecondScan = "first_to_second_scan"
	TrendSecondScanToPaid  = "second_scan_to_paid"
	TrendOverallConversion = "overall_conversion"
)

type StageTrend struct {
	Stage        string  `json:"stage"`
	RecentRate   float64 `json:"recent_rate"`
	PreviousRate float64 `json:"previous_rate"`
	Change       float64 `json:"change"`
	Declining    bool    `json:"declining"`
}

type FunnelTrend struct {
	ReferenceDate time.Time    `json:"reference_date"`
	Recent        Funnel       `json:"recent"`
	Previous      Funnel       `json:"previous"`
	Stages        []StageTrend `json:"stages"`
}

// ConversionFunnelTrend compares users who signed up in the last
// TrendWindowDays with the TrendWindowDays before that. Rates are
// stage-to-stage except overall_conversion.
func (a *Analyzer) ConversionFunnelTrend() FunnelTrend {
	scans := a.scanCounts()
	var ref time.Time
	if len(a.ds.Users) > 0 {
		ref = lo.MaxBy(a.ds.Users, func(x, y *models.User) bool { return x.SignupDate.After(y.SignupDate) }).SignupDate
	}
	window := time.Duration(TrendWindowDays) * day
	recentStart := ref.Add(-window)
	previousStart := recentStart.Add(-window)

	recent := lo.Filter(a.ds.Users, func(u *models.User, _ int) bool {
		return u.SignupDate.After(recentStart)
	})
	previous := lo.Filter(a.ds.Users, func(u *models.User, _ int) bool {
		return u.SignupDate.After(previousStart) && !u.SignupDate.After(recentStart)
	})

	trend := FunnelTrend{
		ReferenceDate: ref,
		Recent:        a.funnelOf(recent, scans),
		Previous:      a.funnelOf(previous, scans),
	}
	recentRates, previousRates := stageRates(trend.Recent), stageRates(trend.Previous)
	for i, name := range []string{TrendSignupToFirstScan, TrendFirstToSecondScan, TrendSecondScanToPaid, TrendOverallConversion} {
		change := recentRates[i] - previousRates[i]
		trend.Stages = append(trend.Stages, StageTrend{
			Stage:        name,
			RecentRate:   recentRates[i],
			PreviousRate: previousRates[i],
			Change:       change,
			Declining:    change < 0,
		})
	}
	return trend
}

func stageRates(f Funnel) [4]float64 {
	n := func(i int) float64 { return float64(f[i].Users) }
	return [4]float64{
		SafeRate(n(1), n(0)),
		SafeRate(n(2), n(1)),
		SafeRate(n(3), n(2)),
		SafeRate(n(3), n(0)),
	}
}
