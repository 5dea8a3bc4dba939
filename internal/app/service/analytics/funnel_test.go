package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fatflowers/jobmetrics/internal/app/service/dataset"
	"github.com/fatflowers/jobmetrics/internal/models"
	"github.com/fatflowers/jobmetrics/pkg/types"
)

func TestConversionFunnel(t *testing.T) {
	f := analyzerOf(sampleDataset()).ConversionFunnel()
	require.Equal(t, Funnel{
		{Stage: StageSignups, Users: 5},
		{Stage: StageFirstScan, Users: 5},
		{Stage: StageEngaged, Users: 3},
		{Stage: StageConverted, Users: 3},
	}, f)
}

func TestConversionFunnel_NonIncreasing(t *testing.T) {
	// a subscriber without scans must not push the paid stage above the scan stages
	ds := &dataset.Dataset{
		Users: []*models.User{
			user("u1", 0, types.AcquisitionChannelOrganic, "job_seeker", 0),
			user("u2", 0, types.AcquisitionChannelOrganic, "job_seeker", 0),
			user("u3", 0, types.AcquisitionChannelOrganic, "job_seeker", 0),
		},
		Subscriptions: []*models.Subscription{
			sub("u2", 1, nil, types.PlanTypeBasic, 10),
			sub("u3", 1, nil, types.PlanTypeBasic, 10),
		},
		Scans: []*models.Scan{scan("u1", 0, 50), scan("u1", 1, 50)},
	}
	f := analyzerOf(ds).ConversionFunnel()
	require.NoError(t, f.Validate())
	for i := 0; i+1 < len(f); i++ {
		require.GreaterOrEqual(t, f[i].Users, f[i+1].Users)
	}
	require.Equal(t, 0, f[3].Users)

	// ConversionRate still counts both subscriptions
	require.InDelta(t, 2.0/3*100, analyzerOf(ds).ConversionRate(), 1e-9)
}

func TestSummarizeFunnel(t *testing.T) {
	s, err := SummarizeFunnel(analyzerOf(sampleDataset()).ConversionFunnel())
	require.NoError(t, err)
	require.Equal(t, 5, s.TotalSignups)
	require.InDelta(t, 100, s.ActivationRate, 1e-9)
	require.InDelta(t, 60, s.EngagementRate, 1e-9)
	require.InDelta(t, 60, s.PaidConversionRate, 1e-9)
	require.InDelta(t, 60, s.FirstToSecondRetentionRate, 1e-9)
	require.InDelta(t, 40, s.FirstToSecondDropOffRate, 1e-9)
	require.Equal(t, 2, s.FirstToSecondUsersLost)
	require.InDelta(t, 100, s.EngagedToPaidRate, 1e-9)
	require.Equal(t, 0, s.EngagedToPaidUsersLost)
}

func TestSummarizeFunnel_StructuralErrors(t *testing.T) {
	cases := []struct {
		name   string
		funnel Funnel
		want   error
	}{
		{
			name:   "truncated",
			funnel: Funnel{{Stage: StageSignups, Users: 10}, {Stage: StageFirstScan, Users: 4}},
			want:   ErrFunnelIncomplete,
		},
		{
			name:   "no signups",
			funnel: Funnel{{Stage: StageSignups}, {Stage: StageFirstScan}, {Stage: StageEngaged}, {Stage: StageConverted}},
			want:   ErrNoSignups,
		},
		{
			name: "increasing",
			funnel: Funnel{
				{Stage: StageSignups, Users: 10},
				{Stage: StageFirstScan, Users: 4},
				{Stage: StageEngaged, Users: 6},
				{Stage: StageConverted, Users: 1},
			},
			want: ErrFunnelNotOrdered,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := SummarizeFunnel(tc.funnel)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, s)
		})
	}
}

func TestConversionFunnelTrend(t *testing.T) {
	trend := analyzerOf(sampleDataset()).ConversionFunnelTrend()
	require.Equal(t, dayN(45), trend.ReferenceDate)
	require.Equal(t, 2, trend.Recent[0].Users)
	require.Equal(t, 3, trend.Previous[0].Users)
	require.Len(t, trend.Stages, 4)

	byStage := make(map[string]StageTrend, len(trend.Stages))
	for _, s := range trend.Stages {
		byStage[s.Stage] = s
	}

	first := byStage[TrendSignupToFirstScan]
	require.InDelta(t, 100, first.RecentRate, 1e-9)
	require.InDelta(t, 100, first.PreviousRate, 1e-9)
	require.False(t, first.Declining)

	second := byStage[TrendFirstToSecondScan]
	require.InDelta(t, 50, second.RecentRate, 1e-9)
	require.InDelta(t, 200.0/3, second.PreviousRate, 1e-9)
	require.InDelta(t, 50-200.0/3, second.Change, 1e-9)
	require.True(t, second.Declining)

	overall := byStage[TrendOverallConversion]
	require.InDelta(t, 50, overall.RecentRate, 1e-9)
	require.True(t, overall.Declining)
}

func TestConversionFunnelTrend_EmptyCohorts(t *testing.T) {
	trend := analyzerOf(&dataset.Dataset{}).ConversionFunnelTrend()
	require.Len(t, trend.Stages, 4)
	for _, s := range trend.Stages {
		require.Equal(t, 0.0, s.RecentRate)
		require.Equal(t, 0.0, s.PreviousRate)
		require.False(t, s.Declining)
	}
}
