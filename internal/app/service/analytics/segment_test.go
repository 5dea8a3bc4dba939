package analytics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fatflowers/jobmetrics/pkg/config"
)

func groupsByName(groups []GroupPerformance) map[string]GroupPerformance {
	out := make(map[string]GroupPerformance, len(groups))
	for _, g := range groups {
		out[g.Group] = g
	}
	return out
}

func TestChannelPerformance(t *testing.T) {
	got := analyzerOf(sampleDataset()).ChannelPerformance()
	require.Len(t, got, 3)
	require.Equal(t, "organic", got[0].Group)

	byChannel := groupsByName(got)

	organic := byChannel["organic"]
	require.Equal(t, 2, organic.TotalUsers)
	require.Equal(t, 1, organic.Conversions)
	require.InDelta(t, 50, organic.ConversionRate, 1e-9)
	require.Equal(t, 1, organic.ActiveSubs)
	require.InDelta(t, 49.99, organic.TotalMRR, 1e-9)
	require.InDelta(t, 49.99*SegmentLifetimeMonths, organic.AvgLTV, 1e-9)
	require.Equal(t, 0.0, organic.AvgCAC)
	require.Equal(t, NonFiniteSentinel, organic.LTVCACRatio)
	require.Equal(t, NonFiniteSentinel, organic.ROI)

	paid := byChannel["paid_search"]
	require.Equal(t, 2, paid.TotalUsers)
	require.Equal(t, 1, paid.Conversions)
	require.Equal(t, 0, paid.ActiveSubs)
	require.Equal(t, 0.0, paid.AvgMRR)
	require.InDelta(t, 50, paid.AvgCAC, 1e-9)
	require.Equal(t, 0.0, paid.LTVCACRatio)
	require.InDelta(t, -100, paid.ROI, 1e-9)

	social := byChannel["social"]
	require.InDelta(t, 99.99*12/30, social.LTVCACRatio, 1e-9)
	require.InDelta(t, (99.99*12-30)/30*100, social.ROI, 1e-9)

	for _, g := range got {
		require.False(t, math.IsInf(g.ROI, 0) || math.IsNaN(g.ROI))
		require.False(t, math.IsInf(g.LTVCACRatio, 0) || math.IsNaN(g.LTVCACRatio))
	}
}

func TestUserSegmentLTVAnalysis_Aliases(t *testing.T) {
	cfg := &config.Config{
		Thresholds: config.DefaultThresholds(),
		SegmentAliases: map[string]string{
			"career_changer": "career_switcher",
			"professional":   "career_switcher",
			"recent_grad":    "university_students",
		},
	}
	a := New(sampleDataset(), OptionsFrom(cfg))

	bySegment := groupsByName(a.UserSegmentLTVAnalysis())
	require.Len(t, bySegment, 3)
	require.Equal(t, 2, bySegment["career_switcher"].TotalUsers)
	require.Equal(t, 2, bySegment["job_seeker"].TotalUsers)
	require.Equal(t, 1, bySegment["university_students"].TotalUsers)
	require.InDelta(t, 50, bySegment["career_switcher"].AvgCAC, 1e-9)

	perf := a.UserSegmentPerformance()
	require.Len(t, perf, 3)
	require.Equal(t, SegmentPerformance{Segment: "job_seeker", TotalUsers: 2, Conversions: 2, ConversionRate: 100}, perf[1])
}

func TestUserSegmentLTVAnalysis_NoAliases(t *testing.T) {
	bySegment := groupsByName(analyzerOf(sampleDataset()).UserSegmentLTVAnalysis())
	require.Len(t, bySegment, 4)
	require.Contains(t, bySegment, "career_changer")
	require.Contains(t, bySegment, "professional")
}
