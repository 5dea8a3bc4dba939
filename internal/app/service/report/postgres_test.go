package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fatflowers/jobmetrics/internal/app/service/analytics"
	"github.com/fatflowers/jobmetrics/internal/app/service/dataset"
	"github.com/fatflowers/jobmetrics/internal/models"
	"github.com/fatflowers/jobmetrics/internal/platform/db/testutil"
	"github.com/fatflowers/jobmetrics/pkg/config"
	"github.com/fatflowers/jobmetrics/pkg/types"
)

func newPostgresService(t *testing.T, retention int) *Service {
	tx := testutil.Tx(t, testutil.DB(t))
	require.NoError(t, tx.Where("1 = 1").Delete(&models.AnomalyReport{}).Error)
	require.NoError(t, tx.Where("1 = 1").Delete(&models.MetricsDailySnapshot{}).Error)
	return New(tx, zap.NewNop().Sugar(), &config.Config{Report: config.ReportConfig{Retention: retention}})
}

func TestSaveAnomalyReport_Retention(t *testing.T) {
	s := newPostgresService(t, 2)
	ctx := context.Background()
	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.SaveAnomalyReport(ctx, NewAnomalyReport(ctx, "cli", 0, sampleAnomalies, base.Add(time.Duration(i)*time.Hour))))
	}
	require.NoError(t, s.SaveAnomalyReport(ctx, NewAnomalyReport(ctx, "api", 0, nil, base)))

	resp, err := s.ListAnomalyReports(ctx, &ListAnomalyReportsRequest{Filters: types.FiltersAnd{
		{Field: "source", Operator: types.CommonFilterOperatorEq, Values: []any{"cli"}},
	}})
	require.NoError(t, err)
	require.EqualValues(t, 2, resp.Total)
	require.Len(t, resp.Items, 2)
	require.True(t, resp.Items[0].CheckedAt.Equal(base.Add(2*time.Hour)))
	require.Len(t, resp.Items[0].Anomalies.Data(), 2)

	all, err := s.ListAnomalyReports(ctx, &ListAnomalyReportsRequest{PageSize: 1, Page: 2})
	require.NoError(t, err)
	require.EqualValues(t, 3, all.Total)
	require.Len(t, all.Items, 1)
}

func TestSaveMetricsDailySnapshot_Upsert(t *testing.T) {
	s := newPostgresService(t, 0)
	ctx := context.Background()
	day := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	ds := &dataset.Dataset{
		Users:   []*models.User{{UserID: "u1", SignupDate: day, AcquisitionChannel: types.AcquisitionChannelOrganic, UserSegment: "job_seeker"}},
		Revenue: []*models.RevenueDay{{Date: day, MRR: 100, ActiveSubscriptions: 1}},
	}
	a := analytics.New(ds, analytics.Options{Thresholds: config.DefaultThresholds()})
	snap, err := analytics.BuildSnapshot(a)
	require.NoError(t, err)

	require.NoError(t, s.SaveMetricsDailySnapshot(ctx, a, snap, 0))
	ds.Revenue[0].MRR = 120
	require.NoError(t, s.SaveMetricsDailySnapshot(ctx, analytics.New(ds, analytics.Options{}), snap, 0))

	rows, err := s.ListMetricsDailySnapshots(ctx, 0, "2024-06-01", "2024-07-01")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "2024-06-30", rows[0].SnapshotDate)
	require.InDelta(t, 120, rows[0].CurrentMRR, 1e-9)
	require.Equal(t, "$100.00", rows[0].Metrics["current_mrr"])
}
