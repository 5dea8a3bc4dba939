package report

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fatflowers/jobmetrics/internal/app/service/analytics"
	"github.com/fatflowers/jobmetrics/internal/app/service/dataset"
	"github.com/fatflowers/jobmetrics/internal/models"
	"github.com/fatflowers/jobmetrics/pkg/config"
	"github.com/fatflowers/jobmetrics/pkg/logctx"
	"github.com/fatflowers/jobmetrics/pkg/types"
)

var sampleAnomalies = []analytics.Anomaly{
	{Metric: analytics.MetricChurnRate, Value: "9.00%", Severity: types.SeverityCritical, Message: "Churn rate (9.00%) exceeds critical threshold"},
	{Metric: analytics.MetricMRRGrowth, Value: "-6.00%", Severity: types.SeverityWarning, Message: "MRR growth (-6.00%) needs attention"},
}

func TestNewAnomalyReport(t *testing.T) {
	ctx := logctx.WithTraceID(context.Background(), "trace-1")
	checkedAt := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	r := NewAnomalyReport(ctx, "cli", 30, sampleAnomalies, checkedAt)

	id, err := uuid.Parse(r.ID)
	require.NoError(t, err)
	require.Equal(t, uuid.Version(7), id.Version())
	require.Equal(t, "trace-1", r.TraceID)
	require.Equal(t, "cli", r.Source)
	require.Equal(t, 30, r.TimeRangeDays)
	require.Equal(t, 2, r.TotalAnomalies)
	require.Equal(t, 1, r.CriticalCount)
	require.Equal(t, 1, r.WarningCount)
	require.Equal(t, checkedAt, r.CheckedAt)

	items := r.Anomalies.Data()
	require.Len(t, items, 2)
	require.Equal(t, "critical", items[0].Severity)
	require.Equal(t, analytics.MetricMRRGrowth, items[1].Metric)
}

func TestService_Disabled(t *testing.T) {
	s := New(nil, zap.NewNop().Sugar(), &config.Config{Report: config.ReportConfig{Retention: 90}})
	ctx := context.Background()

	require.False(t, s.Enabled())
	require.NoError(t, s.SaveAnomalyReport(ctx, NewAnomalyReport(ctx, "api", 0, sampleAnomalies, time.Now())))
	require.NoError(t, s.SaveMetricsDailySnapshot(ctx, nil, nil, 0))

	_, err := s.ListAnomalyReports(ctx, &ListAnomalyReportsRequest{})
	require.ErrorIs(t, err, ErrDisabled)
	_, err = s.ListMetricsDailySnapshots(ctx, 0, "", "")
	require.ErrorIs(t, err, ErrDisabled)
}

func TestListAnomalyReportsRequest_Validate(t *testing.T) {
	req := &ListAnomalyReportsRequest{PageSize: 10000}
	require.NoError(t, req.Validate())
	require.Equal(t, 1, req.Page)
	require.Equal(t, MaxPageSize, req.PageSize)

	req = &ListAnomalyReportsRequest{}
	require.NoError(t, req.Validate())
	require.Equal(t, DefaultPageSize, req.PageSize)

	req = &ListAnomalyReportsRequest{Filters: types.FiltersAnd{
		{Field: "source", Operator: types.CommonFilterOperatorEq, Values: []any{"cli"}},
		{Field: "anomalies->>'metric'", Operator: types.CommonFilterOperatorEq, Values: []any{"x"}},
	}}
	require.ErrorIs(t, req.Validate(), ErrInvalidFilter)

	req = &ListAnomalyReportsRequest{Filters: types.FiltersAnd{nil}}
	require.ErrorIs(t, req.Validate(), ErrInvalidFilter)
}

func TestListAnomalyReportsRequest_ValidateOperators(t *testing.T) {
	cases := []struct {
		name   string
		filter *types.CommonFilter
		valid  bool
	}{
		{"eq", &types.CommonFilter{Field: "source", Operator: types.CommonFilterOperatorEq, Values: []any{"cli"}}, true},
		{"date range", &types.CommonFilter{Field: "checked_at", Operator: types.CommonFilterOperatorDateRange, Values: []any{"2024-01-01", "2024-02-01"}}, true},
		{"eq without values", &types.CommonFilter{Field: "source", Operator: types.CommonFilterOperatorEq}, false},
		{"unknown operator", &types.CommonFilter{Field: "trace_id", Operator: "bogus", Values: []any{"x"}}, false},
		{"range with one value", &types.CommonFilter{Field: "critical_count", Operator: types.CommonFilterOperatorRange, Values: []any{1}}, false},
		{"date range with one value", &types.CommonFilter{Field: "checked_at", Operator: types.CommonFilterOperatorDateRange, Values: []any{"2024-01-01"}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := &ListAnomalyReportsRequest{Filters: types.FiltersAnd{
				{Field: "source", Operator: types.CommonFilterOperatorEq, Values: []any{"cli"}},
				tc.filter,
			}}
			err := req.Validate()
			if tc.valid {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidFilter)
		})
	}
}

func TestListAnomalyReports_InvalidFilterBeforeDisabled(t *testing.T) {
	s := New(nil, zap.NewNop().Sugar(), &config.Config{})
	_, err := s.ListAnomalyReports(context.Background(), &ListAnomalyReportsRequest{Filters: types.FiltersAnd{
		{Field: "source", Operator: types.CommonFilterOperatorEq},
	}})
	require.ErrorIs(t, err, ErrInvalidFilter)
}

func TestRunCheck_LogsAnomalies(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	s := New(nil, zap.New(core).Sugar(), &config.Config{})

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	users := make([]*models.User, 0, 200)
	for i := 0; i < 200; i++ {
		users = append(users, &models.User{UserID: fmt.Sprint(i), SignupDate: day, AcquisitionChannel: types.AcquisitionChannelOrganic, UserSegment: "job_seeker"})
	}
	ds := &dataset.Dataset{
		Users:   users,
		Revenue: []*models.RevenueDay{{Date: day, MRR: 0}},
	}
	a := analytics.New(ds, analytics.Options{Thresholds: config.DefaultThresholds()})

	r, err := s.RunCheck(context.Background(), a, "cli", 0)
	require.NoError(t, err)
	require.Equal(t, "cli", r.Source)
	require.Equal(t, r.TotalAnomalies, r.CriticalCount+r.WarningCount)
	require.Positive(t, r.CriticalCount)

	warned := logs.FilterMessage("anomaly detected").Len()
	require.Equal(t, r.TotalAnomalies, warned)
	finished := logs.FilterMessage("anomaly check finished").All()
	require.Len(t, finished, 1)
	require.EqualValues(t, r.CriticalCount, finished[0].ContextMap()["critical"])
}
