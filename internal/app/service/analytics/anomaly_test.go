package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fatflowers/jobmetrics/internal/app/service/dataset"
	"github.com/fatflowers/jobmetrics/internal/models"
	"github.com/fatflowers/jobmetrics/pkg/config"
	"github.com/fatflowers/jobmetrics/pkg/types"
)

func TestDetectAnomalies_SampleDataset(t *testing.T) {
	got := analyzerOf(sampleDataset()).DetectAnomalies()
	require.Equal(t, []Anomaly{{
		Metric:   MetricChurnRate,
		Value:    "50.00%",
		Severity: types.SeverityCritical,
		Message:  "Churn rate (50.00%) exceeds critical threshold",
	}}, got)
}

// decliningDataset has low conversion, low match rate and falling MRR.
func decliningDataset() *dataset.Dataset {
	users := make([]*models.User, 0, 200)
	for i := 0; i < 200; i++ {
		users = append(users, user(fmt.Sprintf("u%d", i), 0, types.AcquisitionChannelSocial, "job_seeker", 10))
	}
	rev := revenue(0, 40, 100, 1)
	rev[len(rev)-1].MRR = 85
	return &dataset.Dataset{
		Users:         users,
		Subscriptions: []*models.Subscription{sub(users[0].UserID, 0, nil, types.PlanTypeBasic, 85)},
		Scans:         []*models.Scan{scan(users[0].UserID, 1, 62)},
		Revenue:       rev,
	}
}

func TestDetectAnomalies_OrderAndDirection(t *testing.T) {
	got := analyzerOf(decliningDataset()).DetectAnomalies()
	require.Len(t, got, 3)

	require.Equal(t, MetricConversionRate, got[0].Metric)
	require.Equal(t, types.SeverityCritical, got[0].Severity)
	require.Equal(t, "0.50%", got[0].Value)
	require.Equal(t, "Conversion rate (0.50%) below critical threshold", got[0].Message)

	require.Equal(t, MetricAvgMatchRate, got[1].Metric)
	require.Equal(t, types.SeverityWarning, got[1].Severity)
	require.Equal(t, "Average match rate (62.00%) below warning threshold", got[1].Message)

	require.Equal(t, MetricMRRGrowth, got[2].Metric)
	require.Equal(t, types.SeverityCritical, got[2].Severity)
	require.Equal(t, "-15.00%", got[2].Value)

	critical, warning := CountBySeverity(got)
	require.Equal(t, 2, critical)
	require.Equal(t, 1, warning)
}

func TestDetectAnomalies_ConfiguredThresholds(t *testing.T) {
	th := config.DefaultThresholds()
	th.MRRGrowth = config.Threshold{Warning: -0.10, Critical: -0.20}
	th.ConversionRate = config.Threshold{Warning: 0.004, Critical: 0.001}
	th.AvgMatchRate = config.Threshold{Warning: 0.5, Critical: 0.4}

	got := New(decliningDataset(), Options{Thresholds: th}).DetectAnomalies()
	require.Len(t, got, 1)
	require.Equal(t, MetricMRRGrowth, got[0].Metric)
	require.Equal(t, types.SeverityWarning, got[0].Severity)
	require.Equal(t, "MRR growth (-15.00%) needs attention", got[0].Message)
}

func TestDetectAnomalies_HealthyDataset(t *testing.T) {
	ds := sampleDataset()
	ds.Subscriptions[1].SubscriptionEnd = nil
	require.Empty(t, analyzerOf(ds).DetectAnomalies())
}
