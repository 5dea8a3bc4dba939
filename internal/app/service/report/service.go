package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fatflowers/jobmetrics/internal/app/service/analytics"
	"github.com/fatflowers/jobmetrics/internal/models"
	"github.com/fatflowers/jobmetrics/pkg/config"
	"github.com/fatflowers/jobmetrics/pkg/logctx"
	"github.com/fatflowers/jobmetrics/pkg/tool"
	"github.com/fatflowers/jobmetrics/pkg/types"
)

var (
	ErrDisabled      = errors.New("report history requires database.dsn")
	ErrInvalidFilter = errors.New("invalid filter")
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 200
)

// filterableColumns are the anomaly_report columns accepted in list filters.
var filterableColumns = []string{"source", "trace_id", "time_range_days", "total_anomalies", "critical_count", "warning_count", "checked_at"}

// Service persists anomaly reports and daily metric snapshots. With a nil
// *gorm.DB saves are skipped and lists fail with ErrDisabled.
type Service struct {
	db        *gorm.DB
	log       *zap.SugaredLogger
	retention int
}

func New(db *gorm.DB, log *zap.SugaredLogger, cfg *config.Config) *Service {
	return &Service{db: db, log: log, retention: cfg.Report.Retention}
}

func (s *Service) Enabled() bool { return s != nil && s.db != nil }

// NewAnomalyReport builds an unsaved report from a detector run.
func NewAnomalyReport(ctx context.Context, source string, timeRangeDays int, anomalies []analytics.Anomaly, checkedAt time.Time) *models.AnomalyReport {
	critical, warning := analytics.CountBySeverity(anomalies)
	items := lo.Map(anomalies, func(a analytics.Anomaly, _ int) *models.AnomalyReportItem {
		return &models.AnomalyReportItem{
			Metric:   a.Metric,
			Value:    a.Value,
			Severity: string(a.Severity),
			Message:  a.Message,
		}
	})
	return &models.AnomalyReport{
		ID:             tool.GenerateUUIDV7(),
		TraceID:        logctx.TraceID(ctx),
		Source:         source,
		TimeRangeDays:  timeRangeDays,
		TotalAnomalies: len(anomalies),
		CriticalCount:  critical,
		WarningCount:   warning,
		Anomalies:      datatypes.NewJSONType(items),
		CheckedAt:      checkedAt,
	}
}

// SaveAnomalyReport stores report and keeps only the newest `retention`
// reports of the same source.
func (s *Service) SaveAnomalyReport(ctx context.Context, report *models.AnomalyReport) error {
	if report == nil {
		return nil
	}
	if !s.Enabled() {
		logctx.FromCtx(ctx, s.log).Debugw("report history disabled, anomaly report not saved", "source", report.Source)
		return nil
	}
	if report.ID == "" {
		report.ID = tool.GenerateUUIDV7()
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(report).Error; err != nil {
			return fmt.Errorf("create anomaly report: %w", err)
		}
		if s.retention <= 0 {
			return nil
		}
		keep := tx.Model(&models.AnomalyReport{}).
			Select("id").
			Where("source = ?", report.Source).
			Order("checked_at DESC").Order("id DESC").
			Limit(s.retention)
		res := tx.Where("source = ?", report.Source).
			Where("id NOT IN (?)", keep).
			Delete(&models.AnomalyReport{})
		if res.Error != nil {
			return fmt.Errorf("prune anomaly reports: %w", res.Error)
		}
		if res.RowsAffected > 0 {
			logctx.FromCtx(ctx, s.log).Infow("pruned anomaly reports", "source", report.Source, "deleted", res.RowsAffected)
		}
		return nil
	})
}

type ListAnomalyReportsRequest struct {
	Filters  types.FiltersAnd `json:"filters"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

type ListAnomalyReportsResponse struct {
	Total int64                   `json:"total"`
	Items []*models.AnomalyReport `json:"items"`
}

// Validate checks filter fields against the filterable columns and
// normalizes paging.
func (r *ListAnomalyReportsRequest) Validate() error {
	for _, f := range r.Filters {
		if f == nil {
			return fmt.Errorf("%w: empty filter", ErrInvalidFilter)
		}
		if !lo.Contains(filterableColumns, f.Field) {
			return fmt.Errorf("%w: field %q", ErrInvalidFilter, f.Field)
		}
		if !f.Valid() {
			return fmt.Errorf("%w: operator %q with %d values on %q", ErrInvalidFilter, f.Operator, len(f.Values), f.Field)
		}
	}
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.PageSize <= 0 {
		r.PageSize = DefaultPageSize
	}
	r.PageSize = min(r.PageSize, MaxPageSize)
	return nil
}

func (s *Service) ListAnomalyReports(ctx context.Context, req *ListAnomalyReportsRequest) (*ListAnomalyReportsResponse, error) {
	if req == nil {
		req = &ListAnomalyReportsRequest{}
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !s.Enabled() {
		return nil, ErrDisabled
	}
	q := s.db.WithContext(ctx).Model(&models.AnomalyReport{}).
		Where(clause.Where{Exprs: []clause.Expression{req.Filters}})

	var resp ListAnomalyReportsResponse
	if err := q.Count(&resp.Total).Error; err != nil {
		return nil, err
	}
	err := q.Order("checked_at DESC").
		Offset((req.Page - 1) * req.PageSize).
		Limit(req.PageSize).
		Find(&resp.Items).Error
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// SaveMetricsDailySnapshot upserts the snapshot of the dataset day and window.
func (s *Service) SaveMetricsDailySnapshot(ctx context.Context, a *analytics.Analyzer, snap *analytics.Snapshot, timeRangeDays int) error {
	if !s.Enabled() {
		return nil
	}
	day := time.Now()
	if n := len(a.Dataset().Revenue); n > 0 {
		day = a.Dataset().Revenue[n-1].Date
	}
	o := a.Overview()
	row := &models.MetricsDailySnapshot{
		ID:                tool.GenerateUUIDV7(),
		SnapshotDate:      day.Format(time.DateOnly),
		TimeRangeDays:     timeRangeDays,
		CurrentMRR:        o.CurrentMRR,
		ChurnRate:         o.ChurnRate,
		ConversionRate:    o.ConversionRate,
		Metrics:           lo.MapValues(snap.Metrics, func(v string, _ string) any { return v }),
		SnapshotCreatedAt: time.Now(),
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "snapshot_date"}, {Name: "time_range_days"}},
		DoUpdates: clause.AssignmentColumns([]string{"current_mrr", "churn_rate", "conversion_rate", "metrics", "snapshot_created_at"}),
	}).Create(row).Error
}

// ListMetricsDailySnapshots returns snapshots of a window with
// from <= snapshot_date < to, oldest first. Empty bounds are open.
func (s *Service) ListMetricsDailySnapshots(ctx context.Context, timeRangeDays int, from, to string) ([]*models.MetricsDailySnapshot, error) {
	if !s.Enabled() {
		return nil, ErrDisabled
	}
	filters := types.FiltersAnd{{Field: "time_range_days", Operator: types.CommonFilterOperatorEq, Values: []any{timeRangeDays}}}
	if from != "" {
		filters = append(filters, &types.CommonFilter{Field: "snapshot_date", Operator: types.CommonFilterOperatorGte, Values: []any{from}})
	}
	if to != "" {
		filters = append(filters, &types.CommonFilter{Field: "snapshot_date", Operator: types.CommonFilterOperatorLt, Values: []any{to}})
	}
	var out []*models.MetricsDailySnapshot
	err := s.db.WithContext(ctx).
		Where(clause.Where{Exprs: []clause.Expression{filters}}).
		Order("snapshot_date ASC").
		Find(&out).Error
	return out, err
}

// RunCheck detects the anomalies of a, logs each of them and persists the
// report together with the daily metrics snapshot.
func (s *Service) RunCheck(ctx context.Context, a *analytics.Analyzer, source string, timeRangeDays int) (*models.AnomalyReport, error) {
	snap, err := analytics.BuildSnapshot(a)
	if err != nil {
		return nil, err
	}
	report := NewAnomalyReport(ctx, source, timeRangeDays, snap.Anomalies, time.Now().UTC())

	log := logctx.FromCtx(ctx, s.log)
	for _, an := range snap.Anomalies {
		log.Warnw("anomaly detected",
			"metric", an.Metric,
			"value", an.Value,
			"severity", an.Severity,
			"message", an.Message,
		)
	}
	log.Infow("anomaly check finished",
		"source", source,
		"time_range_days", timeRangeDays,
		"total", report.TotalAnomalies,
		"critical", report.CriticalCount,
		"warning", report.WarningCount,
	)

	if err := s.SaveAnomalyReport(ctx, report); err != nil {
		return nil, err
	}
	if err := s.SaveMetricsDailySnapshot(ctx, a, snap, timeRangeDays); err != nil {
		return nil, fmt.Errorf("save metrics snapshot: %w", err)
	}
	return report, nil
}
