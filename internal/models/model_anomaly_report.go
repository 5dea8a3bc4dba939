package models

import (
	"time"

	"gorm.io/datatypes"
)

// AnomalyReportItem mirrors one detected anomaly inside a persisted report.
type AnomalyReportItem struct {
	Metric   string `json:"metric"`
	Value    string `json:"value"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// AnomalyReport is the result of one anomaly check run.
type AnomalyReport struct {
	ID             string                                   `gorm:"column:id;type:uuid;primary_key" json:"id"`
	TraceID        string                                   `gorm:"column:trace_id;type:varchar(128)" json:"trace_id"`
	Source         string                                   `gorm:"column:source;type:varchar(64);not null" json:"source"`
	TimeRangeDays  int                                      `gorm:"column:time_range_days;not null;default:0" json:"time_range_days"`
	TotalAnomalies int                                      `gorm:"column:total_anomalies;not null" json:"total_anomalies"`
	CriticalCount  int                                      `gorm:"column:critical_count;not null" json:"critical_count"`
	WarningCount   int                                      `gorm:"column:warning_count;not null" json:"warning_count"`
	Anomalies      datatypes.JSONType[[]*AnomalyReportItem] `gorm:"column:anomalies;type:jsonb;default:'[]'" json:"anomalies"`
	CheckedAt      time.Time                                `gorm:"column:checked_at;not null;index" json:"checked_at"`
	CreatedAt      time.Time                                `json:"created_at"`
}

func (AnomalyReport) TableName() string {
	return "anomaly_report"
}
