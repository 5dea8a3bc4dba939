package models

import (
	"time"

	"gorm.io/datatypes"
)

// MetricsDailySnapshot stores the metrics of one dataset day for trend lookups.
type MetricsDailySnapshot struct {
	ID string `gorm:"column:id;type:uuid;primary_key" json:"id"`
	// SnapshotDate is the latest revenue date of the dataset, not the wall clock.
	SnapshotDate   string  `gorm:"column:snapshot_date;type:varchar(10);uniqueIndex:idx_snapshot_date_range,priority:1" json:"snapshot_date"`
	TimeRangeDays  int     `gorm:"column:time_range_days;not null;default:0;uniqueIndex:idx_snapshot_date_range,priority:2" json:"time_range_days"`
	CurrentMRR     float64 `gorm:"column:current_mrr;not null" json:"current_mrr"`
	ChurnRate      float64 `gorm:"column:churn_rate;not null" json:"churn_rate"`
	ConversionRate float64 `gorm:"column:conversion_rate;not null" json:"conversion_rate"`
	// Metrics holds the formatted metric map handed to the prompt builder.
	Metrics           datatypes.JSONMap `gorm:"column:metrics;type:jsonb;default:'{}'" json:"metrics"`
	SnapshotCreatedAt time.Time         `gorm:"column:snapshot_created_at" json:"snapshot_created_at"`
}

func (MetricsDailySnapshot) TableName() string {
	return "metrics_daily_snapshot"
}
