package models

import "time"

// Scan is one resume scan. IsPaidUser is a snapshot taken at scan time.
type Scan struct {
	ID                uint      `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	UserID            string    `gorm:"column:user_id;type:varchar(64);not null;index" json:"user_id" validate:"required"`
	ScanDate          time.Time `gorm:"column:scan_date;not null;index" json:"scan_date" validate:"required"`
	MatchRate         float64   `gorm:"column:match_rate;not null" json:"match_rate" validate:"gte=0,lte=100"`
	ProcessingTimeMs  float64   `gorm:"column:processing_time_ms" json:"processing_time_ms" validate:"gte=0"`
	KeywordsExtracted int       `gorm:"column:keywords_extracted" json:"keywords_extracted" validate:"gte=0"`
	JobTitle          string    `gorm:"column:job_title;type:varchar(128)" json:"job_title"`
	IsPaidUser        bool      `gorm:"column:is_paid_user" json:"is_paid_user"`
}

func (Scan) TableName() string {
	return "scans"
}
