package models

import "time"

// RevenueDay is the daily revenue rollup. MRR is the total active MRR on Date.
type RevenueDay struct {
	Date                 time.Time `gorm:"column:date;type:date;primary_key" json:"date" validate:"required"`
	DailyRevenue         float64   `gorm:"column:daily_revenue;not null" json:"daily_revenue"`
	MRR                  float64   `gorm:"column:mrr;not null" json:"mrr" validate:"gte=0"`
	ActiveSubscriptions  int       `gorm:"column:active_subscriptions;not null" json:"active_subscriptions" validate:"gte=0"`
	NewSubscriptions     int       `gorm:"column:new_subscriptions;not null" json:"new_subscriptions" validate:"gte=0"`
	ChurnedSubscriptions int       `gorm:"column:churned_subscriptions;not null" json:"churned_subscriptions" validate:"gte=0"`
}

func (RevenueDay) TableName() string {
	return "revenue_days"
}
