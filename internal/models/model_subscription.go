package models

import (
	"time"

	"github.com/fatflowers/jobmetrics/pkg/types"
)

// Subscription is a paid plan of a user. MRR is the monthly equivalent, annual
// plans are already discounted and normalized.
// Use Status() instead of reading a stored status: it is derived from SubscriptionEnd.
type Subscription struct {
	ID                uint      `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	UserID            string    `gorm:"column:user_id;type:varchar(64);not null;index" json:"user_id" validate:"required"`
	SubscriptionStart time.Time `gorm:"column:subscription_start;not null" json:"subscription_start" validate:"required"`
	// SubscriptionEnd is nil while the subscription is active.
	SubscriptionEnd *time.Time         `gorm:"column:subscription_end;default:null" json:"subscription_end"`
	PlanType        types.PlanType     `gorm:"column:plan_type;type:varchar(32);not null" json:"plan_type" validate:"required"`
	BillingCycle    types.BillingCycle `gorm:"column:billing_cycle;type:varchar(32);not null" json:"billing_cycle" validate:"omitempty,oneof=monthly annual"`
	MRR             float64            `gorm:"column:mrr;not null" json:"mrr" validate:"gte=0"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

func (s *Subscription) Status() types.SubscriptionStatus {
	if s.SubscriptionEnd == nil {
		return types.SubscriptionStatusActive
	}
	return types.SubscriptionStatusChurned
}

func (s *Subscription) IsActive() bool {
	return s != nil && s.Status() == types.SubscriptionStatusActive
}
