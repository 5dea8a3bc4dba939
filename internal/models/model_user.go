package models

import (
	"time"

	"github.com/fatflowers/jobmetrics/pkg/types"
)

// User is a signed-up account of the platform. CAC is zero for organic signups.
type User struct {
	UserID             string                   `gorm:"column:user_id;type:varchar(64);primary_key" json:"user_id" validate:"required"`
	SignupDate         time.Time                `gorm:"column:signup_date;not null;index" json:"signup_date" validate:"required"`
	AcquisitionChannel types.AcquisitionChannel `gorm:"column:acquisition_channel;type:varchar(32);not null" json:"acquisition_channel" validate:"required"`
	UserSegment        string                   `gorm:"column:user_segment;type:varchar(64);not null" json:"user_segment" validate:"required"`
	Country            string                   `gorm:"column:country;type:varchar(8)" json:"country"`
	CAC                float64                  `gorm:"column:cac;not null;default:0" json:"cac" validate:"gte=0"`
}

func (User) TableName() string {
	return "users"
}
