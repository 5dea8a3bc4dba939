package dataset

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fatflowers/jobmetrics/internal/models"
)

var ErrNoDatabase = errors.New("postgres data source requires database.dsn")

// GormSource reads the tables written by the data generator's postgres export.
type GormSource struct {
	db *gorm.DB
}

func NewGormSource(db *gorm.DB) (*GormSource, error) {
	if db == nil {
		return nil, ErrNoDatabase
	}
	return &GormSource{db: db}, nil
}

func (s *GormSource) Name() string { return "postgres" }

func (s *GormSource) Load(ctx context.Context) (*Dataset, error) {
	db := s.db.WithContext(ctx)
	ds := &Dataset{}
	if err := db.Order("signup_date ASC").Find(&ds.Users).Error; err != nil {
		return nil, fmt.Errorf("load %s: %w", TableUsers, err)
	}
	if err := db.Order("id ASC").Find(&ds.Subscriptions).Error; err != nil {
		return nil, fmt.Errorf("load %s: %w", TableSubscriptions, err)
	}
	if err := db.Order("scan_date ASC").Find(&ds.Scans).Error; err != nil {
		return nil, fmt.Errorf("load %s: %w", TableScans, err)
	}
	if err := db.Model(&models.RevenueDay{}).Order("date ASC").Find(&ds.Revenue).Error; err != nil {
		return nil, fmt.Errorf("load %s: %w", TableRevenue, err)
	}
	if err := Validate(ds); err != nil {
		return nil, err
	}
	return ds, nil
}

// Import replaces the source tables with ds inside one transaction.
func (s *GormSource) Import(ctx context.Context, ds *Dataset) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{&models.Scan{}, &models.Subscription{}, &models.User{}, &models.RevenueDay{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
				return err
			}
		}
		if len(ds.Users) > 0 {
			if err := tx.CreateInBatches(ds.Users, 500).Error; err != nil {
				return err
			}
		}
		if len(ds.Subscriptions) > 0 {
			if err := tx.CreateInBatches(ds.Subscriptions, 500).Error; err != nil {
				return err
			}
		}
		if len(ds.Scans) > 0 {
			if err := tx.CreateInBatches(ds.Scans, 500).Error; err != nil {
				return err
			}
		}
		if len(ds.Revenue) > 0 {
			if err := tx.CreateInBatches(ds.Revenue, 500).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
