package dataset

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/fatflowers/jobmetrics/pkg/config"
)

// NewSource picks the configured source. db may be nil when no DSN is set.
func NewSource(cfg *config.Config, db *gorm.DB) (Source, error) {
	if cfg.Data.Source == config.DataSourcePostgres {
		return NewGormSource(db)
	}
	return NewCSVSource(cfg.Data.Dir), nil
}

var Module = fx.Options(
	fx.Provide(NewSource),
)
