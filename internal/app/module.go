package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/fatflowers/jobmetrics/internal/app/api/server"
	"github.com/fatflowers/jobmetrics/internal/app/service/dataset"
	"github.com/fatflowers/jobmetrics/internal/app/service/report"
	"github.com/fatflowers/jobmetrics/internal/app/service/session"
	"github.com/fatflowers/jobmetrics/internal/platform/db"
	"github.com/fatflowers/jobmetrics/pkg/config"
	"github.com/fatflowers/jobmetrics/pkg/logger"
	"github.com/fatflowers/jobmetrics/pkg/metrics"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	db.Module,
	metrics.Module,
	dataset.Module,
	session.Module,
	report.Module,
	server.Module,
)
