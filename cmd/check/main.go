package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fatflowers/jobmetrics/internal/app/service/analytics"
	"github.com/fatflowers/jobmetrics/internal/app/service/dataset"
	"github.com/fatflowers/jobmetrics/internal/app/service/report"
	"github.com/fatflowers/jobmetrics/internal/platform/db"
	"github.com/fatflowers/jobmetrics/pkg/config"
	"github.com/fatflowers/jobmetrics/pkg/logctx"
	"github.com/fatflowers/jobmetrics/pkg/logger"
	"github.com/fatflowers/jobmetrics/pkg/tool"
)

const (
	exitOK       = 0
	exitError    = 1
	exitCritical = 2

	reportSource = "cli"
)

func main() {
	var days int
	var failOnCritical bool
	flag.IntVar(&days, "time-range-days", -1, "trailing window in days, -1 uses data.time_range_days")
	flag.BoolVar(&failOnCritical, "fail-on-critical", false, "exit 2 when a critical anomaly is found")
	flag.Parse()

	os.Exit(run(days, failOnCritical))
}

func run(days int, failOnCritical bool) int {
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return exitError
	}
	log, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		return exitError
	}
	defer func() { _ = log.Sync() }()

	gdb, err := db.NewDB(log, cfg)
	if err != nil {
		return exitError
	}
	defer closeDB(log, gdb)
	if err := db.AutoMigrate(log, gdb); err != nil {
		return exitError
	}

	src, err := dataset.NewSource(cfg, gdb)
	if err != nil {
		log.Errorw("init data source", "err", err)
		return exitError
	}
	if days < 0 {
		days = cfg.Data.TimeRangeDays
	}

	ctx := logctx.WithTraceID(context.Background(), tool.GenerateUUIDV7())
	ds, err := src.Load(ctx)
	if err != nil {
		if errors.Is(err, dataset.ErrDataNotFound) {
			logctx.FromCtx(ctx, log).Errorw("data not found, run the data generator first", "source", src.Name(), "err", err)
		} else {
			logctx.FromCtx(ctx, log).Errorw("load dataset", "source", src.Name(), "err", err)
		}
		return exitError
	}

	a := analytics.New(ds.Window(days), analytics.OptionsFrom(cfg))
	r, err := report.New(gdb, log, cfg).RunCheck(ctx, a, reportSource, days)
	if err != nil {
		logctx.FromCtx(ctx, log).Errorw("anomaly check failed", "err", err)
		return exitError
	}
	if failOnCritical && r.CriticalCount > 0 {
		return exitCritical
	}
	return exitOK
}

func closeDB(log *zap.SugaredLogger, gdb *gorm.DB) {
	if gdb == nil {
		return
	}
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	} else {
		log.Warnw("gorm: get sql.DB failed", "err", err)
	}
}
