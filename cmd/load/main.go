package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatflowers/jobmetrics/internal/app/service/dataset"
	"github.com/fatflowers/jobmetrics/internal/platform/db"
	"github.com/fatflowers/jobmetrics/pkg/config"
	"github.com/fatflowers/jobmetrics/pkg/logger"
	"github.com/fatflowers/jobmetrics/pkg/metrics"
)

func main() {
	var dir string
	flag.StringVar(&dir, "dir", "", "directory with the generated CSV tables, defaults to data.dir")
	flag.Parse()

	if err := run(dir); err != nil {
		fmt.Fprintf(os.Stderr, "load: %v\n", err)
		os.Exit(1)
	}
}

func run(dir string) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	gdb, err := db.NewDB(log, cfg)
	if err != nil {
		return err
	}
	dst, err := dataset.NewGormSource(gdb)
	if err != nil {
		return err
	}
	if sqlDB, err := gdb.DB(); err == nil {
		defer sqlDB.Close()
	}
	if err := db.AutoMigrate(log, gdb); err != nil {
		return err
	}

	if dir == "" {
		dir = cfg.Data.Dir
	}
	ctx := context.Background()
	start := time.Now()
	src := dataset.NewCSVSource(dir)
	ds, err := src.Load(ctx)
	if err != nil {
		return err
	}
	if err := dst.Import(ctx, ds); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	log.Infow("dataset imported",
		"dir", dir,
		"users", len(ds.Users),
		"subscriptions", len(ds.Subscriptions),
		"scans", len(ds.Scans),
		"revenue_days", len(ds.Revenue),
		"elapsed_ms", metrics.MillisecondsSince(start),
	)
	return nil
}
