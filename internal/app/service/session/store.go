package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/fatflowers/jobmetrics/internal/app/service/analytics"
	"github.com/fatflowers/jobmetrics/internal/app/service/dataset"
	"github.com/fatflowers/jobmetrics/pkg/config"
	"github.com/fatflowers/jobmetrics/pkg/logctx"
	"github.com/fatflowers/jobmetrics/pkg/metrics"
)

// Info describes the currently loaded dataset.
type Info struct {
	Source        string    `json:"source"`
	LoadedAt      time.Time `json:"loaded_at"`
	Users         int       `json:"users"`
	Subscriptions int       `json:"subscriptions"`
	Scans         int       `json:"scans"`
	RevenueDays   int       `json:"revenue_days"`
}

// Store loads the dataset once and hands out one Analyzer per time window.
// Reload swaps the dataset and drops every cached Analyzer.
type Store struct {
	source      dataset.Source
	opts        analytics.Options
	defaultDays int
	logger      *zap.SugaredLogger
	metrics     *metrics.Business

	group singleflight.Group

	mu        sync.RWMutex
	ds        *dataset.Dataset
	info      Info
	analyzers map[int]*analytics.Analyzer
}

func NewStore(source dataset.Source, cfg *config.Config, logger *zap.SugaredLogger, m *metrics.Business) *Store {
	return &Store{
		source:      source,
		opts:        analytics.OptionsFrom(cfg),
		defaultDays: cfg.Data.TimeRangeDays,
		logger:      logger,
		metrics:     m,
		analyzers:   make(map[int]*analytics.Analyzer),
	}
}

// DefaultDays is the configured time window, 0 for the full dataset.
func (s *Store) DefaultDays() int { return s.defaultDays }

// Analyzer returns the analyzer for the trailing days window, loading the
// dataset on first use. days <= 0 selects the full dataset.
func (s *Store) Analyzer(ctx context.Context, days int) (*analytics.Analyzer, error) {
	if days < 0 {
		days = 0
	}
	s.mu.RLock()
	ds, a := s.ds, s.analyzers[days]
	s.mu.RUnlock()
	if a != nil {
		return a, nil
	}
	if ds == nil {
		if _, err := s.load(ctx); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if a := s.analyzers[days]; a != nil {
		return a, nil
	}
	a = analytics.New(s.ds.Window(days), s.opts)
	s.analyzers[days] = a
	return a, nil
}

// Reload reads the source again. Concurrent calls share one load.
func (s *Store) Reload(ctx context.Context) (Info, error) {
	return s.load(ctx)
}

// Info returns the description of the loaded dataset, zero before the first load.
func (s *Store) Info() Info {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.info
}

func (s *Store) load(ctx context.Context) (Info, error) {
	v, err, _ := s.group.Do("load", func() (interface{}, error) {
		// the shared load outlives the caller that started it
		ctx := context.WithoutCancel(ctx)
		log := logctx.FromCtx(ctx, s.logger)
		start := time.Now()
		ds, err := s.source.Load(ctx)
		s.metrics.ObserveLoad(s.source.Name(), start, err)
		if err != nil {
			log.Errorw("dataset load failed", "source", s.source.Name(), "err", err)
			return Info{}, err
		}

		info := Info{
			Source:        s.source.Name(),
			LoadedAt:      time.Now(),
			Users:         len(ds.Users),
			Subscriptions: len(ds.Subscriptions),
			Scans:         len(ds.Scans),
			RevenueDays:   len(ds.Revenue),
		}
		full := analytics.New(ds, s.opts)

		s.mu.Lock()
		s.ds = ds
		s.info = info
		s.analyzers = map[int]*analytics.Analyzer{0: full}
		s.mu.Unlock()

		s.recordKPIs(full)
		log.Infow("dataset loaded",
			"source", info.Source,
			"users", info.Users,
			"subscriptions", info.Subscriptions,
			"scans", info.Scans,
			"revenue_days", info.RevenueDays,
			"elapsed_ms", metrics.MillisecondsSince(start),
		)
		return info, nil
	})
	if err != nil {
		return Info{}, err
	}
	return v.(Info), nil
}

func (s *Store) recordKPIs(a *analytics.Analyzer) {
	o := a.Overview()
	s.metrics.SetKPIs(map[string]float64{
		"current_mrr":     o.CurrentMRR,
		"mrr_growth_rate": o.MRRGrowthRate,
		"churn_rate":      o.ChurnRate,
		"conversion_rate": o.ConversionRate,
		"arpu":            o.ARPU,
		"ltv":             o.LTV,
		"cac":             o.CAC,
		"mau":             float64(o.MAU),
	})
	s.metrics.SetAnomalies(analytics.CountBySeverity(a.DetectAnomalies()))
}
