package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fatflowers/jobmetrics/internal/app/service/analytics"
)

const DefaultTrendDays = 90

type FunnelResponse struct {
	Stages  analytics.Funnel         `json:"stages"`
	Summary *analytics.FunnelSummary `json:"summary"`
}

type CohortsResponse struct {
	Cohorts []analytics.Cohort `json:"cohorts"`
	Months  int                `json:"months"`
	// Averages is the mean retention of each month offset over cohorts with data.
	Averages []*float64 `json:"averages"`
}

type AnomaliesResponse struct {
	Anomalies []analytics.Anomaly `json:"anomalies"`
	Critical  int                 `json:"critical"`
	Warning   int                 `json:"warning"`
}

// @Summary      Metrics overview
// @Description  Scalar SaaS metrics (MRR, growth, ARPU, churn, conversion, CAC, LTV, active users, scan quality).
// @Tags         Metrics
// @Produce      json
// @Param        time_range_days  query  int  false  "Trailing window in days, 0 for all data"
// @Success      200  {object}  handlers.RespOverview
// @Router       /api/v1/metrics/overview [get]
func ApiMetricsOverview(p AnalyzerProvider, log *zap.SugaredLogger) gin.HandlerFunc {
	return analyzerHandler(p, log, func(_ *gin.Context, a *analytics.Analyzer) (any, error) {
		return a.Overview(), nil
	})
}

// @Summary      MRR trend
// @Description  Daily revenue rows of the last `days` days.
// @Tags         Metrics
// @Produce      json
// @Param        time_range_days  query  int  false  "Trailing window in days, 0 for all data"
// @Param        days             query  int  false  "Trend length in days (default 90, 0 for all rows)"
// @Success      200  {object}  handlers.RespMRRTrend
// @Router       /api/v1/metrics/mrr_trend [get]
func ApiMRRTrend(p AnalyzerProvider, log *zap.SugaredLogger) gin.HandlerFunc {
	return analyzerHandler(p, log, func(c *gin.Context, a *analytics.Analyzer) (any, error) {
		days, err := intQuery(c, "days", DefaultTrendDays)
		if err != nil {
			return nil, err
		}
		return a.MRRTrend(days), nil
	})
}

// @Summary      Revenue by plan
// @Description  Active MRR and subscriber count per plan.
// @Tags         Metrics
// @Produce      json
// @Param        time_range_days  query  int  false  "Trailing window in days, 0 for all data"
// @Success      200  {object}  handlers.RespRevenueByPlan
// @Router       /api/v1/metrics/revenue_by_plan [get]
func ApiRevenueByPlan(p AnalyzerProvider, log *zap.SugaredLogger) gin.HandlerFunc {
	return analyzerHandler(p, log, func(_ *gin.Context, a *analytics.Analyzer) (any, error) {
		return a.RevenueByPlan(), nil
	})
}

// @Summary      Conversion funnel
// @Description  Signup to paid funnel with step conversion and drop-off rates.
// @Tags         Metrics
// @Produce      json
// @Param        time_range_days  query  int  false  "Trailing window in days, 0 for all data"
// @Success      200  {object}  handlers.RespFunnel
// @Router       /api/v1/metrics/funnel [get]
func ApiFunnel(p AnalyzerProvider, log *zap.SugaredLogger) gin.HandlerFunc {
	return analyzerHandler(p, log, func(_ *gin.Context, a *analytics.Analyzer) (any, error) {
		f := a.ConversionFunnel()
		summary, err := analytics.SummarizeFunnel(f)
		if err != nil {
			return nil, err
		}
		return &FunnelResponse{Stages: f, Summary: summary}, nil
	})
}

// @Summary      Funnel trend
// @Description  Stage conversion of the last 30 signup days against the 30 days before.
// @Tags         Metrics
// @Produce      json
// @Param        time_range_days  query  int  false  "Trailing window in days, 0 for all data"
// @Success      200  {object}  handlers.RespFunnelTrend
// @Router       /api/v1/metrics/funnel_trend [get]
func ApiFunnelTrend(p AnalyzerProvider, log *zap.SugaredLogger) gin.HandlerFunc {
	return analyzerHandler(p, log, func(_ *gin.Context, a *analytics.Analyzer) (any, error) {
		return a.ConversionFunnelTrend(), nil
	})
}

// @Summary      Cohort retention
// @Description  Monthly signup cohorts and the share of each that scanned k months later.
// @Tags         Metrics
// @Produce      json
// @Param        time_range_days  query  int  false  "Trailing window in days, 0 for all data"
// @Success      200  {object}  handlers.RespCohorts
// @Router       /api/v1/metrics/cohorts [get]
func ApiCohorts(p AnalyzerProvider, log *zap.SugaredLogger) gin.HandlerFunc {
	return analyzerHandler(p, log, func(_ *gin.Context, a *analytics.Analyzer) (any, error) {
		m := a.CohortAnalysis()
		return &CohortsResponse{Cohorts: m.Cohorts, Months: m.Months, Averages: m.ColumnAverages()}, nil
	})
}

// @Summary      Channel performance
// @Description  Conversion, MRR, CAC, LTV and ROI per acquisition channel.
// @Tags         Metrics
// @Produce      json
// @Param        time_range_days  query  int  false  "Trailing window in days, 0 for all data"
// @Success      200  {object}  handlers.RespGroups
// @Router       /api/v1/metrics/channels [get]
func ApiChannels(p AnalyzerProvider, log *zap.SugaredLogger) gin.HandlerFunc {
	return analyzerHandler(p, log, func(_ *gin.Context, a *analytics.Analyzer) (any, error) {
		return a.ChannelPerformance(), nil
	})
}

// @Summary      Segment performance
// @Description  Users, conversions and conversion rate per reporting segment.
// @Tags         Metrics
// @Produce      json
// @Param        time_range_days  query  int  false  "Trailing window in days, 0 for all data"
// @Success      200  {object}  handlers.RespSegments
// @Router       /api/v1/metrics/segments [get]
func ApiSegments(p AnalyzerProvider, log *zap.SugaredLogger) gin.HandlerFunc {
	return analyzerHandler(p, log, func(_ *gin.Context, a *analytics.Analyzer) (any, error) {
		return a.UserSegmentPerformance(), nil
	})
}

// @Summary      Segment LTV
// @Description  Conversion, CAC, LTV and ROI per reporting segment (aliases applied).
// @Tags         Metrics
// @Produce      json
// @Param        time_range_days  query  int  false  "Trailing window in days, 0 for all data"
// @Success      200  {object}  handlers.RespGroups
// @Router       /api/v1/metrics/segments/ltv [get]
func ApiSegmentLTV(p AnalyzerProvider, log *zap.SugaredLogger) gin.HandlerFunc {
	return analyzerHandler(p, log, func(_ *gin.Context, a *analytics.Analyzer) (any, error) {
		return a.UserSegmentLTVAnalysis(), nil
	})
}

// @Summary      Anomalies
// @Description  Runs the threshold checks without persisting a report.
// @Tags         Metrics
// @Produce      json
// @Param        time_range_days  query  int  false  "Trailing window in days, 0 for all data"
// @Success      200  {object}  handlers.RespAnomalies
// @Router       /api/v1/metrics/anomalies [get]
func ApiAnomalies(p AnalyzerProvider, log *zap.SugaredLogger) gin.HandlerFunc {
	return analyzerHandler(p, log, func(_ *gin.Context, a *analytics.Analyzer) (any, error) {
		anomalies := a.DetectAnomalies()
		critical, warning := analytics.CountBySeverity(anomalies)
		return &AnomaliesResponse{Anomalies: anomalies, Critical: critical, Warning: warning}, nil
	})
}

// @Summary      Metrics snapshot
// @Description  Display-formatted metrics, channels, segments, funnel and anomalies in one document.
// @Tags         Metrics
// @Produce      json
// @Param        time_range_days  query  int  false  "Trailing window in days, 0 for all data"
// @Success      200  {object}  handlers.RespSnapshot
// @Router       /api/v1/metrics/snapshot [get]
func ApiSnapshot(p AnalyzerProvider, log *zap.SugaredLogger) gin.HandlerFunc {
	return analyzerHandler(p, log, func(_ *gin.Context, a *analytics.Analyzer) (any, error) {
		return analytics.BuildSnapshot(a)
	})
}

func RegisterMetricsRoutes(r gin.IRouter, p AnalyzerProvider, log *zap.SugaredLogger) {
	r.GET("/overview", ApiMetricsOverview(p, log))
	r.GET("/mrr_trend", ApiMRRTrend(p, log))
	r.GET("/revenue_by_plan", ApiRevenueByPlan(p, log))
	r.GET("/funnel", ApiFunnel(p, log))
	r.GET("/funnel_trend", ApiFunnelTrend(p, log))
	r.GET("/cohorts", ApiCohorts(p, log))
	r.GET("/channels", ApiChannels(p, log))
	r.GET("/segments", ApiSegments(p, log))
	r.GET("/segments/ltv", ApiSegmentLTV(p, log))
	r.GET("/anomalies", ApiAnomalies(p, log))
	r.GET("/snapshot", ApiSnapshot(p, log))
}
