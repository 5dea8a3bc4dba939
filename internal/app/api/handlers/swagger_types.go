package handlers

import (
	"github.com/fatflowers/jobmetrics/internal/app/service/analytics"
	"github.com/fatflowers/jobmetrics/internal/app/service/report"
	"github.com/fatflowers/jobmetrics/internal/app/service/session"
	"github.com/fatflowers/jobmetrics/internal/models"
	"github.com/fatflowers/jobmetrics/pkg/response"
)

// Envelope types below exist for swag only; handlers return response.APIResponse[T].

// RespOK is a generic OK envelope for endpoints returning no specific data.
type RespOK struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    interface{}              `json:"data"`
}

type RespOverview struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    analytics.Overview       `json:"data"`
}

type RespMRRTrend struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    []analytics.TrendPoint   `json:"data"`
}

type RespRevenueByPlan struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    []analytics.PlanRevenue  `json:"data"`
}

type RespFunnel struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    FunnelResponse           `json:"data"`
}

type RespFunnelTrend struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    analytics.FunnelTrend    `json:"data"`
}

type RespCohorts struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    CohortsResponse          `json:"data"`
}

// RespGroups wraps channel or segment LTV rows.
type RespGroups struct {
	Code    response.APIResponseCode     `json:"code"`
	Message string                       `json:"message"`
	Data    []analytics.GroupPerformance `json:"data"`
}

type RespSegments struct {
	Code    response.APIResponseCode       `json:"code"`
	Message string                         `json:"message"`
	Data    []analytics.SegmentPerformance `json:"data"`
}

type RespAnomalies struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    AnomaliesResponse        `json:"data"`
}

type RespSnapshot struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    analytics.Snapshot       `json:"data"`
}

type RespUserMatchRate struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    UserMatchRateResponse    `json:"data"`
}

type RespDatasetInfo struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    session.Info             `json:"data"`
}

type RespAnomalyReport struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    models.AnomalyReport     `json:"data"`
}

type RespListAnomalyReports struct {
	Code    response.APIResponseCode          `json:"code"`
	Message string                            `json:"message"`
	Data    report.ListAnomalyReportsResponse `json:"data"`
}

type RespListMetricsSnapshots struct {
	Code    response.APIResponseCode      `json:"code"`
	Message string                        `json:"message"`
	Data    []models.MetricsDailySnapshot `json:"data"`
}
