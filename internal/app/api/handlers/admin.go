package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fatflowers/jobmetrics/internal/app/service/report"
	"github.com/fatflowers/jobmetrics/pkg/response"
)

const AnomalyReportSourceAPI = "api"

type ListMetricsSnapshotsRequest struct {
	TimeRangeDays int `json:"time_range_days"`
	// From and To are YYYY-MM-DD bounds, To exclusive. Empty bounds are open.
	From string `json:"from"`
	To   string `json:"to"`
}

// @Summary      Reload dataset (Admin)
// @Description  Reads the data source again and drops every cached analyzer.
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  handlers.RespDatasetInfo
// @Router       /api/v1/admin/reload [post]
func ApiReloadDataset(store DatasetStore, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		info, err := store.Reload(c.Request.Context())
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(info))
	}
}

// @Summary      Dataset info (Admin)
// @Description  Describes the loaded dataset, zero values before the first load.
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  handlers.RespDatasetInfo
// @Router       /api/v1/admin/dataset [get]
func ApiDatasetInfo(store DatasetStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response.OKT(store.Info()))
	}
}

// @Summary      Run anomaly check (Admin)
// @Description  Detects anomalies and persists the report and the daily metrics snapshot when a database is configured.
// @Tags         Admin
// @Produce      json
// @Param        time_range_days  query  int  false  "Trailing window in days, 0 for all data"
// @Success      200  {object}  handlers.RespAnomalyReport
// @Router       /api/v1/admin/anomaly_reports [post]
func ApiRunAnomalyCheck(store AnalyzerProvider, svc *report.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		days, err := timeRangeDays(c, store.DefaultDays())
		if err != nil {
			writeError(c, log, err)
			return
		}
		a, err := store.Analyzer(c.Request.Context(), days)
		if err != nil {
			writeError(c, log, err)
			return
		}
		r, err := svc.RunCheck(c.Request.Context(), a, AnomalyReportSourceAPI, days)
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(r))
	}
}

// @Summary      List anomaly reports (Admin)
// @Description  Filtered, paginated history of anomaly checks, newest first.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body report.ListAnomalyReportsRequest true "Filters and paging"
// @Success      200  {object}  handlers.RespListAnomalyReports
// @Router       /api/v1/admin/list_anomaly_reports [post]
func ApiListAnomalyReports(svc *report.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req report.ListAnomalyReportsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		res, err := svc.ListAnomalyReports(c.Request.Context(), &req)
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// @Summary      List metrics snapshots (Admin)
// @Description  Daily metric snapshots of one time window, oldest first.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body handlers.ListMetricsSnapshotsRequest true "Window and date bounds"
// @Success      200  {object}  handlers.RespListMetricsSnapshots
// @Router       /api/v1/admin/list_metrics_snapshots [post]
func ApiListMetricsSnapshots(svc *report.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ListMetricsSnapshotsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		rows, err := svc.ListMetricsDailySnapshots(c.Request.Context(), req.TimeRangeDays, req.From, req.To)
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(rows))
	}
}

func RegisterAdminRoutes(r gin.IRouter, store DatasetStore, svc *report.Service, log *zap.SugaredLogger) {
	r.POST("/reload", ApiReloadDataset(store, log))
	r.GET("/dataset", ApiDatasetInfo(store))
	r.POST("/anomaly_reports", ApiRunAnomalyCheck(store, svc, log))
	r.POST("/list_anomaly_reports", ApiListAnomalyReports(svc, log))
	r.POST("/list_metrics_snapshots", ApiListMetricsSnapshots(svc, log))
}
