package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fatflowers/jobmetrics/internal/app/service/analytics"
	"github.com/fatflowers/jobmetrics/internal/app/service/dataset"
	"github.com/fatflowers/jobmetrics/internal/app/service/report"
	"github.com/fatflowers/jobmetrics/internal/app/service/session"
	"github.com/fatflowers/jobmetrics/pkg/logctx"
	"github.com/fatflowers/jobmetrics/pkg/response"
)

// AnalyzerProvider hands out analyzers per trailing time window.
type AnalyzerProvider interface {
	Analyzer(ctx context.Context, days int) (*analytics.Analyzer, error)
	DefaultDays() int
}

// DatasetStore is an AnalyzerProvider that can also reload its data.
type DatasetStore interface {
	AnalyzerProvider
	Reload(ctx context.Context) (session.Info, error)
	Info() session.Info
}

var (
	errBadRequest = errors.New("bad request")
	errNotFound   = errors.New("not found")
)

// timeRangeDays reads ?time_range_days, falling back to def.
func timeRangeDays(c *gin.Context, def int) (int, error) {
	return intQuery(c, "time_range_days", def)
}

func intQuery(c *gin.Context, key string, def int) (int, error) {
	v := c.Query(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", errBadRequest, key, v)
	}
	return n, nil
}

func errorCode(err error) response.APIResponseCode {
	switch {
	case errors.Is(err, errBadRequest), errors.Is(err, report.ErrInvalidFilter):
		return response.APIResponseCodeBadRequest
	case errors.Is(err, errNotFound):
		return response.APIResponseCodeNotFound
	case errors.Is(err, dataset.ErrDataNotFound):
		return response.APIResponseCodeDataNotFound
	case errors.Is(err, analytics.ErrFunnelIncomplete),
		errors.Is(err, analytics.ErrNoSignups),
		errors.Is(err, analytics.ErrFunnelNotOrdered),
		errors.Is(err, dataset.ErrInvalidRow),
		errors.Is(err, dataset.ErrMissingColumn):
		return response.APIResponseCodeIntegrity
	default:
		return response.APIResponseCodeError
	}
}

func writeError(c *gin.Context, log *zap.SugaredLogger, err error) {
	code := errorCode(err)
	logctx.FromGin(c, log).Warnw("request failed", "code", code, "err", err)
	c.JSON(http.StatusOK, response.ErrorT[any](code, err.Error()))
}

// analyzerHandler resolves the analyzer of the requested window and renders
// fn's result in the standard envelope.
func analyzerHandler(p AnalyzerProvider, log *zap.SugaredLogger, fn func(c *gin.Context, a *analytics.Analyzer) (any, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		days, err := timeRangeDays(c, p.DefaultDays())
		if err != nil {
			writeError(c, log, err)
			return
		}
		a, err := p.Analyzer(c.Request.Context(), days)
		if err != nil {
			writeError(c, log, err)
			return
		}
		data, err := fn(c, a)
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(data))
	}
}
