package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fatflowers/jobmetrics/internal/app/service/analytics"
)

var errUserNotFound = fmt.Errorf("%w: user has no scans", errNotFound)

type UserMatchRateResponse struct {
	UserID       string  `json:"user_id"`
	AvgMatchRate float64 `json:"avg_match_rate"`
}

// @Summary      User match rate
// @Description  Mean match rate of one user's scans in the window.
// @Tags         Users
// @Produce      json
// @Param        user_id          path   string  true   "User ID"
// @Param        time_range_days  query  int     false  "Trailing window in days, 0 for all data"
// @Success      200  {object}  handlers.RespUserMatchRate
// @Router       /api/v1/users/{user_id}/match_rate [get]
func ApiUserMatchRate(p AnalyzerProvider, log *zap.SugaredLogger) gin.HandlerFunc {
	return analyzerHandler(p, log, func(c *gin.Context, a *analytics.Analyzer) (any, error) {
		userID := c.Param("user_id")
		rate, ok := a.UserAvgMatchRate(userID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", errUserNotFound, userID)
		}
		return &UserMatchRateResponse{UserID: userID, AvgMatchRate: rate}, nil
	})
}

func RegisterUserRoutes(r gin.IRouter, p AnalyzerProvider, log *zap.SugaredLogger) {
	r.GET("/:user_id/match_rate", ApiUserMatchRate(p, log))
}
