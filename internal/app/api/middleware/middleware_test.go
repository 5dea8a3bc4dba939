package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fatflowers/jobmetrics/pkg/logctx"
)

func newRouter(base *zap.SugaredLogger, h gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceMiddleware(), RequestLoggerMiddleware(base), AccessLogMiddleware())
	r.GET("/ping/:id", h)
	return r
}

func TestMiddleware_PropagatesTraceID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core).Sugar()

	var ctxTrace string
	r := newRouter(base, func(c *gin.Context) {
		ctxTrace = logctx.TraceID(c.Request.Context())
		logctx.FromGin(c, zap.NewNop().Sugar()).Info("inside")
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping/7?days=3", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "req-42", w.Header().Get(HeaderRequestID))
	require.Equal(t, "req-42", ctxTrace)

	require.Equal(t, 2, logs.Len())
	inside, access := logs.All()[0], logs.All()[1]
	require.Equal(t, "inside", inside.Message)
	require.Equal(t, "req-42", inside.ContextMap()["trace_id"])
	require.Equal(t, "http_access", access.Message)
	require.Equal(t, "/ping/:id", access.ContextMap()["path"])
	require.Equal(t, "days=3", access.ContextMap()["query"])
	require.EqualValues(t, http.StatusNoContent, access.ContextMap()["status"])
}

func TestTraceMiddleware_GeneratesID(t *testing.T) {
	r := newRouter(zap.NewNop().Sugar(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping/1", nil))
	require.Len(t, w.Header().Get(HeaderRequestID), 36)
}
