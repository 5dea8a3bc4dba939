package gormlog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/fatflowers/jobmetrics/pkg/logctx"
)

func TestShortCaller(t *testing.T) {
	cases := []struct{ in, want string }{
		{in: "", want: ""},
		{in: "/home/ci/jobmetrics/internal/models/x.go:38", want: "internal/models/x.go:38"},
		{in: `C:\src\jobmetrics\pkg\x\y.go:12`, want: "pkg/x/y.go:12"},
		{in: "/a/b/c/d.go:1", want: "b/c/d.go:1"},
		{in: "d.go:1", want: "d.go:1"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, shortCaller(tc.in), tc.in)
	}
}

func TestTrace_LevelsAndTraceID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := New(zap.New(core).Sugar(), WithLogLevel(gormlogger.Warn), WithSlowThreshold(500*time.Millisecond))
	ctx := logctx.WithTraceID(context.Background(), "trace-9")
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	// fast and successful queries are below the warn level
	l.Trace(ctx, time.Now(), sqlFn, nil)
	require.Equal(t, 0, logs.Len())

	l.Trace(ctx, time.Now().Add(-time.Second), sqlFn, nil)
	require.Equal(t, 1, logs.FilterMessage("gorm_slow").Len())

	l.Trace(ctx, time.Now(), sqlFn, gorm.ErrRecordNotFound)
	require.Equal(t, 0, logs.FilterMessage("gorm_trace").Len())

	l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))
	entries := logs.FilterMessage("gorm_trace").All()
	require.Len(t, entries, 1)
	require.Equal(t, "trace-9", entries[0].ContextMap()["trace_id"])
	require.Equal(t, "gorm", entries[0].ContextMap()["component"])

	l.LogMode(gormlogger.Silent).Trace(ctx, time.Now(), sqlFn, errors.New("boom"))
	require.Equal(t, 1, logs.FilterMessage("gorm_trace").Len())
}
