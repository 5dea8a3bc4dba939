package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestNew_Defaults(t *testing.T) {
	t.Setenv("APP_CONFIG_NAME", "missing-config")

	c, err := New()
	require.NoError(t, err)
	require.Equal(t, EnvDev, c.Env)
	require.Equal(t, 8888, c.Server.Port)
	require.Equal(t, DataSourceCSV, c.Data.Source)
	require.Equal(t, "./data", c.Data.Dir)
	require.Equal(t, 90, c.Report.Retention)
	require.Equal(t, DefaultThresholds(), c.Thresholds)
	require.Equal(t, "career_switcher", c.SegmentOf("professional"))
	require.Equal(t, "job_seeker", c.SegmentOf("job_seeker"))
}

func TestNew_FileAndEnv(t *testing.T) {
	t.Setenv("APP_CONFIG_FILE", writeConfig(t, `
env: prod
database:
  dsn: postgres://localhost/jobmetrics
data:
  source: postgres
  time_range_days: 30
thresholds:
  churn_rate:
    warning: 0.04
    critical: 0.07
`))
	t.Setenv("APP_SERVER_PORT", "9999")

	c, err := New()
	require.NoError(t, err)
	require.Equal(t, EnvProd, c.Env)
	require.Equal(t, 9999, c.Server.Port)
	require.Equal(t, DataSourcePostgres, c.Data.Source)
	require.Equal(t, 30, c.Data.TimeRangeDays)
	require.InDelta(t, 0.07, c.Thresholds.ChurnRate.Critical, 1e-9)
	require.InDelta(t, DefaultThresholds().MRRGrowth.Warning, c.Thresholds.MRRGrowth.Warning, 1e-9)
}

func TestNew_Invalid(t *testing.T) {
	t.Setenv("APP_CONFIG_FILE", writeConfig(t, "data:\n  source: mongo\n"))
	_, err := New()
	require.ErrorContains(t, err, "invalid config")

	t.Setenv("APP_CONFIG_FILE", writeConfig(t, "data:\n  time_range_days: -1\n"))
	_, err = New()
	require.ErrorContains(t, err, "invalid config")
}

func TestSegmentOf_NilConfig(t *testing.T) {
	var c *Config
	require.Equal(t, "student", c.SegmentOf("student"))
}
