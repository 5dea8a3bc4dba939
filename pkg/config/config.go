package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/fx"
)

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port" validate:"gt=0,lte=65535"`
}

type DBConfig struct {
	// DSN is optional; without it the report history is disabled.
	DSN string `mapstructure:"dsn"`
}

type Env string

const (
	EnvDev  Env = "dev"
	EnvProd Env = "prod"
)

type DataSource string

const (
	DataSourceCSV      DataSource = "csv"
	DataSourcePostgres DataSource = "postgres"
)

type DataConfig struct {
	Source DataSource `mapstructure:"source" validate:"oneof=csv postgres"`
	// Dir holds users.csv, subscriptions.csv, scans.csv and revenue.csv.
	Dir string `mapstructure:"dir"`
	// TimeRangeDays narrows every table to the trailing N days. 0 disables it.
	TimeRangeDays int `mapstructure:"time_range_days" validate:"gte=0"`
}

// Threshold is a two-level alert bound expressed as a fraction (0.05 = 5%).
type Threshold struct {
	Warning  float64 `mapstructure:"warning" json:"warning"`
	Critical float64 `mapstructure:"critical" json:"critical"`
}

type Thresholds struct {
	ChurnRate      Threshold `mapstructure:"churn_rate" json:"churn_rate"`
	ConversionRate Threshold `mapstructure:"conversion_rate" json:"conversion_rate"`
	AvgMatchRate   Threshold `mapstructure:"avg_match_rate" json:"avg_match_rate"`
	MRRGrowth      Threshold `mapstructure:"mrr_growth" json:"mrr_growth"`
}

type ReportConfig struct {
	// Retention is the number of anomaly reports kept per source. 0 keeps everything.
	Retention int `mapstructure:"retention" validate:"gte=0"`
}

type Config struct {
	Env         Env          `mapstructure:"env"`
	Server      ServerConfig `mapstructure:"server"`
	Database    DBConfig     `mapstructure:"database"`
	Data        DataConfig   `mapstructure:"data"`
	Thresholds  Thresholds   `mapstructure:"thresholds"`
	Report      ReportConfig `mapstructure:"report"`
	MetricsAddr string       `mapstructure:"metrics_addr"`
	// SegmentAliases folds raw user segments into reporting segments.
	SegmentAliases map[string]string `mapstructure:"segment_aliases"`
}

// DefaultThresholds are the alert bounds used when the config file sets none.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ChurnRate:      Threshold{Warning: 0.05, Critical: 0.08},
		ConversionRate: Threshold{Warning: 0.02, Critical: 0.01},
		AvgMatchRate:   Threshold{Warning: 0.65, Critical: 0.60},
		MRRGrowth:      Threshold{Warning: -0.05, Critical: -0.10},
	}
}

// SegmentOf maps a raw segment to its reporting segment.
func (c *Config) SegmentOf(segment string) string {
	if c == nil {
		return segment
	}
	if alias, ok := c.SegmentAliases[segment]; ok && alias != "" {
		return alias
	}
	return segment
}

func New() (*Config, error) {
	// .env is optional, real environment variables win
	_ = godotenv.Load()

	v := viper.New()
	// Allow overriding config file via env:
	// - APP_CONFIG_FILE: absolute or relative file path (e.g., /etc/app/prod.yaml)
	// - APP_CONFIG_NAME: config base name without extension (default: "config")
	if file := os.Getenv("APP_CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
	} else {
		cfgName := os.Getenv("APP_CONFIG_NAME")
		if cfgName == "" {
			cfgName = "config"
		}
		v.SetConfigName(cfgName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validator.New().Struct(&c); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &c, nil
}

func setDefaults(v *viper.Viper) {
	th := DefaultThresholds()

	v.SetDefault("env", "dev")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8888)
	v.SetDefault("database.dsn", "")
	v.SetDefault("metrics_addr", ":9090")
	v.SetDefault("data.source", string(DataSourceCSV))
	v.SetDefault("data.dir", "./data")
	v.SetDefault("data.time_range_days", 0)
	v.SetDefault("report.retention", 90)
	v.SetDefault("thresholds.churn_rate.warning", th.ChurnRate.Warning)
	v.SetDefault("thresholds.churn_rate.critical", th.ChurnRate.Critical)
	v.SetDefault("thresholds.conversion_rate.warning", th.ConversionRate.Warning)
	v.SetDefault("thresholds.conversion_rate.critical", th.ConversionRate.Critical)
	v.SetDefault("thresholds.avg_match_rate.warning", th.AvgMatchRate.Warning)
	v.SetDefault("thresholds.avg_match_rate.critical", th.AvgMatchRate.Critical)
	v.SetDefault("thresholds.mrr_growth.warning", th.MRRGrowth.Warning)
	v.SetDefault("thresholds.mrr_growth.critical", th.MRRGrowth.Critical)
	v.SetDefault("segment_aliases", map[string]string{
		"career_changer": "career_switcher",
		"professional":   "career_switcher",
		"recent_grad":    "university_students",
	})
}

var Module = fx.Options(
	fx.Provide(New),
)
