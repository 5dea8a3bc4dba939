package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fatflowers/jobmetrics/internal/models"
	"github.com/fatflowers/jobmetrics/pkg/types"
)

// timeLayouts are tried in order for every date column.
var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// CSVSource reads users.csv, subscriptions.csv, scans.csv and revenue.csv from Dir.
type CSVSource struct {
	Dir string
}

func NewCSVSource(dir string) *CSVSource {
	return &CSVSource{Dir: dir}
}

func (s *CSVSource) Name() string { return "csv" }

func (s *CSVSource) Load(ctx context.Context) (*Dataset, error) {
	ds := &Dataset{}
	var err error
	if ds.Users, err = loadTable(ctx, s.path(TableUsers), parseUser); err != nil {
		return nil, err
	}
	if ds.Subscriptions, err = loadTable(ctx, s.path(TableSubscriptions), parseSubscription); err != nil {
		return nil, err
	}
	if ds.Scans, err = loadTable(ctx, s.path(TableScans), parseScan); err != nil {
		return nil, err
	}
	if ds.Revenue, err = loadTable(ctx, s.path(TableRevenue), parseRevenueDay); err != nil {
		return nil, err
	}
	if err := Validate(ds); err != nil {
		return nil, err
	}
	return ds, nil
}

func (s *CSVSource) path(table string) string {
	return filepath.Join(s.Dir, table+".csv")
}

func loadTable[T any](ctx context.Context, path string, parse func(*row) T) ([]T, error) {
	table := strings.TrimSuffix(filepath.Base(path), ".csv")
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &DataNotFoundError{Table: table, Path: path}
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.ReuseRecord = true
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &DataNotFoundError{Table: table, Path: path}
		}
		return nil, fmt.Errorf("read %s header: %w", path, err)
	}
	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}

	var out []T
	for line := 2; ; line++ {
		if line%10000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		rw := &row{file: path, line: line, columns: columns, rec: rec}
		item := parse(rw)
		if rw.err != nil {
			return nil, rw.err
		}
		out = append(out, item)
	}
	return out, nil
}

// row reads typed cells and keeps the first error.
type row struct {
	file    string
	line    int
	columns map[string]int
	rec     []string
	err     error
}

func (r *row) fail(col string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: %s line %d column %q: %v", ErrInvalidRow, r.file, r.line, col, err)
	}
}

func (r *row) cell(col string) (string, bool) {
	i, ok := r.columns[col]
	if !ok {
		if r.err == nil {
			r.err = fmt.Errorf("%w: %s has no %q column", ErrMissingColumn, r.file, col)
		}
		return "", false
	}
	if i >= len(r.rec) {
		return "", true
	}
	return strings.TrimSpace(r.rec[i]), true
}

func (r *row) String(col string) string {
	v, _ := r.cell(col)
	return v
}

// OptionalString returns "" when the column is absent.
func (r *row) OptionalString(col string) string {
	if _, ok := r.columns[col]; !ok {
		return ""
	}
	return r.String(col)
}

func (r *row) Float(col string) float64 {
	v, ok := r.cell(col)
	if !ok || v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.fail(col, err)
	}
	return f
}

func (r *row) Int(col string) int {
	return int(r.Float(col))
}

func (r *row) Bool(col string) bool {
	v, ok := r.cell(col)
	if !ok || v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.fail(col, err)
	}
	return b
}

func (r *row) Time(col string) time.Time {
	t := r.OptionalTime(col)
	if t == nil {
		if r.err == nil {
			r.fail(col, errors.New("empty date"))
		}
		return time.Time{}
	}
	return *t
}

// OptionalTime returns nil for an empty or NaT cell.
func (r *row) OptionalTime(col string) *time.Time {
	v, ok := r.cell(col)
	if !ok || v == "" || strings.EqualFold(v, "nat") {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, v, time.UTC); err == nil {
			t = t.UTC()
			return &t
		}
	}
	r.fail(col, fmt.Errorf("unsupported date %q", v))
	return nil
}

func parseUser(r *row) *models.User {
	return &models.User{
		UserID:             r.String("user_id"),
		SignupDate:         r.Time("signup_date"),
		AcquisitionChannel: types.AcquisitionChannel(r.String("acquisition_channel")),
		UserSegment:        r.String("user_segment"),
		Country:            r.OptionalString("country"),
		CAC:                r.Float("cac"),
	}
}

func parseSubscription(r *row) *models.Subscription {
	return &models.Subscription{
		UserID:            r.String("user_id"),
		SubscriptionStart: r.Time("subscription_start"),
		SubscriptionEnd:   r.OptionalTime("subscription_end"),
		PlanType:          types.PlanType(r.String("plan_type")),
		BillingCycle:      types.BillingCycle(r.OptionalString("billing_cycle")),
		MRR:               r.Float("mrr"),
	}
}

func parseScan(r *row) *models.Scan {
	return &models.Scan{
		UserID:            r.String("user_id"),
		ScanDate:          r.Time("scan_date"),
		MatchRate:         r.Float("match_rate"),
		ProcessingTimeMs:  r.Float("processing_time_ms"),
		KeywordsExtracted: r.Int("keywords_extracted"),
		JobTitle:          r.OptionalString("job_title"),
		IsPaidUser:        r.Bool("is_paid_user"),
	}
}

func parseRevenueDay(r *row) *models.RevenueDay {
	return &models.RevenueDay{
		Date:                 r.Time("date"),
		DailyRevenue:         r.Float("daily_revenue"),
		MRR:                  r.Float("mrr"),
		ActiveSubscriptions:  r.Int("active_subscriptions"),
		NewSubscriptions:     r.Int("new_subscriptions"),
		ChurnedSubscriptions: r.Int("churned_subscriptions"),
	}
}
