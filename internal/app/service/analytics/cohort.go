package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"
)

// Cohort is one signup month. Retention[k] is the share of the cohort that
// scanned k months after signup, nil when nobody did.
type Cohort struct {
	Cohort      string     `json:"cohort"`
	Size        int        `json:"size"`
	ActiveUsers []int      `json:"active_users"`
	Retention   []*float64 `json:"retention"`
}

type CohortMatrix struct {
	Cohorts []Cohort `json:"cohorts"`
	// Months is the number of month offset columns, month 0 included.
	Months int `json:"months"`
}

type monthKey int

func monthOf(t time.Time) monthKey {
	return monthKey(t.Year()*12 + int(t.Month()) - 1)
}

func (m monthKey) String() string {
	return fmt.Sprintf("%04d-%02d", int(m)/12, int(m)%12+1)
}

// CohortAnalysis pivots distinct scanning users by signup month and months
// since signup, normalized by cohort size. Month 0 is the cohort itself.
func (a *Analyzer) CohortAnalysis() CohortMatrix {
	cohortOf := make(map[string]monthKey, len(a.ds.Users))
	sizes := make(map[monthKey]int)
	for _, u := range a.ds.Users {
		if _, seen := cohortOf[u.UserID]; seen {
			continue
		}
		m := monthOf(u.SignupDate)
		cohortOf[u.UserID] = m
		sizes[m]++
	}

	type cell struct {
		cohort monthKey
		offset int
	}
	active := make(map[cell]map[string]struct{})
	months := 1
	for _, s := range a.ds.Scans {
		cohort, ok := cohortOf[s.UserID]
		if !ok {
			continue
		}
		offset := int(monthOf(s.ScanDate) - cohort)
		if offset <= 0 {
			continue
		}
		c := cell{cohort: cohort, offset: offset}
		if active[c] == nil {
			active[c] = make(map[string]struct{})
		}
		active[c][s.UserID] = struct{}{}
		months = max(months, offset+1)
	}

	keys := lo.Keys(sizes)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := CohortMatrix{Cohorts: make([]Cohort, 0, len(keys)), Months: months}
	for _, k := range keys {
		size := sizes[k]
		row := Cohort{
			Cohort:      k.String(),
			Size:        size,
			ActiveUsers: make([]int, months),
			Retention:   make([]*float64, months),
		}
		row.ActiveUsers[0] = size
		row.Retention[0] = lo.ToPtr(100.0)
		for offset := 1; offset < months; offset++ {
			users := len(active[cell{cohort: k, offset: offset}])
			if users == 0 {
				continue
			}
			row.ActiveUsers[offset] = users
			row.Retention[offset] = lo.ToPtr(float64(users) / float64(size) * 100)
		}
		out.Cohorts = append(out.Cohorts, row)
	}
	return out
}

// Cell returns the retention of cohort (YYYY-MM) at offset.
func (m CohortMatrix) Cell(cohort string, offset int) (float64, bool) {
	for _, c := range m.Cohorts {
		if c.Cohort != cohort {
			continue
		}
		if offset < 0 || offset >= len(c.Retention) || c.Retention[offset] == nil {
			return 0, false
		}
		return *c.Retention[offset], true
	}
	return 0, false
}

// ColumnAverages is the mean retention per month offset over the cohorts that
// have a value for it. Columns without any value are nil.
func (m CohortMatrix) ColumnAverages() []*float64 {
	out := make([]*float64, m.Months)
	for offset := range out {
		values := lo.FilterMap(m.Cohorts, func(c Cohort, _ int) (float64, bool) {
			if offset >= len(c.Retention) || c.Retention[offset] == nil {
				return 0, false
			}
			return *c.Retention[offset], true
		})
		if len(values) > 0 {
			out[offset] = lo.ToPtr(lo.Mean(values))
		}
	}
	return out
}
