package dataset

import (
	"time"

	"github.com/samber/lo"

	"github.com/fatflowers/jobmetrics/internal/models"
)

const day = 24 * time.Hour

// Dataset holds the four source tables. Rows are shared between views and
// must be treated as read-only; only the slices are copied.
type Dataset struct {
	Users         []*models.User
	Subscriptions []*models.Subscription
	Scans         []*models.Scan
	// Revenue is sorted ascending by Date.
	Revenue []*models.RevenueDay
}

// Clone returns a copy with fresh slices.
func (d *Dataset) Clone() *Dataset {
	if d == nil {
		return &Dataset{}
	}
	return &Dataset{
		Users:         append([]*models.User(nil), d.Users...),
		Subscriptions: append([]*models.Subscription(nil), d.Subscriptions...),
		Scans:         append([]*models.Scan(nil), d.Scans...),
		Revenue:       append([]*models.RevenueDay(nil), d.Revenue...),
	}
}

// MaxDate is the latest signup, scan or revenue date across the tables.
func (d *Dataset) MaxDate() (time.Time, bool) {
	var maxDate time.Time
	found := false
	observe := func(t time.Time) {
		if !found || t.After(maxDate) {
			maxDate, found = t, true
		}
	}
	for _, u := range d.Users {
		observe(u.SignupDate)
	}
	for _, s := range d.Scans {
		observe(s.ScanDate)
	}
	for _, r := range d.Revenue {
		observe(r.Date)
	}
	return maxDate, found
}

// Window returns the trailing days of data relative to MaxDate. Users signed up
// before the cutoff are dropped together with their subscriptions and scans.
// A subscription is kept when it started on or after the cutoff, is still
// active, or ended on or after the cutoff. days <= 0 returns a full copy.
func (d *Dataset) Window(days int) *Dataset {
	if days <= 0 {
		return d.Clone()
	}
	maxDate, ok := d.MaxDate()
	if !ok {
		return d.Clone()
	}
	cutoff := maxDate.Add(-time.Duration(days) * day)
	inWindow := func(t time.Time) bool { return !t.Before(cutoff) }

	users := lo.Filter(d.Users, func(u *models.User, _ int) bool {
		return inWindow(u.SignupDate)
	})
	kept := lo.SliceToMap(users, func(u *models.User) (string, struct{}) {
		return u.UserID, struct{}{}
	})
	keptUser := func(id string) bool {
		_, ok := kept[id]
		return ok
	}

	return &Dataset{
		Users: users,
		Subscriptions: lo.Filter(d.Subscriptions, func(s *models.Subscription, _ int) bool {
			if !keptUser(s.UserID) {
				return false
			}
			return inWindow(s.SubscriptionStart) || s.SubscriptionEnd == nil || inWindow(*s.SubscriptionEnd)
		}),
		Scans: lo.Filter(d.Scans, func(s *models.Scan, _ int) bool {
			return keptUser(s.UserID) && inWindow(s.ScanDate)
		}),
		Revenue: lo.Filter(d.Revenue, func(r *models.RevenueDay, _ int) bool {
			return inWindow(r.Date)
		}),
	}
}

// Empty reports whether the users or revenue table has no rows.
func (d *Dataset) Empty() bool {
	return d == nil || len(d.Users) == 0 || len(d.Revenue) == 0
}
