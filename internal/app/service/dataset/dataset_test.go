package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fatflowers/jobmetrics/internal/models"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr(t time.Time) *time.Time { return &t }

func windowFixture() *Dataset {
	return &Dataset{
		Users: []*models.User{
			{UserID: "old", SignupDate: date("2024-01-01")},
			{UserID: "new", SignupDate: date("2024-03-15")},
			{UserID: "edge", SignupDate: date("2024-03-01")},
		},
		Subscriptions: []*models.Subscription{
			{UserID: "old", SubscriptionStart: date("2024-01-10")},
			{UserID: "new", SubscriptionStart: date("2024-03-16")},
			{UserID: "edge", SubscriptionStart: date("2024-03-02"), SubscriptionEnd: ptr(date("2024-03-20"))},
		},
		Scans: []*models.Scan{
			{UserID: "old", ScanDate: date("2024-03-20")},
			{UserID: "new", ScanDate: date("2024-02-01")},
			{UserID: "new", ScanDate: date("2024-03-20")},
			{UserID: "edge", ScanDate: date("2024-03-31")},
		},
		Revenue: []*models.RevenueDay{
			{Date: date("2024-02-15"), MRR: 10},
			{Date: date("2024-03-01"), MRR: 20},
			{Date: date("2024-03-31"), MRR: 30},
		},
	}
}

func TestDataset_MaxDate(t *testing.T) {
	maxDate, ok := windowFixture().MaxDate()
	require.True(t, ok)
	require.Equal(t, date("2024-03-31"), maxDate)

	_, ok = (&Dataset{}).MaxDate()
	require.False(t, ok)
}

func TestDataset_Window(t *testing.T) {
	ds := windowFixture()
	w := ds.Window(30)

	// cutoff is 2024-03-01, inclusive
	ids := make([]string, 0, len(w.Users))
	for _, u := range w.Users {
		ids = append(ids, u.UserID)
	}
	require.ElementsMatch(t, []string{"new", "edge"}, ids)

	require.Len(t, w.Subscriptions, 2)
	for _, s := range w.Subscriptions {
		require.NotEqual(t, "old", s.UserID)
	}

	// scans of dropped users and scans before the cutoff are removed
	require.Len(t, w.Scans, 2)
	for _, s := range w.Scans {
		require.False(t, s.ScanDate.Before(date("2024-03-01")))
		require.NotEqual(t, "old", s.UserID)
	}

	require.Len(t, w.Revenue, 2)
	require.Equal(t, date("2024-03-01"), w.Revenue[0].Date)
}

func TestDataset_WindowDoesNotMutateSource(t *testing.T) {
	ds := windowFixture()
	_ = ds.Window(7)

	require.Len(t, ds.Users, 3)
	require.Len(t, ds.Subscriptions, 3)
	require.Len(t, ds.Scans, 4)
	require.Len(t, ds.Revenue, 3)
}

func TestDataset_WindowDisabled(t *testing.T) {
	ds := windowFixture()
	for _, days := range []int{0, -5} {
		w := ds.Window(days)
		require.Len(t, w.Users, 3)
		require.Len(t, w.Scans, 4)

		w.Users = w.Users[:1]
		require.Len(t, ds.Users, 3)
	}
}

func TestValidate_SortsRevenue(t *testing.T) {
	ds := &Dataset{
		Users: []*models.User{{UserID: "u1", SignupDate: date("2024-01-01"), AcquisitionChannel: "organic", UserSegment: "job_seeker"}},
		Revenue: []*models.RevenueDay{
			{Date: date("2024-01-03")},
			{Date: date("2024-01-01")},
			{Date: date("2024-01-02")},
		},
	}
	require.NoError(t, Validate(ds))
	require.Equal(t, date("2024-01-01"), ds.Revenue[0].Date)
	require.Equal(t, date("2024-01-03"), ds.Revenue[2].Date)
}

func TestValidate_EmptyRevenue(t *testing.T) {
	ds := &Dataset{Users: []*models.User{{UserID: "u1", SignupDate: date("2024-01-01"), AcquisitionChannel: "organic", UserSegment: "job_seeker"}}}
	err := Validate(ds)
	require.ErrorIs(t, err, ErrDataNotFound)
}
