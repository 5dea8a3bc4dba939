package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	usersCSV = `user_id,signup_date,acquisition_channel,user_segment,country,cac
1,2024-01-01,organic,job_seeker,US,0
2,2024-01-15,paid_search,career_changer,UK,42.5
`
	subscriptionsCSV = `user_id,subscription_start,subscription_end,plan_type,billing_cycle,mrr,status
2,2024-01-20 10:00:00,,professional,monthly,49.99,active
1,2024-01-05,2024-02-05,basic,annual,23.99,churned
`
	scansCSV = `user_id,scan_date,match_rate,processing_time_ms,keywords_extracted,job_title,is_paid_user
1,2024-01-02 08:30:00.123456,72.5,1800.3,15,Software Engineer,False
2,2024-02-01 12:00:00,81,2100,20.0,Data Scientist,True
`
	revenueCSV = `date,daily_revenue,mrr,active_subscriptions,new_subscriptions,churned_subscriptions
2024-01-21,2.47,73.98,2,1,0
2024-01-20,0.79,23.99,1,1,0
`
)

func writeTables(t *testing.T, tables map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range tables {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".csv"), []byte(body), 0o600))
	}
	return dir
}

func allTables() map[string]string {
	return map[string]string{
		TableUsers:         usersCSV,
		TableSubscriptions: subscriptionsCSV,
		TableScans:         scansCSV,
		TableRevenue:       revenueCSV,
	}
}

func TestCSVSource_Load(t *testing.T) {
	ds, err := NewCSVSource(writeTables(t, allTables())).Load(context.Background())
	require.NoError(t, err)

	require.Len(t, ds.Users, 2)
	require.Equal(t, "2", ds.Users[1].UserID)
	require.InDelta(t, 42.5, ds.Users[1].CAC, 1e-9)

	require.Len(t, ds.Subscriptions, 2)
	require.Nil(t, ds.Subscriptions[0].SubscriptionEnd)
	require.True(t, ds.Subscriptions[0].IsActive())
	require.NotNil(t, ds.Subscriptions[1].SubscriptionEnd)
	require.False(t, ds.Subscriptions[1].IsActive())

	require.Len(t, ds.Scans, 2)
	require.Equal(t, 20, ds.Scans[1].KeywordsExtracted)
	require.True(t, ds.Scans[1].IsPaidUser)
	require.Equal(t, 8, ds.Scans[0].ScanDate.Hour())

	// revenue is sorted after load
	require.Len(t, ds.Revenue, 2)
	require.Equal(t, 20, ds.Revenue[0].Date.Day())
	require.InDelta(t, 73.98, ds.Revenue[1].MRR, 1e-9)
}

func TestCSVSource_MissingFile(t *testing.T) {
	tables := allTables()
	delete(tables, TableScans)

	_, err := NewCSVSource(writeTables(t, tables)).Load(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, ErrDataNotFound)

	var nf *DataNotFoundError
	require.True(t, errors.As(err, &nf))
	require.Equal(t, TableScans, nf.Table)
	require.Contains(t, nf.Path, "scans.csv")
}

func TestCSVSource_EmptyUsersIsNotFound(t *testing.T) {
	tables := allTables()
	tables[TableUsers] = "user_id,signup_date,acquisition_channel,user_segment,country,cac\n"

	_, err := NewCSVSource(writeTables(t, tables)).Load(context.Background())
	require.ErrorIs(t, err, ErrDataNotFound)
}

func TestCSVSource_InvalidRows(t *testing.T) {
	cases := []struct {
		name  string
		table string
		body  string
		want  error
	}{
		{
			name:  "end before start",
			table: TableSubscriptions,
			body:  "user_id,subscription_start,subscription_end,plan_type,billing_cycle,mrr\n1,2024-02-01,2024-01-01,basic,monthly,29.99\n",
			want:  ErrInvalidRow,
		},
		{
			name:  "match rate out of range",
			table: TableScans,
			body:  "user_id,scan_date,match_rate,processing_time_ms,keywords_extracted,job_title,is_paid_user\n1,2024-01-02,130,1,1,x,False\n",
			want:  ErrInvalidRow,
		},
		{
			name:  "unparseable date",
			table: TableUsers,
			body:  "user_id,signup_date,acquisition_channel,user_segment,country,cac\n1,yesterday,organic,job_seeker,US,0\n",
			want:  ErrInvalidRow,
		},
		{
			name:  "missing column",
			table: TableRevenue,
			body:  "date,daily_revenue\n2024-01-01,1\n",
			want:  ErrMissingColumn,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tables := allTables()
			tables[tc.table] = tc.body
			_, err := NewCSVSource(writeTables(t, tables)).Load(context.Background())
			require.ErrorIs(t, err, tc.want)
		})
	}
}
