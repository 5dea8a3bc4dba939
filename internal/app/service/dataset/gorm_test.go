package dataset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fatflowers/jobmetrics/internal/platform/db/testutil"
)

func TestNewGormSource_NilDB(t *testing.T) {
	_, err := NewGormSource(nil)
	require.ErrorIs(t, err, ErrNoDatabase)
}

func TestGormSource_ImportLoad(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	ctx := context.Background()

	ds, err := NewCSVSource(writeTables(t, allTables())).Load(ctx)
	require.NoError(t, err)

	src, err := NewGormSource(tx)
	require.NoError(t, err)
	require.Equal(t, "postgres", src.Name())
	require.NoError(t, src.Import(ctx, ds))

	got, err := src.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Users, 2)
	require.Len(t, got.Subscriptions, 2)
	require.Len(t, got.Scans, 2)
	require.Len(t, got.Revenue, 2)
	require.Equal(t, "1", got.Users[0].UserID)
	require.True(t, got.Revenue[0].Date.Before(got.Revenue[1].Date))
	require.InDelta(t, 73.98, got.Revenue[1].MRR, 1e-9)

	// importing again replaces rather than appends
	require.NoError(t, src.Import(ctx, got))
	again, err := src.Load(ctx)
	require.NoError(t, err)
	require.Len(t, again.Scans, 2)
}

func TestGormSource_EmptyTables(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	src, err := NewGormSource(tx)
	require.NoError(t, err)
	require.NoError(t, src.Import(context.Background(), &Dataset{}))

	_, err = src.Load(context.Background())
	require.ErrorIs(t, err, ErrDataNotFound)
}
