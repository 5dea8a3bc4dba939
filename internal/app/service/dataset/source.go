package dataset

import "context"

// Source loads the four tables of a Dataset.
type Source interface {
	Name() string
	Load(ctx context.Context) (*Dataset, error)
}

const (
	TableUsers         = "users"
	TableSubscriptions = "subscriptions"
	TableScans         = "scans"
	TableRevenue       = "revenue"
)
