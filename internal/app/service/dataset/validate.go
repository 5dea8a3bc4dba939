package dataset

import (
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks row constraints and sorts Revenue by date. The users and
// revenue tables must not be empty.
func Validate(ds *Dataset) error {
	if len(ds.Users) == 0 {
		return &DataNotFoundError{Table: TableUsers}
	}
	if len(ds.Revenue) == 0 {
		return &DataNotFoundError{Table: TableRevenue}
	}
	for i, u := range ds.Users {
		if err := validate.Struct(u); err != nil {
			return fmt.Errorf("%w: %s row %d: %v", ErrInvalidRow, TableUsers, i+1, err)
		}
	}
	for i, s := range ds.Subscriptions {
		if err := validate.Struct(s); err != nil {
			return fmt.Errorf("%w: %s row %d: %v", ErrInvalidRow, TableSubscriptions, i+1, err)
		}
		if s.SubscriptionEnd != nil && s.SubscriptionEnd.Before(s.SubscriptionStart) {
			return fmt.Errorf("%w: %s row %d: subscription_end before subscription_start", ErrInvalidRow, TableSubscriptions, i+1)
		}
	}
	for i, s := range ds.Scans {
		if err := validate.Struct(s); err != nil {
			return fmt.Errorf("%w: %s row %d: %v", ErrInvalidRow, TableScans, i+1, err)
		}
	}
	for i, r := range ds.Revenue {
		if err := validate.Struct(r); err != nil {
			return fmt.Errorf("%w: %s row %d: %v", ErrInvalidRow, TableRevenue, i+1, err)
		}
	}
	sort.SliceStable(ds.Revenue, func(i, j int) bool {
		return ds.Revenue[i].Date.Before(ds.Revenue[j].Date)
	})
	return nil
}
