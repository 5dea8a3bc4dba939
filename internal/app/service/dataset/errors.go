package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrDataNotFound matches every *DataNotFoundError.
	ErrDataNotFound  = errors.New("dataset not found")
	ErrInvalidRow    = errors.New("invalid dataset row")
	ErrMissingColumn = errors.New("missing dataset column")
)

// DataNotFoundError reports a source table that does not exist or is empty.
// Callers should direct the user to run the data generator.
type DataNotFoundError struct {
	Table string
	Path  string
}

func (e *DataNotFoundError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s table not found at %s", ErrDataNotFound, e.Table, e.Path)
	}
	return fmt.Sprintf("%s: %s table is empty or missing", ErrDataNotFound, e.Table)
}

func (e *DataNotFoundError) Is(target error) bool {
	return target == ErrDataNotFound
}
