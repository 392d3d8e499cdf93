package service

import (
	"fmt"

	"github.com/brickfolio/property-portal/internal/pkg/optional"
)

// setRequired copies a present field into the change set; an explicit null
// is rejected because the column is NOT NULL.
func setRequired[T any](cols map[string]any, col string, f optional.Field[T]) error {
	if !f.Present() {
		return nil
	}
	v, ok := f.Value()
	if !ok {
		return fmt.Errorf("%w: %s cannot be null", ErrInvalidInput, col)
	}
	cols[col] = v
	return nil
}

// setNullable copies a present field into the change set; an explicit null
// writes NULL.
func setNullable[T any](cols map[string]any, col string, f optional.Field[T]) {
	if f.Present() {
		cols[col] = f.Ptr()
	}
}
