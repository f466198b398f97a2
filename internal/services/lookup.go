package services

import (
	"errors"

	apperrors "github.com/franciscosanchezn/pizza-restaurants-api/internal/errors"
	"gorm.io/gorm"
)

// lookupError maps a failed First() to notFound when the row is missing,
// otherwise to a store error for op
func lookupError(err error, notFound error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return apperrors.NewStoreError(op, err)
}
