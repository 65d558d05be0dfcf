package service

import (
	"errors"

	"gorm.io/gorm"

	apperrors "varmepumpe/internal/errors"
)

// MessageResponse is returned by operations that only report an outcome.
type MessageResponse struct {
	Message string `json:"message"`
}

// notFound translates a missing row into a typed not-found error for resource.
func notFound(err error, resource string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(resource)
	}
	return err
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
