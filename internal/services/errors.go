// internal/services/errors.go
package services

import (
	"errors"

	"github.com/javajoker/natura-backend/internal/utils"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrClientNotFound = errors.New("client not found")
)

// ValidationError reports a request that failed validation before any write.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func validateRequest(req interface{}) error {
	if err := utils.ValidateStruct(req); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}
