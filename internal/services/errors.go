package services

import (
	"errors"
	"fmt"
	"strings"

	"feed-api/dto"
)

var (
	ErrValidationFailed      = errors.New("validation failed")
	ErrMissingAttachment     = errors.New("no image attached")
	ErrNotFound              = errors.New("not found")
	ErrForbidden             = errors.New("not authorized")
	ErrDependencyWriteFailed = errors.New("dependent write failed")
	ErrStorageFault          = errors.New("storage fault")
)

// ValidationError carries the field report produced before the service ran.
type ValidationError struct {
	Fields []dto.FieldError
}

func (e *ValidationError) Error() string {
	params := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		params = append(params, f.Param)
	}
	return fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(params, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidationFailed }

func storageFault(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorageFault, op, err)
}

func dependencyFault(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrDependencyWriteFailed, op, err)
}
