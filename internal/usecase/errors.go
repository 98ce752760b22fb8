package usecase

import (
	"errors"
	"fmt"
)

// Error classes surfaced to the HTTP layer. Handlers match with errors.Is and
// map to status codes; everything else is treated as a server error.
var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrAssetUpload = errors.New("asset upload failed")
	ErrConflict    = errors.New("conflict")
)

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
