package catalog

import "errors"

var (
	ErrValidation = errors.New("validation error")
)
