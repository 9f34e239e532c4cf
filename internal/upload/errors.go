package upload

import "errors"

var (
	ErrEmptyFile       = errors.New("file is empty")
	ErrFileTooLarge    = errors.New("file exceeds size limit")
	ErrInvalidMimeType = errors.New("file type not allowed")
	ErrInvalidPurpose  = errors.New("unknown upload purpose")
)
