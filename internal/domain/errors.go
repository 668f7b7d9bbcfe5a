package domain

import "errors"

// Domain errors
var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrNameRequired     = errors.New("name is required")
	ErrNameTooLong      = errors.New("name exceeds maximum length")
	ErrUnknownCategory  = errors.New("unknown category")
	ErrCategoryReserved = errors.New("category is reserved")
	ErrInvalidTextSize  = errors.New("invalid text size")
	ErrInvalidDate      = errors.New("invalid date")
	ErrKeyNotFound      = errors.New("key not found")
)
