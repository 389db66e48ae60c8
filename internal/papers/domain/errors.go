package domain

import "errors"

var (
	ErrNotFound      = errors.New("paper not found")
	ErrInvalidID     = errors.New("invalid paper id")
	ErrDuplicateSlug = errors.New("paper slug already exists")
)
