package domain

import "errors"

var (
	ErrNotFound      = errors.New("blog not found")
	ErrInvalidID     = errors.New("invalid blog id")
	ErrDuplicateSlug = errors.New("blog slug already exists")
)
