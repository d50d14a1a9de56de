package fixvalue

import "errors"

var (
	ErrFixValueNotFound = errors.New("fix value not found")
	ErrFixValueExists   = errors.New("fix value already exists for this category and month")
)
