package employee

import "errors"

var (
	ErrNotFound = errors.New("employee not found")
)
