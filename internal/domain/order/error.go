package order

import "errors"

var (
	ErrNotFound = errors.New("purchase order not found")
)
