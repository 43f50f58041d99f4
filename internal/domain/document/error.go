package document

import "errors"

var (
	ErrNotFound       = errors.New("document not found")
	ErrFolderNotFound = errors.New("folder not found")
)
