package employee

import "errors"

var (
	ErrNotFound       = errors.New("employee not found")
	ErrDuplicateEmail = errors.New("email already exists")
	ErrManagerCycle   = errors.New("reporting manager assignment creates a cycle")
)
