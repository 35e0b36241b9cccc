package entities

import "errors"

// Store error taxonomy. Repositories translate driver errors into these so
// controllers can map them to HTTP codes without knowing about GORM.
var (
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrDanglingReference = errors.New("referenced parent does not exist")
	ErrNotFound          = errors.New("not found")
	ErrInvalidStatus     = errors.New("status outside allowed domain")
)
