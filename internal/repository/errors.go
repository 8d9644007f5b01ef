package repository

import "errors"

var (
	ErrCardNotFound    = errors.New("card not found")
	ErrVersionConflict = errors.New("card version changed since read")
)
