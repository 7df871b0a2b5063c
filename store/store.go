package store

import (
	"errors"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidTransaction = errors.New("invalid transaction")
)

func IsErrNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
