package star

import "github.com/pkg/errors"

var (
	ErrInvalidDays   = errors.New("star: days since solar term must be positive")
	ErrUnknownLayout = errors.New("star: unknown layout")
	ErrUnknownModel  = errors.New("star: unknown hidden stem model")
)
