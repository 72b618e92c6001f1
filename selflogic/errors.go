package selflogic

import "github.com/pkg/errors"

var (
	ErrUnknownStem   = errors.New("selflogic: unknown stem")
	ErrUnknownBranch = errors.New("selflogic: unknown branch")
	ErrInvalidPillar = errors.New("selflogic: stem and branch polarity differ")
)
