package usecase

import crerr "github.com/cockroachdb/errors"

var (
	ErrInvalidInput          = crerr.New("invalid input")
	ErrNoDocuments           = crerr.New("no documents for match date")
	ErrDependencyUnavailable = crerr.New("dependency unavailable")
)
