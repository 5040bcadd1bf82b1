package normalize

import crerr "github.com/cockroachdb/errors"

var (
	// ErrStructure marks a document missing a key the feed contract promises.
	ErrStructure = crerr.New("unexpected document structure")
	// ErrMalformedToken marks a minute or assist token that cannot be split.
	ErrMalformedToken = crerr.New("malformed token")
)

func structuref(format string, args ...any) error {
	return crerr.Wrapf(ErrStructure, format, args...)
}
