package bbcsport

import (
	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
)

// ErrEmptyDocument is returned when a document was never fetched or archived.
var ErrEmptyDocument = crerr.New("empty document")

// Decode unmarshals one raw feed document.
func Decode[T any](raw []byte) (T, error) {
	var out T
	if len(raw) == 0 {
		return out, crerr.WithStack(ErrEmptyDocument)
	}
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return out, crerr.Wrapf(err, "decode %T", out)
	}
	return out, nil
}
