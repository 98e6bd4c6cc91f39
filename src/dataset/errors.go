package dataset

import (
	"errors"
	"fmt"
)

// Expected failure kinds. Handlers map these to user-facing warnings; anything
// else is surfaced as an error dialog.
var (
	// ErrNoData signals an aggregate over empty or all-null input.
	ErrNoData = errors.New("no data to aggregate")
	// ErrNoNumeric signals a numeric-only operation over a column with no
	// convertible values left after coercion.
	ErrNoNumeric = errors.New("no numeric values in column")
)

// LoadError wraps a file-read failure (missing, malformed or unsupported
// file). The previous snapshot stays valid when a load fails.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// MissingColumnError signals a logical column that did not resolve against
// the loaded headers. Callers must refuse the operation, not crash.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("column %q not found", e.Column)
}

// IsExpected reports whether err is one of the failure kinds the UI treats as
// a warning rather than an application error.
func IsExpected(err error) bool {
	if errors.Is(err, ErrNoData) || errors.Is(err, ErrNoNumeric) {
		return true
	}
	var le *LoadError
	var mc *MissingColumnError
	return errors.As(err, &le) || errors.As(err, &mc)
}
