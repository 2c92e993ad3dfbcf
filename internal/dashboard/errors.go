package dashboard

import (
	"errors"

	"github.com/ukydev/car-sales-analytics/internal/db"
)

// QueryError marks a failed database round trip during a render pass. The
// page controller halts the pass; no partial charts are produced.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *QueryError) Unwrap() error { return e.Err }

// IsQueryError reports whether err is a QueryError from any render step.
func IsQueryError(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe)
}

// IsNotFound reports whether err means the requested car (or dealer) no
// longer matches any document.
func IsNotFound(err error) bool {
	return errors.Is(err, db.ErrNotFound)
}
