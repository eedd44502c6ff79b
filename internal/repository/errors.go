package repository

import (
	"strings"

	"github.com/lib/pq"
	ierr "github.com/orderdesk/orderdesk/internal/errors"
)

// pq error codes used to classify failures raised by the stored procedures
const (
	// foreign_key_violation: an item referenced a customer or product row
	// that does not exist
	pqForeignKeyViolation = pq.ErrorCode("23503")
	// raise_exception: procedures validate references themselves and RAISE
	// with a "does not exist" message
	pqRaiseException = pq.ErrorCode("P0001")
)

// classifyDBError maps a driver error to the internal taxonomy. Reference
// failures are client errors; everything else stays an opaque database
// error whose details are only logged, never returned.
func classifyDBError(err error, op string) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if ierr.As(err, &pqErr) {
		if pqErr.Code == pqForeignKeyViolation ||
			(pqErr.Code == pqRaiseException && strings.Contains(strings.ToLower(pqErr.Message), "does not exist")) {
			return ierr.WithError(err).
				WithHint("A referenced customer or product does not exist").
				Mark(ierr.ErrInvalidOperation)
		}
	}

	return ierr.WithError(err).
		WithMessage(op).
		WithHint("An internal error occurred").
		Mark(ierr.ErrDatabase)
}
