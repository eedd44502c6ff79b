package types

import (
	"time"

	ierr "github.com/orderdesk/orderdesk/internal/errors"
)

// invoiceDateLayouts are the accepted textual timestamp forms, tried in order.
// The legacy clients send bare "2006-01-02T15:04:05" timestamps without a zone.
var invoiceDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseInvoiceDate parses a raw invoice date string against the accepted
// layouts. Zoneless layouts are interpreted as UTC.
func ParseInvoiceDate(raw string) (time.Time, error) {
	for _, layout := range invoiceDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ierr.NewErrorf("invalid invoice date %q", raw).
		WithHint("invoiceDate must be a valid date string").
		Mark(ierr.ErrValidation)
}
