package types

import (
	"testing"
	"time"

	ierr "github.com/orderdesk/orderdesk/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInvoiceDate(t *testing.T) {
	t.Run("rfc3339", func(t *testing.T) {
		got, err := ParseInvoiceDate("2024-12-20T14:30:00Z")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 12, 20, 14, 30, 0, 0, time.UTC), got)
	})

	t.Run("zoneless_timestamp", func(t *testing.T) {
		got, err := ParseInvoiceDate("2024-12-20T14:30:00")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 12, 20, 14, 30, 0, 0, time.UTC), got)
	})

	t.Run("date_only", func(t *testing.T) {
		got, err := ParseInvoiceDate("2024-12-20")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("unparsable", func(t *testing.T) {
		_, err := ParseInvoiceDate("not-a-date")
		require.Error(t, err)
		assert.True(t, ierr.IsValidation(err))
	})
}
