package repository

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	ierr "github.com/orderdesk/orderdesk/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestClassifyDBError(t *testing.T) {
	testCases := []struct {
		name             string
		err              error
		invalidOperation bool
	}{
		{
			name:             "foreign_key_violation_is_a_client_error",
			err:              &pq.Error{Code: "23503", Message: "insert violates foreign key"},
			invalidOperation: true,
		},
		{
			name:             "raised_does_not_exist_is_a_client_error",
			err:              &pq.Error{Code: "P0001", Message: "Product 7f1d does not exist"},
			invalidOperation: true,
		},
		{
			name:             "other_raised_errors_stay_opaque",
			err:              &pq.Error{Code: "P0001", Message: "inventory exhausted"},
			invalidOperation: false,
		},
		{
			name:             "connectivity_errors_stay_opaque",
			err:              errors.New("connection refused"),
			invalidOperation: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			classified := classifyDBError(tc.err, "test op")
			if tc.invalidOperation {
				assert.True(t, ierr.IsInvalidOperation(classified))
			} else {
				assert.True(t, ierr.IsDatabase(classified))
				assert.False(t, ierr.IsInvalidOperation(classified))
			}
		})
	}

	t.Run("nil_passes_through", func(t *testing.T) {
		assert.NoError(t, classifyDBError(nil, "test op"))
	})
}
