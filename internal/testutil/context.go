package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/orderdesk/orderdesk/internal/types"
)

func SetupContext() context.Context {
	return types.SetRequestID(context.Background(), uuid.New().String())
}
