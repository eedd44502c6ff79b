package order

import (
	"encoding/json"
	"time"

	ierr "github.com/orderdesk/orderdesk/internal/errors"
)

// CreateItem is one validated {productId, quantity} pair of a creation
// command. The JSON tags define the blob shape sent to the create procedure.
type CreateItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CreateCommand is a validated, normalized order-creation request. A nil
// InvoiceDate means the procedure applies its default.
type CreateCommand struct {
	CustomerID  string
	InvoiceDate *time.Time
	Items       []CreateItem
}

// ItemsJSON serializes the line items for the single blob parameter of the
// create procedure, preserving input order.
func (c *CreateCommand) ItemsJSON() (string, error) {
	b, err := json.Marshal(c.Items)
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to serialize order line items").
			Mark(ierr.ErrSystem)
	}
	return string(b), nil
}
