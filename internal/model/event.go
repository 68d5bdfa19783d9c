package model

import (
	"time"

	"github.com/google/uuid"
)

type CatalogAction string

const (
	ActionProductCreated  CatalogAction = "product_created"
	ActionProductUpdated  CatalogAction = "product_updated"
	ActionQuantityChanged CatalogAction = "quantity_changed"
	ActionProductDeleted  CatalogAction = "product_deleted"
)

// CatalogEvent is pushed to websocket clients after a successful mutation.
type CatalogEvent struct {
	ID         string        `json:"id"`
	Type       string        `json:"type"`
	Action     CatalogAction `json:"action"`
	Product    *Product      `json:"product,omitempty"`
	OldQty     *int          `json:"old_quantity,omitempty"`
	Message    string        `json:"message"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// NewCatalogEvent stamps an event with a fresh id and the current time.
func NewCatalogEvent(action CatalogAction, p *Product, message string) CatalogEvent {
	return CatalogEvent{
		ID:         uuid.NewString(),
		Type:       "catalog_update",
		Action:     action,
		Product:    p,
		Message:    message,
		OccurredAt: time.Now().UTC(),
	}
}
