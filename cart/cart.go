// Package cart implements the session-scoped shopping cart engine: a line
// set with merge-on-add semantics, derived totals, change notifications, and
// persistence to a durable key-value slot.
package cart

import "github.com/shopspring/decimal"

// Item identifies a product as it appears in the catalog. Price is
// snapshotted at add time and never re-fetched.
type Item struct {
	ProductID string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"imageUrl"`
}

// Line is one product entry in the cart. At most one Line exists per
// product id.
type Line struct {
	ProductID string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"imageUrl"`
	Quantity  int             `json:"quantity"`
}

type EventType string

const (
	EventItemAdded       EventType = "item_added"
	EventQuantityUpdated EventType = "quantity_updated"
	EventItemRemoved     EventType = "item_removed"
	EventCleared         EventType = "cleared"
)

// Event is published to subscribers after every cart mutation. Name carries
// the affected line's display name (empty for EventCleared).
type Event struct {
	Type EventType
	Name string
}
