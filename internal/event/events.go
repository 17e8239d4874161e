package event

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeItemAdded          = "ItemAddedToCart"
	TypeItemRemoved        = "ItemRemovedFromCart"
	TypeQuantityChanged    = "CartQuantityChanged"
	TypeCheckoutStarted    = "CheckoutStarted"
	TypeCheckoutRedirected = "CheckoutRedirected"
	TypeCheckoutFailed     = "CheckoutFailed"
)

// Envelope wraps every storefront activity event. Events are informational
// only; no component in this system consumes them.
type Envelope struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	ProductID  string    `json:"product_id,omitempty"`
	Quantity   int       `json:"quantity,omitempty"`
	Total      int       `json:"total,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func newEnvelope(eventType string) Envelope {
	return Envelope{
		ID:         uuid.New().String(),
		Type:       eventType,
		OccurredAt: time.Now(),
	}
}

func ItemAdded(productID string, quantity int) Envelope {
	e := newEnvelope(TypeItemAdded)
	e.ProductID = productID
	e.Quantity = quantity
	return e
}

func ItemRemoved(productID string) Envelope {
	e := newEnvelope(TypeItemRemoved)
	e.ProductID = productID
	return e
}

func QuantityChanged(productID string, quantity int) Envelope {
	e := newEnvelope(TypeQuantityChanged)
	e.ProductID = productID
	e.Quantity = quantity
	return e
}

func CheckoutStarted(total int) Envelope {
	e := newEnvelope(TypeCheckoutStarted)
	e.Total = total
	return e
}

func CheckoutRedirected(total int) Envelope {
	e := newEnvelope(TypeCheckoutRedirected)
	e.Total = total
	return e
}

func CheckoutFailed(reason string) Envelope {
	e := newEnvelope(TypeCheckoutFailed)
	e.Reason = reason
	return e
}
